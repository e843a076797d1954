package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer; renderers draw in registration order.
const Default ecs.LayerID = iota

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	SpawnX, SpawnY float64 // Used when the stage map has no PlayerSpawn
	Width, Height  float64

	// Movement
	Speed      float64
	BoostSpeed float64 // While the modifier is held

	// Invincibility
	HyperFrames int

	// Reaction sprite after an enemy kill (frames)
	ReactionFrames int
}

// EnemyConfig contains enemy spawning and descent values
type EnemyConfig struct {
	Width, Height float64
	Variants      int

	SpawnEvery   int     // Frames between enemy spawns
	DescentSpeed float64 // Vertical speed while descending

	MinStop int // Stop altitude range (center y), max defaults to half the screen
	MaxStop int

	MinDropInterval int // Bomb drop interval range (frames)
	MaxDropInterval int
}

// BombConfig contains bomb values
type BombConfig struct {
	Speed     float64
	MinRadius int
	MaxRadius int
	Colors    []color.RGBA
}

// BeamConfig contains projectile values
type BeamConfig struct {
	Speed  float64
	Width  float64
	Height float64

	SpreadCount int     // Projectiles in a spread shot
	SpreadAngle float64 // Total fan angle in degrees
}

// ExplosionConfig contains explosion lifetimes and size
type ExplosionConfig struct {
	Size            float64
	EnemyLife       int
	BombLife        int
	FlipEvery       int // Frames between mirrored explosion frames
	GravityKillLife int
	HyperKillLife   int
}

// PowerUpConfig contains costs and durations for every power-up
type PowerUpConfig struct {
	HyperCost   int
	EMPCost     int
	GravityCost int
	ShieldCost  int

	EMPDuration   int
	GravityLife   int
	ShieldLife    int
	ShieldWidth   float64
	ShieldHeight  float64 // Defaults to twice the player width
	EMPAlpha      float64
	GravityAlpha  float64
	FadeInSeconds float32
}

// ScoreConfig is the flat point table
type ScoreConfig struct {
	EnemyByBeam    int
	BombByBeam     int
	BombByGravity  int
	EnemyByGravity int
	BombByHyper    int
}

// UIConfig contains HUD values
type UIConfig struct {
	ScoreX, ScoreY float64 // Center of the score readout, ScoreY measured from the bottom
	ScoreColor     color.RGBA
	BestColor      color.RGBA
	ScoreFontSize  float64
	SmallFontSize  float64
	PulseSeconds   float32
	PulseScale     float32

	GameOverColor   color.RGBA
	GameOverOverlay color.RGBA
}

// StageConfig contains stage-level values
type StageConfig struct {
	MapPath       string
	TileSize      int
	GameOverDelay int // Frames to hold the game-over screen before exiting
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowHitboxes bool
	Seed         uint64 // 0 = time based
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
	Title  string
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Bomb BombConfig
var Beam BeamConfig
var Explosion ExplosionConfig
var PowerUp PowerUpConfig
var Score ScoreConfig
var UI UIConfig
var Stage StageConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  1100,
		Height: 650,
		TPS:    50,
		Title:  "Kokaton Musou",
	}

	Player = PlayerConfig{
		SpawnX:         900,
		SpawnY:         400,
		Width:          64,
		Height:         56,
		Speed:          10,
		BoostSpeed:     20,
		HyperFrames:    500,
		ReactionFrames: 15,
	}

	Enemy = EnemyConfig{
		Width:           64,
		Height:          48,
		Variants:        3,
		SpawnEvery:      200,
		DescentSpeed:    6,
		MinStop:         50,
		MaxStop:         0, // Half the stage height
		MinDropInterval: 50,
		MaxDropInterval: 300,
	}

	Bomb = BombConfig{
		Speed:     6,
		MinRadius: 10,
		MaxRadius: 50,
		Colors: []color.RGBA{
			Red, Green, Blue, Yellow, Magenta, Cyan,
		},
	}

	Beam = BeamConfig{
		Speed:       10,
		Width:       48,
		Height:      12,
		SpreadCount: 5,
		SpreadAngle: 100,
	}

	Explosion = ExplosionConfig{
		Size:            72,
		EnemyLife:       100,
		BombLife:        50,
		FlipEvery:       10,
		GravityKillLife: 50,
		HyperKillLife:   50,
	}

	PowerUp = PowerUpConfig{
		HyperCost:     30,
		EMPCost:       20,
		GravityCost:   200,
		ShieldCost:    50,
		EMPDuration:   3,
		GravityLife:   400,
		ShieldLife:    400,
		ShieldWidth:   20,
		ShieldHeight:  0, // Twice the player width
		EMPAlpha:      128,
		GravityAlpha:  100,
		FadeInSeconds: 0.3,
	}

	Score = ScoreConfig{
		EnemyByBeam:    10,
		BombByBeam:     1,
		BombByGravity:  1,
		EnemyByGravity: 10,
		BombByHyper:    1,
	}

	UI = UIConfig{
		ScoreX:          100,
		ScoreY:          50,
		ScoreColor:      Blue,
		BestColor:       color.RGBA{R: 40, G: 40, B: 120, A: 255},
		ScoreFontSize:   34,
		SmallFontSize:   18,
		PulseSeconds:    0.25,
		PulseScale:      0.25,
		GameOverColor:   LightRed,
		GameOverOverlay: BlackOverlay,
	}

	Stage = StageConfig{
		MapPath:       "stages/stage01.tmx",
		TileSize:      50,
		GameOverDelay: 100, // 2 seconds at 50 TPS
	}

	Debug = DebugConfig{
		ShowHitboxes: false,
		Seed:         0,
	}
}

// ShieldHeight returns the configured shield length, defaulting to twice the
// player width.
func ShieldHeight() float64 {
	if PowerUp.ShieldHeight > 0 {
		return PowerUp.ShieldHeight
	}
	return Player.Width * 2
}
