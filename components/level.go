package components

import (
	"math/rand/v2"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Rect is an axis-aligned rectangle in screen pixels.
type Rect struct {
	X, Y, W, H float64
}

// StageData is the per-run singleton: bounds, frame counter and the RNG.
type StageData struct {
	Width, Height float64
	Frame         int
	Rand          *rand.Rand

	PlayerSpawnX, PlayerSpawnY float64
	EnemyLane                  Rect    // Enemies spawn at a random x inside the lane
	MinStop, MaxStop           float64 // Enemy stop altitude range

	GameOver      bool
	GameOverTimer int  // Frames left before the loop terminates
	Quit          bool // Set when the loop should terminate
}

var Stage = donburi.NewComponentType[StageData]()

// ScoreData holds the current score. Best is the persisted high score.
type ScoreData struct {
	Value int
	Best  int

	Pulse      *gween.Tween
	PulseScale float32
}

var Score = donburi.NewComponentType[ScoreData]()
