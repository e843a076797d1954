package main

import (
	"flag"
	"image"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kokaton/musou/assets"
	"github.com/kokaton/musou/config"
	"github.com/kokaton/musou/fonts"
	"github.com/kokaton/musou/scenes"
	"github.com/kokaton/musou/systems"
)

const appName = "kokaton-musou"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Done() bool
	Best() int
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(layout *assets.StageLayout, seed uint64) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewStageScene(layout, seed, systems.LoadBest()),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.scene.Done() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.Uint64Var(&config.Debug.Seed, "seed", config.Debug.Seed, "random seed for enemies and bombs (0 = time based)")
	flag.BoolVar(&config.Debug.ShowHitboxes, "debug", config.Debug.ShowHitboxes, "start with the hitbox overlay on")
	flag.Parse()

	seed := config.Debug.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	layout, err := assets.LoadStageOrDefault(config.Stage.MapPath)
	if err != nil {
		log.Printf("Warning: Could not load stage, using the default layout: %v", err)
	}
	config.C.Width, config.C.Height = layout.Width, layout.Height

	if err := fonts.LoadDefaults(config.UI.ScoreFontSize, config.UI.SmallFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	if err := systems.InitPersistence(appName); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	game := NewGame(layout, seed)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
	systems.SaveBest(game.scene.Best())
}
