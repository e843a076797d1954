package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kokaton/musou/assets"
	cfg "github.com/kokaton/musou/config"
	"github.com/kokaton/musou/systems"
	"github.com/kokaton/musou/systems/factory"
	"github.com/kokaton/musou/ui"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StageScene runs one play session from the first frame to game over.
type StageScene struct {
	ecs     *ecs.ECS
	pauseUI *ui.PauseUI
	layout  *assets.StageLayout
	seed    uint64
	best    int
	once    sync.Once
}

// NewStageScene creates the scene. The world is built on the first update.
func NewStageScene(layout *assets.StageLayout, seed uint64, best int) *StageScene {
	return &StageScene{layout: layout, seed: seed, best: best}
}

func (ss *StageScene) Update() {
	ss.once.Do(ss.configure)
	ss.ecs.Update()

	if systems.IsPaused(ss.ecs) {
		ss.pauseUI.Update()
	}
}

func (ss *StageScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)

	if systems.IsPaused(ss.ecs) {
		ss.pauseUI.Draw(screen)
	}
}

// Done reports whether the game loop should terminate.
func (ss *StageScene) Done() bool {
	return ss.ecs != nil && systems.GetStage(ss.ecs).Quit
}

// Best returns the best score seen so far.
func (ss *StageScene) Best() int {
	if ss.ecs == nil {
		return ss.best
	}
	return systems.GetScore(ss.ecs).Best
}

func (ss *StageScene) configure() {
	systems.PreloadAllSFX()

	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: Could not load shaders: %v", err)
	}

	ss.ecs = NewStageECS(ss.layout, ss.seed, ss.best)

	ss.pauseUI = ui.NewPauseUI(
		func() { systems.SetPaused(ss.ecs, false) },
		func() { systems.GetStage(ss.ecs).Quit = true },
	)
}

// NewStageECS builds the world for a stage and registers every system and
// renderer in frame order.
func NewStageECS(layout *assets.StageLayout, seed uint64, best int) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)

	// Game systems wrapped with pause and game over checks
	for _, s := range systems.GameplaySystems() {
		e.AddSystem(s)
	}

	e.AddSystem(systems.UpdateAudio)
	e.AddSystem(systems.UpdateStage)

	for _, r := range systems.Renderers() {
		e.AddRenderer(cfg.Default, r)
	}

	factory.CreateStage(e, layout, seed, best)
	return e
}
