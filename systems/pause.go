package systems

import (
	"github.com/kokaton/musou/components"
	cfg "github.com/kokaton/musou/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles the pause and hitbox overlay toggles.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionDebug).JustPressed {
		pause.ShowHitboxes = !pause.ShowHitboxes
	}

	if IsGameOver(ecs) {
		return
	}

	if GetAction(input, cfg.ActionPause).JustPressed {
		SetPaused(ecs, !pause.IsPaused)
	}
}

// SetPaused pauses or resumes gameplay.
func SetPaused(ecs *ecs.ECS, paused bool) {
	GetOrCreatePause(ecs).IsPaused = paused
}

// IsPaused reports whether gameplay is paused.
func IsPaused(ecs *ecs.ECS) bool {
	return GetOrCreatePause(ecs).IsPaused
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithGameOverCheck wraps a system to skip execution once the game is over
func WithGameOverCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsGameOver(e) {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused or after game over
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(WithGameOverCheck(system))
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{
			ShowHitboxes: cfg.Debug.ShowHitboxes,
		})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
