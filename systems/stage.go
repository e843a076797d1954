package systems

import (
	"github.com/kokaton/musou/components"
	cfg "github.com/kokaton/musou/config"
	"github.com/kokaton/musou/systems/factory"
	"github.com/kokaton/musou/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetStage returns the stage singleton. The stage is created by
// factory.CreateStage before any system runs.
func GetStage(ecs *ecs.ECS) *components.StageData {
	return components.Stage.Get(components.Stage.MustFirst(ecs.World))
}

// GetScore returns the score singleton.
func GetScore(ecs *ecs.ECS) *components.ScoreData {
	return components.Score.Get(components.Score.MustFirst(ecs.World))
}

// IsGameOver reports whether the player has been hit.
func IsGameOver(ecs *ecs.ECS) bool {
	entry, ok := components.Stage.First(ecs.World)
	return ok && components.Stage.Get(entry).GameOver
}

// UpdateStage advances the frame counter and runs the game-over countdown.
// It runs after every gameplay system.
func UpdateStage(ecs *ecs.ECS) {
	stage := GetStage(ecs)

	if stage.GameOver {
		if stage.GameOverTimer > 0 {
			stage.GameOverTimer--
		}
		if stage.GameOverTimer <= 0 {
			stage.Quit = true
		}
		return
	}

	if IsPaused(ecs) {
		return
	}
	stage.Frame++
}

// TriggerGameOver freezes gameplay and starts the exit countdown.
func TriggerGameOver(ecs *ecs.ECS) {
	stage := GetStage(ecs)
	if stage.GameOver {
		return
	}
	stage.GameOver = true
	stage.GameOverTimer = cfg.Stage.GameOverDelay

	if player, ok := tags.Player.First(ecs.World); ok {
		p := components.Player.Get(player)
		p.Expression = components.ExpressionSad
		p.ExpressionFrames = 0
	}

	SaveBest(GetScore(ecs).Best)
	PlaySFX(ecs, cfg.SoundGameOver)
}

// AddScore awards points and pulses the score readout.
func AddScore(ecs *ecs.ECS, points int) {
	score := GetScore(ecs)
	score.Value += points
	if score.Value > score.Best {
		score.Best = score.Value
	}
	score.Pulse = gween.New(cfg.UI.PulseScale, 0, cfg.UI.PulseSeconds, ease.OutCubic)
}

// spendScore deducts cost if the score covers it. Nothing changes otherwise.
func spendScore(ecs *ecs.ECS, cost int) bool {
	score := GetScore(ecs)
	if score.Value < cost {
		return false
	}
	score.Value -= cost
	return true
}

// destroyEntity removes an entity and its bounding box from the world.
func destroyEntity(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		obj := components.Object.Get(e)
		if obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	ecs.World.Remove(e.Entity())
}

// explode destroys an entity and leaves an explosion at its center.
func explode(ecs *ecs.ECS, e *donburi.Entry, life int) {
	if !e.Valid() {
		return
	}
	obj := components.Object.Get(e)
	cx, cy := obj.CenterX(), obj.CenterY()
	destroyEntity(ecs, e)
	factory.CreateExplosion(ecs, cx, cy, life)
	PlaySFX(ecs, cfg.SoundExplosion)
}
