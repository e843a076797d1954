package systems

import (
	"github.com/kokaton/musou/components"
	cfg "github.com/kokaton/musou/config"
	"github.com/kokaton/musou/shared/gamemath"
	"github.com/kokaton/musou/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects counts down explosions, the EMP and the shield, moves the
// shield with the player and advances fade tweens.
func UpdateEffects(ecs *ecs.ECS) {
	updateExplosions(ecs)
	updateEMPs(ecs)
	updateShields(ecs)
	updateFades(ecs)
	updateScorePulse(ecs)
}

func updateExplosions(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry

	tags.Explosion.Each(ecs.World, func(e *donburi.Entry) {
		explosion := components.Explosion.Get(e)
		explosion.Life--
		if explosion.Life < 0 {
			toRemove = append(toRemove, e)
			return
		}

		// Alternate between the image and its mirror
		mirrored := (explosion.Life/cfg.Explosion.FlipEvery)%2 == 1
		sprite := components.Sprite.Get(e)
		sprite.FlipX, sprite.FlipY = mirrored, mirrored
	})

	for _, e := range toRemove {
		destroyEntity(ecs, e)
	}
}

func updateEMPs(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry

	tags.EMP.Each(ecs.World, func(e *donburi.Entry) {
		emp := components.EMP.Get(e)
		if emp.Duration > 0 {
			emp.Duration--
			return
		}
		toRemove = append(toRemove, e)
	})

	for _, e := range toRemove {
		destroyEntity(ecs, e)
	}
}

func updateShields(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry
	player, hasPlayer := tags.Player.First(ecs.World)

	tags.Shield.Each(ecs.World, func(e *donburi.Entry) {
		if !hasPlayer {
			toRemove = append(toRemove, e)
			return
		}
		shield := components.Shield.Get(e)
		obj := components.Object.Get(e)
		p := components.Player.Get(player)
		po := components.Object.Get(player)

		shield.Rotation = gamemath.FacingAngle(p.Facing.X, p.Facing.Y)
		w, h := gamemath.RotatedBounds(cfg.PowerUp.ShieldWidth, cfg.ShieldHeight(), shield.Rotation)
		ox, oy := gamemath.ShieldOffset(po.W, po.H, p.Facing.X, p.Facing.Y)
		obj.W, obj.H = w, h
		obj.SetCenter(po.CenterX()+ox, po.CenterY()+oy)
		obj.Update()

		shield.Life--
		if shield.Life <= 0 {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		destroyEntity(ecs, e)
	}
}

func updateFades(ecs *ecs.ECS) {
	dt := float32(1) / float32(cfg.C.TPS)
	components.Fade.Each(ecs.World, func(e *donburi.Entry) {
		fade := components.Fade.Get(e)
		if fade.Tween == nil {
			fade.Alpha = 1
			return
		}
		alpha, done := fade.Tween.Update(dt)
		fade.Alpha = alpha
		if done {
			fade.Tween = nil
		}
	})
}

func updateScorePulse(ecs *ecs.ECS) {
	score := GetScore(ecs)
	if score.Pulse == nil {
		return
	}
	scale, done := score.Pulse.Update(float32(1) / float32(cfg.C.TPS))
	score.PulseScale = scale
	if done {
		score.Pulse = nil
		score.PulseScale = 0
	}
}
