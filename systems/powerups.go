package systems

import (
	"github.com/kokaton/musou/components"
	cfg "github.com/kokaton/musou/config"
	"github.com/kokaton/musou/systems/factory"
	"github.com/kokaton/musou/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePowerUps turns this frame's button presses into shots and power-up
// activations. Each power-up is gated by its score cost.
func UpdatePowerUps(e *ecs.ECS) {
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionFire).JustPressed {
		Fire(e, GetAction(input, cfg.ActionBoost).Pressed)
	}

	activations := []struct {
		action   cfg.ActionID
		activate func(*ecs.ECS) bool
	}{
		{cfg.ActionHyper, ActivateHyper},
		{cfg.ActionEMP, ActivateEMP},
		{cfg.ActionGravity, ActivateGravity},
		{cfg.ActionShield, ActivateShield},
	}
	for _, a := range activations {
		if !GetAction(input, a.action).JustPressed {
			continue
		}
		if a.activate(e) {
			PlaySFX(e, cfg.SoundPowerUp)
		} else {
			PlaySFX(e, cfg.SoundDenied)
		}
	}
}

// Fire shoots a single beam along the player's facing, or a fan of beams
// when spread is set.
func Fire(ecs *ecs.ECS, spread bool) []*donburi.Entry {
	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return nil
	}
	PlaySFX(ecs, cfg.SoundBeam)
	if spread {
		return factory.CreateSpread(ecs, player, cfg.Beam.SpreadCount, cfg.Beam.SpreadAngle)
	}
	return []*donburi.Entry{factory.CreateBeam(ecs, player, 0)}
}

// ActivateHyper makes the player invincible for a while.
func ActivateHyper(ecs *ecs.ECS) bool {
	player, ok := tags.Player.First(ecs.World)
	if !ok || !spendScore(ecs, cfg.PowerUp.HyperCost) {
		return false
	}
	p := components.Player.Get(player)
	p.State = components.PlayerInvincible
	p.InvincibleFrames = cfg.Player.HyperFrames
	return true
}

// ActivateEMP spawns the EMP overlay and applies its effect.
func ActivateEMP(ecs *ecs.ECS) bool {
	if !spendScore(ecs, cfg.PowerUp.EMPCost) {
		return false
	}
	factory.CreateEMP(ecs)
	ApplyEMP(ecs)
	return true
}

// ApplyEMP jams every live enemy so it never drops another bomb and halves
// the speed of every live bomb. Enemies and bombs spawned later are unaffected.
func ApplyEMP(ecs *ecs.ECS) {
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		components.Enemy.Get(e).Jammed = true
	})
	tags.Bomb.Each(ecs.World, func(e *donburi.Entry) {
		components.Velocity.Get(e).Speed /= 2
	})
}

// ActivateGravity spawns a gravity field over the whole stage.
func ActivateGravity(ecs *ecs.ECS) bool {
	if !spendScore(ecs, cfg.PowerUp.GravityCost) {
		return false
	}
	stage := GetStage(ecs)
	factory.CreateGravity(ecs, stage.Width, stage.Height)
	return true
}

// ActivateShield spawns the shield in front of the player. Only one shield
// can be active.
func ActivateShield(ecs *ecs.ECS) bool {
	if _, active := tags.Shield.First(ecs.World); active {
		return false
	}
	player, ok := tags.Player.First(ecs.World)
	if !ok || !spendScore(ecs, cfg.PowerUp.ShieldCost) {
		return false
	}
	factory.CreateShield(ecs, player)
	return true
}
