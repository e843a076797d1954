package systems

import (
	"github.com/kokaton/musou/components"
	cfg "github.com/kokaton/musou/config"
	"github.com/kokaton/musou/shared/gamemath"
	"github.com/kokaton/musou/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var moveDeltas = []struct {
	action cfg.ActionID
	dx, dy float64
}{
	{cfg.ActionMoveUp, 0, -1},
	{cfg.ActionMoveDown, 0, 1},
	{cfg.ActionMoveLeft, -1, 0},
	{cfg.ActionMoveRight, 1, 0},
}

// UpdatePlayer moves the player, keeps it on screen and counts down the
// invincibility and expression timers.
func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	stage := GetStage(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		obj := components.Object.Get(e)

		var sumX, sumY float64
		for _, m := range moveDeltas {
			if input.Current[m.action] {
				sumX += m.dx
				sumY += m.dy
			}
		}

		player.Speed = cfg.Player.Speed
		if input.Current[cfg.ActionBoost] {
			player.Speed = cfg.Player.BoostSpeed
		}

		moveX, moveY := player.Speed*sumX, player.Speed*sumY
		obj.X += moveX
		obj.Y += moveY
		// A move that leaves the screen is reverted in full
		if !gamemath.InBounds(obj.X, obj.Y, obj.W, obj.H, stage.Width, stage.Height) {
			obj.X -= moveX
			obj.Y -= moveY
		}
		obj.Update()

		if sumX != 0 || sumY != 0 {
			player.Facing = components.Vector{X: sumX, Y: sumY}
		}

		sprite := components.Sprite.Get(e)
		sprite.FlipX, sprite.Rotation = gamemath.FacingPose(player.Facing.X, player.Facing.Y)

		if player.State == components.PlayerInvincible {
			player.InvincibleFrames--
			if player.InvincibleFrames <= 0 {
				player.InvincibleFrames = 0
				player.State = components.PlayerNormal
			}
		}

		if player.Expression == components.ExpressionHappy {
			player.ExpressionFrames--
			if player.ExpressionFrames <= 0 {
				player.ExpressionFrames = 0
				player.Expression = components.ExpressionNormal
			}
		}
	})
}

// cheer shows the happy face for a short while.
func cheer(ecs *ecs.ECS) {
	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	p := components.Player.Get(player)
	if p.Expression == components.ExpressionSad {
		return
	}
	p.Expression = components.ExpressionHappy
	p.ExpressionFrames = cfg.Player.ReactionFrames
}
