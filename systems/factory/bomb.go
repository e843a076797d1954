package factory

import (
	"image/color"

	"github.com/kokaton/musou/archetypes"
	"github.com/kokaton/musou/components"
	cfg "github.com/kokaton/musou/config"
	"github.com/kokaton/musou/shared/gamemath"
	"github.com/kokaton/musou/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBomb drops a bomb from an enemy, aimed once at the player's current
// position. Radius and color come from the stage RNG.
func CreateBomb(ecs *ecs.ECS, stage *components.StageData, enemy, player *donburi.Entry) *donburi.Entry {
	rng := stage.Rand
	radius := cfg.Bomb.MinRadius + rng.IntN(cfg.Bomb.MaxRadius-cfg.Bomb.MinRadius+1)
	clr := cfg.Bomb.Colors[rng.IntN(len(cfg.Bomb.Colors))]

	eo := components.Object.Get(enemy)
	po := components.Object.Get(player)
	dx, dy := gamemath.Orientation(eo.CenterX(), eo.CenterY(), po.CenterX(), po.CenterY())

	return SpawnBomb(ecs, eo.CenterX(), eo.CenterY()+eo.H/2, dx, dy, radius, clr)
}

// SpawnBomb spawns a bomb centered on (cx, cy) moving along (dx, dy).
func SpawnBomb(ecs *ecs.ECS, cx, cy, dx, dy float64, radius int, clr color.RGBA) *donburi.Entry {
	bomb := archetypes.Bomb.Spawn(ecs)

	size := float64(2 * radius)
	attachObject(ecs, bomb, cx-size/2, cy-size/2, size, size, tags.ResolvBomb)

	components.Bomb.SetValue(bomb, components.BombData{Radius: radius, Color: clr})
	components.Velocity.SetValue(bomb, components.VelocityData{
		Dir:   components.Vector{X: dx, Y: dy},
		Speed: cfg.Bomb.Speed,
	})

	return bomb
}
