package factory

import (
	"github.com/kokaton/musou/archetypes"
	"github.com/kokaton/musou/components"
	cfg "github.com/kokaton/musou/config"
	"github.com/kokaton/musou/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns a descending enemy at a random x inside the enemy lane
// with its center on y = 0. Stop altitude, drop interval and variant are
// drawn from the stage RNG.
func CreateEnemy(ecs *ecs.ECS, stage *components.StageData) *donburi.Entry {
	rng := stage.Rand
	lane := stage.EnemyLane

	cx := lane.X + float64(rng.IntN(int(lane.W)+1))
	minStop, maxStop := int(stage.MinStop), int(stage.MaxStop)
	stop := float64(minStop + rng.IntN(maxStop-minStop+1))
	interval := cfg.Enemy.MinDropInterval + rng.IntN(cfg.Enemy.MaxDropInterval-cfg.Enemy.MinDropInterval+1)
	variant := rng.IntN(cfg.Enemy.Variants)

	return SpawnEnemy(ecs, cx, stop, interval, variant)
}

// SpawnEnemy spawns an enemy with explicit parameters.
func SpawnEnemy(ecs *ecs.ECS, cx, stopAltitude float64, dropInterval, variant int) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	w, h := cfg.Enemy.Width, cfg.Enemy.Height
	attachObject(ecs, enemy, cx-w/2, -h/2, w, h, tags.ResolvEnemy)

	components.Enemy.SetValue(enemy, components.EnemyData{
		Phase:        components.EnemyDescending,
		StopAltitude: stopAltitude,
		DropInterval: dropInterval,
		Variant:      variant,
	})
	components.Velocity.SetValue(enemy, components.VelocityData{
		Dir:   components.Vector{X: 0, Y: 1},
		Speed: cfg.Enemy.DescentSpeed,
	})
	components.Sprite.SetValue(enemy, components.SpriteData{Variant: variant})

	return enemy
}
