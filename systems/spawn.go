package systems

import (
	"github.com/kokaton/musou/components"
	cfg "github.com/kokaton/musou/config"
	"github.com/kokaton/musou/systems/factory"
	"github.com/kokaton/musou/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawns spawns an enemy every cfg.Enemy.SpawnEvery frames and lets
// every stopped, unjammed enemy drop a bomb on its interval tick.
func UpdateSpawns(ecs *ecs.ECS) {
	stage := GetStage(ecs)

	if stage.Frame%cfg.Enemy.SpawnEvery == 0 {
		factory.CreateEnemy(ecs, stage)
	}

	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}

	var droppers []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		if enemy.Phase != components.EnemyStopped || enemy.Jammed || enemy.DropInterval <= 0 {
			return
		}
		if stage.Frame%enemy.DropInterval == 0 {
			droppers = append(droppers, e)
		}
	})

	for _, e := range droppers {
		factory.CreateBomb(ecs, stage, e, player)
	}
}
