package systems

import (
	"github.com/kokaton/musou/components"
	"github.com/kokaton/musou/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies descends enemies until their center reaches the stop
// altitude. A stopped enemy never moves again.
func UpdateEnemies(ecs *ecs.ECS) {
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		vel := components.Velocity.Get(e)
		obj := components.Object.Get(e)

		if enemy.Phase != components.EnemyDescending {
			return
		}
		obj.X += vel.Dir.X * vel.Speed
		obj.Y += vel.Dir.Y * vel.Speed
		obj.Update()

		// Stops on the frame it reaches the altitude
		if obj.CenterY() >= enemy.StopAltitude {
			enemy.Phase = components.EnemyStopped
			vel.Speed = 0
		}
	})
}
