package systems

import (
	"github.com/kokaton/musou/components"
	"github.com/kokaton/musou/shared/gamemath"
	"github.com/kokaton/musou/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles moves bombs and beams in a straight line and removes the
// ones that left the screen.
func UpdateProjectiles(ecs *ecs.ECS) {
	stage := GetStage(ecs)
	var toRemove []*donburi.Entry

	move := func(e *donburi.Entry) {
		vel := components.Velocity.Get(e)
		obj := components.Object.Get(e)

		obj.X += vel.Dir.X * vel.Speed
		obj.Y += vel.Dir.Y * vel.Speed
		obj.Update()

		if !gamemath.InBounds(obj.X, obj.Y, obj.W, obj.H, stage.Width, stage.Height) {
			toRemove = append(toRemove, e)
		}
	}
	tags.Beam.Each(ecs.World, move)
	tags.Bomb.Each(ecs.World, move)

	for _, e := range toRemove {
		destroyEntity(ecs, e)
	}
}
