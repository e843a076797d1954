package factory

import (
	"github.com/kokaton/musou/archetypes"
	"github.com/kokaton/musou/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// attachObject creates the bounding box of an entity and registers it in the
// collision space, if the world has one.
func attachObject(ecs *ecs.ECS, e *donburi.Entry, x, y, w, h float64, resolvTags ...string) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, resolvTags...)
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return obj
}

// newDetachedObject is a bounding box that never collides.
func newDetachedObject(e *donburi.Entry, x, y, w, h float64) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h)
	obj.Data = e
	return obj
}
