package systems

import (
	"testing"

	"github.com/kokaton/musou/assets"
	"github.com/kokaton/musou/components"
	cfg "github.com/kokaton/musou/config"
	"github.com/kokaton/musou/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestStage builds a world with the default layout. The player sits at
// (900, 400) facing right.
func newTestStage(t *testing.T) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	player := factory.CreateStage(e, assets.DefaultLayout(), 1, 0)
	return e, player
}

func count(e *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func moveTo(entry *donburi.Entry, cx, cy float64) {
	obj := components.Object.Get(entry)
	obj.SetCenter(cx, cy)
	obj.Update()
}

func setScore(e *ecs.ECS, value int) {
	GetScore(e).Value = value
}

func queued(e *ecs.ECS, id cfg.SoundID) bool {
	for _, s := range GetOrCreateAudio(e).PendingSFX {
		if s == id {
			return true
		}
	}
	return false
}
