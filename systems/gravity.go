package systems

import (
	"github.com/kokaton/musou/components"
	cfg "github.com/kokaton/musou/config"
	"github.com/kokaton/musou/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGravity counts down gravity fields and destroys every bomb and enemy
// they overlap, scoring each kill. A field still sweeps on the frame it
// expires.
func UpdateGravity(ecs *ecs.ECS) {
	var expired []*donburi.Entry
	var bombs, enemies []*donburi.Entry
	seen := map[donburi.Entity]bool{}

	tags.Gravity.Each(ecs.World, func(e *donburi.Entry) {
		gravity := components.Gravity.Get(e)
		gravity.Life--
		if gravity.Life < 0 {
			expired = append(expired, e)
		}

		obj := components.Object.Get(e)
		for _, hit := range overlapping(obj, tags.ResolvBomb, tags.ResolvEnemy) {
			if seen[hit.Entity()] {
				continue
			}
			seen[hit.Entity()] = true
			if hit.HasComponent(tags.Bomb) {
				bombs = append(bombs, hit)
			} else {
				enemies = append(enemies, hit)
			}
		}
	})

	for _, e := range bombs {
		explode(ecs, e, cfg.Explosion.GravityKillLife)
		AddScore(ecs, cfg.Score.BombByGravity)
	}
	for _, e := range enemies {
		explode(ecs, e, cfg.Explosion.GravityKillLife)
		AddScore(ecs, cfg.Score.EnemyByGravity)
	}
	for _, e := range expired {
		destroyEntity(ecs, e)
	}
}
