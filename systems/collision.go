package systems

import (
	"github.com/kokaton/musou/components"
	cfg "github.com/kokaton/musou/config"
	"github.com/kokaton/musou/shared/gamemath"
	"github.com/kokaton/musou/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions resolves hits in a fixed order: enemies and beams, bombs
// and beams, the shield and bombs, then the player and bombs. Entities
// destroyed by an earlier step take no part in later ones.
func UpdateCollisions(ecs *ecs.ECS) {
	collideEnemiesWithBeams(ecs)
	collideBombsWithBeams(ecs)
	collideShieldWithBombs(ecs)
	collidePlayerWithBombs(ecs)
}

func collideEnemiesWithBeams(ecs *ecs.ECS) {
	enemies, beams := collideGroup(ecs, tags.Enemy, tags.ResolvBeam)

	for _, b := range beams {
		destroyEntity(ecs, b)
	}
	for _, e := range enemies {
		explode(ecs, e, cfg.Explosion.EnemyLife)
		AddScore(ecs, cfg.Score.EnemyByBeam)
		cheer(ecs)
	}
}

func collideBombsWithBeams(ecs *ecs.ECS) {
	bombs, beams := collideGroup(ecs, tags.Bomb, tags.ResolvBeam)

	for _, b := range beams {
		destroyEntity(ecs, b)
	}
	for _, b := range bombs {
		explode(ecs, b, cfg.Explosion.BombLife)
		AddScore(ecs, cfg.Score.BombByBeam)
	}
}

func collideShieldWithBombs(ecs *ecs.ECS) {
	_, bombs := collideGroup(ecs, tags.Shield, tags.ResolvBomb)

	for _, b := range bombs {
		destroyEntity(ecs, b)
	}
	if len(bombs) > 0 {
		PlaySFX(ecs, cfg.SoundShieldBlock)
	}
}

func collidePlayerWithBombs(ecs *ecs.ECS) {
	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	bombs := overlapping(components.Object.Get(player), tags.ResolvBomb)
	if len(bombs) == 0 {
		return
	}

	if components.Player.Get(player).State == components.PlayerInvincible {
		for _, b := range bombs {
			explode(ecs, b, cfg.Explosion.HyperKillLife)
			AddScore(ecs, cfg.Score.BombByHyper)
		}
		return
	}

	for _, b := range bombs {
		destroyEntity(ecs, b)
	}
	TriggerGameOver(ecs)
}

// collideGroup returns every entity of group that overlaps at least one
// object tagged other, and every such object, each listed once.
func collideGroup(ecs *ecs.ECS, group *donburi.ComponentType[donburi.Tag], other string) (hits, others []*donburi.Entry) {
	seen := map[donburi.Entity]bool{}

	group.Each(ecs.World, func(e *donburi.Entry) {
		found := overlapping(components.Object.Get(e), other)
		if len(found) == 0 {
			return
		}
		hits = append(hits, e)
		for _, o := range found {
			if !seen[o.Entity()] {
				seen[o.Entity()] = true
				others = append(others, o)
			}
		}
	})
	return hits, others
}

// overlapping returns the live entities whose bounding boxes strictly overlap
// obj and carry one of the resolv tags. resolv only narrows the search to
// neighbouring cells; the rectangle test decides.
func overlapping(obj *components.ObjectData, resolvTags ...string) []*donburi.Entry {
	if obj == nil || obj.Object == nil || obj.Space == nil {
		return nil
	}
	check := obj.Check(0, 0, resolvTags...)
	if check == nil {
		return nil
	}

	var entries []*donburi.Entry
	for _, o := range check.ObjectsByTags(resolvTags...) {
		if !gamemath.Overlaps(obj.X, obj.Y, obj.W, obj.H, o.X, o.Y, o.W, o.H) {
			continue
		}
		e, ok := o.Data.(*donburi.Entry)
		if !ok || e == nil || !e.Valid() {
			continue
		}
		entries = append(entries, e)
	}
	return entries
}
