package archetypes

import (
	"github.com/kokaton/musou/components"
	cfg "github.com/kokaton/musou/config"
	"github.com/kokaton/musou/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Stage = newArchetype(
		components.Stage,
	)
	Score = newArchetype(
		components.Score,
	)
	Space = newArchetype(
		components.Space,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Sprite,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Velocity,
		components.Sprite,
	)
	Bomb = newArchetype(
		tags.Bomb,
		components.Bomb,
		components.Object,
		components.Velocity,
	)
	Beam = newArchetype(
		tags.Beam,
		components.Beam,
		components.Object,
		components.Velocity,
		components.Sprite,
	)
	Explosion = newArchetype(
		tags.Explosion,
		components.Explosion,
		components.Object,
		components.Sprite,
	)
	Shield = newArchetype(
		tags.Shield,
		components.Shield,
		components.Object,
		components.Fade,
	)
	EMP = newArchetype(
		tags.EMP,
		components.EMP,
		components.Fade,
	)
	Gravity = newArchetype(
		tags.Gravity,
		components.Gravity,
		components.Object,
		components.Fade,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
