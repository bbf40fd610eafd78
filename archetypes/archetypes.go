package archetypes

import (
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Ball = newArchetype(
		tags.Ball,
		tags.ModeEntity,
		components.Ball,
		components.Transform,
		components.Object,
	)
	Paddle = newArchetype(
		tags.Paddle,
		tags.ModeEntity,
		components.Paddle,
		components.Collider,
		components.Transform,
		components.Object,
	)
	Wall = newArchetype(
		tags.Wall,
		tags.ModeEntity,
		components.Collider,
		components.Transform,
		components.Object,
	)
	Space = newArchetype(
		tags.ModeEntity,
		components.Space,
	)
	Game = newArchetype(
		tags.ModeEntity,
		components.Game,
		components.FrameEvents,
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
