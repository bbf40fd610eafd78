package systems

import (
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DespawnMode removes every mode entity and its resolv proxy.
func DespawnMode(ecs *ecs.ECS) {
	var space *resolv.Space
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space = components.Space.Get(spaceEntry)
	}

	var doomed []*donburi.Entry
	tags.ModeEntity.Each(ecs.World, func(e *donburi.Entry) {
		doomed = append(doomed, e)
	})

	for _, e := range doomed {
		if space == nil || !e.HasComponent(components.Object) {
			continue
		}
		if obj := components.Object.Get(e); obj.Object != nil {
			space.Remove(obj.Object)
		}
	}
	for _, e := range doomed {
		ecs.World.Remove(e.Entity())
	}
}

// NewUpdateBack leaves the mode for the menu when back is released.
func NewUpdateBack(sceneChanger SceneChanger, createMenuScene func() interface{}) ecs.System {
	return func(ecs *ecs.ECS) {
		if !GetAction(ecs, cfg.ActionBack).JustReleased {
			return
		}
		logRound("leaving %v", mustGame(ecs.World).Mode)
		DespawnMode(ecs)
		sceneChanger.ChangeScene(createMenuScene())
	}
}
