package systems

import (
	"github.com/automoto/pong/components"
	"github.com/automoto/pong/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves resolv proxies onto their transforms. The ball's
// proxy covers its whole path this frame so the broadphase also returns
// colliders it passed through.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		if e.HasComponent(tags.Wall) {
			continue // walls never move
		}
		obj := components.Object.Get(e)
		box := components.Transform.Get(e).Box()

		if e.HasComponent(components.Ball) {
			ball := components.Ball.Get(e)
			prev := box
			prev.X, prev.Y = ball.PreviousPosition.X, ball.PreviousPosition.Y
			box = box.Union(prev)
		}

		obj.Place(box)
	}
}
