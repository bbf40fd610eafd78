package components

import "github.com/yohamta/donburi"

type ColliderKind int

const (
	ColliderPaddle ColliderKind = iota
	ColliderWall
)

func (k ColliderKind) String() string {
	if k == ColliderPaddle {
		return "paddle"
	}
	return "wall"
}

// ColliderData marks an entity the ball bounces off. Its footprint is the
// entity's Transform.
type ColliderData struct {
	Kind ColliderKind
}

var Collider = donburi.NewComponentType[ColliderData]()
