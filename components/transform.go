package components

import (
	"github.com/automoto/pong/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// TransformData places an entity in world space. Position is the center,
// Scale the full size. The world origin is the court center with y up.
type TransformData struct {
	Position math.Vec2
	Scale    math.Vec2
}

var Transform = donburi.NewComponentType[TransformData]()

// Box returns the entity's footprint.
func (t *TransformData) Box() gamemath.Box {
	return gamemath.Box{
		X:     t.Position.X,
		Y:     t.Position.Y,
		HalfW: t.Scale.X / 2,
		HalfH: t.Scale.Y / 2,
	}
}
