package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// BallData is the ball's motion state. Velocity is either zero or has a
// magnitude equal to Speed.
type BallData struct {
	Speed            float64
	Velocity         math.Vec2
	PreviousPosition math.Vec2 // position before this frame's integration
}

var Ball = donburi.NewComponentType[BallData]()

// Moving reports whether the ball has a velocity.
func (b *BallData) Moving() bool {
	return b.Velocity.X != 0 || b.Velocity.Y != 0
}

// Stop zeroes the velocity and keeps the speed.
func (b *BallData) Stop() {
	b.Velocity = math.Vec2{}
}
