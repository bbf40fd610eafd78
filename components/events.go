package components

import (
	"github.com/automoto/pong/shared/gamemath"
	"github.com/yohamta/donburi"
)

// BallHitPaddle is emitted for every paddle contact, whichever face.
type BallHitPaddle struct {
	Paddle Side
	Face   gamemath.Face
}

// BallHitWall is emitted when the ball bounces off a wall.
type BallHitWall struct {
	Face gamemath.Face
}

// BallOut is emitted when the ball leaves the court. Side is the boundary
// that was crossed, i.e. the side that conceded.
type BallOut struct {
	Side Side
}

// GameOver is emitted once when a side reaches the win threshold.
type GameOver struct {
	Winner Side
}

// FrameEventsData holds the notifications produced during one frame.
// Lists are cleared at the start of every frame.
type FrameEventsData struct {
	HitPaddle []BallHitPaddle
	HitWall   []BallHitWall
	Out       []BallOut
	Over      []GameOver
}

var FrameEvents = donburi.NewComponentType[FrameEventsData]()

// Reset empties every list, keeping the backing arrays.
func (f *FrameEventsData) Reset() {
	f.HitPaddle = f.HitPaddle[:0]
	f.HitWall = f.HitWall[:0]
	f.Out = f.Out[:0]
	f.Over = f.Over[:0]
}
