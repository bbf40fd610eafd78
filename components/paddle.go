package components

import (
	cfg "github.com/automoto/pong/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PaddleData struct {
	Side       Side
	Speed      float64
	Controller cfg.PaddleController
	AIVelocity math.Vec2 // last AI decision, zero for human paddles
}

var Paddle = donburi.NewComponentType[PaddleData]()
