package systems

import (
	"math"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/shared/gamemath"
	"github.com/automoto/pong/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateAI drives computer paddles toward the ball.
//
// A paddle only reacts while the ball travels toward its side and has not
// yet crossed that side's court edge. Every such frame a slack threshold
// in [1, paddle half height] is drawn; when the paddle is closer to the
// ball than that it holds still, which is what makes it beatable.
func NewUpdateAI(rng Random) ecs.System {
	return func(ecs *ecs.ECS) {
		dt := getOrCreateTime(ecs).Delta
		ballEntry := mustBall(ecs.World)
		ball := components.Ball.Get(ballEntry)
		bt := components.Transform.Get(ballEntry)
		bound := factory.PaddleBound()

		components.Paddle.Each(ecs.World, func(e *donburi.Entry) {
			paddle := components.Paddle.Get(e)
			if paddle.Controller != cfg.ControllerAI {
				return
			}
			paddle.AIVelocity.X, paddle.AIVelocity.Y = 0, 0

			sign := paddle.Side.Sign()
			if ball.Velocity.X*sign <= 0 {
				return
			}
			if bt.Position.X*sign > cfg.C.HalfWidth() {
				return
			}

			t := components.Transform.Get(e)
			distance := math.Abs(t.Position.Y - bt.Position.Y)
			if distance < slack(rng, t.Scale.Y/2) {
				return
			}

			dir := 1.0
			if bt.Position.Y < t.Position.Y {
				dir = -1.0
			}
			paddle.AIVelocity.Y = dir * paddle.Speed
			t.Position.Y = gamemath.Clamp(t.Position.Y+paddle.AIVelocity.Y*dt, bound)
		})
	}
}

// slack draws a dead zone in [1, halfHeight].
func slack(rng Random, halfHeight float64) float64 {
	n := int(halfHeight)
	if n < 1 {
		n = 1
	}
	return float64(rng.Intn(n) + 1)
}
