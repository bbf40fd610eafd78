package systems

import (
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/shared/gamemath"
	"github.com/automoto/pong/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHumanPaddles moves keyboard-driven paddles and keeps them between
// the walls.
func UpdateHumanPaddles(ecs *ecs.ECS) {
	dt := getOrCreateTime(ecs).Delta
	input := getOrCreateInput(ecs)
	bound := factory.PaddleBound()

	components.Paddle.Each(ecs.World, func(e *donburi.Entry) {
		paddle := components.Paddle.Get(e)
		if paddle.Controller != cfg.ControllerHuman {
			return
		}

		up, down := cfg.ActionLeftUp, cfg.ActionLeftDown
		if paddle.Side == components.SideRight {
			up, down = cfg.ActionRightUp, cfg.ActionRightDown
		}

		t := components.Transform.Get(e)
		t.Position.Y = gamemath.Clamp(t.Position.Y+input.Axis(up, down)*paddle.Speed*dt, bound)
	})
}

// UpdateBall integrates the ball's velocity. Collisions are resolved
// afterwards against the moved position.
func UpdateBall(ecs *ecs.ECS) {
	dt := getOrCreateTime(ecs).Delta
	ballEntry := mustBall(ecs.World)
	ball := components.Ball.Get(ballEntry)
	t := components.Transform.Get(ballEntry)

	ball.PreviousPosition = t.Position
	if !ball.Moving() {
		return
	}

	t.Position.X += ball.Velocity.X * dt
	t.Position.Y += ball.Velocity.Y * dt

	if game := mustGame(ecs.World); game.Round == cfg.RoundLaunched {
		game.Round = cfg.RoundRallying
	}
}
