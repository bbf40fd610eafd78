package systems

import (
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateServe pins the ball in front of the serving paddle.
// Does nothing while the ball is in play.
func UpdateServe(ecs *ecs.ECS) {
	server, ok := singleServer(ecs.World)
	if !ok {
		return
	}

	ballEntry := mustBall(ecs.World)
	ball := components.Ball.Get(ballEntry)
	bt := components.Transform.Get(ballEntry)
	pt := components.Transform.Get(server)
	side := components.Paddle.Get(server).Side

	bt.Position.Y = pt.Position.Y
	bt.Position.X = pt.Position.X - side.Sign()*(pt.Scale.X+cfg.Game.ServeGap)
	ball.PreviousPosition = bt.Position
}

// NewUpdateLaunch serves the ball when the launch key is released.
func NewUpdateLaunch(rng Random) ecs.System {
	return func(ecs *ecs.ECS) {
		if !GetAction(ecs, cfg.ActionLaunch).JustReleased {
			return
		}
		Launch(ecs.World, rng)
	}
}

// Launch gives the ball its serve velocity and takes the serve away from
// the paddle. It is a no-op, returning false, once the game is over or
// unless exactly one paddle holds the serve.
func Launch(w donburi.World, rng Random) bool {
	game := mustGame(w)
	if game.IsOver() {
		return false
	}

	server, ok := singleServer(w)
	if !ok {
		return false
	}

	ballEntry := mustBall(w)
	ball := components.Ball.Get(ballEntry)
	side := components.Paddle.Get(server).Side

	dirY := cfg.Game.LaunchSpreadY
	if rng.Intn(2) == 0 {
		dirY = -dirY
	}
	// Serve toward the opposite side.
	dirX := -side.Sign()

	ball.Velocity.X, ball.Velocity.Y = gamemath.ScaleTo(dirX, dirY, ball.Speed)

	donburi.Remove[components.ServeData](server, components.Serve)
	game.Round = cfg.RoundLaunched

	logRound("%v serves at speed %.0f", side, ball.Speed)
	return true
}
