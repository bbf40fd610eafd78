package systems

import (
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBallOut emits BallOut when the ball is past either goal line plus
// the out of bounds margin. The event's side is the boundary crossed.
func UpdateBallOut(ecs *ecs.ECS) {
	if mustGame(ecs.World).IsOver() {
		return
	}

	x := components.Transform.Get(mustBall(ecs.World)).Position.X
	limit := factory.OutOfBounds()

	events := mustEvents(ecs.World)
	switch {
	case x < -limit:
		events.Out = append(events.Out, components.BallOut{Side: components.SideLeft})
	case x > limit:
		events.Out = append(events.Out, components.BallOut{Side: components.SideRight})
	}
}

// UpdateScore credits every pending BallOut to the side that did not
// concede. A score reaching the mode's threshold ends the game; otherwise
// the rally is reset with the scorer serving.
func UpdateScore(ecs *ecs.ECS) {
	game := mustGame(ecs.World)
	if game.IsOver() {
		return
	}

	events := mustEvents(ecs.World)
	mode := cfg.Modes[game.Mode]
	threshold := mode.Threshold(cfg.Game)

	for _, out := range events.Out {
		scorer := out.Side.Opponent()
		score := game.AddPoint(scorer)
		logRound("%v scores, %d-%d", scorer, game.LeftScore, game.RightScore)

		if wins(mode, scorer, score, threshold) {
			if game.SetWinner(scorer) {
				events.Over = append(events.Over, components.GameOver{Winner: scorer})
			}
			return
		}
		resetRally(ecs.World, scorer)
	}
}

func wins(mode cfg.ModeConfig, scorer components.Side, score, threshold uint) bool {
	if mode.WinRule == cfg.WinWallMisses {
		return scorer == components.SideRight && score >= threshold
	}
	return score >= threshold
}

// resetRally recenters the paddles, stops the ball and hands the serve to
// the scorer's paddle, or to the only paddle when the scorer has none.
func resetRally(w donburi.World, scorer components.Side) {
	for _, e := range servers(w) {
		donburi.Remove[components.ServeData](e, components.Serve)
	}

	server, ok := paddleOn(w, scorer)
	if !ok {
		server, ok = paddleOn(w, scorer.Opponent())
	}
	if ok {
		donburi.Add(server, components.Serve, &components.ServeData{})
	}

	components.Paddle.Each(w, func(e *donburi.Entry) {
		components.Transform.Get(e).Position.Y = 0
		paddle := components.Paddle.Get(e)
		paddle.AIVelocity.X, paddle.AIVelocity.Y = 0, 0
	})

	components.Ball.Get(mustBall(w)).Stop()
	mustGame(w).Round = cfg.RoundServing
}

// UpdateGameOver handles the first GameOver of the frame and drops any
// others. The ball is stopped where it is.
func UpdateGameOver(ecs *ecs.ECS) {
	events := mustEvents(ecs.World)
	if len(events.Over) == 0 {
		return
	}
	events.Over = events.Over[:1]

	components.Ball.Get(mustBall(ecs.World)).Stop()
	logRound("game over, %v wins", events.Over[0].Winner)
}
