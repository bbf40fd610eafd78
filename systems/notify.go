package systems

import (
	"github.com/automoto/pong/components"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// ScoreChanged carries both scores after any change.
type ScoreChanged struct {
	Left, Right uint
}

// Event types for UI and audio collaborators. Subscribe on the scene's
// world; events are delivered at the end of the frame that produced them.
var (
	BallHitPaddleEvent = events.NewEventType[components.BallHitPaddle]()
	BallHitWallEvent   = events.NewEventType[components.BallHitWall]()
	BallOutEvent       = events.NewEventType[components.BallOut]()
	GameOverEvent      = events.NewEventType[components.GameOver]()
	ScoreChangedEvent  = events.NewEventType[ScoreChanged]()
)

// NewUpdateNotify publishes this frame's events and delivers them.
// Must run after scoring and game over handling.
func NewUpdateNotify() ecs.System {
	var last ScoreChanged
	return func(ecs *ecs.ECS) {
		frame := mustEvents(ecs.World)
		game := mustGame(ecs.World)

		for _, ev := range frame.HitPaddle {
			BallHitPaddleEvent.Publish(ecs.World, ev)
		}
		for _, ev := range frame.HitWall {
			BallHitWallEvent.Publish(ecs.World, ev)
		}
		for _, ev := range frame.Out {
			BallOutEvent.Publish(ecs.World, ev)
		}
		if score := (ScoreChanged{Left: game.LeftScore, Right: game.RightScore}); score != last {
			last = score
			ScoreChangedEvent.Publish(ecs.World, score)
		}
		for _, ev := range frame.Over {
			GameOverEvent.Publish(ecs.World, ev)
		}

		events.ProcessAllEvents(ecs.World)
	}
}
