package systems

import "github.com/yohamta/donburi/ecs"

// ModeSystems returns a mode's per-frame stages in run order. Gameplay
// stages are frozen while paused; input, time, pause and notifications
// always run. Back navigation is added by the scene.
func ModeSystems(input InputSource, clock Clock, rng Random) []ecs.System {
	return []ecs.System{
		NewUpdateInput(input),
		NewUpdateTime(clock),
		UpdatePause,

		// Order matters: motion, then collision, then scoring, then the
		// round transitions that depend on the score.
		WithPauseCheck(UpdateHumanPaddles),
		WithPauseCheck(NewUpdateAI(rng)),
		WithPauseCheck(UpdateServe),
		WithPauseCheck(NewUpdateLaunch(rng)),
		WithPauseCheck(UpdateBall),
		WithPauseCheck(UpdateObjects),
		WithPauseCheck(UpdateCollisions),
		WithPauseCheck(UpdateBallOut),
		WithPauseCheck(UpdateScore),
		WithPauseCheck(UpdateGameOver),

		NewUpdateNotify(),
	}
}
