package systems

import (
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/shared/gamemath"
	"github.com/automoto/pong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions resolves the ball against the colliders returned by the
// broadphase, in the order returned. The first collider that produces a
// contact wins; the rest are ignored for this frame.
func UpdateCollisions(ecs *ecs.ECS) {
	ballEntry := mustBall(ecs.World)
	if !components.Ball.Get(ballEntry).Moving() {
		return
	}

	obj := components.Object.Get(ballEntry)
	check := obj.Check(0, 0, tags.ResolvPaddle, tags.ResolvWall)
	if check == nil {
		return
	}

	for _, o := range check.Objects {
		target, ok := o.Data.(*donburi.Entry)
		if !ok || !target.Valid() {
			continue
		}
		if resolveCollision(ecs.World, ballEntry, target) {
			return
		}
	}
}

// resolveCollision bounces the ball off one collider. It reports whether
// there was a contact.
func resolveCollision(w donburi.World, ballEntry, target *donburi.Entry) bool {
	ball := components.Ball.Get(ballEntry)
	bt := components.Transform.Get(ballEntry)
	tt := components.Transform.Get(target)

	contact, ok := gamemath.Sweep(
		bt.Box(),
		ball.PreviousPosition.X, ball.PreviousPosition.Y,
		ball.Velocity.X, ball.Velocity.Y,
		tt.Box(),
	)
	if !ok {
		return false
	}

	// Snap to the point of impact.
	bt.Position.X, bt.Position.Y = contact.X, contact.Y

	events := mustEvents(w)

	switch components.Collider.Get(target).Kind {
	case components.ColliderPaddle:
		paddle := components.Paddle.Get(target)
		if contact.Face.Horizontal() {
			hit := gamemath.HitFactor(contact.Y, tt.Position.Y, tt.Scale.Y)
			// Speed first so the new velocity already has the new magnitude.
			ball.Speed = gamemath.NextSpeed(ball.Speed, cfg.Game.BallSpeedIncr, cfg.Game.BallSpeedMax)
			ball.Velocity.X, ball.Velocity.Y = gamemath.PaddleRebound(ball.Velocity.X, hit, ball.Speed)
			countReturn(w)
		} else {
			ball.Velocity.X, ball.Velocity.Y = gamemath.Reflect(ball.Velocity.X, ball.Velocity.Y, contact.Face)
		}
		events.HitPaddle = append(events.HitPaddle, components.BallHitPaddle{
			Paddle: paddle.Side,
			Face:   contact.Face,
		})
	case components.ColliderWall:
		ball.Velocity.X, ball.Velocity.Y = gamemath.Reflect(ball.Velocity.X, ball.Velocity.Y, contact.Face)
		events.HitWall = append(events.HitWall, components.BallHitWall{Face: contact.Face})
	}

	return true
}

// countReturn scores a return in wall practice.
func countReturn(w donburi.World) {
	game := mustGame(w)
	if cfg.Modes[game.Mode].WinRule == cfg.WinWallMisses {
		game.AddPoint(components.SideLeft)
	}
}
