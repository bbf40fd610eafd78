package factory

import (
	"github.com/automoto/pong/archetypes"
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateBall spawns the ball at rest in the court center at minimum speed.
func CreateBall(ecs *ecs.ECS) *donburi.Entry {
	ball := archetypes.Ball.Spawn(ecs)

	t := components.TransformData{
		Scale: math.Vec2{X: cfg.C.UnitSize, Y: cfg.C.UnitSize},
	}
	components.Transform.SetValue(ball, t)
	components.Ball.SetValue(ball, components.BallData{
		Speed: cfg.Game.BallSpeedMin,
	})

	addToSpace(ecs, ball, &t, tags.ResolvBall)

	return ball
}
