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

// CreatePaddle spawns a centered paddle. The serving paddle also gets the
// Serve marker.
func CreatePaddle(ecs *ecs.ECS, side components.Side, controller cfg.PaddleController, serving bool) *donburi.Entry {
	paddle := archetypes.Paddle.Spawn(ecs)

	w, h := PaddleSize()
	t := components.TransformData{
		Position: math.Vec2{X: PaddleX(side), Y: 0},
		Scale:    math.Vec2{X: w, Y: h},
	}
	components.Transform.SetValue(paddle, t)
	components.Paddle.SetValue(paddle, components.PaddleData{
		Side:       side,
		Speed:      cfg.Game.PaddleSpeed,
		Controller: controller,
	})
	components.Collider.SetValue(paddle, components.ColliderData{Kind: components.ColliderPaddle})

	addToSpace(ecs, paddle, &t, tags.ResolvPaddle)

	if serving {
		donburi.Add(paddle, components.Serve, &components.ServeData{})
	}

	return paddle
}
