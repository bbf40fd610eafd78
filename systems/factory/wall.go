package factory

import (
	"github.com/automoto/pong/archetypes"
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/shared/gamemath"
	"github.com/automoto/pong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateWall(ecs *ecs.ECS, b gamemath.Box) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	t := components.TransformData{
		Position: math.Vec2{X: b.X, Y: b.Y},
		Scale:    math.Vec2{X: b.HalfW * 2, Y: b.HalfH * 2},
	}
	components.Transform.SetValue(wall, t)
	components.Collider.SetValue(wall, components.ColliderData{Kind: components.ColliderWall})

	addToSpace(ecs, wall, &t, tags.ResolvWall)

	return wall
}

// CreateCourt creates the top and bottom walls, plus the back wall when
// the mode closes the right goal.
func CreateCourt(ecs *ecs.ECS, mode cfg.ModeConfig) {
	top, bottom := WallBoxes()
	CreateWall(ecs, top)
	CreateWall(ecs, bottom)
	if mode.RightWall {
		CreateWall(ecs, BackWallBox())
	}
}
