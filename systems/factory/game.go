package factory

import (
	"github.com/automoto/pong/archetypes"
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGame spawns the GameData singleton with its frame event lists.
func CreateGame(ecs *ecs.ECS, mode cfg.ModeID, starting components.Side) *donburi.Entry {
	game := archetypes.Game.Spawn(ecs)
	components.Game.SetValue(game, components.NewGameData(mode, starting))
	return game
}

// CreateMode builds the whole court for a mode: space, walls, paddles,
// ball and game state. The starting side receives the serve.
func CreateMode(ecs *ecs.ECS, mode cfg.ModeID, starting components.Side) {
	mc := cfg.Modes[mode]

	CreateSpace(ecs)
	CreateGame(ecs, mode, starting)
	CreateCourt(ecs, mc)

	if mc.Left != cfg.ControllerNone {
		CreatePaddle(ecs, components.SideLeft, mc.Left, starting == components.SideLeft)
	}
	if mc.Right != cfg.ControllerNone {
		CreatePaddle(ecs, components.SideRight, mc.Right, starting == components.SideRight)
	}

	CreateBall(ecs)
}
