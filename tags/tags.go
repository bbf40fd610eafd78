package tags

import "github.com/yohamta/donburi"

var (
	Ball   = donburi.NewTag().SetName("Ball")
	Paddle = donburi.NewTag().SetName("Paddle")
	Wall   = donburi.NewTag().SetName("Wall")
	// ModeEntity marks everything despawned when a mode exits.
	ModeEntity = donburi.NewTag().SetName("ModeEntity")
)

// Resolv tags for broadphase queries
const (
	ResolvBall   = "ball"
	ResolvPaddle = "paddle"
	ResolvWall   = "wall"
)
