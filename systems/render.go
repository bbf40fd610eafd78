package systems

import (
	"image/color"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/shared/gamemath"
	"github.com/automoto/pong/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawCourt renders the net, the colliders and the ball.
func DrawCourt(ecs *ecs.ECS, screen *ebiten.Image) {
	drawNet(screen)

	components.Collider.Each(ecs.World, func(e *donburi.Entry) {
		fillBox(screen, components.Transform.Get(e).Box(), cfg.HUD.Foreground)
	})
	tags.Ball.Each(ecs.World, func(e *donburi.Entry) {
		fillBox(screen, components.Transform.Get(e).Box(), cfg.HUD.BallColor)
	})
}

func drawNet(screen *ebiten.Image) {
	dash := float32(cfg.HUD.NetDash)
	x := float32(cfg.C.HalfWidth()) - 2
	for y := float32(0); y < float32(cfg.C.Height); y += dash * 2 {
		vector.FillRect(screen, x, y, 4, dash, cfg.HUD.Foreground, false)
	}
}

// fillBox draws a world-space box. Screen space matches the resolv space.
func fillBox(screen *ebiten.Image, b gamemath.Box, clr color.Color) {
	x, y := components.ToSpace(b)
	vector.FillRect(screen, float32(x), float32(y), float32(b.HalfW*2), float32(b.HalfH*2), clr, false)
}
