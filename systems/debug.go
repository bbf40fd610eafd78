package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/fonts"
	"github.com/automoto/pong/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every resolv proxy, including the ball's swept box.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowColliders {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	// The space shares the screen's top-left origin, no offset needed.
	for _, obj := range space.Objects() {
		// Determine color based on tags
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvWall) {
			c = color.RGBA{100, 100, 100, 255} // Grey
		} else if obj.HasTags(tags.ResolvPaddle) {
			c = color.RGBA{0, 0, 255, 255} // Blue
		} else if obj.HasTags(tags.ResolvBall) {
			c = color.RGBA{255, 0, 0, 255} // Red
		}

		vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
	}

	drawDebugStats(ecs, screen)
}

func drawDebugStats(ecs *ecs.ECS, screen *ebiten.Image) {
	gameEntry, ok := components.Game.First(ecs.World)
	if !ok {
		return
	}
	ballEntry, ok := tags.Ball.First(ecs.World)
	if !ok {
		return
	}
	game := components.Game.Get(gameEntry)
	ball := components.Ball.Get(ballEntry)

	t := getOrCreateTime(ecs)
	line := fmt.Sprintf("frame %d  %.1fs  %v  speed %.0f", t.Frame, t.Elapsed, game.Round, ball.Speed)
	text.Draw(screen, line, fonts.Mono.Get(), 4, cfg.C.Height-4, color.RGBA{0, 255, 255, 255})
}
