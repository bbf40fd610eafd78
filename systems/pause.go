package systems

import (
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles pause on the pause key. A finished game cannot be
// paused, and pausing is cleared once it ends.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)

	if mustGame(ecs.World).IsOver() {
		pause.IsPaused = false
		return
	}

	if GetAction(ecs, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
		logRound("paused: %v", pause.IsPaused)
	}
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreatePause(ecs).IsPaused {
		return
	}

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, cfg.Pause.OverlayColor, false)

	drawCentered(screen, fonts.Title.Get(), cfg.Pause.Title, cfg.C.Height/2, cfg.Pause.TextColor)
	drawCentered(screen, fonts.Body.Get(), cfg.Pause.Hint, cfg.HUD.HintY, cfg.Pause.TextColor)
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}
