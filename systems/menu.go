package systems

import (
	"fmt"

	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

var menuActions = map[cfg.ActionID]cfg.ModeID{
	cfg.ActionMenu1P:   cfg.Mode1P,
	cfg.ActionMenu2P:   cfg.Mode2P,
	cfg.ActionMenuWall: cfg.ModeWall,
}

// NewUpdateMenu starts a mode when its key is released and remembers it
// as the last played mode.
func NewUpdateMenu(sceneChanger SceneChanger, createModeScene func(cfg.ModeID) interface{}) ecs.System {
	return func(ecs *ecs.ECS) {
		for action, mode := range menuActions {
			if !GetAction(ecs, action).JustReleased {
				continue
			}
			SaveCurrentSettings(mode)
			sceneChanger.ChangeScene(createModeScene(mode))
			return
		}
	}
}

// NewDrawMenu renders the title and the mode list, marking the last played mode.
func NewDrawMenu(lastMode cfg.ModeID, hasLast bool) ecs.RendererWithArg[ebiten.Image] {
	return func(ecs *ecs.ECS, screen *ebiten.Image) {
		title := fonts.Title.Get()
		body := fonts.Body.Get()

		drawCentered(screen, title, cfg.Menu.Title, cfg.Menu.TitleY, cfg.Menu.TextColor)

		for i, option := range cfg.Menu.Options {
			if hasLast && cfg.ModeID(i) == lastMode {
				option = fmt.Sprintf("> %s", option)
			}
			y := cfg.Menu.StartY + i*cfg.Menu.LineGap
			text.Draw(screen, option, body, cfg.C.Width/3, y, cfg.Menu.TextColor)
		}
	}
}
