package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawHUD renders scores, the serve hint and the result once the game is over.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	gameEntry, ok := components.Game.First(ecs.World)
	if !ok {
		return
	}
	game := components.Game.Get(gameEntry)
	mode := cfg.Modes[game.Mode]

	drawScores(screen, game, mode)

	body := fonts.Body.Get()
	if winner, over := game.GameOver(); over {
		drawResult(screen, winner, mode)
		drawCentered(screen, body, "ESC for menu", cfg.HUD.HintY, cfg.HUD.Foreground)
		return
	}
	if game.Round == cfg.RoundServing {
		drawCentered(screen, body, "Release SPACE to serve", cfg.HUD.HintY, cfg.HUD.Foreground)
	}
}

func drawScores(screen *ebiten.Image, game *components.GameData, mode cfg.ModeConfig) {
	face := fonts.Score.Get()
	small := fonts.Body.Get()
	center := cfg.C.HalfWidth()
	offset := cfg.HUD.ScoreOffsetX
	y := cfg.HUD.ScoreY

	left := fmt.Sprintf("%d", game.LeftScore)
	right := fmt.Sprintf("%d", game.RightScore)
	text.Draw(screen, left, face, int(center-offset)-fonts.Width(face, left)/2, y, cfg.HUD.Foreground)
	text.Draw(screen, right, face, int(center+offset)-fonts.Width(face, right)/2, y, cfg.HUD.Foreground)

	var leftLabel, rightLabel string
	if mode.WinRule == cfg.WinWallMisses {
		leftLabel = "returns"
		rightLabel = fmt.Sprintf("misses of %d", cfg.Game.WallMissesToLose)
	} else {
		leftLabel = fmt.Sprintf("first to %d", cfg.Game.ScoreToWin)
	}
	labelY := y + 24
	if leftLabel != "" {
		text.Draw(screen, leftLabel, small, int(center-offset)-fonts.Width(small, leftLabel)/2, labelY, cfg.HUD.Foreground)
	}
	if rightLabel != "" {
		text.Draw(screen, rightLabel, small, int(center+offset)-fonts.Width(small, rightLabel)/2, labelY, cfg.HUD.Foreground)
	}
}

func drawResult(screen *ebiten.Image, winner components.Side, mode cfg.ModeConfig) {
	face := fonts.Title.Get()
	if mode.WinRule == cfg.WinWallMisses {
		drawCentered(screen, face, "GAME OVER", cfg.HUD.ResultY, cfg.HUD.LoseColor)
		return
	}

	center := cfg.C.HalfWidth()
	offset := cfg.HUD.ScoreOffsetX
	for _, side := range []components.Side{components.SideLeft, components.SideRight} {
		label, clr := "LOSE", cfg.HUD.LoseColor
		if side == winner {
			label, clr = "WIN", cfg.HUD.WinColor
		}
		x := center + side.Sign()*offset
		text.Draw(screen, label, face, int(x)-fonts.Width(face, label)/2, cfg.HUD.ResultY, clr)
	}
}

func drawCentered(screen *ebiten.Image, face font.Face, s string, y int, clr color.Color) {
	x := (cfg.C.Width - fonts.Width(face, s)) / 2
	text.Draw(screen, s, face, x, y, clr)
}
