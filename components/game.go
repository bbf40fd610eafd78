package components

import (
	cfg "github.com/automoto/pong/config"
	"github.com/yohamta/donburi"
)

// GameData stores the score and round state of the running mode.
// This is a singleton component, recreated on every mode entry.
// In wall practice LeftScore counts returns and RightScore counts misses.
type GameData struct {
	Mode         cfg.ModeID
	LeftScore    uint
	RightScore   uint
	StartingSide Side
	Round        cfg.RoundState

	winner Side
	over   bool
}

var Game = donburi.NewComponentType[GameData]()

// NewGameData returns the state of a fresh game.
func NewGameData(mode cfg.ModeID, starting Side) GameData {
	return GameData{
		Mode:         mode,
		StartingSide: starting,
		Round:        cfg.RoundServing,
	}
}

// Score returns a side's points.
func (g *GameData) Score(side Side) uint {
	if side == SideLeft {
		return g.LeftScore
	}
	return g.RightScore
}

// AddPoint increments a side's score and returns the new value. It is a
// no-op once the game is over.
func (g *GameData) AddPoint(side Side) uint {
	if g.over {
		return g.Score(side)
	}
	if side == SideLeft {
		g.LeftScore++
	} else {
		g.RightScore++
	}
	return g.Score(side)
}

// GameOver returns the winner once the game has ended.
func (g *GameData) GameOver() (Side, bool) {
	return g.winner, g.over
}

// IsOver reports whether a winner has been recorded.
func (g *GameData) IsOver() bool {
	return g.over
}

// SetWinner records the winner. Only the first call has an effect.
func (g *GameData) SetWinner(side Side) bool {
	if g.over {
		return false
	}
	g.winner = side
	g.over = true
	g.Round = cfg.RoundOver
	return true
}
