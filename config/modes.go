package config

import (
	"fmt"
	"strings"
)

// ModeID identifies one of the playable modes
type ModeID int

const (
	Mode1P ModeID = iota
	Mode2P
	ModeWall
	ModeCount
)

// PaddleController decides who moves a paddle slot
type PaddleController int

const (
	ControllerNone PaddleController = iota // slot is empty
	ControllerHuman
	ControllerAI
)

// WinRule decides when a mode's game is over
type WinRule int

const (
	// WinFirstTo ends the game when either side reaches ScoreToWin.
	WinFirstTo WinRule = iota
	// WinWallMisses ends the game when the right side (the misses counter)
	// reaches WallMissesToLose. The left score counts returns and never wins.
	WinWallMisses
)

// ModeConfig describes the court layout of a mode
type ModeConfig struct {
	Name        string
	Left        PaddleController
	Right       PaddleController
	RightWall   bool // a full-height wall replaces the right goal
	WinRule     WinRule
	RandomServe bool // pick the first server at random on mode entry
}

var Modes map[ModeID]ModeConfig

func init() {
	Modes = map[ModeID]ModeConfig{
		Mode1P: {
			Name:        "1p",
			Left:        ControllerHuman,
			Right:       ControllerAI,
			WinRule:     WinFirstTo,
			RandomServe: true,
		},
		Mode2P: {
			Name:        "2p",
			Left:        ControllerHuman,
			Right:       ControllerHuman,
			WinRule:     WinFirstTo,
			RandomServe: true,
		},
		ModeWall: {
			Name:      "wall",
			Left:      ControllerHuman,
			Right:     ControllerNone,
			RightWall: true,
			WinRule:   WinWallMisses,
		},
	}
}

func (m ModeID) String() string {
	if mc, ok := Modes[m]; ok {
		return mc.Name
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode maps a mode name such as "1p" to its ID.
func ParseMode(name string) (ModeID, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for id := ModeID(0); id < ModeCount; id++ {
		if Modes[id].Name == name {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown mode %q (want 1p, 2p or wall)", ErrInvalidConfig, name)
}

// Threshold returns the score that ends a game in this mode.
func (mc ModeConfig) Threshold(g GameConfig) uint {
	if mc.WinRule == WinWallMisses {
		return g.WallMissesToLose
	}
	return g.ScoreToWin
}
