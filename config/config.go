package config

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the window and court geometry.
type Config struct {
	Width    int
	Height   int
	UnitSize float64 // Wall thickness, paddle width and ball size
	TPS      int
}

// HalfWidth returns half the playfield width in world units.
func (c *Config) HalfWidth() float64 {
	return float64(c.Width) / 2
}

// HalfHeight returns half the playfield height in world units.
func (c *Config) HalfHeight() float64 {
	return float64(c.Height) / 2
}

// GameConfig contains the rally tuning values shared by every mode
type GameConfig struct {
	// Paddles
	PaddleSpeed       float64 // units per second
	PaddleHeightUnits float64 // paddle height as a multiple of UnitSize

	// Ball
	BallSpeedMin  float64 // speed at the start of every game
	BallSpeedMax  float64
	BallSpeedIncr float64 // added on every paddle face hit
	BallOOBMargin float64 // distance past the court edge before a point is scored

	// Serve
	ServeGap      float64 // gap between the serving paddle and the ball
	LaunchSpreadY float64 // vertical component before normalization

	// Win conditions
	ScoreToWin       uint
	WallMissesToLose uint
}

// Validate reports the first out-of-range value.
func (g GameConfig) Validate() error {
	switch {
	case g.PaddleSpeed <= 0:
		return fmt.Errorf("%w: paddle speed must be positive, got %v", ErrInvalidConfig, g.PaddleSpeed)
	case g.PaddleHeightUnits <= 0:
		return fmt.Errorf("%w: paddle height must be positive, got %v", ErrInvalidConfig, g.PaddleHeightUnits)
	case g.BallSpeedMin <= 0:
		return fmt.Errorf("%w: ball min speed must be positive, got %v", ErrInvalidConfig, g.BallSpeedMin)
	case g.BallSpeedMax < g.BallSpeedMin:
		return fmt.Errorf("%w: ball max speed %v is below min speed %v", ErrInvalidConfig, g.BallSpeedMax, g.BallSpeedMin)
	case g.BallSpeedIncr < 0:
		return fmt.Errorf("%w: ball speed increment must not be negative, got %v", ErrInvalidConfig, g.BallSpeedIncr)
	case g.BallOOBMargin < 0:
		return fmt.Errorf("%w: out of bounds margin must not be negative, got %v", ErrInvalidConfig, g.BallOOBMargin)
	case g.ScoreToWin == 0:
		return fmt.Errorf("%w: score to win must be at least 1", ErrInvalidConfig)
	case g.WallMissesToLose == 0:
		return fmt.Errorf("%w: wall misses to lose must be at least 1", ErrInvalidConfig)
	}
	return nil
}

// Validate checks the court is large enough to hold walls and paddles.
func (c *Config) Validate(g GameConfig) error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.UnitSize <= 0 {
		return fmt.Errorf("%w: unit size must be positive, got %v", ErrInvalidConfig, c.UnitSize)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("%w: ticks per second must be positive, got %d", ErrInvalidConfig, c.TPS)
	}
	// Two walls plus one paddle must fit vertically.
	if float64(c.Height) <= 2*c.UnitSize+g.PaddleHeightUnits*c.UnitSize {
		return fmt.Errorf("%w: court height %d cannot fit a paddle of %v units", ErrInvalidConfig, c.Height, g.PaddleHeightUnits)
	}
	return nil
}

// HUDConfig contains court and score overlay styling
type HUDConfig struct {
	Background   color.RGBA
	Foreground   color.RGBA
	BallColor    color.RGBA
	WinColor     color.RGBA
	LoseColor    color.RGBA
	NetDash      float64 // height of one net segment
	ScoreY       int
	ScoreOffsetX float64 // distance of each score from the center line
	HintY        int
	ResultY      int
}

// MenuConfig contains the mode picker text
type MenuConfig struct {
	Title     string
	Options   []string
	TitleY    int
	StartY    int
	LineGap   int
	TextColor color.RGBA
}

// PauseConfig contains the pause overlay styling
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	Title        string
	Hint         string
}

// DebugConfig holds developer switches, overridable by CLI flags
type DebugConfig struct {
	LogRounds     bool // log serve, score and game over transitions
	ShowColliders bool // outline resolv objects
}

var C *Config
var Game GameConfig
var HUD HUDConfig
var Menu MenuConfig
var Pause PauseConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:    768,
		Height:   576,
		UnitSize: 16,
		TPS:      60,
	}

	Game = GameConfig{
		PaddleSpeed:       400,
		PaddleHeightUnits: 4,

		BallSpeedMin:  500,
		BallSpeedMax:  750,
		BallSpeedIncr: 5,
		BallOOBMargin: 200,

		ServeGap:      2,
		LaunchSpreadY: 0.25,

		ScoreToWin:       9,
		WallMissesToLose: 3,
	}

	HUD = HUDConfig{
		Background:   color.RGBA{R: 0, G: 0, B: 0, A: 255},
		Foreground:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
		BallColor:    color.RGBA{R: 255, G: 255, B: 0, A: 255},
		WinColor:     color.RGBA{R: 0, G: 255, B: 0, A: 255},
		LoseColor:    color.RGBA{R: 255, G: 0, B: 0, A: 255},
		NetDash:      12,
		ScoreY:       64,
		ScoreOffsetX: 96,
		HintY:        540,
		ResultY:      200,
	}

	Menu = MenuConfig{
		Title:     "PONG",
		Options:   []string{"1  One player", "2  Two players", "3  Wall practice"},
		TitleY:    160,
		StartY:    260,
		LineGap:   36,
		TextColor: color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}

	Pause = PauseConfig{
		OverlayColor: color.RGBA{R: 0, G: 0, B: 0, A: 160},
		TextColor:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Title:        "PAUSED",
		Hint:         "Enter: Resume   Esc: Menu",
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		LogRounds:     false,
		ShowColliders: false,
	}
}
