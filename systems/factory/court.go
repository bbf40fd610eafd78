package factory

import (
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/shared/gamemath"
)

// Court geometry derived from the window size. All values are in world
// units with the origin at the court center.

// WallThickness is the height of the top and bottom walls.
func WallThickness() float64 {
	return cfg.C.UnitSize
}

// PaddleSize returns a paddle's full width and height.
func PaddleSize() (float64, float64) {
	return cfg.C.UnitSize, cfg.C.UnitSize * cfg.Game.PaddleHeightUnits
}

// PaddleX returns the x of a side's paddle center, one unit in from the edge.
func PaddleX(side components.Side) float64 {
	return side.Sign() * (cfg.C.HalfWidth() - cfg.C.UnitSize/2 - cfg.C.UnitSize)
}

// PaddleBound is the largest |y| a paddle center may take so the paddle
// stays between the walls.
func PaddleBound() float64 {
	_, h := PaddleSize()
	return cfg.C.HalfHeight() - WallThickness() - h/2
}

// WallBoxes returns the top and bottom walls.
func WallBoxes() (top, bottom gamemath.Box) {
	half := WallThickness() / 2
	y := cfg.C.HalfHeight() - half
	top = gamemath.Box{X: 0, Y: y, HalfW: cfg.C.HalfWidth(), HalfH: half}
	bottom = gamemath.Box{X: 0, Y: -y, HalfW: cfg.C.HalfWidth(), HalfH: half}
	return top, bottom
}

// BackWallBox returns the full-height wall closing the right goal.
func BackWallBox() gamemath.Box {
	half := WallThickness() / 2
	return gamemath.Box{
		X:     cfg.C.HalfWidth() - half,
		Y:     0,
		HalfW: half,
		HalfH: cfg.C.HalfHeight(),
	}
}

// OutOfBounds is the |x| past which the ball is out.
func OutOfBounds() float64 {
	return cfg.C.HalfWidth() + cfg.Game.BallOOBMargin
}
