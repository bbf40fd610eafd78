package components

import (
	"testing"

	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/shared/gamemath"
	"github.com/solarlune/resolv"
)

func TestObjectData_PlaceFindsShallowOverlap(t *testing.T) {
	cell := int(cfg.C.UnitSize)
	space := resolv.NewSpace(cfg.C.Width, cfg.C.Height, cell, cell)

	paddle := gamemath.Box{X: 360, Y: 0, HalfW: 8, HalfH: 32}
	px, py := ToSpace(paddle)
	space.Add(resolv.NewObject(px, py, paddle.HalfW*2, paddle.HalfH*2, "paddle"))

	// Right edge at 352.5, half a unit past the paddle's left face at 352.
	box := gamemath.Box{X: 344.5, Y: 0, HalfW: 8, HalfH: 8}
	ball := ObjectData{Object: resolv.NewObject(0, 0, 16, 16, "ball")}
	space.Add(ball.Object)
	ball.Place(box)

	if !box.Overlaps(paddle) {
		t.Fatal("expected the boxes to overlap")
	}
	if check := ball.Check(0, 0, "paddle"); check == nil {
		t.Error("expected the paddle among the broadphase candidates")
	}
}

func TestObjectData_PlaceAwayFromPaddle(t *testing.T) {
	cell := int(cfg.C.UnitSize)
	space := resolv.NewSpace(cfg.C.Width, cfg.C.Height, cell, cell)

	paddle := gamemath.Box{X: 360, Y: 0, HalfW: 8, HalfH: 32}
	px, py := ToSpace(paddle)
	space.Add(resolv.NewObject(px, py, paddle.HalfW*2, paddle.HalfH*2, "paddle"))

	ball := ObjectData{Object: resolv.NewObject(0, 0, 16, 16, "ball")}
	space.Add(ball.Object)
	ball.Place(gamemath.Box{X: 0, Y: 0, HalfW: 8, HalfH: 8})

	if check := ball.Check(0, 0, "paddle"); check != nil {
		t.Errorf("expected no candidates near the court center, got %d", len(check.Objects))
	}
}
