package gamemath

import (
	"math"
	"testing"
)

func TestPaddleRebound_CenterHit(t *testing.T) {
	vx, vy := PaddleRebound(500, HitFactor(0, 0, 64), 505)

	if math.Abs(vx-(-505)) > eps {
		t.Errorf("expected VX=-505, got %f", vx)
	}
	if math.Abs(vy) > eps {
		t.Errorf("expected VY=0 for a center hit, got %f", vy)
	}
}

func TestPaddleRebound_EdgeHit(t *testing.T) {
	// Upper quarter of a left paddle, ball travelling left.
	hit := HitFactor(16, 0, 64)
	if hit != 0.25 {
		t.Fatalf("expected hit factor 0.25, got %f", hit)
	}

	vx, vy := PaddleRebound(-500, hit, 500)
	if vx <= 0 {
		t.Errorf("expected VX > 0 after bouncing off a left paddle, got %f", vx)
	}
	if vy <= 0 {
		t.Errorf("expected VY > 0 for an upper hit, got %f", vy)
	}
	if math.Abs(math.Hypot(vx, vy)-500) > 1e-6 {
		t.Errorf("expected speed 500, got %f", math.Hypot(vx, vy))
	}
	// Direction is (1, 0.5) normalized.
	if math.Abs(vy/vx-0.5) > 1e-9 {
		t.Errorf("expected slope 0.5, got %f", vy/vx)
	}
}

func TestReflect(t *testing.T) {
	tests := []struct {
		name           string
		face           Face
		wantVX, wantVY float64
	}{
		{"top wall", FaceBottom, 300, -200},
		{"bottom wall", FaceTop, 300, -200},
		{"side", FaceLeft, -300, 200},
		{"none", FaceNone, 300, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vx, vy := Reflect(300, 200, tt.face)
			if vx != tt.wantVX || vy != tt.wantVY {
				t.Errorf("expected (%f, %f), got (%f, %f)", tt.wantVX, tt.wantVY, vx, vy)
			}
		})
	}
}

func TestNextSpeed(t *testing.T) {
	if got := NextSpeed(500, 5, 750); got != 505 {
		t.Errorf("expected 505, got %f", got)
	}
	if got := NextSpeed(748, 5, 750); got != 750 {
		t.Errorf("expected speed capped at 750, got %f", got)
	}
	if got := NextSpeed(750, 5, 750); got != 750 {
		t.Errorf("expected speed to stay at 750, got %f", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{100, 100},
		{300, 240},
		{-300, -240},
	}
	for _, tt := range tests {
		if got := Clamp(tt.in, 240); got != tt.want {
			t.Errorf("Clamp(%f, 240): expected %f, got %f", tt.in, tt.want, got)
		}
	}
}

func TestScaleTo_Zero(t *testing.T) {
	x, y := ScaleTo(0, 0, 500)
	if x != 0 || y != 0 {
		t.Errorf("expected zero vector to stay zero, got (%f, %f)", x, y)
	}
}
