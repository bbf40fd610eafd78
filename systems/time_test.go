package systems

import (
	"testing"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
)

func TestTime_Accumulates(t *testing.T) {
	h := newHarness(cfg.Mode2P, components.SideLeft, 0.25)
	h.step(4)

	tm := getOrCreateTime(h.ecs)
	if tm.Frame != 4 {
		t.Errorf("expected frame 4, got %d", tm.Frame)
	}
	if tm.Elapsed != 1 {
		t.Errorf("expected 1s elapsed, got %f", tm.Elapsed)
	}
	if tm.Delta != 0.25 {
		t.Errorf("expected delta 0.25, got %f", tm.Delta)
	}
}
