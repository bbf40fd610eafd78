package components

import (
	"testing"

	cfg "github.com/automoto/pong/config"
)

func TestGameData_New(t *testing.T) {
	g := NewGameData(cfg.Mode2P, SideRight)

	if g.LeftScore != 0 || g.RightScore != 0 {
		t.Errorf("expected 0-0, got %d-%d", g.LeftScore, g.RightScore)
	}
	if g.Round != cfg.RoundServing {
		t.Errorf("expected round serving, got %v", g.Round)
	}
	if g.StartingSide != SideRight {
		t.Errorf("expected starting side right, got %v", g.StartingSide)
	}
	if g.IsOver() {
		t.Error("expected a fresh game not to be over")
	}
}

func TestGameData_AddPoint(t *testing.T) {
	g := NewGameData(cfg.Mode2P, SideLeft)

	if got := g.AddPoint(SideLeft); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
	g.AddPoint(SideRight)
	g.AddPoint(SideRight)

	if g.Score(SideLeft) != 1 || g.Score(SideRight) != 2 {
		t.Errorf("expected 1-2, got %d-%d", g.LeftScore, g.RightScore)
	}
}

func TestGameData_WinnerIsSticky(t *testing.T) {
	g := NewGameData(cfg.Mode1P, SideLeft)

	if !g.SetWinner(SideRight) {
		t.Fatal("expected the first winner to be recorded")
	}
	if g.SetWinner(SideLeft) {
		t.Error("expected a second winner to be rejected")
	}
	winner, over := g.GameOver()
	if !over || winner != SideRight {
		t.Errorf("expected right to win, got winner=%v over=%v", winner, over)
	}
	if g.Round != cfg.RoundOver {
		t.Errorf("expected round over, got %v", g.Round)
	}

	g.AddPoint(SideLeft)
	if g.LeftScore != 0 {
		t.Errorf("expected no points after game over, got %d", g.LeftScore)
	}
}

func TestSide(t *testing.T) {
	if SideLeft.Opponent() != SideRight || SideRight.Opponent() != SideLeft {
		t.Error("expected sides to be each other's opponent")
	}
	if SideLeft.Sign() != -1 || SideRight.Sign() != 1 {
		t.Errorf("expected signs -1/+1, got %f/%f", SideLeft.Sign(), SideRight.Sign())
	}
}

func TestInputData_Action(t *testing.T) {
	var in InputData

	in.Current[cfg.ActionLaunch] = true
	if s := in.Action(cfg.ActionLaunch); !s.Pressed || !s.JustPressed || s.JustReleased {
		t.Errorf("expected just pressed, got %+v", s)
	}

	in.Previous = in.Current
	if s := in.Action(cfg.ActionLaunch); !s.Pressed || s.JustPressed {
		t.Errorf("expected held, got %+v", s)
	}

	in.Current[cfg.ActionLaunch] = false
	if s := in.Action(cfg.ActionLaunch); s.Pressed || !s.JustReleased {
		t.Errorf("expected just released, got %+v", s)
	}
}

func TestInputData_Axis(t *testing.T) {
	var in InputData
	in.Current[cfg.ActionLeftUp] = true
	if got := in.Axis(cfg.ActionLeftUp, cfg.ActionLeftDown); got != 1 {
		t.Errorf("expected 1, got %f", got)
	}
	in.Current[cfg.ActionLeftDown] = true
	if got := in.Axis(cfg.ActionLeftUp, cfg.ActionLeftDown); got != 0 {
		t.Errorf("expected 0, got %f", got)
	}
}

func TestFrameEvents_Reset(t *testing.T) {
	f := FrameEventsData{
		HitPaddle: []BallHitPaddle{{Paddle: SideLeft}},
		Out:       []BallOut{{Side: SideRight}},
		Over:      []GameOver{{Winner: SideLeft}},
	}
	f.Reset()
	if len(f.HitPaddle)+len(f.HitWall)+len(f.Out)+len(f.Over) != 0 {
		t.Errorf("expected all lists empty, got %+v", f)
	}
}
