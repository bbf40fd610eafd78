package scenes

import (
	"math"
	"testing"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/systems"
	"github.com/automoto/pong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type fakeInput struct {
	held map[cfg.ActionID]bool
}

func (f *fakeInput) Pressed(id cfg.ActionID) bool {
	return f.held[id]
}

type fixedRand int

func (r fixedRand) Intn(n int) int {
	if int(r) >= n {
		return n - 1
	}
	return int(r)
}

type fakeGame struct {
	scene interface{}
}

func (g *fakeGame) ChangeScene(scene interface{}) {
	g.scene = scene
}

func testDeps(r int) (Deps, *fakeInput) {
	input := &fakeInput{held: map[cfg.ActionID]bool{}}
	return Deps{
		Input: input,
		Clock: systems.FixedClock(1.0 / 60),
		Rand:  fixedRand(r),
	}, input
}

func tap(e *ecs.ECS, input *fakeInput, id cfg.ActionID) {
	input.held[id] = true
	e.Update()
	input.held[id] = false
	e.Update()
}

func paddle(t *testing.T, w donburi.World, side components.Side) *donburi.Entry {
	t.Helper()
	var found *donburi.Entry
	components.Paddle.Each(w, func(e *donburi.Entry) {
		if components.Paddle.Get(e).Side == side {
			found = e
		}
	})
	if found == nil {
		t.Fatalf("expected a %v paddle", side)
	}
	return found
}

func ball(t *testing.T, w donburi.World) *donburi.Entry {
	t.Helper()
	e, ok := tags.Ball.First(w)
	if !ok {
		t.Fatal("expected a ball")
	}
	return e
}

func TestBuildMode_Entities(t *testing.T) {
	tests := []struct {
		mode    cfg.ModeID
		paddles int
		walls   int
	}{
		{cfg.Mode1P, 2, 2},
		{cfg.Mode2P, 2, 2},
		{cfg.ModeWall, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			deps, _ := testDeps(0)
			e := BuildMode(tt.mode, deps)

			paddles := 0
			components.Paddle.Each(e.World, func(*donburi.Entry) { paddles++ })
			walls := 0
			tags.Wall.Each(e.World, func(*donburi.Entry) { walls++ })

			if paddles != tt.paddles {
				t.Errorf("expected %d paddles, got %d", tt.paddles, paddles)
			}
			if walls != tt.walls {
				t.Errorf("expected %d walls, got %d", tt.walls, walls)
			}

			game, ok := components.Game.First(e.World)
			if !ok {
				t.Fatal("expected game state")
			}
			if g := components.Game.Get(game); g.Mode != tt.mode || g.LeftScore != 0 || g.RightScore != 0 {
				t.Errorf("expected a fresh %v game, got %+v", tt.mode, g)
			}
		})
	}
}

func TestBuildMode_FirstServer(t *testing.T) {
	tests := []struct {
		name string
		mode cfg.ModeID
		rand int
		want components.Side
	}{
		{"1p random left", cfg.Mode1P, 0, components.SideLeft},
		{"1p random right", cfg.Mode1P, 1, components.SideRight},
		{"2p random right", cfg.Mode2P, 1, components.SideRight},
		{"wall always left", cfg.ModeWall, 1, components.SideLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, _ := testDeps(tt.rand)
			e := BuildMode(tt.mode, deps)

			if !paddle(t, e.World, tt.want).HasComponent(components.Serve) {
				t.Errorf("expected the %v paddle to serve", tt.want)
			}
		})
	}
}

func TestBuildMode_LaunchFromLeft(t *testing.T) {
	deps, input := testDeps(0)
	e := BuildMode(cfg.Mode2P, deps)
	components.Transform.Get(paddle(t, e.World, components.SideLeft)).Position.Y = 100

	tap(e, input, cfg.ActionLaunch)

	b := components.Ball.Get(ball(t, e.World))
	if b.Velocity.X <= 0 {
		t.Errorf("expected velocity X > 0, got %f", b.Velocity.X)
	}
	if got := math.Hypot(b.Velocity.X, b.Velocity.Y); math.Abs(got-b.Speed) > 1e-9 {
		t.Errorf("expected |velocity|=%f, got %f", b.Speed, got)
	}
	bt := components.Transform.Get(ball(t, e.World))
	if math.Abs(bt.Position.Y-100) > 10 {
		t.Errorf("expected the ball to leave from Y~100, got %f", bt.Position.Y)
	}
}

func TestBuildMode_AIRally(t *testing.T) {
	saved := cfg.Game
	t.Cleanup(func() { cfg.Game = saved })
	cfg.Game.ScoreToWin = 2

	deps, input := testDeps(0)
	e := BuildMode(cfg.Mode1P, deps)

	var overs []components.GameOver
	systems.GameOverEvent.Subscribe(e.World, func(w donburi.World, ev components.GameOver) {
		overs = append(overs, ev)
	})

	gameEntry, _ := components.Game.First(e.World)
	game := components.Game.Get(gameEntry)

	// Keep serving until someone wins; the idle left paddle loses eventually.
	for i := 0; i < 60*120 && !game.IsOver(); i++ {
		if game.Round == cfg.RoundServing {
			tap(e, input, cfg.ActionLaunch)
			continue
		}
		e.Update()
	}

	if !game.IsOver() {
		t.Fatalf("expected the game to end, score %d-%d", game.LeftScore, game.RightScore)
	}
	winner, _ := game.GameOver()
	if game.Score(winner) != 2 {
		t.Errorf("expected the winner to have 2 points, got %d", game.Score(winner))
	}
	if len(overs) != 1 {
		t.Errorf("expected 1 game over event, got %d", len(overs))
	}
}

func TestModeScene_BackToMenu(t *testing.T) {
	deps, input := testDeps(0)
	g := &fakeGame{}
	s := NewModeScene(g, cfg.Mode2P, deps)

	input.held[cfg.ActionBack] = true
	s.Update()
	input.held[cfg.ActionBack] = false
	s.Update()

	if _, ok := g.scene.(*MenuScene); !ok {
		t.Fatalf("expected a menu scene, got %T", g.scene)
	}
}

func TestMenuScene_PicksMode(t *testing.T) {
	deps, input := testDeps(0)
	g := &fakeGame{}
	s := NewMenuScene(g, deps)

	input.held[cfg.ActionMenuWall] = true
	s.Update()
	input.held[cfg.ActionMenuWall] = false
	s.Update()

	ms, ok := g.scene.(*ModeScene)
	if !ok {
		t.Fatalf("expected a mode scene, got %T", g.scene)
	}
	if ms.mode != cfg.ModeWall {
		t.Errorf("expected wall mode, got %v", ms.mode)
	}
}
