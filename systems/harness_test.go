package systems

import (
	"testing"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const frame = 1.0 / 60

type fakeInput struct {
	held map[cfg.ActionID]bool
}

func (f *fakeInput) Pressed(id cfg.ActionID) bool {
	return f.held[id]
}

// fixedRand always returns n, clamped to the requested range.
type fixedRand struct {
	n int
}

func (r *fixedRand) Intn(n int) int {
	if r.n >= n {
		return n - 1
	}
	return r.n
}

type fakeScenes struct {
	changed []interface{}
}

func (f *fakeScenes) ChangeScene(scene interface{}) {
	f.changed = append(f.changed, scene)
}

type harness struct {
	ecs   *ecs.ECS
	input *fakeInput
	rng   *fixedRand
}

// newHarness builds a mode with the full per-frame pipeline.
func newHarness(mode cfg.ModeID, starting components.Side, dt float64) *harness {
	h := &harness{
		ecs:   ecs.NewECS(donburi.NewWorld()),
		input: &fakeInput{held: map[cfg.ActionID]bool{}},
		rng:   &fixedRand{},
	}
	factory.CreateMode(h.ecs, mode, starting)

	for _, system := range ModeSystems(h.input, FixedClock(dt), h.rng) {
		h.ecs.AddSystem(system)
	}
	return h
}

func (h *harness) step(n int) {
	for i := 0; i < n; i++ {
		h.ecs.Update()
	}
}

// tap presses and releases an action over two frames.
func (h *harness) tap(id cfg.ActionID) {
	h.input.held[id] = true
	h.step(1)
	h.input.held[id] = false
	h.step(1)
}

func (h *harness) ball() (*components.BallData, *components.TransformData) {
	e := mustBall(h.ecs.World)
	return components.Ball.Get(e), components.Transform.Get(e)
}

func (h *harness) game() *components.GameData {
	return mustGame(h.ecs.World)
}

func (h *harness) events() *components.FrameEventsData {
	return mustEvents(h.ecs.World)
}

func (h *harness) paddle(t *testing.T, side components.Side) *donburi.Entry {
	t.Helper()
	e, ok := paddleOn(h.ecs.World, side)
	if !ok {
		t.Fatalf("expected a %v paddle", side)
	}
	return e
}

// rally puts the ball in play at a position with a velocity, as if it had
// been launched earlier.
func (h *harness) rally(x, y, vx, vy float64) {
	for _, e := range servers(h.ecs.World) {
		donburi.Remove[components.ServeData](e, components.Serve)
	}
	ball, t := h.ball()
	t.Position.X, t.Position.Y = x, y
	ball.PreviousPosition = t.Position
	ball.Velocity.X, ball.Velocity.Y = vx, vy
	h.game().Round = cfg.RoundRallying
}

// withGameConfig restores the global tuning after the test.
func withGameConfig(t *testing.T) {
	t.Helper()
	saved := cfg.Game
	t.Cleanup(func() { cfg.Game = saved })
}
