package systems

import (
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// InputSource reports whether an action is held this frame.
type InputSource interface {
	Pressed(id cfg.ActionID) bool
}

// Keyboard reads actions from the ebiten keyboard using cfg.Input bindings.
type Keyboard struct{}

func (Keyboard) Pressed(id cfg.ActionID) bool {
	for _, key := range cfg.Input.Bindings[id].Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// NewUpdateInput polls the source and updates the Input singleton.
// Must run first in the system order.
func NewUpdateInput(src InputSource) ecs.System {
	return func(ecs *ecs.ECS) {
		input := getOrCreateInput(ecs)

		// Swap buffers: current becomes previous, then poll current
		input.Previous = input.Current
		input.Current = [cfg.ActionCount]bool{}

		for id := cfg.ActionNone + 1; id < cfg.ActionCount; id++ {
			input.Current[id] = src.Pressed(id)
		}
	}
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
func GetAction(ecs *ecs.ECS, id cfg.ActionID) components.ActionState {
	return getOrCreateInput(ecs).Action(id)
}
