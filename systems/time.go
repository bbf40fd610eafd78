package systems

import (
	"github.com/automoto/pong/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Clock supplies the frame delta in seconds. It is trusted as-is.
type Clock interface {
	Delta() float64
}

// TickClock reports one ebiten tick per frame.
type TickClock struct{}

func (TickClock) Delta() float64 {
	return 1 / float64(ebiten.TPS())
}

// FixedClock reports a constant delta.
type FixedClock float64

func (c FixedClock) Delta() float64 {
	return float64(c)
}

// NewUpdateTime stores the clock's delta in the Time singleton and clears
// the previous frame's events.
func NewUpdateTime(clock Clock) ecs.System {
	return func(ecs *ecs.ECS) {
		t := getOrCreateTime(ecs)
		t.Delta = clock.Delta()
		t.Elapsed += t.Delta
		t.Frame++

		if entry, ok := components.FrameEvents.First(ecs.World); ok {
			components.FrameEvents.Get(entry).Reset()
		}
	}
}

func getOrCreateTime(ecs *ecs.ECS) *components.TimeData {
	entry, ok := components.Time.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Time))
	}
	return components.Time.Get(entry)
}
