package factory

import (
	"github.com/automoto/pong/archetypes"
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the broadphase grid covering the court, one cell per unit.
func CreateSpace(ecs *ecs.ECS) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	cell := int(cfg.C.UnitSize)
	spaceData := resolv.NewSpace(cfg.C.Width, cfg.C.Height, cell, cell)
	components.Space.Set(space, spaceData)
	return space
}

// addToSpace creates a proxy object for a box and registers it with the
// space if one exists.
func addToSpace(ecs *ecs.ECS, entry *donburi.Entry, t *components.TransformData, tag string) {
	b := t.Box()
	x, y := components.ToSpace(b)
	obj := resolv.NewObject(x, y, b.HalfW*2, b.HalfH*2, tag)
	obj.Data = entry // Link for O(1) lookup

	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
