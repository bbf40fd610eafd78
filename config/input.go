package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionLeftUp
	ActionLeftDown
	ActionRightUp
	ActionRightDown
	ActionLaunch
	ActionBack
	ActionPause
	ActionMenu1P
	ActionMenu2P
	ActionMenuWall
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionLeftUp:    {Keys: []ebiten.Key{ebiten.KeyS}},
			ActionLeftDown:  {Keys: []ebiten.Key{ebiten.KeyX}},
			ActionRightUp:   {Keys: []ebiten.Key{ebiten.KeyP}},
			ActionRightDown: {Keys: []ebiten.Key{ebiten.KeyL}},
			// Launch fires on release
			ActionLaunch:   {Keys: []ebiten.Key{ebiten.KeySpace}},
			ActionBack:     {Keys: []ebiten.Key{ebiten.KeyEscape}},
			ActionPause:    {Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}},
			ActionMenu1P:   {Keys: []ebiten.Key{ebiten.Key1, ebiten.KeyNumpad1}},
			ActionMenu2P:   {Keys: []ebiten.Key{ebiten.Key2, ebiten.KeyNumpad2}},
			ActionMenuWall: {Keys: []ebiten.Key{ebiten.Key3, ebiten.KeyNumpad3}},
		},
	}
}
