package components

import (
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its proxy in the resolv space. The proxy
// only serves the broadphase; positions live in Transform.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// proxyPad extends a proxy's far edges. resolv finds the last covered cell
// from X+W-1 and Y+H-1, which skips a cell entered by less than one unit.
const proxyPad = 1

// Place moves the proxy over a world-space box and re-registers it with
// the space cells. The space is top-left based with y down.
func (o ObjectData) Place(b gamemath.Box) {
	o.X, o.Y = ToSpace(b)
	o.W = b.HalfW*2 + proxyPad
	o.H = b.HalfH*2 + proxyPad
	o.Update()
}

// ToSpace converts a world box to the top-left corner used by resolv.
func ToSpace(b gamemath.Box) (float64, float64) {
	return b.X - b.HalfW + cfg.C.HalfWidth(), cfg.C.HalfHeight() - (b.Y + b.HalfH)
}
