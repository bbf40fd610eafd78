package components

import "github.com/yohamta/donburi"

// ServeData marks the paddle holding the serve. At most one paddle has it.
type ServeData struct{}

var Serve = donburi.NewComponentType[ServeData]()
