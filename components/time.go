package components

import "github.com/yohamta/donburi"

// TimeData holds the frame delta supplied by the host clock.
type TimeData struct {
	Delta   float64 // seconds since the previous frame
	Elapsed float64
	Frame   int
}

var Time = donburi.NewComponentType[TimeData]()
