package systems

import (
	"fmt"
	"log"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/tags"
	"github.com/yohamta/donburi"
)

// The mode assumes exactly one ball, one game state and at most one paddle
// per side. Anything else is a programming error and panics.

func mustBall(w donburi.World) *donburi.Entry {
	var ball *donburi.Entry
	n := 0
	tags.Ball.Each(w, func(e *donburi.Entry) {
		ball = e
		n++
	})
	if n != 1 {
		panic(fmt.Sprintf("expected exactly one ball, found %d", n))
	}
	return ball
}

func mustGame(w donburi.World) *components.GameData {
	entry, ok := components.Game.First(w)
	if !ok {
		panic("no game state in world")
	}
	return components.Game.Get(entry)
}

func mustEvents(w donburi.World) *components.FrameEventsData {
	entry, ok := components.FrameEvents.First(w)
	if !ok {
		panic("no frame events in world")
	}
	return components.FrameEvents.Get(entry)
}

// paddleOn returns the paddle on a side, if the mode has one.
func paddleOn(w donburi.World, side components.Side) (*donburi.Entry, bool) {
	var found *donburi.Entry
	components.Paddle.Each(w, func(e *donburi.Entry) {
		if components.Paddle.Get(e).Side != side {
			return
		}
		if found != nil {
			panic(fmt.Sprintf("more than one %v paddle", side))
		}
		found = e
	})
	return found, found != nil
}

// servers returns every paddle holding the serve.
func servers(w donburi.World) []*donburi.Entry {
	var out []*donburi.Entry
	components.Serve.Each(w, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}

// singleServer returns the serving paddle when exactly one holds the serve.
func singleServer(w donburi.World) (*donburi.Entry, bool) {
	s := servers(w)
	if len(s) != 1 {
		return nil, false
	}
	return s[0], true
}

func logRound(format string, args ...interface{}) {
	if cfg.Debug.LogRounds {
		log.Printf(format, args...)
	}
}
