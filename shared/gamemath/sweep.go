package gamemath

import "math"

// Face names the side of a collider that was struck. World space is y-up,
// so FaceTop is the collider's upper edge.
type Face int

const (
	FaceNone Face = iota
	FaceLeft
	FaceRight
	FaceTop
	FaceBottom
)

func (f Face) String() string {
	switch f {
	case FaceLeft:
		return "left"
	case FaceRight:
		return "right"
	case FaceTop:
		return "top"
	case FaceBottom:
		return "bottom"
	}
	return "none"
}

// Horizontal reports whether the face is a left or right face.
func (f Face) Horizontal() bool {
	return f == FaceLeft || f == FaceRight
}

// Box is an axis-aligned rectangle given by its center and half extents.
type Box struct {
	X, Y         float64
	HalfW, HalfH float64
}

// Overlaps reports strict overlap; touching edges do not overlap.
func (b Box) Overlaps(o Box) bool {
	return math.Abs(b.X-o.X) < b.HalfW+o.HalfW &&
		math.Abs(b.Y-o.Y) < b.HalfH+o.HalfH
}

// Union returns the smallest box covering both boxes.
func (b Box) Union(o Box) Box {
	minX := math.Min(b.X-b.HalfW, o.X-o.HalfW)
	maxX := math.Max(b.X+b.HalfW, o.X+o.HalfW)
	minY := math.Min(b.Y-b.HalfH, o.Y-o.HalfH)
	maxY := math.Max(b.Y+b.HalfH, o.Y+o.HalfH)
	return Box{
		X:     (minX + maxX) / 2,
		Y:     (minY + maxY) / 2,
		HalfW: (maxX - minX) / 2,
		HalfH: (maxY - minY) / 2,
	}
}

// Contact describes where a moving box first touched a static one.
type Contact struct {
	Face             Face
	NormalX, NormalY float64
	// Time is the offset in seconds from the current position back to the
	// moment of contact. It is never positive.
	Time float64
	// X, Y is the moving box's center at the moment of contact.
	X, Y float64
}

// Sweep tests a box that moved from (prevX, prevY) to its current position
// with velocity (vx, vy) against a static target.
//
// When the boxes overlap at the current position the contact is always
// reported. Otherwise the contact must have happened during this frame,
// i.e. between the previous and the current position, which catches a
// fast box passing straight through a thin target.
//
// The binding axis is the one whose boundary was crossed last. Ties go to
// the Y axis. An axis with zero velocity never binds.
func Sweep(moving Box, prevX, prevY, vx, vy float64, target Box) (Contact, bool) {
	if vx == 0 && vy == 0 {
		return Contact{}, false
	}

	toX, enterX, exitX, ok := axisWindow(moving.X, moving.HalfW, vx, target.X, target.HalfW)
	if !ok {
		return Contact{}, false
	}
	toY, enterY, exitY, ok := axisWindow(moving.Y, moving.HalfH, vy, target.Y, target.HalfH)
	if !ok {
		return Contact{}, false
	}

	enter := math.Max(enterX, enterY)
	exit := math.Min(exitX, exitY)

	if !moving.Overlaps(target) {
		if enter > 0 || enter >= exit {
			return Contact{}, false
		}
		if enter < -frameTime(moving, prevX, prevY, vx, vy) {
			return Contact{}, false
		}
	}

	c := Contact{}
	if enterX > enterY {
		c.Time = enterX
		c.NormalX = normal(toX, vx)
		c.Face = FaceRight
		if c.NormalX < 0 {
			c.Face = FaceLeft
		}
	} else {
		c.Time = enterY
		c.NormalY = normal(toY, vy)
		c.Face = FaceTop
		if c.NormalY < 0 {
			c.Face = FaceBottom
		}
	}
	c.X = moving.X + vx*c.Time
	c.Y = moving.Y + vy*c.Time
	return c, true
}

// axisWindow returns the displacement back to the first touched boundary
// and the times the moving interval enters and leaves the target interval.
// ok is false when the axis can never overlap.
func axisWindow(pos, half, v, targetPos, targetHalf float64) (to, enter, exit float64, ok bool) {
	if v == 0 {
		if math.Abs(pos-targetPos) < half+targetHalf {
			return 0, math.Inf(-1), math.Inf(1), true
		}
		return 0, 0, 0, false
	}
	var away float64
	if v > 0 {
		to = (targetPos - targetHalf) - (pos + half)
		away = (targetPos + targetHalf) - (pos - half)
	} else {
		to = (targetPos + targetHalf) - (pos - half)
		away = (targetPos - targetHalf) - (pos + half)
	}
	return to, to / v, away / v, true
}

// normal points away from the target along the struck axis.
func normal(to, v float64) float64 {
	switch {
	case to < 0:
		return -1
	case to > 0:
		return 1
	case v > 0:
		return -1
	}
	return 1
}

// frameTime is how long the box took to travel from its previous position.
func frameTime(moving Box, prevX, prevY, vx, vy float64) float64 {
	if math.Abs(vx) >= math.Abs(vy) {
		return math.Max(0, (moving.X-prevX)/vx)
	}
	return math.Max(0, (moving.Y-prevY)/vy)
}
