package components

// Side identifies one end of the court.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// Sign is -1 for the left side and +1 for the right side.
func (s Side) Sign() float64 {
	if s == SideLeft {
		return -1
	}
	return 1
}

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}
