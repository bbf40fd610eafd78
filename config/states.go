package config

// RoundState tracks where a game is in the serve/rally cycle
type RoundState int

const (
	RoundServing  RoundState = iota // ball pinned to the serving paddle
	RoundLaunched                   // velocity assigned, not yet integrated
	RoundRallying
	RoundOver // terminal, a winner is recorded
)

func (s RoundState) String() string {
	switch s {
	case RoundServing:
		return "serving"
	case RoundLaunched:
		return "launched"
	case RoundRallying:
		return "rallying"
	case RoundOver:
		return "over"
	}
	return "unknown"
}
