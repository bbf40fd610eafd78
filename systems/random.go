package systems

// Random is the source of every random decision: serve direction, first
// server and AI slack. *rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
}
