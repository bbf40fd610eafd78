package config

import (
	"flag"
	"fmt"
)

// Options holds the command line overrides
type Options struct {
	Mode       ModeID
	SkipMenu   bool // a mode was requested, start it directly
	ScoreToWin uint // 0 keeps the configured value
	Misses     uint // 0 keeps the configured value
	Seed       int64
	Debug      bool
}

// ParseArgs parses command line arguments into Options
func ParseArgs(args []string) (*Options, error) {
	fs := flag.NewFlagSet("pong", flag.ContinueOnError)

	mode := fs.String("mode", "", "start directly in a mode: 1p, 2p or wall")
	score := fs.Int("score", 0, "points to win in 1p and 2p (>=1)")
	misses := fs.Int("misses", 0, "misses allowed in wall practice (>=1)")
	seed := fs.Int64("seed", 0, "random seed (0 picks one from the clock)")
	debug := fs.Bool("debug", false, "log round transitions and outline colliders")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	opts := &Options{Seed: *seed, Debug: *debug}

	if *mode != "" {
		id, err := ParseMode(*mode)
		if err != nil {
			return nil, err
		}
		opts.Mode = id
		opts.SkipMenu = true
	}

	if *score < 0 {
		return nil, fmt.Errorf("%w: score must be at least 1, got %d", ErrInvalidConfig, *score)
	}
	if *misses < 0 {
		return nil, fmt.Errorf("%w: misses must be at least 1, got %d", ErrInvalidConfig, *misses)
	}
	opts.ScoreToWin = uint(*score)
	opts.Misses = uint(*misses)

	return opts, nil
}

// Apply copies the overrides into the global configuration.
func (o *Options) Apply() {
	if o.ScoreToWin > 0 {
		Game.ScoreToWin = o.ScoreToWin
	}
	if o.Misses > 0 {
		Game.WallMissesToLose = o.Misses
	}
	if o.Debug {
		Debug.LogRounds = true
		Debug.ShowColliders = true
	}
}
