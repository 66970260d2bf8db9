package strategy

import "hog/game"

const (
	// DefaultMargin is the free-bacon score worth taking over a roll.
	DefaultMargin = 8
	// DefaultNumRolls is the fallback roll count when not taking free bacon.
	DefaultNumRolls = 5
)

type params struct {
	margin   int
	numRolls int
}

// Option adjusts a strategy's tunable parameters.
type Option func(p *params)

func WithMargin(margin int) Option {
	return func(p *params) {
		if margin > 0 {
			p.margin = margin
		}
	}
}

func WithNumRolls(numRolls int) Option {
	return func(p *params) {
		if numRolls >= 0 && numRolls <= game.MaxRolls {
			p.numRolls = numRolls
		}
	}
}

func newParams(options ...Option) params {
	p := params{margin: DefaultMargin, numRolls: DefaultNumRolls}
	for _, option := range options {
		option(&p)
	}
	return p
}

// AlwaysRoll returns a strategy that rolls n dice regardless of either score.
func AlwaysRoll(n int) game.Strategy {
	return func(score, opponentScore int) int {
		return n
	}
}

// Bacon returns a strategy that rolls 0 dice when free bacon scores at least
// the margin, and numRolls otherwise.
func Bacon(options ...Option) game.Strategy {
	p := newParams(options...)
	return func(score, opponentScore int) int {
		if game.FreeBacon(opponentScore) >= p.margin {
			return 0
		}
		return p.numRolls
	}
}

// Swap returns a strategy that rolls 0 dice when free bacon would trigger a
// beneficial swap, and numRolls when free bacon would trigger a harmful one.
// Otherwise it falls back to the bacon margin rule.
func Swap(options ...Option) game.Strategy {
	p := newParams(options...)
	return func(score, opponentScore int) int {
		bacon := game.FreeBacon(opponentScore)
		switch {
		case (score+bacon)*2 == opponentScore:
			return 0
		case score+bacon == opponentScore*2:
			return p.numRolls
		case bacon >= p.margin:
			return 0
		}
		return p.numRolls
	}
}
