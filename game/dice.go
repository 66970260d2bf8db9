package game

import (
	"golang.org/x/exp/rand"

	"lukechampine.com/frand"
)

// Dice is a zero-argument source of roll outcomes. Each call returns a
// positive integer.
type Dice func() int

// SixSided returns a uniformly random outcome in [1, 6].
func SixSided() int {
	return frand.Intn(6) + 1
}

// FourSided returns a uniformly random outcome in [1, 4].
func FourSided() int {
	return frand.Intn(4) + 1
}

// ScriptedDice returns dice that replay the given outcomes in order, wrapping
// back to the first outcome once the sequence is exhausted. The cursor is
// owned by the returned value, so each call site gets its own replay.
func ScriptedDice(outcomes ...int) Dice {
	if len(outcomes) == 0 {
		panic("scripted dice need at least one outcome")
	}
	i := 0
	return func() int {
		outcome := outcomes[i%len(outcomes)]
		i++
		return outcome
	}
}

// Roller produces dice bound to a seeded generator for reproducible runs.
type Roller struct {
	rng *rand.Rand
}

func NewRoller(seed uint64) *Roller {
	return &Roller{rng: rand.New(rand.NewSource(seed))}
}

// Sided returns dice with the given number of sides drawing from the roller's
// generator. Dice from the same roller share its sequence.
func (r *Roller) Sided(sides int) Dice {
	if sides < 1 {
		panic("dice must have at least one side")
	}
	return func() int {
		return r.rng.Intn(sides) + 1
	}
}
