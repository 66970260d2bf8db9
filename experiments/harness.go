package experiments

import (
	"hog/engine"
	"hog/game"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat"
)

// DefaultSamples is the number of Monte Carlo samples behind each estimate.
const DefaultSamples = 1000

// MakeAveraged returns a function that estimates the expected value of fn by
// averaging numSamples calls. Arguments are bound by closing over them; only
// fn's own stochastic behavior varies between calls.
func MakeAveraged(fn func() float64, numSamples int) func() float64 {
	if numSamples < 1 {
		panic("need at least one sample")
	}
	return func() float64 {
		samples := make([]float64, numSamples)
		for i := range samples {
			samples[i] = fn()
		}
		return stat.Mean(samples, nil)
	}
}

// MaxScoringNumRolls searches roll counts 1 through 10 for the one with the
// highest average turn score on the given dice, reporting each average along
// the way. Ties keep the lowest roll count.
func MaxScoringNumRolls(dice game.Dice) int {
	bestRolls, bestAverage := 0, 0.0
	for i, average := range scoreAverages(dice, DefaultSamples) {
		numRolls := i + 1
		log.Info().Msgf("%d dice scores %.2f on average", numRolls, average)
		if average > bestAverage {
			bestRolls, bestAverage = numRolls, average
		}
	}
	return bestRolls
}

// scoreAverages estimates the average turn score for each roll count from 1
// through the per-turn maximum, in that order.
func scoreAverages(dice game.Dice, numSamples int) []float64 {
	averages := make([]float64, game.MaxRolls)
	for numRolls := 1; numRolls <= game.MaxRolls; numRolls++ {
		averaged := MakeAveraged(func() float64 {
			return float64(game.RollDice(numRolls, dice))
		}, numSamples)
		averages[numRolls-1] = averaged()
	}
	return averages
}

// Winner plays one game and returns 0 if strategy0 finishes with the strictly
// higher score, and 1 otherwise. Ties go to player 1.
func Winner(strategy0, strategy1 game.Strategy) int {
	score0, score1 := engine.Play(strategy0, strategy1)
	return winnerByScore(score0, score1)
}

func winnerByScore(score0, score1 int) int {
	if score0 > score1 {
		return 0
	}
	return 1
}

// AverageWinRate estimates how often strategy beats baseline, averaged over
// playing first and playing second. The player-0 rate inverts the average
// winner because Winner reports 1 when the second seat wins.
func AverageWinRate(strategy, baseline game.Strategy) float64 {
	asPlayer0 := 1 - MakeAveraged(func() float64 {
		return float64(Winner(strategy, baseline))
	}, DefaultSamples)()
	asPlayer1 := MakeAveraged(func() float64 {
		return float64(Winner(baseline, strategy))
	}, DefaultSamples)()
	return (asPlayer0 + asPlayer1) / 2
}
