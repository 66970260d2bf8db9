package experiments

import (
	"testing"

	"hog/game"
	"hog/strategy"

	"github.com/stretchr/testify/require"
)

func TestMakeAveragedScriptedDice(t *testing.T) {
	dice := game.ScriptedDice(3, 1, 5, 6)
	averaged := MakeAveraged(func() float64 { return float64(dice()) }, 1000)

	require.InDelta(t, 3.75, averaged(), 1e-9,
		"The average should converge to the mean of the scripted cycle")
}

func TestMakeAveragedRollDice(t *testing.T) {
	// Rolling twice alternates between (3,1) -> 1 and (5,6) -> 11, so the
	// average over an even number of samples is exactly 6.
	dice := game.ScriptedDice(3, 1, 5, 6)
	averaged := MakeAveraged(func() float64 {
		return float64(game.RollDice(2, dice))
	}, 1000)

	require.InDelta(t, 6.0, averaged(), 1e-9)
}

func TestMakeAveragedRequiresSamples(t *testing.T) {
	require.Panics(t, func() { MakeAveraged(func() float64 { return 0 }, 0) })
}

func TestMaxScoringNumRollsConstantDice(t *testing.T) {
	// With dice that always score 3 the average grows with every extra die.
	got := MaxScoringNumRolls(game.ScriptedDice(3))

	require.Equal(t, 10, got)
}

func TestMaxScoringNumRollsKeepsLowestOnTies(t *testing.T) {
	// Dice that always pig out score 1 for every roll count.
	got := MaxScoringNumRolls(game.ScriptedDice(1))

	require.Equal(t, 1, got, "Ties should keep the lowest roll count")
}

func TestWinnerByScore(t *testing.T) {
	require.Equal(t, 0, winnerByScore(100, 99))
	require.Equal(t, 1, winnerByScore(99, 100))
	require.Equal(t, 1, winnerByScore(100, 100), "Ties should resolve to player 1")
}

func TestWinnerReturnsAPlayer(t *testing.T) {
	got := Winner(strategy.AlwaysRoll(5), strategy.AlwaysRoll(5))

	require.Contains(t, []int{0, 1}, got)
}

func TestAverageWinRateSelfPlay(t *testing.T) {
	rate := AverageWinRate(strategy.AlwaysRoll(5), strategy.AlwaysRoll(5))

	require.InDelta(t, 0.5, rate, 0.05,
		"A strategy against itself should win about half the games")
}
