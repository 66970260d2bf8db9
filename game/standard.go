package game

const (
	// GoalScore ends the game once either player reaches it.
	GoalScore = 100
	// MaxRolls caps the number of dice rolled in a single turn.
	MaxRolls = 10
)

type StandardRules struct {
	GoalScore int
	MaxRolls  int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		GoalScore: GoalScore,
		MaxRolls:  MaxRolls,
	}
}

func (sr *StandardRules) Goal() int {
	return sr.GoalScore
}

func (sr *StandardRules) MaxTurnRolls() int {
	return sr.MaxRolls
}

// TurnOutcome sums the rolls of one turn, unless any of them is a 1
// (Pig out), which forces the turn total to exactly 1.
func (sr *StandardRules) TurnOutcome(rolls []int) int {
	total, pigOut := 0, false
	for _, roll := range rolls {
		if roll == 1 {
			pigOut = true
		}
		total += roll
	}
	if pigOut {
		return 1
	}
	return total
}

// BaconScore is one more than the largest digit of the opponent's score
// (Free bacon).
func (sr *StandardRules) BaconScore(opponentScore int) int {
	return 1 + max(opponentScore/10, opponentScore%10)
}

// UseWildDice reports whether four-sided dice replace the six-sided ones
// (Hog wild): the two scores sum to a multiple of 7.
func (sr *StandardRules) UseWildDice(score, opponentScore int) bool {
	return (score+opponentScore)%7 == 0
}

// ShouldSwap reports whether the scores trade places after a turn: one score
// is exactly double the other.
func (sr *StandardRules) ShouldSwap(score, opponentScore int) bool {
	return score == 2*opponentScore || opponentScore == 2*score
}
