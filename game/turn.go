package game

var standard Rules = NewStandardRules()

// RollDice rolls the dice numRolls times and returns the turn total: the sum
// of the outcomes, or 1 if any outcome is a 1 (Pig out). The dice are called
// exactly numRolls times, even after a 1 has appeared.
func RollDice(numRolls int, dice Dice) int {
	if numRolls < 1 {
		panic("must roll at least once")
	}
	rolls := make([]int, numRolls)
	for i := range rolls {
		rolls[i] = dice()
	}
	return standard.TurnOutcome(rolls)
}

// FreeBacon scores a zero-roll turn: one more than the largest digit of the
// opponent's score.
func FreeBacon(score int) int {
	return standard.BaconScore(score)
}

// TakeTurn simulates a turn of numRolls dice, which may be 0 (Free bacon).
// A free-bacon turn consumes no dice.
func TakeTurn(numRolls, opponentScore int, dice Dice) int {
	if numRolls < 0 {
		panic("cannot roll a negative number of dice")
	}
	if numRolls > standard.MaxTurnRolls() {
		panic("cannot roll more than 10 dice")
	}
	if opponentScore >= standard.Goal() {
		panic("the game should be over")
	}
	if numRolls == 0 {
		return FreeBacon(opponentScore)
	}
	return RollDice(numRolls, dice)
}

// SelectDice picks six-sided dice unless the two scores sum to a multiple of
// 7, in which case four-sided dice apply (Hog wild).
func SelectDice(score, opponentScore int) Dice {
	return SelectDiceFrom(score, opponentScore, FourSided, SixSided)
}

// SelectDiceFrom applies the Hog wild rule to a custom pair of dice sources.
func SelectDiceFrom(score, opponentScore int, four, six Dice) Dice {
	if standard.UseWildDice(score, opponentScore) {
		return four
	}
	return six
}
