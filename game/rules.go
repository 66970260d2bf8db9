package game

// Rules is the set of game rules to apply.
type Rules interface {
	Goal() int
	MaxTurnRolls() int
	TurnOutcome(rolls []int) int
	BaconScore(opponentScore int) int
	UseWildDice(score, opponentScore int) bool
	ShouldSwap(score, opponentScore int) bool
}
