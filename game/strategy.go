package game

// Strategy decides how many dice the current player rolls this turn, given
// their own score and the opponent's score. Strategies are pure functions:
// no hidden state, re-invoked every turn.
type Strategy func(score, opponentScore int) int
