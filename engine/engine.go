package engine

import (
	"hog/experiments/metrics"
	"hog/game"

	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

// Engine drives a game of Hog between two strategies until a player reaches
// the goal score.
type Engine struct {
	strategies [2]game.Strategy
	rules      game.Rules
	four       game.Dice
	six        game.Dice
	collector  metrics.Collector
}

func WithRules(rules game.Rules) Option {
	return func(e *Engine) {
		if rules != nil {
			e.rules = rules
		}
	}
}

// WithDice overrides the standard dice sources, for deterministic play.
func WithDice(four, six game.Dice) Option {
	return func(e *Engine) {
		if four != nil && six != nil {
			e.four = four
			e.six = six
		}
	}
}

func WithCollector(collector metrics.Collector) Option {
	return func(e *Engine) {
		if collector != nil {
			e.collector = collector
		}
	}
}

func New(strategy0, strategy1 game.Strategy, options ...Option) *Engine {
	if strategy0 == nil || strategy1 == nil {
		panic("both players need a strategy")
	}
	e := &Engine{
		strategies: [2]game.Strategy{strategy0, strategy1},
		rules:      game.NewStandardRules(),
		four:       game.FourSided,
		six:        game.SixSided,
		collector:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run plays the game to completion and returns the final scores, player 0's
// first. The pair (score, opponentScore) rotates to the current player's
// perspective every turn; the final value of who maps it back to player order.
func (e *Engine) Run() (int, int) {
	e.collector.Start()

	who := 0
	score, opponentScore := 0, 0
	goal := e.rules.Goal()

	for max(score, opponentScore) < goal {
		strategy := e.strategies[who]
		numRolls := strategy(score, opponentScore)
		dice := game.SelectDiceFrom(score, opponentScore, e.four, e.six)

		delta := game.TakeTurn(numRolls, opponentScore, dice)
		score += delta
		e.collector.AddTurn(who, numRolls, delta)

		log.Debug().
			Int("player", who).
			Int("rolls", numRolls).
			Int("delta", delta).
			Int("score", score).
			Int("opponent", opponentScore).
			Msg("turn taken")

		var swapped bool
		score, opponentScore, swapped = e.swapIfDoubled(score, opponentScore)
		if swapped {
			e.collector.AddSwap()
		}
		score, opponentScore = opponentScore, score
		who = Other(who)
	}

	score0, score1 := unrotate(who, score, opponentScore)
	e.collector.Finish(score0, score1)
	return score0, score1
}

// swapIfDoubled applies the swap rule: if either score is exactly double the
// other after a turn, the two scores trade places.
func (e *Engine) swapIfDoubled(score, opponentScore int) (int, int, bool) {
	if e.rules.ShouldSwap(score, opponentScore) {
		return opponentScore, score, true
	}
	return score, opponentScore, false
}

// unrotate maps the rotating (score, opponentScore) pair back to
// (player 0, player 1) order, given whose turn would be next.
func unrotate(who, score, opponentScore int) (int, int) {
	if who == 0 {
		return score, opponentScore
	}
	return opponentScore, score
}

// Other returns the other player, for a player who numbered 0 or 1.
func Other(who int) int {
	return 1 - who
}

// Play simulates a game between two strategies and returns the final scores,
// player 0's first.
func Play(strategy0, strategy1 game.Strategy, options ...Option) (int, int) {
	return New(strategy0, strategy1, options...).Run()
}
