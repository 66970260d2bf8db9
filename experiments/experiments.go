package experiments

import (
	"fmt"

	"hog/engine"
	"hog/experiments/metrics"
	"hog/game"
	"hog/strategy"

	"github.com/rs/zerolog/log"
)

type candidate struct {
	config   metrics.StrategyConfig
	strategy game.Strategy
}

// RunAll runs the full experiment suite: the optimal-roll-count search for
// both standard dice, then win-rate matchups of each candidate strategy
// against the AlwaysRoll(5) baseline. Records are written as CSV files under
// the configured output directory.
func RunAll(cfg Config) error {
	writer, err := metrics.NewWriter(cfg.OutputDir, "hog")
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	rollAverages := runRollSearch(cfg)

	baseline := metrics.StrategyConfig{ID: 0, Name: "always_roll_5", NumRolls: 5}
	candidates := []candidate{
		{metrics.StrategyConfig{ID: 1, Name: "always_roll_8", NumRolls: 8}, strategy.AlwaysRoll(8)},
		{metrics.StrategyConfig{ID: 2, Name: "bacon", Margin: strategy.DefaultMargin, NumRolls: strategy.DefaultNumRolls}, strategy.Bacon()},
		{metrics.StrategyConfig{ID: 3, Name: "swap", Margin: strategy.DefaultMargin, NumRolls: strategy.DefaultNumRolls}, strategy.Swap()},
		{metrics.StrategyConfig{ID: 4, Name: "final"}, strategy.Final()},
	}

	gameRecords := runMatchups(cfg, baseline, candidates)

	log.Info().Msgf("final strategy win rate: %.3f", AverageWinRate(strategy.Final(), strategy.AlwaysRoll(5)))

	configs := append([]metrics.StrategyConfig{baseline}, configsOf(candidates)...)
	if err := writer.WriteStrategyConfigs(configs); err != nil {
		return err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	if err := writer.WriteRollAverages(rollAverages); err != nil {
		return err
	}

	log.Info().Msgf("experiment records written to %s", writer.Dir())
	return nil
}

// runRollSearch estimates the average turn score per roll count for both
// standard dice, using a seeded roller so runs are reproducible.
func runRollSearch(cfg Config) []metrics.RollAverage {
	roller := game.NewRoller(cfg.Seed)
	records := []metrics.RollAverage{}

	for _, d := range []struct {
		name  string
		sides int
	}{
		{"six-sided", 6},
		{"four-sided", 4},
	} {
		log.Info().Msgf("searching max scoring num rolls for %s dice...", d.name)

		dice := roller.Sided(d.sides)
		bestRolls, bestAverage := 0, 0.0
		for i, average := range scoreAverages(dice, cfg.NumSamples) {
			numRolls := i + 1
			log.Info().Msgf("%d dice scores %.2f on average", numRolls, average)
			records = append(records, metrics.RollAverage{
				Dice:     d.name,
				NumRolls: numRolls,
				Average:  average,
			})
			if average > bestAverage {
				bestRolls, bestAverage = numRolls, average
			}
		}

		log.Info().Msgf("max scoring num rolls for %s dice: %d", d.name, bestRolls)
	}

	return records
}

// runMatchups plays every candidate against the baseline, half the games in
// each seat, and reports the observed win rate with a 95% confidence interval.
func runMatchups(cfg Config, baseline metrics.StrategyConfig, candidates []candidate) []metrics.GameRecord {
	baselineStrategy := strategy.AlwaysRoll(5)
	gameRecords := []metrics.GameRecord{}
	count := 0

	for ci, cand := range candidates {
		log.Info().Msgf("starting matchup %d of %d: %s vs %s...", ci+1, len(candidates), cand.config.Name, baseline.Name)

		var rate Statistic
		for i := 0; i < cfg.NumGames; i++ {
			first, second := cand.strategy, baselineStrategy
			firstID, secondID := cand.config.ID, baseline.ID
			if i%2 == 1 {
				first, second = second, first
				firstID, secondID = secondID, firstID
			}

			collector := metrics.NewCollector()
			score0, score1 := engine.Play(first, second, engine.WithCollector(collector))
			win := winnerByScore(score0, score1)

			if (i%2 == 0) == (win == 0) {
				rate.Push(1)
			} else {
				rate.Push(0)
			}

			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Strategy0:  firstID,
				Strategy1:  secondID,
				Winner:     win,
				GameMetric: collector.Metric(),
			})
		}

		log.Info().Msgf("%s win rate: %.3f ± %.3f (95%% CI) over %d games",
			cand.config.Name, rate.Mean(), rate.ConfidenceInterval(95), cfg.NumGames)
	}

	return gameRecords
}

func configsOf(candidates []candidate) []metrics.StrategyConfig {
	configs := make([]metrics.StrategyConfig, len(candidates))
	for i, cand := range candidates {
		configs[i] = cand.config
	}
	return configs
}
