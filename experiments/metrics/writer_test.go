package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriterWritesRecords(t *testing.T) {
	writer, err := NewWriter(t.TempDir(), "test")
	require.NoError(t, err)

	err = writer.WriteStrategyConfigs([]StrategyConfig{
		{ID: 0, Name: "always_roll_5", NumRolls: 5},
		{ID: 1, Name: "bacon", Margin: 8, NumRolls: 5},
	})
	require.NoError(t, err)

	err = writer.WriteGameRecords([]GameRecord{
		{
			ID:        1,
			Strategy0: 1,
			Strategy1: 0,
			Winner:    0,
			GameMetric: GameMetric{
				Turns:      31,
				FreeBacons: 4,
				PigOuts:    6,
				Swaps:      1,
				Score0:     104,
				Score1:     87,
				Duration:   3 * time.Millisecond,
			},
		},
	})
	require.NoError(t, err)

	err = writer.WriteRollAverages([]RollAverage{
		{Dice: "six-sided", NumRolls: 6, Average: 8.64},
	})
	require.NoError(t, err)

	configs := readCSV(t, filepath.Join(writer.Dir(), "strategy_configs.csv"))
	require.Equal(t, []string{"id", "name", "margin", "num_rolls"}, configs[0])
	require.Len(t, configs, 3)

	games := readCSV(t, filepath.Join(writer.Dir(), "game_records.csv"))
	require.Equal(t, []string{"id", "strategy0", "strategy1", "winner", "score0", "score1", "turns", "free_bacons", "pig_outs", "swaps", "duration"}, games[0])
	require.Equal(t, []string{"1", "1", "0", "0", "104", "87", "31", "4", "6", "1", "3ms"}, games[1])

	averages := readCSV(t, filepath.Join(writer.Dir(), "roll_averages.csv"))
	require.Equal(t, []string{"six-sided", "6", "8.6400"}, averages[1])
}
