package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type StrategyConfig struct {
	ID       int
	Name     string
	Margin   int
	NumRolls int
}

type GameRecord struct {
	ID        int
	Strategy0 int // StrategyConfig.ID
	Strategy1 int // StrategyConfig.ID
	Winner    int // 0 or 1
	GameMetric
}

type RollAverage struct {
	Dice     string
	NumRolls int
	Average  float64
}

type Writer struct {
	baseDir string
}

func NewWriter(root, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

// Dir returns the directory the writer's files land in.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteStrategyConfigs(configs []StrategyConfig) error {
	path := filepath.Join(w.baseDir, "strategy_configs.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create strategy configs file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "name", "margin", "num_rolls"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write strategy configs header: %w", err)
	}

	for _, config := range configs {
		row := []string{
			strconv.Itoa(config.ID),
			config.Name,
			strconv.Itoa(config.Margin),
			strconv.Itoa(config.NumRolls),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write strategy config row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "strategy0", "strategy1", "winner", "score0", "score1", "turns", "free_bacons", "pig_outs", "swaps", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Strategy0),
			strconv.Itoa(record.Strategy1),
			strconv.Itoa(record.Winner),
			strconv.Itoa(record.Score0),
			strconv.Itoa(record.Score1),
			strconv.Itoa(record.Turns),
			strconv.Itoa(record.FreeBacons),
			strconv.Itoa(record.PigOuts),
			strconv.Itoa(record.Swaps),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteRollAverages(records []RollAverage) error {
	path := filepath.Join(w.baseDir, "roll_averages.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create roll averages file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"dice", "num_rolls", "average"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write roll averages header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.Dice,
			strconv.Itoa(record.NumRolls),
			strconv.FormatFloat(record.Average, 'f', 4, 64),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write roll average row: %w", err)
		}
	}

	return nil
}
