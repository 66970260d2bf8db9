package experiments

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()

	require.NoError(t, err)
	require.Equal(t, 1000, cfg.NumSamples)
	require.Equal(t, 1000, cfg.NumGames)
	require.Equal(t, uint64(1), cfg.Seed)
	require.Equal(t, "experiments", cfg.OutputDir)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("HOG_NUM_SAMPLES", "50")
	t.Setenv("HOG_NUM_GAMES", "10")
	t.Setenv("HOG_SEED", "99")
	t.Setenv("HOG_OUTPUT_DIR", "/tmp/hog")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	require.Equal(t, 50, cfg.NumSamples)
	require.Equal(t, 10, cfg.NumGames)
	require.Equal(t, uint64(99), cfg.Seed)
	require.Equal(t, "/tmp/hog", cfg.OutputDir)
}
