package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start()

	c.AddTurn(0, 5, 8)
	c.AddTurn(1, 0, 4)
	c.AddTurn(0, 3, 1)
	c.AddSwap()
	c.Finish(60, 100)

	metric := c.Metric()
	require.Equal(t, 3, metric.Turns)
	require.Equal(t, 1, metric.FreeBacons, "A zero-roll turn counts as free bacon")
	require.Equal(t, 1, metric.PigOuts, "A rolled turn scoring 1 counts as a pig out")
	require.Equal(t, 1, metric.Swaps)
	require.Equal(t, 60, metric.Score0)
	require.Equal(t, 100, metric.Score1)
	require.GreaterOrEqual(t, metric.Duration.Nanoseconds(), int64(0))
}

func TestCollectorRestarts(t *testing.T) {
	c := NewCollector()
	c.Start()
	c.AddTurn(0, 5, 8)
	c.AddSwap()
	c.Finish(100, 50)

	c.Start()
	c.Finish(0, 0)

	require.Equal(t, GameMetric{Duration: c.Metric().Duration}, c.Metric(),
		"Start should reset all counters")
}

func TestDummyCollector(t *testing.T) {
	c := NewDummyCollector()
	c.Start()
	c.AddTurn(0, 5, 8)
	c.AddSwap()
	c.Finish(100, 50)

	require.Equal(t, GameMetric{}, c.Metric())
}
