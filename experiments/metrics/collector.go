package metrics

import "time"

// GameMetric captures what happened over one simulated game.
type GameMetric struct {
	Turns      int
	FreeBacons int
	PigOuts    int
	Swaps      int
	Score0     int
	Score1     int
	Duration   time.Duration
}

// Collector accumulates per-turn events while the engine plays a game.
type Collector interface {
	Start()
	AddTurn(who, numRolls, delta int)
	AddSwap()
	Finish(score0, score1 int)
	Metric() GameMetric
}

type collector struct {
	startTime  time.Time
	turns      int
	freeBacons int
	pigOuts    int
	swaps      int
	metric     GameMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	*c = collector{startTime: time.Now()}
}

func (c *collector) AddTurn(who, numRolls, delta int) {
	c.turns++
	switch {
	case numRolls == 0:
		c.freeBacons++
	case delta == 1:
		// A turn of one or more rolls can only total 1 through a Pig out.
		c.pigOuts++
	}
}

func (c *collector) AddSwap() {
	c.swaps++
}

func (c *collector) Finish(score0, score1 int) {
	c.metric = GameMetric{
		Turns:      c.turns,
		FreeBacons: c.freeBacons,
		PigOuts:    c.pigOuts,
		Swaps:      c.swaps,
		Score0:     score0,
		Score1:     score1,
		Duration:   time.Since(c.startTime),
	}
}

func (c *collector) Metric() GameMetric {
	return c.metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (d *dummyCollector) Start()                           {}
func (d *dummyCollector) AddTurn(who, numRolls, delta int) {}
func (d *dummyCollector) AddSwap()                         {}
func (d *dummyCollector) Finish(score0, score1 int)        {}
func (d *dummyCollector) Metric() GameMetric               { return GameMetric{} }
