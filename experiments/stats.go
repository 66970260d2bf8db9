package experiments

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Statistic keeps a running mean and variance of pushed samples using
// Welford's algorithm.
type Statistic struct {
	samples int

	oldM float64
	newM float64
	oldS float64
	newS float64
}

func (s *Statistic) Push(val float64) {
	s.samples++
	if s.samples == 1 {
		s.oldM = val
		s.newM = val
		s.oldS = 0
	} else {
		s.newM = s.oldM + (val-s.oldM)/float64(s.samples)
		s.newS = s.oldS + (val-s.oldM)*(val-s.newM)
		s.oldM = s.newM
		s.oldS = s.newS
	}
}

func (s *Statistic) Mean() float64 {
	if s.samples > 0 {
		return s.newM
	}
	return 0.0
}

func (s *Statistic) Variance() float64 {
	if s.samples <= 1 {
		return 0.0
	}
	return s.newS / float64(s.samples-1)
}

func (s *Statistic) Stdev() float64 {
	return math.Sqrt(s.Variance())
}

// ConfidenceInterval returns the half-width of the confidence interval around
// the running mean, for a confidence level given in percent.
func (s *Statistic) ConfidenceInterval(confidence float64) float64 {
	if s.samples < 2 {
		return 0.0
	}
	return ZVal(confidence) * s.Stdev() / math.Sqrt(float64(s.samples))
}

// ZVal returns the two-tailed Z-value associated with a specific confidence
// interval. The interval is a number from 0 to 100 percent.
func ZVal(confidenceInterval float64) float64 {
	dist := distuv.Normal{
		Mu:    0,
		Sigma: 1,
	}
	area := (1 + (confidenceInterval / 100)) / 2
	return dist.Quantile(area)
}
