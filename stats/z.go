package stats

import "gonum.org/v1/gonum/stat/distuv"

// ZVal returns the two-tailed Z-value associated with a specific confidence interval.
// The interval is a number from 0 to 100 percent.
func ZVal(confidenceInterval float64) float64 {
	dist := distuv.Normal{
		Mu:    0,
		Sigma: 1,
	}
	area := (1 + (confidenceInterval / 100)) / 2
	zValue := dist.Quantile(area)
	return zValue
}

// MeanCI returns the half-width of the given confidence interval around
// the running mean.
func (s *Statistic) MeanCI(confidenceInterval float64) float64 {
	if s.totalIterations == 0 {
		return 0.0
	}
	return ZVal(confidenceInterval) * s.StandardError()
}
