package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// channel stores every value of one scalar output.
type channel struct {
	values []float64
}

func (c *channel) add(v float64) { c.values = append(c.values, v) }

func (c *channel) reset() { c.values = c.values[:0] }

// mean returns the arithmetic mean, NaN when empty.
func (c *channel) mean() float64 {
	if len(c.values) == 0 {
		return math.NaN()
	}

	return stat.Mean(c.values, nil)
}

// span returns max - min. floats.Max and floats.Min skip NaN, so a NaN
// anywhere is checked first.
func (c *channel) span() float64 {
	if len(c.values) == 0 || floats.HasNaN(c.values) {
		return math.NaN()
	}

	return floats.Max(c.values) - floats.Min(c.values)
}

// stdDev returns the sample (n-1) standard deviation, NaN below two values.
func (c *channel) stdDev() float64 {
	if len(c.values) < 2 {
		return math.NaN()
	}

	return stat.StdDev(c.values, nil)
}
