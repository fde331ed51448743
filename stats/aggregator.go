package stats

import (
	"fmt"

	"github.com/katalvlaran/stepheight/fit"
	"github.com/katalvlaran/stepheight/profile"
)

// Aggregator accumulates successful fit results.
type Aggregator struct {
	policy ResidualPolicy

	height, pt, residualRange, radius channel

	plot      profile.Profile // X from the first result, Z the running sum
	plotCount int
	skipped   int
}

// NewAggregator returns an empty Aggregator.
func NewAggregator(opts ...Option) *Aggregator {
	a := &Aggregator{policy: SkipMismatched}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Update adds r to the statistics.
//
// Errors:
//   - ErrUnsuccessfulFit if r.Status is not fit.StatusSuccess.
//   - ErrResidualLengthMismatch under RejectMismatched.
//
// On error nothing is accumulated.
func (a *Aggregator) Update(r fit.Result) error {
	if r.Status != fit.StatusSuccess {
		return fmt.Errorf("status %v: %w", r.Status, ErrUnsuccessfulFit)
	}
	if a.plot == nil {
		a.plot = make(profile.Profile, len(r.Residuals))
		for i, p := range r.Residuals {
			a.plot[i] = profile.Point{X: p.X}
		}
		a.plotCount = 0
	}
	match := len(a.plot) == len(r.Residuals)
	if !match && a.policy == RejectMismatched {
		return fmt.Errorf("got %d, want %d: %w", len(r.Residuals), len(a.plot), ErrResidualLengthMismatch)
	}

	a.height.add(r.Height)
	a.pt.add(r.Pt)
	a.residualRange.add(r.RangeOfResiduals)
	a.radius.add(r.Radius)

	if !match {
		a.skipped++
		return nil
	}
	for i := range a.plot {
		a.plot[i].Z += r.Residuals[i].Z
	}
	a.plotCount++

	return nil
}

// Restart discards everything accumulated so far. The policy is kept.
func (a *Aggregator) Restart() {
	a.height.reset()
	a.pt.reset()
	a.residualRange.reset()
	a.radius.reset()
	a.plot = nil
	a.plotCount = 0
	a.skipped = 0
}

// Count returns the number of accepted results.
func (a *Aggregator) Count() int { return len(a.height.values) }

// AverageHeight returns the mean step height or depth.
func (a *Aggregator) AverageHeight() float64 { return a.height.mean() }

// HeightRange returns max minus min of the heights.
func (a *Aggregator) HeightRange() float64 { return a.height.span() }

// HeightStdDev returns the sample standard deviation of the height, NaN for
// fewer than two results.
func (a *Aggregator) HeightStdDev() float64 { return a.height.stdDev() }

// AveragePt returns the mean Pt.
func (a *Aggregator) AveragePt() float64 { return a.pt.mean() }

// PtRange returns max minus min of Pt.
func (a *Aggregator) PtRange() float64 { return a.pt.span() }

// AverageRangeOfResiduals returns the mean residual range.
func (a *Aggregator) AverageRangeOfResiduals() float64 { return a.residualRange.mean() }

// RangeOfResidualsRange returns max minus min of the residual ranges.
func (a *Aggregator) RangeOfResidualsRange() float64 { return a.residualRange.span() }

// AverageRadius returns the mean radius. Radius values are NaN unless every
// result was cylindrical.
func (a *Aggregator) AverageRadius() float64 { return a.radius.mean() }

// RadiusRange returns max minus min of the radii.
func (a *Aggregator) RadiusRange() float64 { return a.radius.span() }

// ResidualPlotCount returns the number of curves in the residual average.
func (a *Aggregator) ResidualPlotCount() int { return a.plotCount }

// SkippedResidualPlots returns the number of accepted results whose curve
// was left out of the residual average.
func (a *Aggregator) SkippedResidualPlots() int { return a.skipped }

// AverageResidualPlot returns the pointwise average residual curve, or nil
// if no curve has contributed yet. The slice is a copy.
func (a *Aggregator) AverageResidualPlot() profile.Profile {
	if a.plotCount == 0 {
		return nil
	}
	avg := make(profile.Profile, len(a.plot))
	n := float64(a.plotCount)
	for i, p := range a.plot {
		avg[i] = profile.Point{X: p.X, Y: p.Y, Z: p.Z / n}
	}

	return avg
}
