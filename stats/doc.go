// Package stats aggregates the results of repeated profile fits.
//
// An Aggregator keeps four scalar channels (height, Pt, range of residuals
// and cylinder radius) and reports their average and range (max - min); the
// height channel also reports the sample standard deviation. It further
// keeps a pointwise average of the residual curves.
//
// The residual average is only meaningful while every contributing result
// carries the same number of residuals at the same X positions, which holds
// for equally sampled profiles evaluated with fixed edges. The first
// accepted result fixes the X grid; results with a different residual count
// are handled by a ResidualPolicy:
//
//   - SkipMismatched (default): scalars are accumulated, the residual curve
//     is ignored and counted in SkippedResidualPlots.
//   - RejectMismatched: Update returns ErrResidualLengthMismatch and nothing
//     is accumulated.
//
// A channel that received a NaN (for instance the radius of a flat-topped
// feature) reports NaN. Aggregator is not safe for concurrent use.
package stats
