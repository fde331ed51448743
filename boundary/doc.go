// Package boundary partitions a profile into the evaluation domains of a
// step-height fit.
//
// Given the two edge positions of a feature (and optionally the two wall
// positions of a trapezoidal feature) a Generator produces six ordered
// coordinates:
//
//	X1 ──── X2        X3 ── X4        X5 ──── X6
//	 left reference    feature window   right reference
//
// All window lengths are expressed as multiples of the feature width W:
//
//   - E: overall evaluation length (nominal 3 W)
//   - A: length of each reference window (nominal 2/3 W)
//   - C: length of the feature window (nominal 1/3 W)
//
// The reference windows sit symmetrically outside the wall pair, the feature
// window is centred on the edge pair, so one set of normalised lengths serves
// features of any absolute width.
//
// A Generator is immutable and safe for concurrent use.
package boundary
