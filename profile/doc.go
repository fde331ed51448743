// Package profile holds the sample memory model shared by every stage of a
// step-height evaluation: a Point is one (x, y, z) topography sample and a
// Profile is one scan line of samples at a constant transverse position.
//
// Conventions:
//
//   - X is the scan-direction coordinate, Y the transverse position of the
//     whole line, Z the measured height. All share one length unit (metres
//     for data read by package sdf).
//   - A sample is invalid when X or Z is NaN. Invalid samples are kept by
//     readers and dropped by Valid before any arithmetic.
//   - Operations never mutate their receiver; Shift, Valid and SortByX return
//     fresh slices so a caller's profile can be reused across fits.
//
// Point is an alias of r3.Vector from github.com/golang/geo, so vector
// arithmetic (Sub, Add, Mul) is available directly on samples.
package profile
