// Package report renders the outputs of a step-height evaluation: one
// fixed-width line per fitted profile, the calibration report that collects
// input metadata, fit parameters and aggregated results in "Key = value"
// form, and the CSV file of the average residual curve.
//
// Lengths are passed in metres and printed in micrometres; residual
// heights in the CSV are printed in nanometres.
package report
