package stats

import "errors"

var (
	// ErrUnsuccessfulFit is returned by Update for a result whose Status is
	// not fit.StatusSuccess.
	ErrUnsuccessfulFit = errors.New("stats: fit result not successful")

	// ErrResidualLengthMismatch is returned by Update under RejectMismatched
	// when the residual count differs from the first accepted result.
	ErrResidualLengthMismatch = errors.New("stats: residual count differs from accumulated plot")
)
