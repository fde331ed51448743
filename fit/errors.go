package fit

import "errors"

// Sentinel errors returned by New and Fit. Each non-success Status has one
// matching sentinel (see Status.Err).
var (
	// ErrNoData indicates that no valid sample remained after dropping NaNs.
	ErrNoData = errors.New("fit: no valid data in profile")

	// ErrBadEdgePosition indicates that the evaluation span, or an edge
	// itself, lies outside the sampled range of the profile.
	ErrBadEdgePosition = errors.New("fit: feature edge position outside of profile")

	// ErrNotSupported marks a feature family without a fit algorithm
	// (single rising or falling edges).
	ErrNotSupported = errors.New("fit: feature family not supported")

	// ErrUnknownFeature is returned by New for feature.None or an
	// out-of-range feature type.
	ErrUnknownFeature = errors.New("fit: unknown feature type")

	// ErrDegenerateFit indicates a singular normal-equation system, usually
	// an evaluation window holding too few samples.
	ErrDegenerateFit = errors.New("fit: degenerate fit system")
)
