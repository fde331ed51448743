package fit

import (
	"math"

	"github.com/katalvlaran/stepheight/boundary"
	"github.com/katalvlaran/stepheight/feature"
	"github.com/katalvlaran/stepheight/profile"
)

// Status classifies the outcome of one fit.
type Status int

const (
	// StatusUnknown is the zero value; a returned Result never carries it.
	StatusUnknown Status = iota
	StatusSuccess
	StatusBadEdgePosition
	StatusNoData
	StatusNotSupported
	StatusDegenerate
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "Success"
	case StatusBadEdgePosition:
		return "BadEdgePosition"
	case StatusNoData:
		return "NoData"
	case StatusNotSupported:
		return "NotSupported"
	case StatusDegenerate:
		return "Degenerate"
	default:
		return "Unknown"
	}
}

// Err returns the sentinel error matching s, or nil for StatusSuccess.
func (s Status) Err() error {
	switch s {
	case StatusSuccess:
		return nil
	case StatusBadEdgePosition:
		return ErrBadEdgePosition
	case StatusNoData:
		return ErrNoData
	case StatusNotSupported:
		return ErrNotSupported
	case StatusDegenerate:
		return ErrDegenerateFit
	default:
		return ErrUnknownFeature
	}
}

// Result is the outcome of fitting one profile. Scalars that were not
// computed are NaN. Radius, CenterPosition and Asymmetry are only set for
// cylindrical features.
type Result struct {
	Feature feature.Type
	Status  Status

	Height            float64 // fitted feature height or depth
	Pt                float64 // peak-to-valley shape indicator
	RangeOfResiduals  float64 // max - min of Residuals
	NumberOfFitPoints int

	FeatureWidth    float64 // |right edge - left edge|
	WallWidth       float64 // |right wall - left wall|
	YPosition       float64 // transverse position of the profile
	FeatureCenter   float64 // offset subtracted from all X before the fit
	ProfileTooShort bool    // evaluation span exceeds the sampled range

	Radius         float64 // cylinder radius, 1/|2a|
	CenterPosition float64 // vertex position relative to FeatureCenter
	Asymmetry      float64 // (2·CenterPosition - (l+r)) / FeatureWidth

	// Boundaries of the evaluation domains, feature-centred frame. Valid
	// once Status is Success, BadEdgePosition or Degenerate.
	Boundaries boundary.Boundaries

	// Residuals and Predicted hold one sample per fitted point, sorted by
	// ascending X in the feature-centred frame.
	Residuals profile.Profile
	Predicted profile.Profile
}

// newResult returns the reset state every fit starts from.
func newResult(t feature.Type) Result {
	nan := math.NaN()

	return Result{
		Feature:          t,
		Status:           StatusUnknown,
		Height:           nan,
		Pt:               nan,
		RangeOfResiduals: nan,
		FeatureWidth:     nan,
		WallWidth:        nan,
		YPosition:        nan,
		FeatureCenter:    nan,
		Radius:           nan,
		CenterPosition:   nan,
		Asymmetry:        nan,
	}
}
