package fit

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/stepheight/boundary"
	"github.com/katalvlaran/stepheight/feature"
	"github.com/katalvlaran/stepheight/profile"
)

// Evaluator fits one feature type with fixed normalised domain lengths.
type Evaluator struct {
	feature   feature.Type
	generator boundary.Generator
	logger    *slog.Logger
}

// New returns an Evaluator for feature type t.
//
// Errors:
//   - ErrUnknownFeature for feature.None or values outside the enumeration.
//   - boundary.ErrInvalidDomainLengths for unusable WithDomainLengths values.
func New(t feature.Type, opts ...Option) (*Evaluator, error) {
	if t.Family() == feature.FamilyNone {
		return nil, fmt.Errorf("%v: %w", t, ErrUnknownFeature)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	g, err := boundary.NewGenerator(o.e, o.a, o.c)
	if err != nil {
		return nil, err
	}

	return &Evaluator{feature: t, generator: g, logger: o.logger}, nil
}

// Feature returns the feature type fitted by e.
func (e *Evaluator) Feature() feature.Type { return e.feature }

// Generator returns the boundary generator used by e.
func (e *Evaluator) Generator() boundary.Generator { return e.generator }

// Fit evaluates p for a feature between leftEdge and rightEdge, with the wall
// positions equal to the edges. See FitWithWalls.
func (e *Evaluator) Fit(p profile.Profile, leftEdge, rightEdge float64) (Result, error) {
	return e.FitWithWalls(p, leftEdge, rightEdge, leftEdge, rightEdge)
}

// FitWithWalls evaluates p for a feature whose edges (the inner, feature-
// window limits) and walls (the outer limits of a trapezoid) are given in the
// X unit of p. p is not modified.
//
// The returned Result always carries a Status. For any status other than
// StatusSuccess the error is the matching sentinel (ErrNoData,
// ErrBadEdgePosition, ErrNotSupported, ErrDegenerateFit) and Height, Pt and
// the residuals are left unset.
func (e *Evaluator) FitWithWalls(p profile.Profile, leftEdge, rightEdge, leftWall, rightWall float64) (Result, error) {
	res := newResult(e.feature)

	valid := p.Valid()
	if len(valid) == 0 {
		res.Status = StatusNoData
		return res, ErrNoData
	}
	res.YPosition = valid[0].Y

	// Centre on the feature; large absolute X values spoil the sums.
	center := (leftEdge + rightEdge) / 2
	res.FeatureCenter = center
	pts := valid.Shift(center)
	leftEdge -= center
	rightEdge -= center
	leftWall -= center
	rightWall -= center

	family := e.feature.Family()
	if family == feature.SingleEdge {
		return res, e.fitSingleEdge(&res)
	}

	bnd := e.generator.GenerateWithWalls(leftEdge, rightEdge, leftWall, rightWall)
	res.Boundaries = bnd
	res.FeatureWidth = bnd.FeatureWidth
	res.WallWidth = bnd.WallWidth

	minX, _ := pts.MinX()
	maxX, _ := pts.MaxX()
	res.ProfileTooShort = !bnd.Covers(minX, maxX)
	e.debug("boundaries", "y", res.YPosition, "center", center,
		"x1", bnd.X1, "x2", bnd.X2, "x3", bnd.X3, "x4", bnd.X4, "x5", bnd.X5, "x6", bnd.X6,
		"too_short", res.ProfileTooShort)
	if res.ProfileTooShort || !inside(leftEdge, minX, maxX) || !inside(rightEdge, minX, maxX) {
		res.Status = StatusBadEdgePosition
		return res, ErrBadEdgePosition
	}

	var err error
	switch family {
	case feature.FlatTopped:
		err = e.fitFlatTopped(pts, bnd, e.feature.Sign(), &res)
	case feature.Cylindrical:
		err = e.fitCylindrical(pts, bnd, e.feature.Sign(), leftEdge, rightEdge, &res)
	}
	if err != nil {
		// handlers validate before writing, so res holds no partial outputs
		res.Status = StatusDegenerate
		return res, err
	}
	res.Status = StatusSuccess

	return res, nil
}

// inside reports whether v lies in [lo, hi].
func inside(v, lo, hi float64) bool { return v >= lo && v <= hi }

func (e *Evaluator) debug(msg string, args ...any) {
	if e.logger == nil {
		return
	}
	e.logger.Debug(msg, append([]any{"feature", e.feature.String()}, args...)...)
}
