package fit

import (
	"math"

	"github.com/katalvlaran/stepheight/boundary"
	"github.com/katalvlaran/stepheight/profile"
)

// fitCylindrical levels the profile with a line through both reference
// windows, fits a parabola to the levelled feature window and fills Height,
// Pt, Radius, CenterPosition, Asymmetry, residuals and predicted values.
// leftEdge and rightEdge are in the feature-centred frame.
func (e *Evaluator) fitCylindrical(pts profile.Profile, bnd boundary.Boundaries, sign int, leftEdge, rightEdge float64, res *Result) error {
	ref := make(profile.Profile, 0, len(pts))
	feat := make(profile.Profile, 0, len(pts))
	for _, p := range pts {
		if bnd.InReference(p.X) {
			ref = append(ref, p)
		}
	}
	for _, p := range pts {
		if bnd.InFeature(p.X) {
			feat = append(feat, p)
		}
	}
	if len(ref) < 2 || len(feat) < 3 {
		return ErrDegenerateFit
	}

	// Reference line z = k·x + d.
	ls := accumulate(pts, indicator(bnd.InReference), 1)
	numAB := ls.x[0]
	lineDen := numAB*ls.x[2] - ls.x[1]*ls.x[1]
	if lineDen == 0 {
		return ErrDegenerateFit
	}
	k := (numAB*ls.xz[1] - ls.x[1]*ls.xz[0]) / lineDen
	d := (ls.xz[0] - k*ls.x[1]) / numAB

	// Level both domains; levelled reference heights are the residuals.
	for i := range ref {
		ref[i].Z -= k*ref[i].X + d
	}
	for i := range feat {
		feat[i].Z -= k*feat[i].X + d
	}

	// Parabola z = a·x² + b·x + c over the levelled feature window.
	ps := accumulate(feat, unit, 2)
	numC := ps.x[0]
	sX, sXX, sXXX, sXXXX := ps.x[1], ps.x[2], ps.x[3], ps.x[4]
	sZ, sXZ, sXXZ := ps.xz[0], ps.xz[1], ps.xz[2]

	fiN := numC*sXX*sXXXX - sX*sX*sXXXX - numC*sXXX*sXXX + 2.0*sX*sXX*sXXX - sXX*sXX*sXX
	if fiN == 0 {
		return ErrDegenerateFit
	}
	fiA := sX*sZ*sXXX - sZ*sXX*sXX + sX*sXX*sXZ - numC*sXXX*sXZ + numC*sXX*sXXZ - sX*sX*sXXZ
	fiB := sZ*sXX*sXXX - sX*sZ*sXXXX + numC*sXXXX*sXZ
	fiB += sX*sXX*sXXZ - numC*sXXX*sXXZ - sXX*sXX*sXZ
	fiC := sZ*sXX*sXXXX - sZ*sXXX*sXXX
	fiC += sXX*sXXX*sXZ - sX*sXXXX*sXZ
	fiC += sX*sXXX*sXXZ - sXX*sXX*sXXZ

	a := fiA / fiN
	b := fiB / fiN
	c := fiC / fiN
	if a == 0 {
		return ErrDegenerateFit
	}

	vertex := c - b*b/(4.0*a)
	res.CenterPosition = -b / (2.0 * a)
	res.Radius = 1.0 / math.Abs(2.0*a)
	res.Asymmetry = (2.0*res.CenterPosition - (rightEdge + leftEdge)) / bnd.FeatureWidth

	e.debug("cylindrical fit", "k", k, "d", d, "a", a, "b", b, "c", c,
		"reference_points", len(ref), "feature_points", len(feat))

	refMin, _ := ref.MinZ()
	refMax, _ := ref.MaxZ()
	featMin, _ := feat.MinZ()
	featMax, _ := feat.MaxZ()
	if sign > 0 {
		res.Height = -vertex
		res.Pt = refMax - featMin
	} else {
		res.Height = vertex
		res.Pt = featMax - refMin
	}

	predicted := make(profile.Profile, 0, len(ref)+len(feat))
	residuals := make(profile.Profile, 0, len(ref)+len(feat))
	for _, p := range ref {
		predicted = append(predicted, profile.Point{X: p.X, Y: p.Y, Z: k*p.X + d})
		residuals = append(residuals, p)
	}
	for _, p := range feat {
		z := a*p.X*p.X + b*p.X + c
		predicted = append(predicted, profile.Point{X: p.X, Y: p.Y, Z: z + (k*p.X + d)})
		residuals = append(residuals, profile.Point{X: p.X, Y: p.Y, Z: p.Z - z})
	}

	res.RangeOfResiduals, _ = residuals.RangeZ()
	res.Residuals = residuals.SortByX()
	res.Predicted = predicted.SortByX()
	res.NumberOfFitPoints = len(residuals)

	return nil
}
