package fit

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/stepheight/boundary"
	"github.com/katalvlaran/stepheight/profile"
)

// dummy returns the δ(x) indicator of a flat-topped fit: +sign on both
// reference windows, -sign on the feature window (which takes precedence)
// and 0 elsewhere.
func dummy(b boundary.Boundaries, sign int) weightFunc {
	return func(x float64) float64 {
		d := 0
		if b.InLeftReference(x) || b.InRightReference(x) {
			d = sign
		}
		if b.InFeature(x) {
			d = -sign
		}
		return float64(d)
	}
}

// fitFlatTopped solves z ≈ a·x + b + δ(x)·c over all samples with δ ≠ 0 and
// fills Height, Pt, residuals and predicted values of res.
func (e *Evaluator) fitFlatTopped(pts profile.Profile, bnd boundary.Boundaries, sign int, res *Result) error {
	delta := dummy(bnd, sign)
	abs := accumulate(pts, absolute(delta), 1)
	sgn := accumulate(pts, delta, 1)

	var refCount, featCount int
	for _, p := range pts {
		switch d := delta(p.X); {
		case d == float64(sign):
			refCount++
		case d == float64(-sign):
			featCount++
		}
	}
	if refCount == 0 || featCount == 0 {
		return ErrDegenerateFit
	}

	num := abs.x[0]
	sigmaX := abs.x[1]
	sigmaXX := abs.x[2]
	sigmaZ := abs.xz[0]
	sigmaXZ := abs.xz[1]
	deltaNum := sgn.x[0]
	deltaSigmaX := sgn.x[1]
	deltaSigmaZ := sgn.xz[0]

	den := num*deltaSigmaX*deltaSigmaX - 2*deltaNum*deltaSigmaX*sigmaX + num*sigmaX*sigmaX + deltaNum*deltaNum*sigmaXX - num*num*sigmaXX
	if den == 0 {
		return ErrDegenerateFit
	}
	a := (num*deltaSigmaX*deltaSigmaZ - deltaNum*deltaSigmaZ*sigmaX + deltaNum*deltaNum*sigmaXZ - num*num*sigmaXZ - deltaNum*deltaSigmaX*sigmaZ + num*sigmaX*sigmaZ) / den
	b := (deltaNum*deltaSigmaZ*sigmaXX - deltaSigmaX*deltaSigmaZ*sigmaX - deltaNum*deltaSigmaX*sigmaXZ + num*sigmaX*sigmaXZ + deltaSigmaX*deltaSigmaX*sigmaZ - num*sigmaXX*sigmaZ) / den
	c := (deltaSigmaZ*sigmaX*sigmaX - deltaSigmaX*sigmaX*sigmaZ + num*deltaSigmaX*sigmaXZ - num*deltaSigmaZ*sigmaXX + deltaNum*sigmaZ*sigmaXX - deltaNum*sigmaX*sigmaXZ) / den
	height := 2 * c

	e.debug("flat-topped fit", "a", a, "b", b, "c", c, "points", abs.count)

	predicted := make(profile.Profile, 0, abs.count)
	residuals := make(profile.Profile, 0, abs.count)
	weighted := make([]float64, 0, abs.count) // residual·δ, for Pt
	for _, p := range pts {
		d := delta(p.X)
		if d == 0 {
			continue
		}
		z := p.X*a + b + d*c
		r := p.Z - z
		predicted = append(predicted, profile.Point{X: p.X, Y: p.Y, Z: z})
		residuals = append(residuals, profile.Point{X: p.X, Y: p.Y, Z: r})
		weighted = append(weighted, r*d)
	}

	res.Height = height
	res.Pt = height + floats.Max(weighted)
	res.RangeOfResiduals, _ = residuals.RangeZ()
	res.Residuals = residuals.SortByX()
	res.Predicted = predicted.SortByX()
	res.NumberOfFitPoints = len(residuals)

	return nil
}
