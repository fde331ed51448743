package fit

import (
	"math"

	"github.com/katalvlaran/stepheight/profile"
)

// maxDegree is the highest polynomial degree accumulate supports.
const maxDegree = 2

// sums holds the weighted power sums of one sub-domain:
//
//	x[k]  = Σ w·xᵏ    for k = 0..2·degree
//	xz[k] = Σ w·xᵏ·z  for k = 0..degree
//
// x[0] is the weighted point count.
type sums struct {
	x     [2*maxDegree + 1]float64
	xz    [maxDegree + 1]float64
	count int // points with a non-zero weight
}

// weightFunc returns the weight of the sample at x; 0 excludes it.
type weightFunc func(x float64) float64

// unit weighs every sample with 1.
func unit(float64) float64 { return 1 }

// indicator turns a domain predicate into a 0/1 weight.
func indicator(in func(x float64) bool) weightFunc {
	return func(x float64) float64 {
		if in(x) {
			return 1
		}
		return 0
	}
}

// absolute returns |w(x)|.
func absolute(w weightFunc) weightFunc {
	return func(x float64) float64 { return math.Abs(w(x)) }
}

// accumulate builds the power sums needed to fit a polynomial of the given
// degree (at most maxDegree) over the samples of pts selected by w. Samples
// are visited in order, so sums are reproducible bit for bit.
func accumulate(pts profile.Profile, w weightFunc, degree int) sums {
	var s sums
	for _, p := range pts {
		wt := w(p.X)
		if wt == 0 {
			continue
		}
		s.count++
		xk := wt
		for k := 0; k <= 2*degree; k++ {
			s.x[k] += xk
			if k <= degree {
				s.xz[k] += xk * p.Z
			}
			xk *= p.X
		}
	}

	return s
}
