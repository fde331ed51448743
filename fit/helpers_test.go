package fit_test

import (
	"math"

	"github.com/katalvlaran/stepheight/profile"
)

// shape returns the height of a feature at u, the offset from its centre.
type shape func(u float64) float64

// sample builds an evenly spaced profile centred at x0 covering
// [x0-halfSpan, x0+halfSpan] with step dx. z = tilt·u + offset + f(u).
func sample(x0, halfSpan, dx, tilt, offset float64, f shape) profile.Profile {
	n := int(math.Round(2*halfSpan/dx)) + 1
	p := make(profile.Profile, n)
	for i := range p {
		u := -halfSpan + float64(i)*dx
		p[i] = profile.Point{X: x0 + u, Y: 1e-3, Z: tilt*u + offset + f(u)}
	}

	return p
}

// rectangular is a groove of the given depth between -halfWidth and
// halfWidth (a ridge for negative depth), symmetric around zero.
func rectangular(halfWidth, depth float64) shape {
	return func(u float64) float64 {
		if math.Abs(u) <= halfWidth {
			return -depth / 2
		}
		return depth / 2
	}
}

// trapezoidal is a groove whose floor spans ±halfWidth and whose walls rise
// linearly to the top at ±halfWall.
func trapezoidal(halfWidth, halfWall, depth float64) shape {
	return func(u float64) float64 {
		a := math.Abs(u)
		switch {
		case a <= halfWidth:
			return -depth / 2
		case a >= halfWall:
			return depth / 2
		default:
			return -depth/2 + depth*(a-halfWidth)/(halfWall-halfWidth)
		}
	}
}

// cylindrical adds a·u² + b·u + c inside ±halfWidth and nothing outside.
func cylindrical(halfWidth, a, b, c float64) shape {
	return func(u float64) float64 {
		if math.Abs(u) < halfWidth {
			return a*u*u + b*u + c
		}
		return 0
	}
}

// sortedByX reports whether p is ordered by ascending X.
func sortedByX(p profile.Profile) bool {
	for i := 1; i < len(p); i++ {
		if p[i].X < p[i-1].X {
			return false
		}
	}

	return true
}
