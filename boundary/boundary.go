package boundary

import (
	"fmt"
	"math"
)

// Nominal normalised domain lengths.
const (
	DefaultE = 3.0
	DefaultA = 2.0 / 3.0
	DefaultC = 1.0 / 3.0
)

// Generator converts edge and wall positions into Boundaries.
type Generator struct {
	e, a, c float64
}

// NewGenerator validates the normalised lengths e (overall), a (single
// reference window) and c (feature window) and returns a Generator.
func NewGenerator(e, a, c float64) (Generator, error) {
	for _, v := range [...]float64{e, a, c} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Generator{}, fmt.Errorf("E=%g A=%g C=%g: %w", e, a, c, ErrInvalidDomainLengths)
		}
	}
	if e < 1 || a <= 0 || a > (e-1)/2 || c <= 0 || c > 1 {
		return Generator{}, fmt.Errorf("E=%g A=%g C=%g: %w", e, a, c, ErrInvalidDomainLengths)
	}

	return Generator{e: e, a: a, c: c}, nil
}

// DefaultGenerator returns a Generator with the nominal lengths 3, 2/3, 1/3.
func DefaultGenerator() Generator {
	return Generator{e: DefaultE, a: DefaultA, c: DefaultC}
}

// Lengths returns the normalised lengths E, A and C.
func (g Generator) Lengths() (e, a, c float64) {
	return g.e, g.a, g.c
}

// Boundaries are the six domain limits of one fit plus the derived widths.
// X1 ≤ X2 ≤ X5 ≤ X6 and X1 ≤ X3 ≤ X4 ≤ X6 hold for every Generator built by
// NewGenerator.
type Boundaries struct {
	X1, X2 float64 // left reference window
	X3, X4 float64 // feature window
	X5, X6 float64 // right reference window

	FeatureWidth float64 // right edge - left edge
	WallWidth    float64 // right wall - left wall
}

// Generate returns the boundaries of a rectangular feature; the wall window
// collapses onto the edge window.
func (g Generator) Generate(leftEdge, rightEdge float64) Boundaries {
	return g.GenerateWithWalls(leftEdge, rightEdge, leftEdge, rightEdge)
}

// GenerateWithWalls returns the boundaries of a trapezoidal feature. The
// argument order of each pair is irrelevant, and the wall pair is widened
// so that it never lies inside the edge pair.
func (g Generator) GenerateWithWalls(leftEdge, rightEdge, leftWall, rightWall float64) Boundaries {
	if leftEdge > rightEdge {
		leftEdge, rightEdge = rightEdge, leftEdge
	}
	if leftWall > rightWall {
		leftWall, rightWall = rightWall, leftWall
	}
	if leftWall > leftEdge {
		leftWall = leftEdge
	}
	if rightWall < rightEdge {
		rightWall = rightEdge
	}

	w := rightEdge - leftEdge // unit of all normalised lengths
	lengthE := g.e * w
	lengthA := g.a * w
	lengthC := g.c * w
	lengthRef := (lengthE - w) / 2

	b := Boundaries{FeatureWidth: w, WallWidth: rightWall - leftWall}
	b.X1 = leftWall - lengthRef
	b.X6 = rightWall + lengthRef
	b.X2 = b.X1 + lengthA
	b.X5 = b.X6 - lengthA
	b.X3 = leftEdge + (w-lengthC)/2
	b.X4 = b.X3 + lengthC

	return b
}

// InLeftReference reports whether x lies in [X1, X2].
func (b Boundaries) InLeftReference(x float64) bool { return x >= b.X1 && x <= b.X2 }

// InRightReference reports whether x lies in [X5, X6].
func (b Boundaries) InRightReference(x float64) bool { return x >= b.X5 && x <= b.X6 }

// InReference reports whether x lies in either reference window.
func (b Boundaries) InReference(x float64) bool {
	return b.InLeftReference(x) || b.InRightReference(x)
}

// InFeature reports whether x lies in [X3, X4].
func (b Boundaries) InFeature(x float64) bool { return x >= b.X3 && x <= b.X4 }

// Covers reports whether the sampled range [minX, maxX] contains the whole
// evaluation span [X1, X6].
func (b Boundaries) Covers(minX, maxX float64) bool {
	return b.X1 >= minX && b.X6 <= maxX
}

// Translate returns b with every coordinate moved by +dx.
func (b Boundaries) Translate(dx float64) Boundaries {
	b.X1 += dx
	b.X2 += dx
	b.X3 += dx
	b.X4 += dx
	b.X5 += dx
	b.X6 += dx

	return b
}
