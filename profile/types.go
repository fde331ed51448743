package profile

import (
	"errors"

	"github.com/golang/geo/r3"
)

// ErrEmptyProfile indicates that an operation needing at least one valid
// sample received none.
var ErrEmptyProfile = errors.New("profile: no valid samples")

// Point is a single topography sample: X along the scan, Y transverse, Z height.
type Point = r3.Vector

// Profile is one scan line, conventionally ordered by increasing X with a
// constant Y across all samples.
type Profile []Point

// IsValid reports whether p can take part in a fit (neither X nor Z is NaN).
func IsValid(p Point) bool {
	return p.X == p.X && p.Z == p.Z // NaN != NaN
}
