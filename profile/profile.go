package profile

import (
	"cmp"
	"slices"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats"
)

// Clone returns an independent copy of p. A nil profile clones to nil.
func (p Profile) Clone() Profile {
	if p == nil {
		return nil
	}
	out := make(Profile, len(p))
	copy(out, p)

	return out
}

// Valid returns a new profile holding only the samples accepted by IsValid,
// in their original order.
func (p Profile) Valid() Profile {
	out := make(Profile, 0, len(p))
	for _, pt := range p {
		if IsValid(pt) {
			out = append(out, pt)
		}
	}

	return out
}

// Shift returns a copy of p with every X moved by -dx. Y and Z are untouched.
func (p Profile) Shift(dx float64) Profile {
	offset := r3.Vector{X: dx}
	out := make(Profile, len(p))
	for i, pt := range p {
		out[i] = pt.Sub(offset)
	}

	return out
}

// SortByX returns a copy of p ordered by ascending X. Samples sharing an X
// keep their relative order.
func (p Profile) SortByX() Profile {
	out := p.Clone()
	slices.SortStableFunc(out, func(a, b Point) int {
		return cmp.Compare(a.X, b.X)
	})

	return out
}

// Xs returns the X coordinates of p.
func (p Profile) Xs() []float64 {
	xs := make([]float64, len(p))
	for i, pt := range p {
		xs[i] = pt.X
	}

	return xs
}

// Zs returns the heights of p.
func (p Profile) Zs() []float64 {
	zs := make([]float64, len(p))
	for i, pt := range p {
		zs[i] = pt.Z
	}

	return zs
}

// MinX returns the smallest X of p, or ErrEmptyProfile.
func (p Profile) MinX() (float64, error) {
	if len(p) == 0 {
		return 0, ErrEmptyProfile
	}

	return floats.Min(p.Xs()), nil
}

// MaxX returns the largest X of p, or ErrEmptyProfile.
func (p Profile) MaxX() (float64, error) {
	if len(p) == 0 {
		return 0, ErrEmptyProfile
	}

	return floats.Max(p.Xs()), nil
}

// MinZ returns the lowest height of p, or ErrEmptyProfile.
func (p Profile) MinZ() (float64, error) {
	if len(p) == 0 {
		return 0, ErrEmptyProfile
	}

	return floats.Min(p.Zs()), nil
}

// MaxZ returns the highest height of p, or ErrEmptyProfile.
func (p Profile) MaxZ() (float64, error) {
	if len(p) == 0 {
		return 0, ErrEmptyProfile
	}

	return floats.Max(p.Zs()), nil
}

// RangeZ returns max(Z) - min(Z), or ErrEmptyProfile.
func (p Profile) RangeZ() (float64, error) {
	if len(p) == 0 {
		return 0, ErrEmptyProfile
	}
	zs := p.Zs()

	return floats.Max(zs) - floats.Min(zs), nil
}
