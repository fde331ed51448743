package sdf

import (
	"fmt"
	"math"

	"github.com/katalvlaran/stepheight/profile"
)

// Signature is the first line of every ASCII surface data file.
const Signature = "aBCR-1.0"

// MaxValues bounds NumPoints*NumProfiles of an accepted header.
const MaxValues = math.MaxInt32

// Header holds the header section. Scales are in metres per unit.
type Header struct {
	ManufacID   string
	CreateDate  string
	ModDate     string
	NumPoints   int
	NumProfiles int
	XScale      float64
	YScale      float64
	ZScale      float64
	ZResolution float64
	Compression int
	DataType    int
	CheckType   int

	// Extra keeps header keys not listed above, verbatim.
	Extra map[string]string
}

func (h Header) validate() error {
	if h.NumPoints <= 0 || h.NumProfiles <= 0 {
		return fmt.Errorf("NumPoints=%d NumProfiles=%d: %w", h.NumPoints, h.NumProfiles, ErrHeader)
	}
	if h.NumPoints > MaxValues/h.NumProfiles {
		return fmt.Errorf("NumPoints=%d NumProfiles=%d: too many values: %w", h.NumPoints, h.NumProfiles, ErrHeader)
	}
	for name, v := range map[string]float64{"Xscale": h.XScale, "Yscale": h.YScale, "Zscale": h.ZScale} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s=%g: %w", name, v, ErrHeader)
		}
	}
	if h.XScale <= 0 {
		return fmt.Errorf("Xscale=%g: %w", h.XScale, ErrHeader)
	}

	return nil
}

// Raster is one rectangular height map.
type Raster struct {
	Header Header

	// Trailer keeps trailer keys other than the offsets, verbatim.
	Trailer map[string]string

	xOffset, yOffset, zOffset float64
	data                      []float64 // raw values, NaN if missing
}

// NewRaster builds a Raster from a header and NumPoints·NumProfiles raw
// values ordered profile by profile. data is used, not copied.
func NewRaster(h Header, data []float64) (*Raster, error) {
	if err := h.validate(); err != nil {
		return nil, err
	}
	if want := h.NumPoints * h.NumProfiles; len(data) != want {
		return nil, fmt.Errorf("got %d, want %d: %w", len(data), want, ErrDataCount)
	}

	return &Raster{Header: h, data: data}, nil
}

// Offsets returns the offsets added to x, y and z.
func (r *Raster) Offsets() (x, y, z float64) { return r.xOffset, r.yOffset, r.zOffset }

// SetOffsets replaces the offsets added to x, y and z.
func (r *Raster) SetOffsets(x, y, z float64) {
	r.xOffset, r.yOffset, r.zOffset = x, y, z
}

// point returns sample i of profile j; indices are not checked.
func (r *Raster) point(i, j int) profile.Point {
	v := r.data[j*r.Header.NumPoints+i]
	return profile.Point{
		X: float64(i)*r.Header.XScale + r.xOffset,
		Y: float64(j)*r.Header.YScale + r.yOffset,
		Z: v*r.Header.ZScale + r.zOffset, // NaN stays NaN
	}
}

// Profile returns profile j as NumPoints samples ordered by X.
func (r *Raster) Profile(j int) (profile.Profile, error) {
	if j < 0 || j >= r.Header.NumProfiles {
		return nil, fmt.Errorf("index %d of %d: %w", j, r.Header.NumProfiles, ErrProfileIndex)
	}
	p := make(profile.Profile, r.Header.NumPoints)
	for i := range p {
		p[i] = r.point(i, j)
	}

	return p, nil
}

// ProfileY returns the transverse position of profile j without building it.
func (r *Raster) ProfileY(j int) float64 {
	return float64(j)*r.Header.YScale + r.yOffset
}

// ScanFieldWidth returns the X extent, (NumPoints-1)·Xscale.
func (r *Raster) ScanFieldWidth() float64 {
	return float64(r.Header.NumPoints-1) * r.Header.XScale
}

// ScanFieldHeight returns the Y extent, (NumProfiles-1)·Yscale.
func (r *Raster) ScanFieldHeight() float64 {
	return float64(r.Header.NumProfiles-1) * r.Header.YScale
}

// Missing returns the number of samples marked BAD.
func (r *Raster) Missing() int {
	n := 0
	for _, v := range r.data {
		if math.IsNaN(v) {
			n++
		}
	}

	return n
}
