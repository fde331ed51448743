package sdf

import (
	"fmt"
	"maps"

	"github.com/katalvlaran/stepheight/profile"
)

// Scan is a set of rasters recorded side by side along X, read as one.
type Scan struct {
	patches []*Raster
}

// Stitch joins rasters that share their profile count. The rasters are
// copied (data is shared read-only): the first copy gets zero offsets, each
// further copy keeps its X offset relative to the first, and all Y and Z
// offsets are zeroed.
func Stitch(rasters ...*Raster) (*Scan, error) {
	if len(rasters) == 0 {
		return nil, ErrNoPatches
	}
	x0, _, _ := rasters[0].Offsets()
	n := rasters[0].Header.NumProfiles

	s := &Scan{patches: make([]*Raster, len(rasters))}
	for k, r := range rasters {
		if r.Header.NumProfiles != n {
			return nil, fmt.Errorf("patch %d has %d profiles, patch 0 has %d: %w",
				k, r.Header.NumProfiles, n, ErrIncompatibleGeometry)
		}
		c := *r
		c.Trailer = maps.Clone(r.Trailer)
		c.SetOffsets(r.xOffset-x0, 0, 0)
		s.patches[k] = &c
	}

	return s, nil
}

// NumPatches returns the number of stitched rasters.
func (s *Scan) NumPatches() int { return len(s.patches) }

// Patch returns stitched raster k with its normalised offsets.
func (s *Scan) Patch(k int) *Raster { return s.patches[k] }

// NumProfiles returns the shared profile count.
func (s *Scan) NumProfiles() int { return s.patches[0].Header.NumProfiles }

// PointsPerProfile returns the sum of NumPoints over all patches.
func (s *Scan) PointsPerProfile() int {
	n := 0
	for _, p := range s.patches {
		n += p.Header.NumPoints
	}

	return n
}

// ProfileY returns the transverse position of profile j.
func (s *Scan) ProfileY(j int) float64 { return s.patches[0].ProfileY(j) }

// Profile returns profile j of every patch, concatenated in patch order.
func (s *Scan) Profile(j int) (profile.Profile, error) {
	out := make(profile.Profile, 0, s.PointsPerProfile())
	for _, p := range s.patches {
		part, err := p.Profile(j)
		if err != nil {
			return nil, err
		}
		out = append(out, part...)
	}

	return out, nil
}

// ScanFieldWidth returns the X extent of the joined profiles.
func (s *Scan) ScanFieldWidth() float64 {
	p, _ := s.Profile(0)
	lo, _ := p.MinX()
	hi, _ := p.MaxX()

	return hi - lo
}

// ScanFieldHeight returns the Y extent of the first patch.
func (s *Scan) ScanFieldHeight() float64 { return s.patches[0].ScanFieldHeight() }
