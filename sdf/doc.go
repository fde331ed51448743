// Package sdf reads and writes surface topography rasters in the ASCII
// "surface data file" format of ISO 25178-71 (signature aBCR-1.0) and joins
// disjoint rasters of one scan into a single profile source.
//
// File layout:
//
//	aBCR-1.0
//	ManufacID   = ...          header, one "Key = value" per line
//	NumPoints   = 4            samples per profile (X direction)
//	NumProfiles = 2            profiles (Y direction)
//	Xscale      = 5.0E-7       metres per sample
//	...
//	*
//	0 1 2 3                    NumPoints·NumProfiles heights, X fastest;
//	4 5 BAD 7                  BAD or NaN marks a missing sample
//	*
//	XOffset = 1.0E-3           optional trailer
//	*
//
// A sample (i, j) with raw value v maps to the point
//
//	x = i·Xscale + XOffset,  y = j·Yscale + YOffset,  z = v·Zscale + ZOffset
//
// Missing samples keep their X and Y and carry NaN in Z, so profile.IsValid
// rejects them.
//
// Stitch combines up to several rasters recorded side by side with a shared
// profile count: X offsets are taken relative to the first raster and Y and
// Z offsets are dropped, then Scan.Profile concatenates the matching
// profiles. A single raster passed through Stitch simply loses its offsets.
package sdf
