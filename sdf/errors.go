package sdf

import "errors"

var (
	// ErrSignature indicates that the first line is not "aBCR-1.0".
	ErrSignature = errors.New("sdf: missing aBCR-1.0 signature")

	// ErrHeader indicates a malformed, missing or out-of-range header field.
	ErrHeader = errors.New("sdf: invalid header")

	// ErrDataCount indicates that the data section does not hold exactly
	// NumPoints·NumProfiles values.
	ErrDataCount = errors.New("sdf: wrong number of data values")

	// ErrValue indicates an unparsable data or trailer value.
	ErrValue = errors.New("sdf: invalid value")

	// ErrProfileIndex indicates a profile index outside [0, NumProfiles).
	ErrProfileIndex = errors.New("sdf: profile index out of range")

	// ErrNoPatches is returned by Stitch without arguments.
	ErrNoPatches = errors.New("sdf: no raster to stitch")

	// ErrIncompatibleGeometry is returned by Stitch for rasters with
	// different profile counts.
	ErrIncompatibleGeometry = errors.New("sdf: geometry of rasters incompatible")
)
