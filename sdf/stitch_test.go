package sdf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepheight/sdf"
)

func patch(t *testing.T, points, profiles int, x0, y0, z0 float64) *sdf.Raster {
	t.Helper()
	data := make([]float64, points*profiles)
	for i := range data {
		data[i] = float64(i)
	}
	r, err := sdf.NewRaster(sdf.Header{NumPoints: points, NumProfiles: profiles, XScale: 1, YScale: 2, ZScale: 1}, data)
	require.NoError(t, err)
	r.SetOffsets(x0, y0, z0)

	return r
}

func TestStitch(t *testing.T) {
	a := patch(t, 3, 2, 100, 7, 9)
	b := patch(t, 2, 2, 110, 8, 9)
	c := patch(t, 4, 2, 120, 9, 9)

	s, err := sdf.Stitch(a, b, c)
	require.NoError(t, err)
	assert.Equal(t, 3, s.NumPatches())
	assert.Equal(t, 2, s.NumProfiles())
	assert.Equal(t, 9, s.PointsPerProfile())

	x, y, z := s.Patch(1).Offsets()
	assert.Equal(t, [3]float64{10, 0, 0}, [3]float64{x, y, z})

	p, err := s.Profile(1)
	require.NoError(t, err)
	require.Len(t, p, 9)
	assert.Equal(t, []float64{0, 1, 2, 10, 11, 20, 21, 22, 23}, p.Xs())
	assert.Equal(t, 2.0, p[4].Y)
	assert.Equal(t, 3.0, p[0].Z) // first value of profile 1
	assert.Equal(t, 23.0, s.ScanFieldWidth())
	assert.Equal(t, 2.0, s.ScanFieldHeight())
	assert.Equal(t, 2.0, s.ProfileY(1))

	// inputs keep their offsets
	x, y, z = a.Offsets()
	assert.Equal(t, [3]float64{100, 7, 9}, [3]float64{x, y, z})

	_, err = s.Profile(2)
	require.ErrorIs(t, err, sdf.ErrProfileIndex)
}

func TestStitch_Single(t *testing.T) {
	s, err := sdf.Stitch(patch(t, 3, 1, 5, 5, 5))
	require.NoError(t, err)

	p, err := s.Profile(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p[0].X)
	assert.Equal(t, 0.0, p[0].Y)
	assert.Equal(t, 0.0, p[0].Z)
}

func TestStitch_Errors(t *testing.T) {
	_, err := sdf.Stitch()
	require.ErrorIs(t, err, sdf.ErrNoPatches)

	_, err = sdf.Stitch(patch(t, 3, 2, 0, 0, 0), patch(t, 3, 3, 0, 0, 0))
	require.ErrorIs(t, err, sdf.ErrIncompatibleGeometry)
}
