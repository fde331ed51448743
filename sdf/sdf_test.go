package sdf_test

import (
	"bytes"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepheight/sdf"
)

const fixture = `aBCR-1.0
ManufacID   = BEV test
CreateDate  = 010120201200
NumPoints   = 4
NumProfiles = 2
Xscale      = 0.5E-6
Yscale      = 2E-6
Zscale      = 1E-9
Zresolution = -1
Compression = 0
DataType    = 7
CheckType   = 0
Vendor      = x
*
0 1 2 3
4 5 BAD 7
*
XOffset = 1E-3
YOffset = 5E-6
Note = free
*
`

func TestRead(t *testing.T) {
	r, err := sdf.Read(strings.NewReader(fixture))
	require.NoError(t, err)

	h := r.Header
	assert.Equal(t, "BEV test", h.ManufacID)
	assert.Equal(t, "010120201200", h.CreateDate)
	assert.Equal(t, 4, h.NumPoints)
	assert.Equal(t, 2, h.NumProfiles)
	assert.Equal(t, 0.5e-6, h.XScale)
	assert.Equal(t, 7, h.DataType)
	assert.Equal(t, map[string]string{"Vendor": "x"}, h.Extra)
	assert.Equal(t, map[string]string{"Note": "free"}, r.Trailer)
	assert.Equal(t, 1, r.Missing())

	x, y, z := r.Offsets()
	assert.Equal(t, [3]float64{1e-3, 5e-6, 0}, [3]float64{x, y, z})

	p, err := r.Profile(1)
	require.NoError(t, err)
	require.Len(t, p, 4)
	assert.InDelta(t, 1e-3, p[0].X, 1e-18)
	assert.InDelta(t, 1e-3+1.5e-6, p[3].X, 1e-18)
	assert.InDelta(t, 7e-6, p[0].Y, 1e-18)
	assert.InDelta(t, 4e-9, p[0].Z, 1e-24)
	assert.True(t, math.IsNaN(p[2].Z))
	assert.False(t, math.IsNaN(p[2].X))
	assert.InDelta(t, 7e-6, r.ProfileY(1), 1e-18)

	_, err = r.Profile(2)
	require.ErrorIs(t, err, sdf.ErrProfileIndex)
	_, err = r.Profile(-1)
	require.ErrorIs(t, err, sdf.ErrProfileIndex)

	assert.InDelta(t, 1.5e-6, r.ScanFieldWidth(), 1e-18)
	assert.InDelta(t, 2e-6, r.ScanFieldHeight(), 1e-18)
}

func TestRead_NoTrailer(t *testing.T) {
	in := "aBCR-1.0\nNumPoints = 2\nNumProfiles = 1\nXscale = 1\nYscale = 0\nZscale = 1\n*\n1.5 nan\n"
	r, err := sdf.Read(strings.NewReader(in))
	require.NoError(t, err)

	p, err := r.Profile(0)
	require.NoError(t, err)
	assert.Equal(t, 1.5, p[0].Z)
	assert.True(t, math.IsNaN(p[1].Z))
	assert.Nil(t, r.Trailer)
}

func TestRead_Errors(t *testing.T) {
	head := "aBCR-1.0\nNumPoints = 2\nNumProfiles = 2\nXscale = 1\nYscale = 1\nZscale = 1\n*\n"
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"empty", "", sdf.ErrSignature},
		{"signature", "aBCR-2.0\n*\n", sdf.ErrSignature},
		{"no separator", "aBCR-1.0\nNumPoints = 2\n", sdf.ErrHeader},
		{"no equals", "aBCR-1.0\nNumPoints 2\n*\n", sdf.ErrHeader},
		{"bad int", "aBCR-1.0\nNumPoints = two\n*\n", sdf.ErrHeader},
		{"zero points", "aBCR-1.0\nNumPoints = 0\nNumProfiles = 1\nXscale = 1\n*\n", sdf.ErrHeader},
		{"huge counts", "aBCR-1.0\nNumPoints = 1000000000\nNumProfiles = 1000000000\nXscale = 1\n*\n1\n*\n", sdf.ErrHeader},
		{"wrapping counts", "aBCR-1.0\nNumPoints = 4294967296\nNumProfiles = 4294967296\nXscale = 1\n*\n*\n", sdf.ErrHeader},
		{"above limit", "aBCR-1.0\nNumPoints = 65536\nNumProfiles = 32768\nXscale = 1\n*\n1\n*\n", sdf.ErrHeader},
		{"zero xscale", "aBCR-1.0\nNumPoints = 1\nNumProfiles = 1\nXscale = 0\n*\n1\n*\n", sdf.ErrHeader},
		{"too few", head + "1 2 3\n*\n", sdf.ErrDataCount},
		{"too many", head + "1 2 3 4\n5\n*\n", sdf.ErrDataCount},
		{"bad value", head + "1 2 x 4\n*\n", sdf.ErrValue},
		{"bad offset", head + "1 2 3 4\n*\nXOffset = far\n*\n", sdf.ErrValue},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := sdf.Read(strings.NewReader(c.in))
			require.ErrorIs(t, err, c.err)
		})
	}
}

func TestWrite(t *testing.T) {
	orig, err := sdf.Read(strings.NewReader(fixture))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, sdf.Write(&buf, orig))
	assert.True(t, strings.HasPrefix(buf.String(), "aBCR-1.0\nManufacID   = BEV test\n"))
	assert.Contains(t, buf.String(), "4 5 BAD 7\n")

	back, err := sdf.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, orig.Header, back.Header)
	assert.Equal(t, orig.Trailer, back.Trailer)
	for j := 0; j < 2; j++ {
		want, _ := orig.Profile(j)
		got, _ := back.Profile(j)
		for i := range want {
			assert.Equal(t, want[i].X, got[i].X)
			assert.Equal(t, math.IsNaN(want[i].Z), math.IsNaN(got[i].Z))
		}
	}
}

func TestNewRaster(t *testing.T) {
	h := sdf.Header{NumPoints: 3, NumProfiles: 1, XScale: 1, ZScale: 1}
	_, err := sdf.NewRaster(h, []float64{1, 2})
	require.ErrorIs(t, err, sdf.ErrDataCount)

	_, err = sdf.NewRaster(sdf.Header{NumPoints: 3, NumProfiles: 1, XScale: math.Inf(1)}, []float64{1, 2, 3})
	require.ErrorIs(t, err, sdf.ErrHeader)

	r, err := sdf.NewRaster(h, []float64{1, 2, 3})
	require.NoError(t, err)
	r.SetOffsets(10, 20, 30)
	p, err := r.Profile(0)
	require.NoError(t, err)
	assert.Equal(t, 12.0, p[2].X)
	assert.Equal(t, 20.0, p[2].Y)
	assert.Equal(t, 33.0, p[2].Z)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.sdf")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o600))

	r, err := sdf.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, r.Header.NumPoints)

	_, err = sdf.ReadFile(filepath.Join(t.TempDir(), "missing.sdf"))
	require.ErrorIs(t, err, fs.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.sdf")
	require.NoError(t, os.WriteFile(bad, []byte("hello\n"), 0o600))
	_, err = sdf.ReadFile(bad)
	require.ErrorIs(t, err, sdf.ErrSignature)
	assert.Contains(t, err.Error(), "bad.sdf")
}
