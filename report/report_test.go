package report_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepheight/feature"
	"github.com/katalvlaran/stepheight/fit"
	"github.com/katalvlaran/stepheight/profile"
	"github.com/katalvlaran/stepheight/report"
	"github.com/katalvlaran/stepheight/stats"
)

func TestFormatProfileLine(t *testing.T) {
	r := fit.Result{
		Feature:          feature.A1Groove,
		YPosition:        12.34e-6,
		Height:           0.2875e-6,
		Pt:               0.3e-6,
		RangeOfResiduals: 0.0123e-6,
		Radius:           math.NaN(),
	}
	assert.Equal(t, "    7    12.3     0.2875     0.3000     0.0123", report.FormatProfileLine(7, r))

	r.Feature = feature.A2Ridge
	r.Radius = 1234.56e-6
	r.Asymmetry = -0.0456
	assert.Equal(t, "    7    12.3     0.2875     0.3000     0.0123   1234.6 -0.046", report.FormatProfileLine(7, r))
}

func TestColumns(t *testing.T) {
	assert.Len(t, report.Columns(feature.A1TrapezoidalRidge), 5)
	cols := report.Columns(feature.A2Groove)
	require.Len(t, cols, 7)
	assert.Equal(t, "Asymmetry index", cols[6])
}

func TestReport_Write(t *testing.T) {
	agg := stats.NewAggregator()
	for _, h := range []float64{1e-6, 1.1e-6, 1.2e-6} {
		require.NoError(t, agg.Update(fit.Result{
			Feature: feature.A2Groove, Status: fit.StatusSuccess,
			Height: h, Pt: h, RangeOfResiduals: 1e-9, Radius: 5e-4,
			Residuals: profile.Profile{{X: 0}},
		}))
	}

	r := report.New("stepheight, version test")
	r.InputFile = "scan.sdf"
	r.DisjointScanFields = 1
	r.UserComment = "---"
	r.Feature = feature.A2Groove
	r.W1, r.W2, r.W3 = 3, 0.5, 0.25
	r.LeftEdge, r.RightEdge = 10e-6, 30e-6
	r.FeatureWidth = 20e-6
	r.ScanFieldHeight = 100e-6
	r.EvaluationWidth = math.Inf(1)
	r.MaxSpan = 0.1e-6
	r.Discarded = 2
	r.Stats = agg
	r.Lines = []string{"line one", "line two"}

	var buf bytes.Buffer
	require.NoError(t, r.Write(&buf))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "# Output of stepheight, version test\n"))
	assert.Contains(t, out, "EvaluationID              = "+r.ID.String()+"\n")
	assert.Contains(t, out, "InputFile                 = scan.sdf\n")
	assert.Contains(t, out, "FeatureType               = A2Groove\n")
	assert.Contains(t, out, "W2                        = 0.5\n")
	assert.Contains(t, out, "FirstFeatureEdge          = 10 µm\n")
	assert.Contains(t, out, "FeatureWidth              = 20 µm\n")
	assert.NotContains(t, out, "FirstFeatureWall")
	assert.Contains(t, out, "EvaluationWidth           = infinity\n")
	assert.Contains(t, out, "ThresholdResiduals        = 0.1 µm\n")
	assert.Contains(t, out, "NumberOfValidProfiles     = 3\n")
	assert.Contains(t, out, "NumberOfDiscardedProfiles = 2\n")
	assert.Contains(t, out, "AverageHeight             = 1.10000 µm\n")
	assert.Contains(t, out, "RangeOfHeights            = 0.20000 µm\n")
	assert.Contains(t, out, "AverageRadius             = 500.0 µm\n")
	assert.Contains(t, out, "# 7 : Asymmetry index\n")
	assert.True(t, strings.HasSuffix(out, "#=====================================================\nline one\nline two\n"))
}

func TestReport_WallsAndBand(t *testing.T) {
	r := report.New("x")
	r.Feature = feature.A1TrapezoidalGroove
	r.LeftWall, r.RightWall = 5e-6, 35e-6
	r.ScanFieldHeight = 100e-6
	r.EvaluationWidth = 40e-6

	var buf bytes.Buffer
	require.NoError(t, r.Write(&buf))
	out := buf.String()
	assert.Contains(t, out, "FirstFeatureWall          = 5 µm\n")
	assert.Contains(t, out, "SecondFeatureWall         = 35 µm\n")
	assert.Contains(t, out, "EvaluationWidth           = 40 µm\n")
	assert.Contains(t, out, "NumberOfValidProfiles     = 0\n")
	assert.NotContains(t, out, "AverageRadius")
}

func TestNew_UniqueID(t *testing.T) {
	a, b := report.New("x"), report.New("x")
	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestWriteResidualPlot(t *testing.T) {
	plot := profile.Profile{{X: -1.5e-6, Z: 1.2344e-9}, {X: 0, Z: -0.5e-9}}

	var buf bytes.Buffer
	require.NoError(t, report.WriteResidualPlot(&buf, plot, ';'))
	assert.Equal(t, "x coordinate in µm;average fit residuals in nm\n-1.5;1.234\n0;-0.500\n", buf.String())
}

func TestParseSeparator(t *testing.T) {
	for _, ok := range []string{",", ";", "\t", " "} {
		r, err := report.ParseSeparator(ok)
		require.NoError(t, err, "%q", ok)
		assert.Equal(t, []rune(ok)[0], r)
	}
	for _, bad := range []string{"", ",,", "\n", `"`} {
		_, err := report.ParseSeparator(bad)
		require.ErrorIs(t, err, report.ErrSeparator, "%q", bad)
	}
}
