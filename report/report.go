package report

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/google/uuid"

	"github.com/katalvlaran/stepheight/feature"
	"github.com/katalvlaran/stepheight/stats"
)

// Report is the calibration report of one scan. Lengths are in metres.
type Report struct {
	Program string // "name, version" of the producing tool
	ID      uuid.UUID

	// Input
	InputFile          string
	DisjointScanFields int
	ManufacID          string
	UserComment        string
	PointsPerProfile   int
	NumberOfProfiles   int
	XScale             float64
	YScale             float64
	ZScale             float64
	ScanFieldWidth     float64
	ScanFieldHeight    float64

	// Fit parameters
	Feature         feature.Type
	W1, W2, W3      float64
	LeftEdge        float64
	RightEdge       float64
	LeftWall        float64 // NaN if not set
	RightWall       float64 // NaN if not set
	FeatureWidth    float64
	FirstProfile    float64
	EvaluationWidth float64 // +Inf or beyond ScanFieldHeight prints "infinity"
	MaxSpan         float64

	// Results
	Discarded int
	Stats     *stats.Aggregator
	Lines     []string // FormatProfileLine output, in profile order
}

// New returns a Report for program with a fresh random evaluation ID and
// unset wall positions.
func New(program string) *Report {
	return &Report{
		Program:   program,
		ID:        uuid.New(),
		LeftWall:  math.NaN(),
		RightWall: math.NaN(),
	}
}

// Write renders r to w.
func (r *Report) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	kv := func(key, format string, args ...any) {
		fmt.Fprintf(bw, "%-26s= %s\n", key, fmt.Sprintf(format, args...))
	}
	um := func(v float64) string { return formatG(v*toMicro) + " " + Unit }

	fmt.Fprintf(bw, "# Output of %s\n", r.Program)
	kv("EvaluationID", "%s", r.ID)
	kv("InputFile", "%s", r.InputFile)
	kv("DisjointScanFields", "%d", r.DisjointScanFields)
	kv("ManufacID", "%s", r.ManufacID)
	kv("UserComment", "%s", r.UserComment)
	kv("NumberOfPointsPerProfile", "%d", r.PointsPerProfile)
	kv("NumberOfProfiles", "%d", r.NumberOfProfiles)
	kv("XScale", "%s", um(r.XScale))
	kv("YScale", "%s", um(r.YScale))
	kv("ZScale", "%s", um(r.ZScale))
	kv("ScanFieldWidth", "%.2f %s", r.ScanFieldWidth*toMicro, Unit)
	kv("ScanFieldHeight", "%s", um(r.ScanFieldHeight))

	fmt.Fprintln(bw, "# Fit parameters =====================================")
	kv("FeatureType", "%s", r.Feature)
	kv("W1", "%s", formatG(r.W1))
	kv("W2", "%s", formatG(r.W2))
	kv("W3", "%s", formatG(r.W3))
	kv("FirstFeatureEdge", "%s", um(r.LeftEdge))
	kv("SecondFeatureEdge", "%s", um(r.RightEdge))
	if !math.IsNaN(r.LeftWall) && !math.IsNaN(r.RightWall) {
		kv("FirstFeatureWall", "%s", um(r.LeftWall))
		kv("SecondFeatureWall", "%s", um(r.RightWall))
	}
	kv("FeatureWidth", "%s", um(r.FeatureWidth))
	kv("FirstProfilePosition", "%s", um(r.FirstProfile))
	if math.IsInf(r.EvaluationWidth, 1) || r.EvaluationWidth > r.ScanFieldHeight {
		kv("EvaluationWidth", "infinity")
	} else {
		kv("EvaluationWidth", "%s", um(r.EvaluationWidth))
	}
	kv("ThresholdResiduals", "%s", um(r.MaxSpan))

	fmt.Fprintln(bw, "# Fit results =======================================")
	s := r.Stats
	if s == nil {
		s = stats.NewAggregator()
	}
	kv("NumberOfValidProfiles", "%d", s.Count())
	kv("NumberOfDiscardedProfiles", "%d", r.Discarded)
	kv("AverageHeight", "%.5f %s", s.AverageHeight()*toMicro, Unit)
	kv("RangeOfHeights", "%.5f %s", s.HeightRange()*toMicro, Unit)
	kv("StdDevOfHeights", "%.5f %s", s.HeightStdDev()*toMicro, Unit)
	kv("AveragePt", "%.5f %s", s.AveragePt()*toMicro, Unit)
	kv("RangeOfPt", "%.5f %s", s.PtRange()*toMicro, Unit)
	if r.Feature.Family() == feature.Cylindrical {
		kv("AverageRadius", "%.1f %s", s.AverageRadius()*toMicro, Unit)
		kv("RangeOfRadii", "%.1f %s", s.RadiusRange()*toMicro, Unit)
	}

	fmt.Fprintln(bw, "# Columns ============================================")
	for i, c := range Columns(r.Feature) {
		fmt.Fprintf(bw, "# %d : %s\n", i+1, c)
	}
	fmt.Fprintln(bw, "#=====================================================")
	for _, l := range r.Lines {
		fmt.Fprintln(bw, l)
	}

	return bw.Flush()
}

// formatG prints v with at most 15 significant digits, which hides the
// binary noise of unit conversions (1e-7·1e6 prints as 0.1).
func formatG(v float64) string { return strconv.FormatFloat(v, 'g', 15, 64) }
