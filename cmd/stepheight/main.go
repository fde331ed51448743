// Command stepheight evaluates step heights, groove depths and cylindrical
// grooves in ASCII surface data files (aBCR-1.0).
//
// Usage:
//
//	stepheight [options] file1 [file2] [file3]
//
// file1 is the scan (".sdf" is added when it has no extension). The report
// goes to file1, or file2 when given, with the -outextension extension; the
// average residual curve goes to file1, file2 or file3 with -resextension.
// With -multifile the scan is read from the three patches file1A.sdf,
// file1B.sdf and file1C.sdf.
//
// Options may also be given in a YAML file (-config); command-line flags
// take precedence over the file.
//
// Exit codes: 1 usage, 2 read or write error, 3 no valid profile, 10 patch
// read error, 11 incompatible patches, 30 feature edge outside of profile,
// 31 feature type not supported, 130 interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/stepheight/feature"
	"github.com/katalvlaran/stepheight/fit"
	"github.com/katalvlaran/stepheight/internal/config"
	"github.com/katalvlaran/stepheight/internal/evaluate"
	"github.com/katalvlaran/stepheight/report"
	"github.com/katalvlaran/stepheight/sdf"
)

const (
	program    = "stepheight"
	inputExt   = ".sdf"
	numPatches = 3
)

var version = "dev"

const (
	exitOK           = 0
	exitUsage        = 1
	exitIO           = 2
	exitNoProfile    = 3
	exitPatchRead    = 10
	exitGeometry     = 11
	exitBadEdge      = 30
	exitNotSupported = 31
	exitInterrupted  = 130
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

// newFlagSet binds every option to s. The -config path goes to cfg.
func newFlagSet(s *config.Settings, cfg *string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(program, flag.ContinueOnError)
	fs.SetOutput(out)

	fs.StringVar(cfg, "config", "", "YAML settings file, overridden by flags")
	fs.IntVar(&s.TypeIndex, "type", s.TypeIndex, "feature type to be fitted (see below)")
	fs.IntVar(&s.TypeIndex, "t", s.TypeIndex, "shorthand for -type")
	fs.BoolVar(&s.Multifile, "multifile", s.Multifile, "read three separate patch files")
	fs.Float64Var(&s.X1, "X1", s.X1, "x-value of first feature edge, in µm")
	fs.Float64Var(&s.X2, "X2", s.X2, "x-value of second feature edge, in µm")
	fs.Func("XW1", "x-value of first trapezoid wall, in µm", floatPtr(&s.XW1))
	fs.Func("XW2", "x-value of second trapezoid wall, in µm", floatPtr(&s.XW2))
	fs.Float64Var(&s.W1, "W1", s.W1, "parameter W1 of evaluation region")
	fs.Float64Var(&s.W2, "W2", s.W2, "parameter W2 of evaluation region")
	fs.Float64Var(&s.W3, "W3", s.W3, "parameter W3 of evaluation region")
	fs.Float64Var(&s.Y0, "Y0", s.Y0, "y-value of first profile, in µm")
	fs.Float64Var(&s.YWidth, "Ywidth", s.YWidth, "width of y band to evaluate, in µm")
	fs.Float64Var(&s.MaxSpan, "maxspan", s.MaxSpan, "discard fit if residuals are larger, in µm")
	fs.BoolVar(&s.Quiet, "q", s.Quiet, "quiet mode, warnings and errors only")
	fs.BoolVar(&s.Quiet, "quiet", s.Quiet, "same as -q")
	fs.StringVar(&s.Comment, "comment", s.Comment, "user supplied comment string")
	fs.StringVar(&s.OutExt, "outextension", s.OutExt, "extension for output file")
	fs.StringVar(&s.ResExt, "resextension", s.ResExt, "extension for residual file")
	fs.StringVar(&s.Separator, "separator", s.Separator, "separator for CSV file")

	fs.Usage = func() {
		fmt.Fprintf(out, "%s %s: evaluate surface data files for step heights, groove depths or edge heights.\n\n", program, version)
		fmt.Fprintf(out, "Usage: %s [options] filename1 [filename2] [filename3]\n\n", program)
		fs.PrintDefaults()
		fmt.Fprintln(out, "\nSupported values for -type:")
		for i := 1; ; i++ {
			t, err := feature.FromIndex(i)
			if err != nil {
				break
			}
			fmt.Fprintf(out, "  %d: %s\n", i, t.Designation())
		}
	}

	return fs
}

func floatPtr(dst **float64) func(string) error {
	return func(v string) error {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*dst = &f
		return nil
	}
}

// parseSettings applies defaults, the optional settings file and the flags,
// in that order, and returns the positional file names.
func parseSettings(args []string, out io.Writer) (config.Settings, []string, error) {
	s := config.Default()
	var cfg string
	fs := newFlagSet(&s, &cfg, out)
	if err := fs.Parse(args); err != nil {
		return s, nil, err
	}
	if cfg == "" {
		return s, fs.Args(), nil
	}

	// Flags win over the file: parse them again on top of it.
	s, err := config.Load(cfg)
	if err != nil {
		return s, nil, err
	}
	fs = newFlagSet(&s, &cfg, out)
	if err := fs.Parse(args); err != nil {
		return s, nil, err
	}

	return s, fs.Args(), nil
}

// fileNames derives input, report and residual file names.
func fileNames(names []string, s config.Settings) (in, out, res string) {
	in = names[0]
	if filepath.Ext(in) == "" {
		in += inputExt
	}
	out = changeExt(names[0], s.OutExt)
	res = changeExt(names[0], s.ResExt)
	if len(names) > 1 {
		out = changeExt(names[1], s.OutExt)
		res = changeExt(names[1], s.ResExt)
	}
	if len(names) > 2 {
		res = changeExt(names[2], s.ResExt)
	}

	return in, out, res
}

func changeExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + strings.TrimPrefix(ext, ".")
}

// readScan reads the single scan file or, with Multifile, its three patches.
func readScan(in string, s config.Settings, logger *slog.Logger) (*sdf.Scan, int) {
	paths := []string{in}
	code := exitIO
	if s.Multifile {
		base := strings.TrimSuffix(in, filepath.Ext(in))
		paths = paths[:0]
		for k := 0; k < numPatches; k++ {
			paths = append(paths, base+string(rune('A'+k))+inputExt)
		}
		code = exitPatchRead
	}

	rasters := make([]*sdf.Raster, 0, len(paths))
	for _, p := range paths {
		logger.Info("reading file", "path", p)
		r, err := sdf.ReadFile(p)
		if err != nil {
			logger.Error("cannot read scan", "path", p, "err", err)
			return nil, code
		}
		rasters = append(rasters, r)
	}
	scan, err := sdf.Stitch(rasters...)
	if err != nil {
		logger.Error("cannot join patches", "err", err)
		return nil, exitGeometry
	}

	return scan, exitOK
}

// run is main without the process exit.
func run(ctx context.Context, args []string, stderr io.Writer) int {
	s, names, err := parseSettings(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	level := slog.LevelInfo
	if s.Quiet {
		level = slog.LevelWarn
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	if err != nil {
		logger.Error("invalid arguments", "err", err)
		return exitUsage
	}
	if len(names) == 0 {
		logger.Error("missing file name")
		return exitUsage
	}
	if err := s.Validate(); err != nil {
		logger.Error("invalid settings", "err", err)
		return exitUsage
	}
	in, outName, resName := fileNames(names, s)

	scan, code := readScan(in, s, logger)
	if code != exitOK {
		return code
	}
	ft, _ := s.Feature()
	logger.Info("scan",
		"patches", scan.NumPatches(),
		"points_per_profile", scan.PointsPerProfile(),
		"profiles", scan.NumProfiles(),
		"feature", ft.Designation(),
		"W1", s.W1, "W2", s.W2, "W3", s.W3,
		"X1_um", s.X1, "X2_um", s.X2,
		"Y0_um", s.Y0, "Ywidth_um", s.YWidth,
		"maxspan_um", s.MaxSpan)

	outcome, err := evaluate.Run(ctx, scan, s, logger)
	switch {
	case errors.Is(err, fit.ErrBadEdgePosition):
		logger.Error("feature edge location outside of profile", "err", err)
		return exitBadEdge
	case errors.Is(err, fit.ErrNotSupported):
		logger.Error("feature type not supported", "feature", ft.String())
		return exitNotSupported
	case errors.Is(err, evaluate.ErrNoValidProfile):
		logger.Error("no valid profile fit found", "discarded", outcome.Discarded)
		return exitNoProfile
	case errors.Is(err, context.Canceled):
		logger.Warn("interrupted")
		return exitInterrupted
	case err != nil:
		logger.Error("evaluation failed", "err", err)
		return exitIO
	}

	rep := newReport(in, scan, s, outcome)
	if err := writeFile(outName, rep.Write); err != nil {
		logger.Error("error writing file", "path", outName, "err", err)
		return exitIO
	}
	logger.Info("report written", "path", outName, "evaluation_id", rep.ID.String())

	if plot := outcome.Stats.AverageResidualPlot(); plot != nil {
		sep := s.SeparatorRune()
		err := writeFile(resName, func(w io.Writer) error { return report.WriteResidualPlot(w, plot, sep) })
		if err != nil {
			logger.Error("error writing file", "path", resName, "err", err)
			return exitIO
		}
		logger.Info("residual plot written", "path", resName)
	}

	return exitOK
}

func newReport(in string, scan *sdf.Scan, s config.Settings, o *evaluate.Outcome) *report.Report {
	first := scan.Patch(0).Header
	rep := report.New(program + ", version " + version)
	rep.InputFile = in
	rep.DisjointScanFields = scan.NumPatches()
	rep.ManufacID = first.ManufacID
	rep.UserComment = s.Comment
	rep.PointsPerProfile = scan.PointsPerProfile()
	rep.NumberOfProfiles = scan.NumProfiles()
	rep.XScale, rep.YScale, rep.ZScale = first.XScale, first.YScale, first.ZScale
	rep.ScanFieldWidth = scan.ScanFieldWidth()
	rep.ScanFieldHeight = scan.ScanFieldHeight()

	rep.Feature = o.Feature
	rep.W1, rep.W2, rep.W3 = s.W1, s.W2, s.W3
	rep.LeftEdge, rep.RightEdge = s.Edges()
	if s.HasWalls() {
		rep.LeftWall, rep.RightWall = s.Walls()
	}
	rep.FeatureWidth = o.FeatureWidth
	rep.FirstProfile = s.Y0 * 1e-6
	rep.EvaluationWidth = s.YWidth * 1e-6
	rep.MaxSpan = s.MaxSpanMetres()

	rep.Discarded = o.Discarded
	rep.Stats = o.Stats
	rep.Lines = o.Lines()

	return rep
}

// writeFile creates path and hands it to write.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
