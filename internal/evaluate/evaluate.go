// Package evaluate drives the fit of every profile of a scan: it selects the
// profiles inside the configured Y band, fits each one, screens the results
// and aggregates the accepted ones.
package evaluate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/stepheight/feature"
	"github.com/katalvlaran/stepheight/fit"
	"github.com/katalvlaran/stepheight/internal/config"
	"github.com/katalvlaran/stepheight/report"
	"github.com/katalvlaran/stepheight/sdf"
	"github.com/katalvlaran/stepheight/stats"
)

// ErrNoValidProfile is returned when no profile passed the screening.
var ErrNoValidProfile = errors.New("evaluate: no valid profile fit found")

// Profile is one accepted profile.
type Profile struct {
	Index  int
	Result fit.Result
	Line   string // report.FormatProfileLine
}

// Outcome collects what a run produced, also when it failed part way.
type Outcome struct {
	Feature      feature.Type
	Stats        *stats.Aggregator
	Accepted     []Profile
	Discarded    int
	FeatureWidth float64 // metres, from the last successful fit; NaN if none
}

// Lines returns the report lines of the accepted profiles, in scan order.
func (o *Outcome) Lines() []string {
	lines := make([]string, len(o.Accepted))
	for i, p := range o.Accepted {
		lines[i] = p.Line
	}

	return lines
}

// Run evaluates scan with settings s.
//
// A profile is discarded, and counted in Outcome.Discarded, when its fit
// fails for lack of data or a degenerate system, or when its range of
// residuals reaches s.MaxSpan. A fit reporting fit.ErrBadEdgePosition or
// fit.ErrNotSupported applies to every profile and aborts the run with that
// error. ErrNoValidProfile is returned when nothing was accepted.
//
// ctx is checked before each profile. A nil logger discards all output.
func Run(ctx context.Context, scan *sdf.Scan, s config.Settings, logger *slog.Logger) (*Outcome, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	ft, err := s.Feature()
	if err != nil {
		return nil, err
	}
	ev, err := fit.New(ft, fit.WithDomainLengths(s.W1, s.W2, s.W3), fit.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	out := &Outcome{
		Feature:      ft,
		Stats:        stats.NewAggregator(),
		FeatureWidth: math.NaN(),
	}
	left, right := s.Edges()
	leftWall, rightWall := s.Walls()
	yLo, yHi := s.YBand()
	maxSpan := s.MaxSpanMetres()

	for j := 0; j < scan.NumProfiles(); j++ {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		if y := scan.ProfileY(j); y < yLo || y > yHi {
			continue
		}
		p, err := scan.Profile(j)
		if err != nil {
			return out, err
		}

		res, err := ev.FitWithWalls(p, left, right, leftWall, rightWall)
		switch {
		case errors.Is(err, fit.ErrBadEdgePosition), errors.Is(err, fit.ErrNotSupported):
			return out, fmt.Errorf("profile %d: %w", j, err)
		case err != nil:
			logger.Info("profile discarded", "profile", j, "status", res.Status.String())
			out.Discarded++
			continue
		}
		out.FeatureWidth = res.FeatureWidth
		logger.Debug("evaluation domains", "profile", j, "boundaries", res.Boundaries.Translate(res.FeatureCenter))

		if !(res.RangeOfResiduals < maxSpan) {
			logger.Info("profile discarded", "profile", j,
				"residual_range_um", res.RangeOfResiduals*1e6, "maxspan_um", s.MaxSpan)
			out.Discarded++
			continue
		}
		if err := out.Stats.Update(res); err != nil {
			logger.Info("profile discarded", "profile", j, "err", err)
			out.Discarded++
			continue
		}
		line := report.FormatProfileLine(j, res)
		out.Accepted = append(out.Accepted, Profile{Index: j, Result: res, Line: line})
		logger.Info("profile fitted", "line", line)
	}

	if out.Stats.Count() == 0 {
		return out, ErrNoValidProfile
	}
	logger.Info("evaluation finished",
		"fitted", out.Stats.Count(),
		"discarded", out.Discarded,
		"average_height", heightLabel(out.Stats.AverageHeight()),
		"skipped_residual_plots", out.Stats.SkippedResidualPlots())

	return out, nil
}

// heightLabel prints small heights in nm and the rest in µm.
func heightLabel(h float64) string {
	if h < 1e-7 {
		return fmt.Sprintf("%.2f nm", h*1e9)
	}

	return fmt.Sprintf("%.3f %s", h*1e6, report.Unit)
}
