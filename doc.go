// Package stepheight evaluates vertical calibration standards: grooves and
// ridges of known shape (ISO 5436-1 types A1 and A2) scanned by a stylus
// instrument or an optical profiler.
//
// Each profile of a scan is fitted with the model of the feature and yields
// the step height or groove depth, the Pt shape indicator, the range of the
// fit residuals and, for cylindrical features, the radius and asymmetry of
// the groove. The results of many profiles are aggregated into averages and
// ranges.
//
// Packages:
//
//	profile/   - sample (x, y, z) and profile types with NaN handling
//	feature/   - feature types, their sign, designation and fit family
//	boundary/  - the six evaluation domain limits derived from the edges
//	fit/       - flat-topped and cylindrical fits of one profile
//	stats/     - averages, ranges and the mean residual curve of many fits
//	sdf/       - ISO 25178-71 ASCII surface data files and patch stitching
//	report/    - per-profile lines, calibration report and residual CSV
//	cmd/stepheight - the command-line evaluator
//
// Quick example, one profile:
//
//	ev, err := fit.New(feature.A1Groove)
//	if err != nil {
//		return err
//	}
//	res, err := ev.Fit(p, 25e-6, 45e-6) // edges in the unit of p
//	if err != nil {
//		return err // errors.Is(err, fit.ErrBadEdgePosition), ...
//	}
//	fmt.Printf("depth %.1f nm\n", res.Height*1e9)
//
// The evaluation domains follow ISO 5436-1: for a feature of width W the
// reference windows span 2W/3 each, at a distance of W/3 outside the edges,
// and the central third of the feature is used for the feature level.
package stepheight
