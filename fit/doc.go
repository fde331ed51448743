// Package fit evaluates vertical calibration standards: it fits the model of
// a known reference feature to one topography profile and recovers the
// feature height (or depth), Pt and the fit residuals.
//
// Supported feature families (see package feature):
//
//   - FlatTopped: rectangular and trapezoidal grooves/ridges (ISO 5436-1
//     type A1). One weighted least-squares fit of z ≈ a·x + b + δ(x)·c over
//     both reference windows and the feature window, where the dummy
//     variable δ is +sign on the references and −sign on the feature.
//     Height = 2c.
//   - Cylindrical: cylindrical grooves/ridges (type A2). A straight line
//     is fitted to the reference windows and removed, then a parabola is
//     fitted to the levelled feature window. Height is the parabola vertex,
//     Radius = 1/|2a|.
//   - SingleEdge: rising/falling edges. No algorithm is defined; Fit
//     reports StatusNotSupported and ErrNotSupported.
//
// Usage:
//
//	ev, err := fit.New(feature.A1Groove)
//	...
//	res, err := ev.Fit(p, leftEdge, rightEdge)
//	if err != nil {
//		// errors.Is(err, fit.ErrBadEdgePosition), fit.ErrNoData, ...
//	}
//	fmt.Println(res.Height, res.Pt, res.RangeOfResiduals)
//
// Coordinates: before fitting, every X (and the edge and wall positions) is
// shifted by the feature centre (leftEdge+rightEdge)/2 to keep the normal
// equations well conditioned. Result.Residuals, Result.Predicted,
// Result.Boundaries and Result.CenterPosition are reported in that
// feature-centred frame; Result.FeatureCenter holds the offset.
//
// An Evaluator is immutable. Every call returns a fresh Result, so one
// Evaluator may serve concurrent fits.
package fit
