package fit

// fitSingleEdge stands in for the rising/falling edge family, for which no
// evaluation algorithm has been specified. It always reports
// StatusNotSupported so that callers cannot mistake the gap for a result.
func (e *Evaluator) fitSingleEdge(res *Result) error {
	res.Status = StatusNotSupported
	e.debug("single-edge fit requested")

	return ErrNotSupported
}
