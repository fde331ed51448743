package stats

// ResidualPolicy selects how Update treats a residual curve whose length
// differs from the accumulated plot.
type ResidualPolicy int

const (
	// SkipMismatched accumulates the scalars and ignores the curve.
	SkipMismatched ResidualPolicy = iota
	// RejectMismatched refuses the whole result.
	RejectMismatched
)

func (p ResidualPolicy) String() string {
	if p == RejectMismatched {
		return "reject"
	}

	return "skip"
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithResidualPolicy sets the residual mismatch policy. Default SkipMismatched.
func WithResidualPolicy(p ResidualPolicy) Option {
	return func(a *Aggregator) { a.policy = p }
}
