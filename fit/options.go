package fit

import (
	"log/slog"

	"github.com/katalvlaran/stepheight/boundary"
)

// Option configures an Evaluator.
type Option func(*options)

type options struct {
	e, a, c float64
	logger  *slog.Logger
}

func defaultOptions() options {
	return options{e: boundary.DefaultE, a: boundary.DefaultA, c: boundary.DefaultC}
}

// WithDomainLengths sets the normalised domain lengths: e overall span, a
// single reference window, c feature window, all in units of the feature
// width. Defaults are 3, 2/3 and 1/3. Values are validated by New.
func WithDomainLengths(e, a, c float64) Option {
	return func(o *options) {
		o.e, o.a, o.c = e, a, c
	}
}

// WithLogger enables debug tracing of boundaries and fit coefficients.
// A nil logger keeps the evaluator silent.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}
