package boundary

import "errors"

// ErrInvalidDomainLengths indicates normalised lengths that cannot produce
// ordered, non-overlapping windows (non-finite, E < 1, A outside (0,(E-1)/2]
// or C outside (0,1]).
var ErrInvalidDomainLengths = errors.New("boundary: invalid normalised domain lengths")
