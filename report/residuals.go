package report

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/katalvlaran/stepheight/profile"
)

// ErrSeparator indicates a separator that cannot delimit CSV fields.
var ErrSeparator = errors.New("report: invalid CSV separator")

// ParseSeparator converts a one-character separator setting into a rune.
func ParseSeparator(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == utf8.RuneError || r == '"' || r == '\r' || r == '\n' {
		return 0, ErrSeparator
	}

	return r, nil
}

// WriteResidualPlot writes plot as two CSV columns: x in µm and the average
// residual in nm with three decimals.
func WriteResidualPlot(w io.Writer, plot profile.Profile, sep rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = sep
	if err := cw.Write([]string{"x coordinate in " + Unit, "average fit residuals in nm"}); err != nil {
		return err
	}
	for _, p := range plot {
		rec := []string{
			formatG(p.X * toMicro),
			strconv.FormatFloat(p.Z*toNano, 'f', 3, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
