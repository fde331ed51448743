package report

import (
	"fmt"

	"github.com/katalvlaran/stepheight/feature"
	"github.com/katalvlaran/stepheight/fit"
)

const (
	toMicro = 1e6
	toNano  = 1e9
)

// Unit is the micrometre symbol used in every label.
const Unit = "µm"

// FormatProfileLine renders the result of profile index as
//
//	index y height Pt residual-range [radius asymmetry]
//
// with lengths in µm. The radius and asymmetry columns are only present for
// cylindrical features.
func FormatProfileLine(index int, r fit.Result) string {
	line := fmt.Sprintf("%5d %7.1f %10.4f %10.4f %10.4f", index,
		r.YPosition*toMicro, r.Height*toMicro, r.Pt*toMicro, r.RangeOfResiduals*toMicro)
	if r.Feature.Family() == feature.Cylindrical {
		line += fmt.Sprintf(" %8.1f %6.3f", r.Radius*toMicro, r.Asymmetry)
	}

	return line
}

// Columns returns the column legend matching FormatProfileLine for t.
func Columns(t feature.Type) []string {
	cols := []string{
		"Profile index",
		"Profile position / " + Unit,
		"Feature height/depth / " + Unit,
		"Pt / " + Unit,
		"Range of residuals / " + Unit,
	}
	if t.Family() == feature.Cylindrical {
		cols = append(cols, "Radius / "+Unit, "Asymmetry index")
	}

	return cols
}
