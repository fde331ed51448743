// Package config holds the settings of one scan evaluation: the feature to
// fit, its edge positions, the evaluation domain lengths, the profile band
// and the output options. Settings come from defaults, an optional YAML file
// and command-line flags, applied in that order.
//
// Lengths are in micrometres, as typed by the operator; the accessor
// methods convert them to metres.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stepheight/boundary"
	"github.com/katalvlaran/stepheight/feature"
	"github.com/katalvlaran/stepheight/report"
)

// ErrInvalidSettings wraps every validation failure.
var ErrInvalidSettings = errors.New("config: invalid settings")

const micro = 1e-6

// Settings of one evaluation. Zero values are not meaningful; start from
// Default.
type Settings struct {
	TypeIndex int `yaml:"type"`

	X1  float64  `yaml:"x1"`            // first feature edge, µm
	X2  float64  `yaml:"x2"`            // second feature edge, µm
	XW1 *float64 `yaml:"xw1,omitempty"` // first wall, µm; nil for the edge
	XW2 *float64 `yaml:"xw2,omitempty"` // second wall, µm; nil for the edge

	W1 float64 `yaml:"w1"` // overall span / feature width
	W2 float64 `yaml:"w2"` // one reference window / feature width
	W3 float64 `yaml:"w3"` // feature window / feature width

	Y0      float64 `yaml:"y0"`      // first profile position, µm
	YWidth  float64 `yaml:"ywidth"`  // width of the evaluated band, µm
	MaxSpan float64 `yaml:"maxspan"` // residual range threshold, µm

	Comment   string `yaml:"comment"`
	OutExt    string `yaml:"outextension"`
	ResExt    string `yaml:"resextension"`
	Separator string `yaml:"separator"`
	Quiet     bool   `yaml:"quiet"`
	Multifile bool   `yaml:"multifile"`
}

// Default returns the settings of a plain invocation.
func Default() Settings {
	return Settings{
		TypeIndex: 1,
		W1:        boundary.DefaultE,
		W2:        boundary.DefaultA,
		W3:        boundary.DefaultC,
		YWidth:    math.MaxFloat64,
		MaxSpan:   0.1,
		Comment:   "---",
		OutExt:    "prn",
		ResExt:    "csv",
		Separator: ",",
	}
}

// Load reads a YAML settings file over Default. Unknown keys are errors.
func Load(path string) (Settings, error) {
	s := Default()
	f, err := os.Open(path)
	if err != nil {
		return s, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return s, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Validate reports the first inconsistency of s, wrapped in
// ErrInvalidSettings.
func (s Settings) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidSettings)
	}

	if _, err := feature.FromIndex(s.TypeIndex); err != nil {
		return invalid("type %d", s.TypeIndex)
	}
	if _, err := boundary.NewGenerator(s.W1, s.W2, s.W3); err != nil {
		return invalid("W1=%g W2=%g W3=%g", s.W1, s.W2, s.W3)
	}
	for name, v := range map[string]float64{"X1": s.X1, "X2": s.X2, "Y0": s.Y0} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return invalid("%s=%g", name, v)
		}
	}
	if s.X1 == s.X2 {
		return invalid("feature edges coincide at %g µm", s.X1)
	}
	if (s.XW1 == nil) != (s.XW2 == nil) {
		return invalid("both wall positions or neither are required")
	}
	if math.IsNaN(s.YWidth) {
		return invalid("Ywidth=%g", s.YWidth)
	}
	if !(s.MaxSpan > 0) {
		return invalid("maxspan=%g", s.MaxSpan)
	}
	if s.OutExt == "" || s.ResExt == "" {
		return invalid("empty file extension")
	}
	if s.OutExt == s.ResExt {
		return invalid("output and residual extensions are both %q", s.OutExt)
	}
	if _, err := report.ParseSeparator(s.Separator); err != nil {
		return invalid("separator %q", s.Separator)
	}

	return nil
}

// Feature returns the feature type selected by TypeIndex.
func (s Settings) Feature() (feature.Type, error) { return feature.FromIndex(s.TypeIndex) }

// Edges returns the feature edges in metres.
func (s Settings) Edges() (left, right float64) { return s.X1 * micro, s.X2 * micro }

// Walls returns the wall positions in metres, falling back to the edges.
func (s Settings) Walls() (left, right float64) {
	left, right = s.Edges()
	if s.XW1 != nil && s.XW2 != nil {
		left, right = *s.XW1*micro, *s.XW2*micro
	}

	return left, right
}

// HasWalls reports whether explicit wall positions are set.
func (s Settings) HasWalls() bool { return s.XW1 != nil && s.XW2 != nil }

// YBand returns the closed band [lo, hi] of evaluated profile positions in
// metres. A negative width extends the band below Y0.
func (s Settings) YBand() (lo, hi float64) {
	lo = s.Y0 * micro
	hi = lo + s.YWidth*micro
	if lo > hi {
		lo, hi = hi, lo
	}

	return lo, hi
}

// MaxSpanMetres returns the residual range threshold in metres.
func (s Settings) MaxSpanMetres() float64 { return s.MaxSpan * micro }

// SeparatorRune returns the CSV separator. Call after Validate.
func (s Settings) SeparatorRune() rune {
	r, _ := report.ParseSeparator(s.Separator)
	return r
}
