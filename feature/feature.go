package feature

import (
	"fmt"
	"strings"
)

// descriptor carries the fixed properties of one Type.
type descriptor struct {
	name        string
	designation string
	sign        int
	family      Family
}

var descriptors = map[Type]descriptor{
	A1Groove:            {"A1Groove", "ISO 5436-1 Type A1 (rectangular groove)", +1, FlatTopped},
	A1Ridge:             {"A1Ridge", "Inverted ISO 5436-1 Type A1 (rectangular ridge)", -1, FlatTopped},
	A2Groove:            {"A2Groove", "ISO 5436-1 Type A2 (cylindrical groove)", +1, Cylindrical},
	A2Ridge:             {"A2Ridge", "Inverted ISO 5436-1 Type A2 (cylindrical ridge)", -1, Cylindrical},
	A1TrapezoidalGroove: {"A1TrapezoidalGroove", "ISO 5436-1 Type A1 (trapezoidal groove)", +1, FlatTopped},
	A1TrapezoidalRidge:  {"A1TrapezoidalRidge", "Inverted ISO 5436-1 Type A1 (trapezoidal ridge)", -1, FlatTopped},
	RisingEdge:          {"RisingEdge", "Single edge (low->high)", -1, SingleEdge},
	FallingEdge:         {"FallingEdge", "Single edge (high->low)", +1, SingleEdge},
}

// undefined is reported for None and for values outside the enumeration.
var undefined = descriptor{"None", "undefined feature", 0, FamilyNone}

func (t Type) describe() descriptor {
	if d, ok := descriptors[t]; ok {
		return d
	}

	return undefined
}

// Sign returns +1 for groove-like types, -1 for ridge-like types and 0 for
// None. The sign orients the fit so that a groove depth and a ridge height
// both come out positive.
func (t Type) Sign() int { return t.describe().sign }

// Designation returns the human-readable ISO 5436-1 designation.
func (t Type) Designation() string { return t.describe().designation }

// Family returns the fit family of t.
func (t Type) Family() Family { return t.describe().family }

// String returns the short identifier of t, e.g. "A2Groove".
func (t Type) String() string { return t.describe().name }

// IsGroove reports whether t is oriented groove-like (positive sign).
func (t Type) IsGroove() bool { return t.Sign() > 0 }

// indices maps the numeric --type values of the command-line tool.
// 1..6 keep their historical meaning; 7 and 8 add the trapezoidal types.
var indices = map[int]Type{
	1: A1Ridge,
	2: A2Groove,
	3: A1Groove,
	4: A2Ridge,
	5: RisingEdge,
	6: FallingEdge,
	7: A1TrapezoidalGroove,
	8: A1TrapezoidalRidge,
}

// FromIndex converts a command-line type index into a Type.
func FromIndex(index int) (Type, error) {
	if t, ok := indices[index]; ok {
		return t, nil
	}

	return None, fmt.Errorf("index %d: %w", index, ErrUnknownType)
}

// Parse converts a short identifier (case-insensitive) into a Type.
func Parse(name string) (Type, error) {
	for t, d := range descriptors {
		if strings.EqualFold(d.name, strings.TrimSpace(name)) {
			return t, nil
		}
	}

	return None, fmt.Errorf("%q: %w", name, ErrUnknownType)
}
