// Package feature enumerates the reference structures of ISO 5436-1 that a
// step-height evaluation can fit, and groups them into fit families.
package feature

import "errors"

// ErrUnknownType is returned by Parse and FromIndex for unrecognised input.
var ErrUnknownType = errors.New("feature: unknown feature type")

// Type identifies the physical reference feature on a standard.
type Type int

const (
	// None is the zero value and designates no feature.
	None Type = iota
	// A1Groove is an ISO 5436-1 type A1 rectangular groove.
	A1Groove
	// A2Groove is an ISO 5436-1 type A2 cylindrical groove.
	A2Groove
	// A1Ridge is an inverted type A1 feature (rectangular ridge).
	A1Ridge
	// A2Ridge is an inverted type A2 feature (cylindrical ridge), uncommon.
	A2Ridge
	// A1TrapezoidalGroove is a type A1 groove with inclined walls.
	A1TrapezoidalGroove
	// A1TrapezoidalRidge is an inverted type A1 trapezoid.
	A1TrapezoidalRidge
	// RisingEdge is a single edge going from low to high.
	RisingEdge
	// FallingEdge is a single edge going from high to low.
	FallingEdge
)

// Family groups feature types sharing one fit algorithm.
type Family int

const (
	// FamilyNone has no fit algorithm.
	FamilyNone Family = iota
	// FlatTopped covers rectangular and trapezoidal grooves and ridges.
	FlatTopped
	// Cylindrical covers type A2 grooves and ridges.
	Cylindrical
	// SingleEdge covers rising and falling edges. No algorithm exists for it
	// yet; evaluators report it as not supported.
	SingleEdge
)

// String returns a short name for the family.
func (f Family) String() string {
	switch f {
	case FlatTopped:
		return "flat-topped"
	case Cylindrical:
		return "cylindrical"
	case SingleEdge:
		return "single-edge"
	default:
		return "none"
	}
}
