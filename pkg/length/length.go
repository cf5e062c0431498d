// Package length provides a unit-aware length value and its string parser.
package length

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/unit"
)

// Length is an immutable physical length, always stored in meters
type Length struct {
	meters unit.Length
}

// FromMeters creates a length from a count of meters
func FromMeters(meters float64) Length {
	return Length{meters: unit.Length(meters)}
}

// New creates a length from a scalar expressed in the given unit
func New(scalar float64, u Unit) Length {
	return FromMeters(scalar * float64(u))
}

// FromCentimeters creates a length from a count of centimeters
func FromCentimeters(centimeters float64) Length {
	return New(centimeters, Centimeter)
}

// FromMillimeters creates a length from a count of millimeters
func FromMillimeters(millimeters float64) Length {
	return New(millimeters, Millimeter)
}

// FromInches creates a length from a count of inches
func FromInches(inches float64) Length {
	return New(inches, Inch)
}

// Meters returns the length in meters
func (l Length) Meters() float64 {
	return float64(l.meters)
}

// In returns the length expressed in the given unit
func (l Length) In(u Unit) float64 {
	return l.Meters() / float64(u)
}

// Centimeters returns the length in centimeters
func (l Length) Centimeters() float64 {
	return l.In(Centimeter)
}

// Millimeters returns the length in millimeters
func (l Length) Millimeters() float64 {
	return l.In(Millimeter)
}

// Inches returns the length in inches
func (l Length) Inches() float64 {
	return l.In(Inch)
}

// Scale returns the length multiplied by a scalar
func (l Length) Scale(factor float64) Length {
	return FromMeters(l.Meters() * factor)
}

// Div returns the dimensionless ratio l / other.
// A zero-length divisor yields ±Inf or NaN.
func (l Length) Div(other Length) float64 {
	return l.Meters() / other.Meters()
}

// Min returns the shorter of two lengths
func Min(a, b Length) Length {
	return FromMeters(math.Min(a.Meters(), b.Meters()))
}

// Compare returns -1, 0 or +1 depending on whether a is shorter than, equal
// to, or longer than b
func Compare(a, b Length) int {
	switch {
	case a.meters < b.meters:
		return -1
	case a.meters > b.meters:
		return 1
	default:
		return 0
	}
}

// String formats the length in meters, e.g. "0.062 m"
func (l Length) String() string {
	return fmt.Sprintf("%v", l.meters)
}
