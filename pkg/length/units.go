package length

import (
	"maps"
	"slices"

	"gonum.org/v1/gonum/unit"
)

// Unit is a conversion factor: the number of meters in one unit
type Unit float64

const (
	Meter      Unit = 1
	Centimeter Unit = unit.Centi
	Millimeter Unit = unit.Milli
	Inch       Unit = 0.0254
)

// vocabulary maps every accepted unit spelling to its conversion factor.
// Lookups are case-sensitive and whole-token only.
var vocabulary = map[string]Unit{
	"meters":      Meter,
	"meter":       Meter,
	"m":           Meter,
	"centimeters": Centimeter,
	"centimeter":  Centimeter,
	"cm":          Centimeter,
	"millimeters": Millimeter,
	"millimeter":  Millimeter,
	"mm":          Millimeter,
	"inches":      Inch,
	"inch":        Inch,
	"in":          Inch,
}

// LookupUnit returns the unit for a spelling such as "cm" or "inches"
func LookupUnit(token string) (Unit, bool) {
	u, ok := vocabulary[token]
	return u, ok
}

// Tokens returns every accepted unit spelling, sorted
func Tokens() []string {
	return slices.Sorted(maps.Keys(vocabulary))
}
