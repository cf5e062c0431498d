package length

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var (
	// ErrInvalidFormat is returned when a string is not "<number> <unit>"
	ErrInvalidFormat = errors.New("bad input format")
	// ErrUnknownUnit is returned when the unit token is not recognized
	ErrUnknownUnit = errors.New("unknown unit")
)

// Signs and exponents are not accepted; lengths are plain non-negative decimals.
var lengthPattern = regexp.MustCompile(`^\s*(?P<scalar>\d+(?:\.\d*)?|\.\d+)\s*(?P<unit>[[:alpha:]]+)\s*$`)

// Parse reads a length such as "5cm", "0.5 meters" or " .25in ".
//
// The string must hold a decimal scalar followed by a unit token, with
// optional whitespace around and between them. Accepted units are listed by
// Tokens.
func Parse(s string) (Length, error) {
	m := lengthPattern.FindStringSubmatch(s)
	if m == nil {
		return Length{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	scalarText := m[lengthPattern.SubexpIndex("scalar")]
	token := m[lengthPattern.SubexpIndex("unit")]

	scalar, err := strconv.ParseFloat(scalarText, 64)
	if err != nil {
		panic(fmt.Sprintf("length: scalar %q matched the grammar but failed to parse: %v", scalarText, err))
	}

	u, ok := LookupUnit(token)
	if !ok {
		return Length{}, fmt.Errorf("%w %q", ErrUnknownUnit, token)
	}

	return New(scalar, u), nil
}

// MustParse is like Parse but panics on error
func MustParse(s string) Length {
	l, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return l
}
