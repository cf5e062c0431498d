package length

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversions(t *testing.T) {
	l := FromMeters(1)

	assert.InDelta(t, 1.0, l.Meters(), tolerance)
	assert.InDelta(t, 100.0, l.Centimeters(), tolerance)
	assert.InDelta(t, 1000.0, l.Millimeters(), tolerance)
	assert.InDelta(t, 39.37007874, l.Inches(), 1e-6)
}

func TestConstructors(t *testing.T) {
	assert.InDelta(t, 0.062, FromCentimeters(6.2).Meters(), tolerance)
	assert.InDelta(t, 0.005, FromMillimeters(5).Meters(), tolerance)
	assert.InDelta(t, 0.0254, FromInches(1).Meters(), tolerance)
	assert.Equal(t, FromCentimeters(6.2), New(6.2, Centimeter))
}

func TestCentimetersDividesByFactor(t *testing.T) {
	meters, factor := 0.062, 0.01
	assert.Equal(t, meters/factor, FromMeters(meters).Centimeters())
}

func TestScale(t *testing.T) {
	l := FromCentimeters(5)
	scaled := l.Scale(2)

	assert.InDelta(t, 0.1, scaled.Meters(), tolerance)
	assert.InDelta(t, 0.05, l.Meters(), tolerance, "scaling must not modify the receiver")
}

func TestDiv(t *testing.T) {
	assert.InDelta(t, 0.5, FromCentimeters(50).Div(FromMeters(1)), tolerance)
	assert.InDelta(t, 2.54, FromInches(1).Div(FromCentimeters(1)), tolerance)
	assert.True(t, math.IsInf(FromMeters(1).Div(FromMeters(0)), 1))
	assert.True(t, math.IsNaN(FromMeters(0).Div(FromMeters(0))))
}

func TestMin(t *testing.T) {
	a := FromCentimeters(9)
	b := FromCentimeters(16)

	assert.Equal(t, a, Min(a, b))
	assert.Equal(t, a, Min(b, a))
	assert.Equal(t, a, Min(a, a))
}

func TestCompare(t *testing.T) {
	short := MustParse("1cm")
	long := MustParse("1in")

	assert.Equal(t, -1, Compare(short, long))
	assert.Equal(t, 1, Compare(long, short))
	assert.Equal(t, 0, Compare(MustParse("1m"), MustParse("100cm")))
}

func TestString(t *testing.T) {
	assert.Equal(t, "1.5 m", FromMeters(1.5).String())
}

func TestTokens(t *testing.T) {
	tokens := Tokens()

	assert.Len(t, tokens, 12)
	assert.IsIncreasing(t, tokens)
	for _, token := range []string{"m", "cm", "mm", "in", "meters", "inches"} {
		assert.Contains(t, tokens, token)
	}
}
