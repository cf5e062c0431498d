package geometry

import (
	"math"

	"gonum.org/v1/gonum/unit"

	"github.com/philipparndt/sghelper/pkg/length"
)

var eyeSeparation = length.New(6.2, length.Centimeter)

// EyeSeparation returns the average human interocular distance, 6.2cm
func EyeSeparation() length.Length {
	return eyeSeparation
}

// FieldOfView returns the camera field of view for a frame of the given size
// viewed from faceDistance. The narrower frame dimension limits the angle.
//
//	fov = 2 × atan(min(width, height) / (2 × faceDistance))
func FieldOfView(width, height, faceDistance length.Length) unit.Angle {
	return unit.Angle(2 * math.Atan(length.Min(width, height).Div(faceDistance.Scale(2))))
}

// Degrees converts an angle to degrees
func Degrees(a unit.Angle) float64 {
	return float64(a) * 180 / math.Pi
}

// DistanceForSeparation returns how far from the camera an object must be for
// its stereo parallax to appear as the given on-screen separation.
//
//	distance = (eyeSeparation × faceDistance) / (eyeSeparation − separation)
//
// The result diverges as separation approaches eyeSeparation; infinite and
// negative results are returned as-is.
func DistanceForSeparation(separation, eyeSeparation, faceDistance length.Length) length.Length {
	s := separation.Meters()
	e := eyeSeparation.Meters()
	d := faceDistance.Meters()

	return length.FromMeters((e * d) / (e - s))
}
