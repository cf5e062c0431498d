package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/unit"

	"github.com/philipparndt/sghelper/pkg/geometry"
	"github.com/philipparndt/sghelper/pkg/length"
)

// Setup describes a stereo viewing setup
type Setup struct {
	FaceDistance  length.Length // Distance from the viewer's face to the screen
	ImageWidth    length.Length
	ImageHeight   length.Length
	MinSeparation length.Length // Smallest on-screen parallax to capture
	MaxSeparation length.Length // Largest on-screen parallax to capture
	EyeSeparation length.Length
}

// NewSetup creates a setup using the default eye separation
func NewSetup(faceDistance, imageWidth, imageHeight, minSeparation, maxSeparation length.Length) Setup {
	return Setup{
		FaceDistance:  faceDistance,
		ImageWidth:    imageWidth,
		ImageHeight:   imageHeight,
		MinSeparation: minSeparation,
		MaxSeparation: maxSeparation,
		EyeSeparation: geometry.EyeSeparation(),
	}
}

// MeasurementResult contains the camera parameters derived from a setup
type MeasurementResult struct {
	FieldOfView unit.Angle
	MinDistance length.Length
	MaxDistance length.Length
}

// AnalyzeSetup computes the camera field of view and the capture distances
// matching the setup's min and max separation
func AnalyzeSetup(s Setup) *MeasurementResult {
	return &MeasurementResult{
		FieldOfView: geometry.FieldOfView(s.ImageWidth, s.ImageHeight, s.FaceDistance),
		MinDistance: geometry.DistanceForSeparation(s.MinSeparation, s.EyeSeparation, s.FaceDistance),
		MaxDistance: geometry.DistanceForSeparation(s.MaxSeparation, s.EyeSeparation, s.FaceDistance),
	}
}

// FormatDegrees formats an angle in degrees with one decimal place
func FormatDegrees(a unit.Angle) string {
	return fmt.Sprintf("%.1f°", geometry.Degrees(a))
}

// FormatCentimeters formats a length in centimeters with two decimal places
func FormatCentimeters(l length.Length) string {
	return fmt.Sprintf("%.2fcm", l.Centimeters())
}

// FormatMillimeters formats a length in millimeters with one decimal place
func FormatMillimeters(l length.Length) string {
	return fmt.Sprintf("%.1fmm", l.Millimeters())
}
