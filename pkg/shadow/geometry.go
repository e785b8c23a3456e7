// Package shadow converts a light angle into CSS shadow, gradient and border
// declarations for the neumorphic and glass surface idioms.
//
// Every function is pure: the same inputs always produce the same string.
// Angles are in degrees. Non-finite inputs are outside the contract and the
// output for them is unspecified.
package shadow

import "math"

// DefaultLightAngle is the light angle an engine starts with and resets to.
const DefaultLightAngle = 135.0

// Offset is the unit vector pointing in the direction a shadow is cast.
type Offset struct {
	X float64
	Y float64
}

// NormalizeAngle wraps deg into the half-open range [0, 360).
func NormalizeAngle(deg float64) float64 {
	n := math.Mod(math.Mod(deg, 360)+360, 360)
	// math.Mod can return 360 for tiny negative inputs after the shift.
	if n >= 360 {
		n -= 360
	}
	return n
}

// ComputeShadowOffset returns the shadow direction for a light angle. The
// shadow falls opposite the light, so the vector is taken at angle + 180°.
func ComputeShadowOffset(lightAngle float64) Offset {
	rad := (NormalizeAngle(lightAngle) + 180) * math.Pi / 180
	return Offset{X: math.Cos(rad), Y: math.Sin(rad)}
}

// Inverted returns the direction toward the light.
func (o Offset) Inverted() Offset {
	return Offset{X: -o.X, Y: -o.Y}
}

// Length returns the magnitude of the vector.
func (o Offset) Length() float64 {
	return math.Hypot(o.X, o.Y)
}

// Scale returns the vector multiplied by distance.
func (o Offset) Scale(distance float64) Offset {
	return Offset{X: o.X * distance, Y: o.Y * distance}
}
