// Package geom holds small 3-vector and rotation helpers. No other package
// in this module imports it. Deliberately not exported at the module root:
// this is plumbing, not a public API.
package geom

import "math"

// Vec3 is a Cartesian 3-vector, unitless — callers fix AU/km/rad as needed.
type Vec3 [3]float64

func Dot3(a, b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func Length3(a Vec3) float64 {
	return math.Sqrt(Dot3(a, a))
}

func Scale3(a Vec3, s float64) Vec3 {
	return Vec3{a[0] * s, a[1] * s, a[2] * s}
}

func Add3(a, b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func Sub3(a, b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// RotateZ rotates a vector about the z-axis by angle (radians), the
// longitude-of-ascending-node / argument-of-periapsis rotation used to
// carry a perifocal-frame position into the ecliptic frame.
func RotateZ(a Vec3, angle float64) Vec3 {
	s, c := math.Sincos(angle)
	return Vec3{
		a[0]*c - a[1]*s,
		a[0]*s + a[1]*c,
		a[2],
	}
}

// RotateX rotates a vector about the x-axis by angle (radians), used for
// the inclination rotation in perifocal-to-ecliptic transforms.
func RotateX(a Vec3, angle float64) Vec3 {
	s, c := math.Sincos(angle)
	return Vec3{
		a[0],
		a[1]*c - a[2]*s,
		a[1]*s + a[2]*c,
	}
}
