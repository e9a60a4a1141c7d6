package frames

import "math"

// GMST returns Greenwich Mean Sidereal Time, in radians, normalized to
// [0, 2π), for a UT1 Julian date. Classical four-term IAU 1982 polynomial
// (Meeus ch.12), evaluated directly in (jd_ut1 - J2000) rather than via
// fractional centuries to keep the linear term numerically dominant.
func GMST(jdUT1 float64) float64 {
	du := jdUT1 - j2000JD
	T := du / 36525.0

	gmstDeg := 280.46061837 + 360.98564736629*du +
		0.000387933*T*T - T*T*T/38710000.0

	gmstDeg = math.Mod(gmstDeg, 360.0)
	if gmstDeg < 0 {
		gmstDeg += 360.0
	}
	return gmstDeg * deg2rad
}

// LST returns Local Sidereal Time, in radians, normalized to [0, 2π), at
// a geographic longitude (radians, east-positive).
func LST(gmstRad, lonRad float64) float64 {
	lst := math.Mod(gmstRad+lonRad, 2*math.Pi)
	if lst < 0 {
		lst += 2 * math.Pi
	}
	return lst
}

// ARMC is the Right Ascension of the Midheaven, numerically identical to
// Local Sidereal Time; kept as a distinct name because astrological
// literature (and this codebase's line-geometry stage) refers to it by
// that name when it plays the role of "the meridian's RA".
func ARMC(gmstRad, lonRad float64) float64 {
	return LST(gmstRad, lonRad)
}

// WrapSigned normalizes an angle in radians into (-π, π].
func WrapSigned(rad float64) float64 {
	w := math.Mod(rad+math.Pi, 2*math.Pi)
	if w <= 0 {
		w += 2 * math.Pi
	}
	return w - math.Pi
}

// WrapPositive normalizes an angle in radians into [0, 2π).
func WrapPositive(rad float64) float64 {
	w := math.Mod(rad, 2*math.Pi)
	if w < 0 {
		w += 2 * math.Pi
	}
	return w
}
