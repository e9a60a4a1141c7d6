// Package frames implements the coordinate-frame machinery between
// ephemeris output and the equatorial (α, δ) positions the line-geometry
// stage needs: obliquity, nutation, ecliptic<->equatorial rotation,
// annual aberration and sidereal time.
package frames

import "math"

const (
	deg2rad    = math.Pi / 180.0
	rad2deg    = 180.0 / math.Pi
	arcsec2rad = deg2rad / 3600.0

	j2000JD = 2451545.0
)

// JulianCenturiesTT converts a TT Julian date into Julian centuries from
// J2000, the time argument every series in this package takes.
func JulianCenturiesTT(jdTT float64) float64 {
	return (jdTT - j2000JD) / 36525.0
}

// MeanObliquity returns the mean obliquity of the ecliptic, in radians,
// using the IAU 2006 sextic polynomial (P03 precession-nutation model),
// 84381.406 arcseconds at J2000.
func MeanObliquity(T float64) float64 {
	arcsec := 84381.406 + T*(-46.836769+
		T*(-0.0001831+
			T*(0.00200340+
				T*(-0.000000576+
					T*(-0.0000000434)))))
	return arcsec * arcsec2rad
}

// TrueObliquity adds the nutation-in-obliquity correction to the mean
// obliquity.
func TrueObliquity(meanObliquityRad, nutationObliquityRad float64) float64 {
	return meanObliquityRad + nutationObliquityRad
}
