package ephemeris

import "github.com/harshasoftware/halohome/model"

// planetPosition returns the geocentric ecliptic position of a
// Mercury-Neptune body: both the planet and Earth are converted to
// heliocentric rectangular coordinates and subtracted, then reconverted
// to spherical.
func planetPosition(body model.Body, jdTT float64) model.EclipticPosition {
	xp, yp, zp, _ := heliocentricPosition(planetElements[body], jdTT)
	xe, ye, ze, _ := heliocentricPosition(planetElements[model.Sun], jdTT)

	x, y, z := xp-xe, yp-ye, zp-ze
	lambdaRad, betaRad, r := rectangularToSpherical(x, y, z)

	return model.EclipticPosition{LambdaRad: lambdaRad, BetaRad: betaRad, RadiusAU: r}
}
