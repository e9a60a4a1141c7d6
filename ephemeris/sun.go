package ephemeris

import (
	"math"

	"github.com/harshasoftware/halohome/model"
)

// sunPosition returns the Sun's geocentric ecliptic position: the
// antipode of Earth's heliocentric position, derived from the same
// low-precision Keplerian element set used for the planets.
func sunPosition(jdTT float64) model.EclipticPosition {
	xEarth, yEarth, zEarth, _ := heliocentricPosition(planetElements[model.Sun], jdTT)
	lambdaEarth, betaEarth, r := rectangularToSpherical(xEarth, yEarth, zEarth)

	lambdaSun := math.Mod(lambdaEarth+math.Pi, 2*math.Pi)
	betaSun := -betaEarth

	return model.EclipticPosition{LambdaRad: lambdaSun, BetaRad: betaSun, RadiusAU: r}
}
