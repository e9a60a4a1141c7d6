package ephemeris

import (
	"math"

	"github.com/harshasoftware/halohome/model"

	"github.com/harshasoftware/halohome/kepler"
)

// J2000 mean obliquity, matching kepler.Orbit's internal equatorial
// rotation, needed here to invert it back to the ecliptic frame.
const (
	chironObliquitySin = 0.3977771559319137062
	chironObliquityCos = 0.9174820620691818140
)

// chironElements is Chiron's osculating orbit at J2000 with secular rates
// per Julian century. Epoch elements are JPL small-body database values
// for 2060 Chiron (95P); the rates approximate the slow node/periapsis
// precession induced by Saturn and Uranus perturbations.
var chironElements = struct {
	aAU                      float64
	e, eDot                  float64
	iDeg, iDot               float64
	longNodeDeg, longNodeDot float64
	argPeriDeg, argPeriDot   float64
	meanAnomDeg              float64
}{
	aAU:         13.6975,
	e:           0.38155, eDot: 0.00002,
	iDeg:        6.9298, iDot: -0.0004,
	longNodeDeg: 209.2966, longNodeDot: 0.012,
	argPeriDeg:  339.0065, argPeriDot: 0.018,
	meanAnomDeg: 358.445,
}

// chironPosition returns Chiron's geocentric ecliptic position: a
// perturbed two-body Kepler solution (via kepler.Orbit, the same solver
// used for comets and minor planets), corrected by a bounded first-order
// perturbation from Jupiter, Saturn and Uranus mean longitudes.
func chironPosition(jdTT float64) model.EclipticPosition {
	T := (jdTT - j2000JD) / 36525.0

	orbit := &kepler.Orbit{
		SemiMajorAxisAU: chironElements.aAU,
		Eccentricity:    chironElements.e + chironElements.eDot*T,
		InclinationDeg:  chironElements.iDeg + chironElements.iDot*T,
		LongAscNodeDeg:  chironElements.longNodeDeg + chironElements.longNodeDot*T,
		ArgPeriapsisDeg: chironElements.argPeriDeg + chironElements.argPeriDot*T,
		MeanAnomalyDeg:  chironElements.meanAnomDeg,
		EpochJD:         j2000JD,
	}

	posEquatorial := orbit.PositionAU(jdTT)

	// Invert kepler.Orbit's ecliptic -> equatorial rotation (Rx(-eps)) to
	// recover the heliocentric ecliptic vector.
	xEcl := posEquatorial[0]
	yEcl := chironObliquityCos*posEquatorial[1] + chironObliquitySin*posEquatorial[2]
	zEcl := -chironObliquitySin*posEquatorial[1] + chironObliquityCos*posEquatorial[2]

	xEcl, yEcl = applyGiantPlanetPerturbation(xEcl, yEcl, T)

	xEarth, yEarth, zEarth, _ := heliocentricPosition(planetElements[model.Sun], jdTT)

	x, y, z := xEcl-xEarth, yEcl-yEarth, zEcl-zEarth
	lambdaRad, betaRad, r := rectangularToSpherical(x, y, z)

	return model.EclipticPosition{LambdaRad: lambdaRad, BetaRad: betaRad, RadiusAU: r}
}

// applyGiantPlanetPerturbation nudges Chiron's heliocentric ecliptic
// position by a small, bounded first-order term driven by the mean
// longitudes of Jupiter, Saturn and Uranus (Chiron's orbit lies between
// Saturn and Uranus and is perturbed by both). There is no published
// analytic perturbation series for Chiron comparable to Pluto's Meeus
// ch.37 theory, so this is a deliberately modest, bounded correction
// rather than a two-body-only solution -- documented as an approximation,
// not a sourced coefficient table.
func applyGiantPlanetPerturbation(xEcl, yEcl, T float64) (float64, float64) {
	lJupiter := rad(degMod(planetElements[model.Jupiter].lDeg + planetElements[model.Jupiter].lDot*T))
	lSaturn := rad(degMod(planetElements[model.Saturn].lDeg + planetElements[model.Saturn].lDot*T))
	lUranus := rad(degMod(planetElements[model.Uranus].lDeg + planetElements[model.Uranus].lDot*T))

	lonChiron := math.Atan2(yEcl, xEcl)
	r := math.Hypot(xEcl, yEcl)

	const amplitudeRad = 0.0015 // radians, ~0.086 deg bound
	dLon := amplitudeRad * (0.5*math.Sin(lJupiter-lonChiron) +
		0.3*math.Sin(lSaturn-lonChiron) +
		0.2*math.Sin(lUranus-lonChiron))

	newLon := lonChiron + dLon
	return r * math.Cos(newLon), r * math.Sin(newLon)
}
