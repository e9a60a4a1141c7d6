package ephemeris

import (
	"math"

	"github.com/harshasoftware/halohome/model"
)

const j2000JD = 2451545.0

// keplerElements is a planet's osculating orbital elements and their
// linear secular rates (per Julian century), the JPL "Keplerian Elements
// for Approximate Positions of the Major Planets" low-precision model
// valid 1800-2050. aAU, eccentricity and inclination/angles (degrees) at
// epoch, plus their /century rates.
type keplerElements struct {
	aAU, aDot               float64
	e, eDot                 float64
	iDeg, iDot              float64
	lDeg, lDot              float64 // mean longitude L
	longPeriDeg, longPeriDot float64 // longitude of perihelion, ϖ
	longNodeDeg, longNodeDot float64 // longitude of ascending node, Ω
}

var planetElements = map[model.Body]keplerElements{
	model.Mercury: {
		aAU: 0.38709927, aDot: 0.00000037,
		e: 0.20563593, eDot: 0.00001906,
		iDeg: 7.00497902, iDot: -0.00594749,
		lDeg: 252.25032350, lDot: 149472.67411175,
		longPeriDeg: 77.45779628, longPeriDot: 0.16047689,
		longNodeDeg: 48.33076593, longNodeDot: -0.12534081,
	},
	model.Venus: {
		aAU: 0.72333566, aDot: 0.00000390,
		e: 0.00677672, eDot: -0.00004107,
		iDeg: 3.39467605, iDot: -0.00078890,
		lDeg: 181.97909950, lDot: 58517.81538729,
		longPeriDeg: 131.60246718, longPeriDot: 0.00268329,
		longNodeDeg: 76.67984255, longNodeDot: -0.27769418,
	},
	model.Mars: {
		aAU: 1.52371034, aDot: 0.00001847,
		e: 0.09339410, eDot: 0.00007882,
		iDeg: 1.84969142, iDot: -0.00813131,
		lDeg: -4.55343205, lDot: 19140.30268499,
		longPeriDeg: -23.94362959, longPeriDot: 0.44441088,
		longNodeDeg: 49.55953891, longNodeDot: -0.29257343,
	},
	model.Jupiter: {
		aAU: 5.20288700, aDot: -0.00011607,
		e: 0.04838624, eDot: -0.00013253,
		iDeg: 1.30439695, iDot: -0.00183714,
		lDeg: 34.39644051, lDot: 3034.74612775,
		longPeriDeg: 14.72847983, longPeriDot: 0.21252668,
		longNodeDeg: 100.47390909, longNodeDot: 0.20469106,
	},
	model.Saturn: {
		aAU: 9.53667594, aDot: -0.00125060,
		e: 0.05386179, eDot: -0.00050991,
		iDeg: 2.48599187, iDot: 0.00193609,
		lDeg: 49.95424423, lDot: 1222.49362201,
		longPeriDeg: 92.59887831, longPeriDot: -0.41897216,
		longNodeDeg: 113.66242448, longNodeDot: -0.28867794,
	},
	model.Uranus: {
		aAU: 19.18916464, aDot: -0.00196176,
		e: 0.04725744, eDot: -0.00004397,
		iDeg: 0.77263783, iDot: -0.00242939,
		lDeg: 313.23810451, lDot: 428.48202785,
		longPeriDeg: 170.95427630, longPeriDot: 0.40805281,
		longNodeDeg: 74.01692503, longNodeDot: 0.04240589,
	},
	model.Neptune: {
		aAU: 30.06992276, aDot: 0.00026291,
		e: 0.00859048, eDot: 0.00005105,
		iDeg: 1.77004347, iDot: 0.00035372,
		lDeg: -55.12002969, lDot: 218.45945325,
		longPeriDeg: 44.96476227, longPeriDot: -0.32241464,
		longNodeDeg: 131.78422574, longNodeDot: -0.00508664,
	},
	// Earth's elements, used only to build the heliocentric vector that
	// is subtracted from each planet (and negated for the Sun).
	model.Sun: {
		aAU: 1.00000261, aDot: 0.00000562,
		e: 0.01671123, eDot: -0.00004392,
		iDeg: -0.00001531, iDot: -0.01294668,
		lDeg: 100.46457166, lDot: 35999.37244981,
		longPeriDeg: 102.93768193, longPeriDot: 0.32327364,
		longNodeDeg: 0.0, longNodeDot: 0.0,
	},
}

// heliocentricPosition solves the two-body problem for a planet's
// elements at jdTT and returns its heliocentric ecliptic position
// (x, y, z in AU, mean equinox of date... in practice J2000 given the
// low-precision element set, adequate for astrocartography-grade line
// geometry).
func heliocentricPosition(el keplerElements, jdTT float64) (x, y, z, r float64) {
	T := (jdTT - j2000JD) / 36525.0

	a := el.aAU + el.aDot*T
	e := el.e + el.eDot*T
	iRad := (el.iDeg + el.iDot*T) * math.Pi / 180.0
	lDeg := el.lDeg + el.lDot*T
	longPeriDeg := el.longPeriDeg + el.longPeriDot*T
	longNodeDeg := el.longNodeDeg + el.longNodeDot*T

	argPeriDeg := longPeriDeg - longNodeDeg
	meanAnomDeg := math.Mod(lDeg-longPeriDeg, 360.0)
	if meanAnomDeg > 180.0 {
		meanAnomDeg -= 360.0
	}
	if meanAnomDeg < -180.0 {
		meanAnomDeg += 360.0
	}
	M := meanAnomDeg * math.Pi / 180.0

	E := solveKepler(M, e)

	xOrb := a * (math.Cos(E) - e)
	yOrb := a * math.Sqrt(1-e*e) * math.Sin(E)

	argPeriRad := argPeriDeg * math.Pi / 180.0
	longNodeRad := longNodeDeg * math.Pi / 180.0

	cosArg, sinArg := math.Cos(argPeriRad), math.Sin(argPeriRad)
	cosNode, sinNode := math.Cos(longNodeRad), math.Sin(longNodeRad)
	cosI, sinI := math.Cos(iRad), math.Sin(iRad)

	xEcl := (cosArg*cosNode-sinArg*sinNode*cosI)*xOrb + (-sinArg*cosNode-cosArg*sinNode*cosI)*yOrb
	yEcl := (cosArg*sinNode+sinArg*cosNode*cosI)*xOrb + (-sinArg*sinNode+cosArg*cosNode*cosI)*yOrb
	zEcl := (sinArg*sinI)*xOrb + (cosArg*sinI)*yOrb

	r = math.Sqrt(xEcl*xEcl + yEcl*yEcl + zEcl*zEcl)
	return xEcl, yEcl, zEcl, r
}

// solveKepler solves Kepler's equation E - e*sin(E) = M by Newton-Raphson,
// seeding E = M for the low-eccentricity planetary case.
func solveKepler(M, e float64) float64 {
	E := M
	for i := 0; i < 10; i++ {
		dE := (E - e*math.Sin(E) - M) / (1 - e*math.Cos(E))
		E -= dE
		if math.Abs(dE) < 1e-12 {
			break
		}
	}
	return E
}

func rectangularToSpherical(x, y, z float64) (lambdaRad, betaRad, r float64) {
	r = math.Sqrt(x*x + y*y + z*z)
	lambdaRad = math.Atan2(y, x)
	if lambdaRad < 0 {
		lambdaRad += 2 * math.Pi
	}
	betaRad = math.Asin(z / r)
	return
}
