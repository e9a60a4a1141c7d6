// Package ephemeris computes geocentric ecliptic positions for the twelve
// bodies astrocartography needs, each body dispatched to the analytic or
// perturbation theory appropriate to it (JPL's approximate Keplerian
// elements for the Sun and planets, ELP2000-82 for the Moon, Meeus's Pluto theory,
// a perturbed Kepler solution for Chiron, and a mean+true node model).
package ephemeris

import (
	"fmt"

	"github.com/harshasoftware/halohome/model"
)

// GeocentricEcliptic returns the geocentric ecliptic position (λ, β, r) of
// body at the given TT Julian date. All routines here are pure functions
// of jdTT.
func GeocentricEcliptic(body model.Body, jdTT float64) (model.EclipticPosition, error) {
	switch body {
	case model.Sun:
		return sunPosition(jdTT), nil
	case model.Moon:
		return moonPosition(jdTT), nil
	case model.Mercury, model.Venus, model.Mars, model.Jupiter, model.Saturn, model.Uranus, model.Neptune:
		return planetPosition(body, jdTT), nil
	case model.Pluto:
		return plutoPosition(jdTT), nil
	case model.Chiron:
		return chironPosition(jdTT), nil
	case model.NorthNode:
		return trueNodePosition(jdTT), nil
	default:
		return model.EclipticPosition{}, fmt.Errorf("ephemeris: unsupported body %v", body)
	}
}
