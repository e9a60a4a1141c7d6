// Package linegeom turns a body's equatorial position (α, δ) and GMST
// into the map geometry astrocartography is named for: meridian (MC/IC)
// longitudes, horizon (ASC/DSC) polylines, the zenith point, and the
// degeneracy handling equatorial bodies require.
package linegeom

import (
	"math"

	"github.com/harshasoftware/halohome/frames"
	"github.com/harshasoftware/halohome/model"
)

const (
	degenerateEps = 1e-9
	lowDeclinationThresholdDeg = 10.0
	defaultLatStepDeg          = 2.0
	tightLatStepDeg            = 0.5
	latMinDeg                  = -89.0
	latMaxDeg                  = 89.0
)

// MCLongitude returns the signed meridian longitude (degrees, in
// (-180,180]) where body is culminating at the given (alpha, gmst), both
// in radians.
func MCLongitude(alphaRad, gmstRad float64) float64 {
	return frames.WrapSigned(alphaRad-gmstRad) * rad2deg
}

// ICLongitude returns the signed meridian longitude of the anti-culmination.
func ICLongitude(alphaRad, gmstRad float64) float64 {
	return frames.WrapSigned(alphaRad+math.Pi-gmstRad) * rad2deg
}

// ZenithPoint returns the geographic point directly beneath the body at
// the birth instant: latitude equal to the body's declination, longitude
// equal to its MC longitude.
func ZenithPoint(alphaRad, deltaRad, gmstRad float64) model.LinePoint {
	return model.LinePoint{LatDeg: deltaRad * rad2deg, LonDeg: MCLongitude(alphaRad, gmstRad)}
}

// IsAllLatitudesHorizon reports whether, at the given geographic
// longitude, every latitude simultaneously satisfies the horizon
// equation — the degenerate case for a body exactly on the celestial
// equator at an hour angle of ±90°, where the rising/setting circle
// collapses to a full vertical meridian segment rather than a single
// latitude.
func IsAllLatitudesHorizon(alphaRad, deltaRad, gmstRad, lonDeg float64) bool {
	if math.Abs(math.Sin(deltaRad)) >= degenerateEps {
		return false
	}
	h := hourAngle(alphaRad, gmstRad, lonDeg)
	return math.Abs(math.Cos(h)) < degenerateEps
}

// HorizonLatitude solves sin φ sin δ + cos φ cos δ cos H = 0 for the
// geographic latitude at which body is on the horizon at longitude lonDeg.
// Returns (latitude, true) normally, or (0, false) in the two degenerate
// cases: the all-latitudes-horizon case (handled by the caller via
// IsAllLatitudesHorizon) and the equatorial-but-not-degenerate case,
// where there genuinely is no solution at this longitude.
func HorizonLatitude(alphaRad, deltaRad, gmstRad, lonDeg float64) (latDeg float64, ok bool) {
	h := hourAngle(alphaRad, gmstRad, lonDeg)
	sinDelta := math.Sin(deltaRad)
	if math.Abs(sinDelta) < degenerateEps {
		// Equatorial body: either every latitude works (caller checks
		// IsAllLatitudesHorizon first) or none does.
		return 0, false
	}
	tanDelta := math.Tan(deltaRad)
	latRad := math.Atan(-math.Cos(h) / tanDelta)
	return latRad * rad2deg, true
}

// IsRising reports whether the horizon crossing at this hour angle is a
// rising (ASC side, true) or setting (DSC side, false) event.
func IsRising(alphaRad, gmstRad, lonDeg float64) bool {
	h := hourAngle(alphaRad, gmstRad, lonDeg)
	return math.Sin(h) < 0
}

func hourAngle(alphaRad, gmstRad, lonDeg float64) float64 {
	return frames.WrapSigned(gmstRad + lonDeg*deg2rad - alphaRad)
}

// AdaptiveLatStep returns the latitude sampling step for the meridian
// lines (MC/IC, which sample at fixed latitude); kept for symmetry with
// AdaptiveLonStep, which is what the horizon lines actually use.
func AdaptiveLatStep() float64 {
	return defaultLatStepDeg
}

// AdaptiveLonStep returns the longitude sampling step the horizon-line
// sampler should use at a given declination: the default caller-supplied
// step, tightened near the celestial equator where horizon latitude
// changes rapidly with longitude.
func AdaptiveLonStep(deltaRad, defaultStepDeg float64) float64 {
	if math.Abs(deltaRad)*rad2deg < lowDeclinationThresholdDeg {
		if tightLatStepDeg < defaultStepDeg {
			return tightLatStepDeg
		}
	}
	return defaultStepDeg
}

const (
	deg2rad = math.Pi / 180.0
	rad2deg = 180.0 / math.Pi
)
