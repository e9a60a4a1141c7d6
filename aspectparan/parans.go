package aspectparan

import (
	"math"

	"github.com/harshasoftware/halohome/frames"
	"github.com/harshasoftware/halohome/model"
	"github.com/harshasoftware/halohome/search"
)

const (
	rad2deg = 180.0 / 3.14159265358979323846

	meridianMeridianToleranceDeg = 2.0
	horizonScanToleranceDeg      = 1.0
	horizonScanMinLatDeg         = -66.0
	horizonScanMaxLatDeg         = 66.0
	horizonScanStepDeg           = 0.25
	horizonScanRefineEpsilonDeg  = 0.01
)

func isMeridional(kind model.LineKind) bool {
	return kind == model.MC || kind == model.IC
}

// meridianLongitude returns the constant signed longitude of an MC or IC
// line; it does not depend on geographic latitude.
func meridianLongitude(kind model.LineKind, alphaRad, gmstRad float64) float64 {
	if kind == model.MC {
		return frames.WrapSigned(alphaRad-gmstRad) * rad2deg
	}
	return frames.WrapSigned(alphaRad+math.Pi-gmstRad) * rad2deg
}

// LongitudeAtAngle returns the geographic longitude at which a body with
// (alpha, delta) is on the ASC or DSC at geographic latitude latDeg,
// solving cos H = -tan(lat) tan(delta) for the hour angle H, with ASC
// taking H negative and DSC taking H positive. ok is false when the body
// is circumpolar or never rises at this latitude (|cos H| > 1).
func LongitudeAtAngle(alphaRad, deltaRad, gmstRad, latDeg float64, kind model.LineKind) (lonDeg float64, ok bool) {
	latRad := latDeg * deg2rad
	cosH := -math.Tan(latRad) * math.Tan(deltaRad)
	if cosH < -1 || cosH > 1 {
		return 0, false
	}
	h := math.Acos(cosH)
	if kind == model.ASC {
		h = -h
	}
	lon := frames.WrapSigned(h-gmstRad+alphaRad) * rad2deg
	return lon, true
}

// circularDistDeg returns the shortest-arc distance in degrees between
// two longitudes, in [0, 180].
func circularDistDeg(a, b float64) float64 {
	d := math.Mod(a-b+540, 360) - 180
	return math.Abs(d)
}

// circularMeanDeg returns the vector (circular) mean of two longitudes in
// degrees, which handles the +-180 wraparound correctly.
func circularMeanDeg(a, b float64) float64 {
	ar, br := a*deg2rad, b*deg2rad
	sumSin := math.Sin(ar) + math.Sin(br)
	sumCos := math.Cos(ar) + math.Cos(br)
	return math.Atan2(sumSin, sumCos) * rad2deg
}

// FindParan searches for the geographic latitude (and, where meaningful,
// longitude) at which body1's line (kind1) and body2's line (kind2)
// coincide. It handles the three geometric cases spec'd: both lines
// meridional (MC/IC), one meridional and one horizonal (ASC/DSC), and
// both horizonal.
func FindParan(body1 model.Body, kind1 model.LineKind, alpha1, delta1 float64,
	body2 model.Body, kind2 model.LineKind, alpha2, delta2 float64,
	gmstRad float64) (model.Paran, bool) {

	m1, m2 := isMeridional(kind1), isMeridional(kind2)

	switch {
	case m1 && m2:
		return findMeridianMeridianParan(body1, kind1, alpha1, body2, kind2, alpha2, gmstRad)
	case m1 && !m2:
		return findMeridianHorizonParan(body1, kind1, alpha1, body2, kind2, alpha2, delta2, gmstRad, false)
	case !m1 && m2:
		return findMeridianHorizonParan(body2, kind2, alpha2, body1, kind1, alpha1, delta1, gmstRad, true)
	default:
		return findHorizonHorizonParan(body1, kind1, alpha1, delta1, body2, kind2, alpha2, delta2, gmstRad)
	}
}

func findMeridianMeridianParan(body1 model.Body, kind1 model.LineKind, alpha1 float64,
	body2 model.Body, kind2 model.LineKind, alpha2 float64, gmstRad float64) (model.Paran, bool) {

	lon1 := meridianLongitude(kind1, alpha1, gmstRad)
	lon2 := meridianLongitude(kind2, alpha2, gmstRad)

	if circularDistDeg(lon1, lon2) > meridianMeridianToleranceDeg {
		return model.Paran{}, false
	}

	return model.Paran{
		Body1: body1, Body2: body2,
		Angle1: kind1, Angle2: kind2,
		LonDeg: circularMeanDeg(lon1, lon2),
		HasLon: true,
		IsLatitudeCircle: true,
	}, true
}

// findMeridianHorizonParan scans latitude for where a constant meridian
// longitude matches a latitude-varying horizon longitude. swapped
// indicates body1/kind1 passed to FindParan was actually the horizonal
// one, so the result's Body1/Angle1/Body2/Angle2 are restored to the
// caller's original order.
func findMeridianHorizonParan(meridianBody model.Body, meridianKind model.LineKind, meridianAlpha float64,
	horizonBody model.Body, horizonKind model.LineKind, horizonAlpha, horizonDelta float64,
	gmstRad float64, swapped bool) (model.Paran, bool) {

	meridianLon := meridianLongitude(meridianKind, meridianAlpha, gmstRad)

	diffAtLat := func(lat float64) float64 {
		horizonLon, ok := LongitudeAtAngle(horizonAlpha, horizonDelta, gmstRad, lat, horizonKind)
		if !ok {
			return 180.0
		}
		return circularDistDeg(meridianLon, horizonLon)
	}

	bestLat, bestDiff, found := bestMinimumOverLatitude(diffAtLat)
	if !found || bestDiff > horizonScanToleranceDeg {
		return model.Paran{}, false
	}

	p := model.Paran{
		Body1: meridianBody, Body2: horizonBody,
		Angle1: meridianKind, Angle2: horizonKind,
		LatDeg: bestLat,
		LonDeg: meridianLon,
		HasLon: true,
	}
	if swapped {
		p.Body1, p.Body2 = p.Body2, p.Body1
		p.Angle1, p.Angle2 = p.Angle2, p.Angle1
	}
	return p, true
}

func findHorizonHorizonParan(body1 model.Body, kind1 model.LineKind, alpha1, delta1 float64,
	body2 model.Body, kind2 model.LineKind, alpha2, delta2 float64, gmstRad float64) (model.Paran, bool) {

	diffAtLat := func(lat float64) float64 {
		lon1, ok1 := LongitudeAtAngle(alpha1, delta1, gmstRad, lat, kind1)
		lon2, ok2 := LongitudeAtAngle(alpha2, delta2, gmstRad, lat, kind2)
		if !ok1 || !ok2 {
			return 180.0
		}
		return circularDistDeg(lon1, lon2)
	}

	bestLat, bestDiff, found := bestMinimumOverLatitude(diffAtLat)
	if !found || bestDiff > horizonScanToleranceDeg {
		return model.Paran{}, false
	}

	lon1, _ := LongitudeAtAngle(alpha1, delta1, gmstRad, bestLat, kind1)
	lon2, _ := LongitudeAtAngle(alpha2, delta2, gmstRad, bestLat, kind2)

	return model.Paran{
		Body1: body1, Body2: body2,
		Angle1: kind1, Angle2: kind2,
		LatDeg: bestLat,
		LonDeg: circularMeanDeg(lon1, lon2),
		HasLon: true,
	}, true
}

// bestMinimumOverLatitude finds the geographic latitude in
// [horizonScanMinLatDeg, horizonScanMaxLatDeg] minimizing diffAtLat, reusing
// search.FindMinima's coarse-sample-then-golden-section-refine shape with
// latitude standing in for its usual Julian-date argument (the package's
// primitives are generic over any continuous float64 domain, not just time).
// Falls back to the coarse grid's own argmin when diffAtLat never brackets
// an interior local minimum (e.g. it is monotonic across the whole range),
// since FindMinima only reports genuine local extrema.
func bestMinimumOverLatitude(diffAtLat func(latDeg float64) float64) (latDeg, diff float64, found bool) {
	minima, err := search.FindMinima(horizonScanMinLatDeg, horizonScanMaxLatDeg, horizonScanStepDeg, diffAtLat, horizonScanRefineEpsilonDeg)
	if err == nil && len(minima) > 0 {
		best := minima[0]
		for _, m := range minima[1:] {
			if m.Value < best.Value {
				best = m
			}
		}
		return best.T, best.Value, true
	}

	bestDiff := math.Inf(1)
	bestLat := 0.0
	found = false
	for lat := horizonScanMinLatDeg; lat <= horizonScanMaxLatDeg; lat += horizonScanStepDeg {
		d := diffAtLat(lat)
		if d < bestDiff {
			bestDiff = d
			bestLat = lat
			found = true
		}
	}
	return bestLat, bestDiff, found
}
