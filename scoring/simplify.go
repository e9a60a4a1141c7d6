package scoring

import (
	"math"

	"github.com/harshasoftware/halohome/model"
)

// SimplifyPolyline reduces poly via the Douglas-Peucker algorithm, treating
// (lat, lon) as planar 2-D coordinates (the perpendicular-distance test is
// a 2-D shoelace computation, not a geodesic one — adequate at the
// tolerances this package works at, and far cheaper than projecting every
// candidate point onto a great circle). toleranceDeg is the maximum
// perpendicular distance, in degrees, a dropped point may deviate from the
// simplified line. Endpoints are always preserved.
func SimplifyPolyline(poly model.Polyline, toleranceDeg float64) model.Polyline {
	if len(poly) < 3 {
		return poly
	}
	keep := make([]bool, len(poly))
	keep[0] = true
	keep[len(poly)-1] = true
	douglasPeucker(poly, 0, len(poly)-1, toleranceDeg, keep)

	out := make(model.Polyline, 0, len(poly))
	for i, k := range keep {
		if k {
			out = append(out, poly[i])
		}
	}
	return out
}

func douglasPeucker(poly model.Polyline, startIdx, endIdx int, toleranceDeg float64, keep []bool) {
	if endIdx <= startIdx+1 {
		return
	}

	maxDist := -1.0
	maxIdx := -1
	for i := startIdx + 1; i < endIdx; i++ {
		d := perpendicularDistanceDeg(poly[i], poly[startIdx], poly[endIdx])
		if d > maxDist {
			maxDist = d
			maxIdx = i
		}
	}

	if maxDist > toleranceDeg {
		keep[maxIdx] = true
		douglasPeucker(poly, startIdx, maxIdx, toleranceDeg, keep)
		douglasPeucker(poly, maxIdx, endIdx, toleranceDeg, keep)
	}
}

// perpendicularDistanceDeg returns the 2-D perpendicular distance from
// point p to the line through a and b (degenerating to the distance to a
// when a == b), via the shoelace-area/base-length identity.
func perpendicularDistanceDeg(p, a, b model.LinePoint) float64 {
	dx := b.LonDeg - a.LonDeg
	dy := b.LatDeg - a.LatDeg
	if dx == 0 && dy == 0 {
		ex, ey := p.LonDeg-a.LonDeg, p.LatDeg-a.LatDeg
		return math.Sqrt(ex*ex + ey*ey)
	}
	// Twice the triangle area via the cross product, divided by the base
	// length, gives the height (perpendicular distance).
	numerator := math.Abs(dx*(a.LatDeg-p.LatDeg) - (a.LonDeg-p.LonDeg)*dy)
	denom := math.Sqrt(dx*dx + dy*dy)
	return numerator / denom
}
