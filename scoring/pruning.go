package scoring

import (
	"math"

	"github.com/harshasoftware/halohome/model"
)

// bbox is an inflated bounding box around a polyline, used as the cheapest
// pruning stage before any per-segment distance math runs.
type bbox struct {
	minLat, maxLat float64
	minLon, maxLon float64
	spansDateline  bool
}

// buildBBox returns poly's bounding box inflated by maxInfluenceKm in every
// direction (converted to degrees via a local latitude-dependent scale for
// longitude, and a fixed scale for latitude).
func buildBBox(poly model.Polyline, maxInfluenceKm float64) bbox {
	b := bbox{minLat: 90, maxLat: -90, minLon: 180, maxLon: -180}
	for _, p := range poly {
		if p.LatDeg < b.minLat {
			b.minLat = p.LatDeg
		}
		if p.LatDeg > b.maxLat {
			b.maxLat = p.LatDeg
		}
		if p.LonDeg < b.minLon {
			b.minLon = p.LonDeg
		}
		if p.LonDeg > b.maxLon {
			b.maxLon = p.LonDeg
		}
	}

	latInflateDeg := maxInfluenceKm / (meanEarthRadiusKm * deg2rad)
	b.minLat -= latInflateDeg
	b.maxLat += latInflateDeg
	if b.minLat < -90 {
		b.minLat = -90
	}
	if b.maxLat > 90 {
		b.maxLat = 90
	}

	// Longitude degrees shrink toward the poles; use the tightest (highest
	// latitude magnitude) cosine to keep the inflation conservative.
	cosLat := math.Cos(maxAbs(b.minLat, b.maxLat) * deg2rad)
	if cosLat < 0.01 {
		cosLat = 0.01
	}
	lonInflateDeg := latInflateDeg / cosLat

	b.minLon -= lonInflateDeg
	b.maxLon += lonInflateDeg
	b.spansDateline = b.minLon < -180 || b.maxLon > 180
	return b
}

// containsInflated reports whether (lat,lon) falls within b, accounting
// for a dateline-spanning box via a disjunctive test across the wrapped
// longitude range instead of a single contiguous interval.
func (b bbox) containsInflated(lat, lon float64) bool {
	if lat < b.minLat || lat > b.maxLat {
		return false
	}
	if !b.spansDateline {
		return lon >= b.minLon && lon <= b.maxLon
	}
	lo := wrapLon(b.minLon)
	hi := wrapLon(b.maxLon)
	// A wrapped box's effective interval is [lo, 180] U [-180, hi].
	return lon >= lo || lon <= hi
}

func wrapLon(lon float64) float64 {
	for lon > 180 {
		lon -= 360
	}
	for lon < -180 {
		lon += 360
	}
	return lon
}

func maxAbs(a, b float64) float64 {
	if math.Abs(a) > math.Abs(b) {
		return math.Abs(a)
	}
	return math.Abs(b)
}

// centroidOf returns the arithmetic centroid of poly's points, a cheap
// pre-filter applied before the bbox test: if a city is far enough from
// the polyline's centroid that even the bbox couldn't contain it, skip the
// bbox test entirely.
func centroidOf(poly model.Polyline) (lat, lon float64) {
	var sumLat, sumLon float64
	for _, p := range poly {
		sumLat += p.LatDeg
		sumLon += p.LonDeg
	}
	n := float64(len(poly))
	return sumLat / n, sumLon / n
}

// MayInfluence runs the pruning cascade: centroid rough-distance reject,
// then inflated-bbox reject, returning false as soon as either stage can
// prove the city is beyond maxInfluenceKm of every point on poly. A true
// result means the caller still needs the exact per-segment distance; it
// is not itself a guarantee of influence.
func MayInfluence(city model.City, poly model.Polyline, maxInfluenceKm float64) bool {
	if len(poly) == 0 {
		return false
	}
	b := buildBBox(poly, maxInfluenceKm)
	cLat, cLon := centroidOf(poly)
	// The centroid and every vertex lie inside b, so no vertex is farther
	// from the centroid than b's latitude span plus its longitude span (a
	// path along a meridian and then a parallel); a city farther than that
	// plus maxInfluenceKm from the centroid is beyond reach of every vertex.
	spanKm := (b.maxLat - b.minLat + b.maxLon - b.minLon) * deg2rad * meanEarthRadiusKm
	if HaversineKm(city.LatDeg, city.LonDeg, cLat, cLon) > spanKm+maxInfluenceKm {
		return false
	}
	return b.containsInflated(city.LatDeg, city.LonDeg)
}
