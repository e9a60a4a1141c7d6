// Package scoring implements the geodetic influence scoring model:
// distance-to-line measurement, polyline simplification and pruning,
// decay kernels, rating/aspect modifiers, a bounded diminishing-returns
// aggregator, and the hierarchical grid scout.
package scoring

import (
	"math"

	"github.com/harshasoftware/halohome/model"
)

// meanEarthRadiusKm is the IUGG mean radius, used throughout this package
// in place of a WGS84 ellipsoid (that refinement belongs to a
// topocentric/geodetic layer this core does not implement).
const meanEarthRadiusKm = 6371.0088

const deg2rad = math.Pi / 180.0

// HaversineKm returns the great-circle distance in km between two
// geographic points.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	phi1, phi2 := lat1*deg2rad, lat2*deg2rad
	dPhi := (lat2 - lat1) * deg2rad
	dLambda := (lon2 - lon1) * deg2rad

	sinDPhi2 := math.Sin(dPhi / 2)
	sinDLambda2 := math.Sin(dLambda / 2)
	a := sinDPhi2*sinDPhi2 + math.Cos(phi1)*math.Cos(phi2)*sinDLambda2*sinDLambda2
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return meanEarthRadiusKm * c
}

// bearingRad returns the initial bearing in radians from point 1 to point 2.
func bearingRad(lat1, lon1, lat2, lon2 float64) float64 {
	phi1, phi2 := lat1*deg2rad, lat2*deg2rad
	dLambda := (lon2 - lon1) * deg2rad
	y := math.Sin(dLambda) * math.Cos(phi2)
	x := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(dLambda)
	return math.Atan2(y, x)
}

// CrossTrackDistanceKm returns the signed perpendicular distance in km from
// point (lat,lon) to the great circle passing through (lat1,lon1) with
// initial bearing toward (lat2,lon2).
func CrossTrackDistanceKm(lat, lon, lat1, lon1, lat2, lon2 float64) float64 {
	delta13 := HaversineKm(lat1, lon1, lat, lon) / meanEarthRadiusKm
	theta13 := bearingRad(lat1, lon1, lat, lon)
	theta12 := bearingRad(lat1, lon1, lat2, lon2)
	return math.Asin(math.Sin(delta13)*math.Sin(theta13-theta12)) * meanEarthRadiusKm
}

// splitAtDateline reports whether the segment between longitudes lon1 and
// lon2 crosses the antimeridian (its longitude span exceeds 180 degrees),
// and if so returns 180 as the crossing longitude. It does not split the
// segment itself.
func splitAtDateline(lon1, lon2 float64) (crosses bool, splitLon float64) {
	if math.Abs(lon2-lon1) <= 180 {
		return false, 0
	}
	// The shorter path crosses +-180; segmentDistanceKm uses only the flag
	// and shifts one endpoint by 360 degrees rather than splitting.
	return true, 180
}

// segmentDistanceKm returns the minimum distance in km from point (lat,lon)
// to the great-circle segment between (lat1,lon1) and (lat2,lon2),
// clamping to the segment's endpoints rather than the infinite great
// circle, and handling a dateline-crossing segment by treating it as the
// shorter of the two candidate arcs.
func segmentDistanceKm(lat, lon, lat1, lon1, lat2, lon2 float64) float64 {
	if crosses, _ := splitAtDateline(lon1, lon2); crosses {
		// Shift the second endpoint's longitude by 360 deg so the
		// segment's span stays under 180 deg, then fall through to the
		// ordinary (non-crossing) computation below.
		if lon1 < 0 {
			lon2 -= 360
		} else {
			lon2 += 360
		}
	}

	segLenKm := HaversineKm(lat1, lon1, lat2, lon2)
	if segLenKm < 1e-9 {
		return HaversineKm(lat, lon, lat1, lon1)
	}

	// Project onto the segment using along-track distance; clamp to the
	// endpoints when the perpendicular foot falls outside [0, segLenKm].
	delta13 := HaversineKm(lat1, lon1, lat, lon) / meanEarthRadiusKm
	theta13 := bearingRad(lat1, lon1, lat, lon)
	theta12 := bearingRad(lat1, lon1, lat2, lon2)
	crossTrack := math.Asin(math.Sin(delta13) * math.Sin(theta13-theta12))
	alongTrack := math.Acos(math.Cos(delta13) / math.Cos(crossTrack))
	if math.Cos(theta13-theta12) < 0 {
		// The perpendicular foot lies behind the start vertex.
		alongTrack = -alongTrack
	}

	alongTrackKm := alongTrack * meanEarthRadiusKm
	if math.IsNaN(alongTrackKm) {
		// delta13 ~ 0: the query point coincides with the start vertex.
		return HaversineKm(lat, lon, lat1, lon1)
	}

	if alongTrackKm < 0 {
		return HaversineKm(lat, lon, lat1, lon1)
	}
	if alongTrackKm > segLenKm {
		return HaversineKm(lat, lon, lat2, lon2)
	}
	return math.Abs(crossTrack) * meanEarthRadiusKm
}

// DistanceToPolylineKm returns the minimum distance in km from (lat,lon) to
// any segment of poly, and true if poly has at least one segment.
func DistanceToPolylineKm(lat, lon float64, poly model.Polyline) (float64, bool) {
	if len(poly) < 2 {
		return 0, false
	}
	best := math.Inf(1)
	for i := 0; i < len(poly)-1; i++ {
		d := segmentDistanceKm(lat, lon, poly[i].LatDeg, poly[i].LonDeg, poly[i+1].LatDeg, poly[i+1].LonDeg)
		if d < best {
			best = d
		}
	}
	return best, true
}
