package scoring

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/harshasoftware/halohome/model"
)

// GridPoint is one sample taken by HierarchicalGridScout.
type GridPoint struct {
	LatDeg float64         `json:"lat_deg"`
	LonDeg float64         `json:"lon_deg"`
	Score  model.CityScore `json:"score"`
}

// gridScanFunc scores one geographic point; astrocore supplies the real
// implementation (running the full line/influence/aggregate pipeline at
// that coordinate).
type gridScanFunc func(latDeg, lonDeg float64) model.CityScore

// hotZonePercentile selects the benefit percentile above which a coarse
// cell is refined at the next resolution; 0.9 keeps only the strongest
// decile of each pass, which is what makes the 5->1->0.25 deg refinement
// cheap enough to run globally.
const hotZonePercentile = 0.9

// dedupToleranceDeg merges final-resolution points closer than this,
// keeping the higher-benefit one, so overlapping refinement windows from
// adjacent hot zones don't produce near-duplicate results.
const dedupToleranceDeg = 0.1

// HierarchicalGridScout scans the whole globe at a coarse 5 deg step,
// keeps the top decile by benefit, refines each of those cells at 1 deg,
// keeps their top decile, and refines again at 0.25 deg -- three
// progressively finer passes instead of one flat fine-grained scan, which
// would cost roughly thirty times as many evaluations for the same final
// resolution in the hot zones.
func HierarchicalGridScout(scan gridScanFunc) []GridPoint {
	coarse := scanGrid(scan, -85, 85, -180, 175, 5.0)
	coarseHot := topPercentile(coarse, hotZonePercentile)

	var mid []GridPoint
	for _, hz := range coarseHot {
		mid = append(mid, scanGrid(scan, hz.LatDeg-2.5, hz.LatDeg+2.5, hz.LonDeg-2.5, hz.LonDeg+2.5, 1.0)...)
	}
	midHot := topPercentile(mid, hotZonePercentile)

	var fine []GridPoint
	for _, hz := range midHot {
		fine = append(fine, scanGrid(scan, hz.LatDeg-0.5, hz.LatDeg+0.5, hz.LonDeg-0.5, hz.LonDeg+0.5, 0.25)...)
	}

	return dedupGridPoints(fine, dedupToleranceDeg)
}

func scanGrid(scan gridScanFunc, minLat, maxLat, minLon, maxLon, step float64) []GridPoint {
	var points []GridPoint
	for lat := minLat; lat <= maxLat; lat += step {
		if lat < -90 || lat > 90 {
			continue
		}
		for lon := minLon; lon <= maxLon; lon += step {
			wrapped := wrapLon(lon)
			points = append(points, GridPoint{LatDeg: lat, LonDeg: wrapped, Score: scan(lat, wrapped)})
		}
	}
	return points
}

// topPercentile returns the points whose Benefit is at or above the given
// percentile of the pass's benefit distribution.
func topPercentile(points []GridPoint, percentile float64) []GridPoint {
	if len(points) == 0 {
		return nil
	}
	benefits := make([]float64, len(points))
	for i, p := range points {
		benefits[i] = p.Score.Benefit
	}
	sort.Float64s(benefits)
	threshold := stat.Quantile(percentile, stat.Empirical, benefits, nil)

	var hot []GridPoint
	for _, p := range points {
		if p.Score.Benefit >= threshold {
			hot = append(hot, p)
		}
	}
	return hot
}

// dedupGridPoints merges points within toleranceDeg of one another
// (coordinate-tolerance dedup), keeping the higher-benefit point of each
// cluster. Quadratic in the input size, which is fine at the few-hundred-
// point scale the final refinement pass produces.
func dedupGridPoints(points []GridPoint, toleranceDeg float64) []GridPoint {
	kept := make([]bool, len(points))
	for i := range points {
		kept[i] = true
	}

	for i := 0; i < len(points); i++ {
		if !kept[i] {
			continue
		}
		for j := i + 1; j < len(points); j++ {
			if !kept[j] {
				continue
			}
			dLat := points[i].LatDeg - points[j].LatDeg
			dLon := points[i].LonDeg - points[j].LonDeg
			if dLat*dLat+dLon*dLon > toleranceDeg*toleranceDeg {
				continue
			}
			if points[j].Score.Benefit > points[i].Score.Benefit {
				kept[i] = false
				break
			}
			kept[j] = false
		}
	}

	out := make([]GridPoint, 0, len(points))
	for i, k := range kept {
		if k {
			out = append(out, points[i])
		}
	}
	return out
}
