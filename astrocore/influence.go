package astrocore

import (
	"github.com/harshasoftware/halohome/model"
	"github.com/harshasoftware/halohome/scoring"
)

// computeInfluences builds one city's raw Influence list against every
// angular and aspect line, running the pruning cascade first so the exact
// per-segment distance math (scoring.MayInfluence) only runs for lines
// that could plausibly matter.
func computeInfluences(city model.City, lines []model.Line, aspectLines []model.AspectLine, cfg model.ScoringConfig) []model.Influence {
	var out []model.Influence

	for _, ln := range lines {
		if !scoring.MayInfluence(city, ln.Polyline, cfg.MaxInfluenceKm) {
			continue
		}
		dist, ok := scoring.DistanceToPolylineKm(city.LatDeg, city.LonDeg, ln.Polyline)
		if !ok || dist > cfg.MaxInfluenceKm {
			continue
		}
		rating := bodyBaseRating[ln.Body]
		out = append(out, model.Influence{
			PlanetName: ln.Body.String(),
			AngleName:  ln.Kind.String(),
			Rating:     rating,
			DistanceKm: dist,
		})
	}

	for _, al := range aspectLines {
		if !scoring.MayInfluence(city, al.Polyline, cfg.MaxInfluenceKm) {
			continue
		}
		dist, ok := scoring.DistanceToPolylineKm(city.LatDeg, city.LonDeg, al.Polyline)
		if !ok || dist > cfg.MaxInfluenceKm {
			continue
		}
		rating := bodyBaseRating[al.Body]
		aspect := al.Aspect
		out = append(out, model.Influence{
			PlanetName: al.Body.String(),
			AngleName:  al.Kind.String(),
			Rating:     rating,
			Aspect:     &aspect,
			DistanceKm: dist,
		})
	}

	return out
}
