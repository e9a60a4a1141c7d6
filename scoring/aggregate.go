package scoring

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/harshasoftware/halohome/model"
)

// diminishingWeights are the fixed weights applied to the top K influences
// (sorted by |decay-weighted benefit| descending) before summing, so a
// city under a dozen overlapping lines doesn't just add them all at full
// strength — influence 2 counts for 60% as much as influence 1, influence
// 3 for 35%, and so on. Sums to 2.38.
var diminishingWeights = [...]float64{1.0, 0.6, 0.35, 0.2, 0.1, 0.08, 0.05}

const (
	benefitOffset    = 50.0
	benefitScale     = 10.5
	intensityScale   = 21.0
	volatilityScale  = 42.0
	mixedThreshold   = 0.5
)

// Aggregate folds a city's weighted influences into a CityScore, bounded
// via a diminishing-returns truncation to the top TruncateTopK (by
// decay-weighted benefit magnitude) rather than letting every influence
// contribute at full weight — otherwise a city under a dozen overlapping
// lines would dominate the ranking purely by influence count.
func Aggregate(influences []model.Influence, cfg model.ScoringConfig) model.CityScore {
	if len(influences) == 0 {
		return model.CityScore{Benefit: benefitOffset}
	}

	weighted := make([]weightedInfluence, len(influences))
	for i, inf := range influences {
		weighted[i] = weighInfluence(inf, cfg)
	}

	sort.Slice(weighted, func(i, j int) bool {
		return math.Abs(weighted[i].benefit) > math.Abs(weighted[j].benefit)
	})

	k := cfg.TruncateTopK
	if k <= 0 || k > len(diminishingWeights) {
		k = len(diminishingWeights)
	}
	if k > len(weighted) {
		k = len(weighted)
	}

	minDistance := math.Inf(1)
	for _, w := range influences {
		if w.DistanceKm < minDistance {
			minDistance = w.DistanceKm
		}
	}

	topBenefits := make([]float64, k)
	topIntensities := make([]float64, k)
	for i := 0; i < k; i++ {
		topBenefits[i] = weighted[i].benefit
		topIntensities[i] = weighted[i].intensity
	}
	weights := diminishingWeights[:k]

	benefitRaw := floats.Dot(topBenefits, weights)
	intensityRaw := floats.Dot(topIntensities, weights)

	var positive, negative float64
	for i := 0; i < k; i++ {
		weightedBenefit := topBenefits[i] * weights[i]
		if weightedBenefit > 0 {
			positive += weightedBenefit
		} else {
			negative += -weightedBenefit
		}
	}

	volatilityRaw := math.Sqrt(positive * negative)

	score := model.CityScore{
		Benefit:        clamp(benefitOffset+benefitRaw*benefitScale, 0, 100),
		Intensity:      clamp(intensityRaw*intensityScale, 0, 100),
		Volatility:     clamp(volatilityRaw*volatilityScale, 0, 100),
		Mixed:          positive > mixedThreshold && negative > mixedThreshold,
		InfluenceCount: len(influences),
		MinDistanceKm:  minDistance,
	}

	if cfg.Sort == model.BalancedBenefit {
		score.Benefit = clamp(score.Benefit-score.Volatility*cfg.VolatilityPenalty, 0, 100)
	}

	return score
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
