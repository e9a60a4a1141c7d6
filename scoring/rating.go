package scoring

import "github.com/harshasoftware/halohome/model"

// aspectModifier scales an influence's raw benefit and intensity according
// to the zodiacal aspect that produced it. Conjunction is neutral
// (amplifies neither direction); the harmonious aspects push benefit
// positive, the inharmonious ones negative, each with its own intensity
// weight reflecting how forcefully that aspect is traditionally felt.
type aspectModifier struct {
	benefitMult   float64
	intensityMult float64
}

var aspectModifiers = map[model.AspectType]aspectModifier{
	model.Conjunction:  {benefitMult: 1.0, intensityMult: 1.0},
	model.Trine:        {benefitMult: 0.7, intensityMult: 0.6},
	model.Sextile:      {benefitMult: 0.7, intensityMult: 0.6},
	model.Square:       {benefitMult: -0.6, intensityMult: 0.85},
	model.Opposition:   {benefitMult: -0.5, intensityMult: 0.8},
	model.Quincunx:     {benefitMult: 0.3, intensityMult: 0.4},
	model.Sesquisquare: {benefitMult: -0.4, intensityMult: 0.7},
}

// baseBenefitRaw maps a 1..5 influence rating to a signed raw benefit in
// [-2, 2]: 1 is a strongly challenging placement, 3 is neutral, 5 is
// strongly beneficial.
func baseBenefitRaw(rating int) float64 {
	return float64(rating-3) * 1.0
}

// baseIntensityRaw maps a 1..5 influence rating to a raw intensity
// magnitude in [0, 2]: neutral (rating 3) carries zero base intensity;
// ratings further from neutral are felt more strongly in either direction.
func baseIntensityRaw(rating int) float64 {
	d := rating - 3
	if d < 0 {
		d = -d
	}
	return float64(d)
}

// influenceRawBenefitIntensity returns an influence's raw (pre-decay)
// benefit and intensity, after applying its aspect modifier if it came
// from a zodiacal-aspect line rather than a body's own primary line.
func influenceRawBenefitIntensity(inf model.Influence) (benefitRaw, intensityRaw float64) {
	benefitRaw = baseBenefitRaw(inf.Rating)
	intensityRaw = baseIntensityRaw(inf.Rating)
	if inf.Aspect != nil {
		if mod, ok := aspectModifiers[*inf.Aspect]; ok {
			benefitRaw *= mod.benefitMult
			intensityRaw *= mod.intensityMult
		}
	}
	return benefitRaw, intensityRaw
}

// weightedInfluence is an influence reduced to the three decay-weighted
// quantities the aggregator needs.
type weightedInfluence struct {
	benefit   float64 // signed, decay-weighted
	intensity float64 // unsigned, decay-weighted
	distance  float64
}

// weighInfluence combines an influence's raw benefit/intensity with its
// distance-based decay weight under the configured kernel.
func weighInfluence(inf model.Influence, cfg model.ScoringConfig) weightedInfluence {
	benefitRaw, intensityRaw := influenceRawBenefitIntensity(inf)
	w := DecayWeight(inf.DistanceKm, cfg.Kernel, cfg.KernelParamKm)
	return weightedInfluence{
		benefit:   benefitRaw * w,
		intensity: intensityRaw * w,
		distance:  inf.DistanceKm,
	}
}
