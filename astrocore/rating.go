package astrocore

import "github.com/harshasoftware/halohome/model"

// bodyBaseRating is each body's traditional benefic/malefic weight on the
// 1..5 scale scoring.influenceRawBenefitIntensity expects (1 challenging,
// 3 neutral, 5 beneficial), used for a body's own primary (MC/IC/ASC/DSC)
// lines. Zodiacal-aspect lines start from the same base rating and are
// then further modulated by the aspect itself in the scoring package.
var bodyBaseRating = map[model.Body]int{
	model.Sun:       4,
	model.Moon:       3,
	model.Mercury:    3,
	model.Venus:      5,
	model.Mars:       2,
	model.Jupiter:    5,
	model.Saturn:     2,
	model.Uranus:     2,
	model.Neptune:    2,
	model.Pluto:      2,
	model.Chiron:     2,
	model.NorthNode:  3,
}

func bodyOf(planetName string) (model.Body, bool) {
	for _, b := range model.Bodies {
		if b.String() == planetName {
			return b, true
		}
	}
	return 0, false
}
