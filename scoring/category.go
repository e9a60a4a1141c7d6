package scoring

import "github.com/harshasoftware/halohome/model"

// categoryBodyWeight associates each life category with the bodies whose
// lines are traditionally read as relevant to it. A body absent from a
// category's set is filtered out before scoring for that category rather
// than assigned a synthetic weight of zero — this is a set membership
// test, not a per-category multiplier table.
var categoryBodyWeight = map[model.LifeCategory]map[model.Body]bool{
	model.Career: {
		model.Sun: true, model.Saturn: true, model.Jupiter: true, model.Mars: true,
	},
	model.Love: {
		model.Venus: true, model.Moon: true, model.Mars: true,
	},
	model.Health: {
		model.Sun: true, model.Mars: true, model.Saturn: true, model.Chiron: true,
	},
	model.Home: {
		model.Moon: true, model.Sun: true, model.NorthNode: true,
	},
	model.Wellbeing: {
		model.Moon: true, model.Jupiter: true, model.Venus: true, model.Chiron: true,
	},
	model.Wealth: {
		model.Jupiter: true, model.Venus: true, model.Saturn: true,
	},
}

// FilterByCategory returns the subset of bodyInfluences whose PlanetName
// identifies a body in category's whitelist. bodyOf must resolve an
// influence's PlanetName back to a model.Body (the influence type itself
// carries only the display name).
func FilterByCategory(influences []model.Influence, category model.LifeCategory, bodyOf func(planetName string) (model.Body, bool)) []model.Influence {
	allowed := categoryBodyWeight[category]
	if allowed == nil {
		return nil
	}

	out := make([]model.Influence, 0, len(influences))
	for _, inf := range influences {
		body, ok := bodyOf(inf.PlanetName)
		if !ok {
			continue
		}
		if allowed[body] {
			out = append(out, inf)
		}
	}
	return out
}
