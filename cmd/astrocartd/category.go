package main

import (
	"fmt"
	"strings"

	"github.com/harshasoftware/halohome/model"
)

func parseCategory(name string) (model.LifeCategory, error) {
	switch strings.ToLower(name) {
	case "career":
		return model.Career, nil
	case "love":
		return model.Love, nil
	case "health":
		return model.Health, nil
	case "home":
		return model.Home, nil
	case "wellbeing":
		return model.Wellbeing, nil
	case "wealth":
		return model.Wealth, nil
	default:
		return 0, fmt.Errorf("unknown category %q (want one of career, love, health, home, wellbeing, wealth)", name)
	}
}

func parseSortMode(name string) (model.SortMode, error) {
	switch strings.ToLower(name) {
	case "", "benefit":
		return model.BenefitFirst, nil
	case "intensity":
		return model.IntensityFirst, nil
	case "balanced":
		return model.BalancedBenefit, nil
	default:
		return 0, fmt.Errorf("unknown sort mode %q (want one of benefit, intensity, balanced)", name)
	}
}
