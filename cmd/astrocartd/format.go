package main

import "github.com/harshasoftware/halohome/model"

// orderedBodies returns the subset of model.Bodies present in positions, in
// the canonical body order, so text output is deterministic regardless of
// map iteration order.
func orderedBodies(positions map[model.Body]model.EquatorialPosition) []model.Body {
	out := make([]model.Body, 0, len(positions))
	for _, b := range model.Bodies {
		if _, ok := positions[b]; ok {
			out = append(out, b)
		}
	}
	return out
}
