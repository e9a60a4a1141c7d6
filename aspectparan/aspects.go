// Package aspectparan builds the zodiacal-aspect line set for each body and
// searches for parans: the latitudes where two angular lines cross.
package aspectparan

import (
	"github.com/harshasoftware/halohome/frames"
	"github.com/harshasoftware/halohome/linegeom"
	"github.com/harshasoftware/halohome/model"
)

const deg2rad = 3.14159265358979323846 / 180.0

// aspectOffset is one signed ecliptic-longitude shift a body's aspect line
// is projected from, plus the AspectType/Direction it's tagged with.
type aspectOffset struct {
	deg       float64
	aspect    model.AspectType
	direction int
}

// aspectOffsets lists the 12 signed shifts that, combined with the two
// meridian kinds (MC, IC), produce the 24 zodiacal-aspect lines per body.
// Conjunction and Opposition have a single offset each; the rest come in
// symmetric +/- pairs.
var aspectOffsets = []aspectOffset{
	{0, model.Conjunction, 1},
	{60, model.Sextile, 1}, {-60, model.Sextile, -1},
	{90, model.Square, 1}, {-90, model.Square, -1},
	{120, model.Trine, 1}, {-120, model.Trine, -1},
	{135, model.Sesquisquare, 1}, {-135, model.Sesquisquare, -1},
	{150, model.Quincunx, 1}, {-150, model.Quincunx, -1},
	{180, model.Opposition, 1},
}

// harmonious reports whether an aspect type is traditionally benefic
// (Trine, Sextile) versus challenging (Square, Opposition, Quincunx,
// Sesquisquare). Conjunction is neutral and classed harmonious here since
// it carries no inherent friction of its own.
func harmonious(a model.AspectType) bool {
	switch a {
	case model.Trine, model.Sextile, model.Conjunction:
		return true
	default:
		return false
	}
}

// BuildAspectLines returns the 24 zodiacal-aspect lines (12 offsets x
// {MC, IC}) for one body, given its natal ecliptic longitude and the true
// obliquity of date. Aspect lines are always projected with ecliptic
// latitude forced to zero, matching the zodiacal (longitude-only) nature
// of an aspect.
func BuildAspectLines(body model.Body, lambdaRad, trueObliquityRad, gmstRad float64) []model.AspectLine {
	lines := make([]model.AspectLine, 0, len(aspectOffsets)*2)

	for _, off := range aspectOffsets {
		shiftedLambda := lambdaRad + off.deg*deg2rad
		alpha, delta := frames.EclipticToEquatorial(shiftedLambda, 0, trueObliquityRad)
		_ = delta // aspect lines are meridian-only; declination isn't needed for MC/IC

		mcLon := linegeom.MCLongitude(alpha, gmstRad)
		icLon := linegeom.ICLongitude(alpha, gmstRad)

		lines = append(lines,
			aspectMeridianLine(body, model.MC, off, mcLon),
			aspectMeridianLine(body, model.IC, off, icLon),
		)
	}

	return lines
}

func aspectMeridianLine(body model.Body, kind model.LineKind, off aspectOffset, lonDeg float64) model.AspectLine {
	poly := make(model.Polyline, 0, 90)
	for lat := -89.0; lat <= 89.0; lat += 2.0 {
		poly = append(poly, model.LinePoint{LatDeg: lat, LonDeg: lonDeg})
	}
	return model.AspectLine{
		Body:         body,
		Kind:         kind,
		Polyline:     poly,
		SignedLonDeg: lonDeg,
		Aspect:       off.aspect,
		Direction:    off.direction,
		Harmonious:   harmonious(off.aspect),
	}
}
