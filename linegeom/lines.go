package linegeom

import "github.com/harshasoftware/halohome/model"

// BuildMeridianLine builds the MC or IC line for a body: a single vertical
// meridian sampled at integer latitudes from -89 to 89 step 2.
func BuildMeridianLine(body model.Body, kind model.LineKind, alphaRad, gmstRad float64) model.Line {
	var lonDeg float64
	switch kind {
	case model.MC:
		lonDeg = MCLongitude(alphaRad, gmstRad)
	case model.IC:
		lonDeg = ICLongitude(alphaRad, gmstRad)
	default:
		panic("linegeom: BuildMeridianLine called with a non-meridian LineKind")
	}

	poly := make(model.Polyline, 0, int((latMaxDeg-latMinDeg)/defaultLatStepDeg)+1)
	for lat := latMinDeg; lat <= latMaxDeg; lat += defaultLatStepDeg {
		poly = append(poly, model.LinePoint{LatDeg: lat, LonDeg: lonDeg})
	}

	return model.Line{Body: body, Kind: kind, Polyline: poly, SignedLonDeg: lonDeg}
}

// BuildHorizonLine builds the ASC or DSC line for a body: the set of
// geographic points at which the body sits on the horizon, rising (ASC)
// or setting (DSC), scanning longitude from -180 to 180 at defaultStepDeg
// (tightened adaptively near the celestial equator). Longitudes whose
// horizon crossing is the other event (setting for ASC, rising for DSC)
// are skipped, as are longitudes with no solution for an equatorial body;
// the degenerate all-latitudes-horizon case emits a full vertical segment
// instead of a single point.
func BuildHorizonLine(body model.Body, kind model.LineKind, alphaRad, deltaRad, gmstRad, defaultStepDeg float64) model.Line {
	if kind != model.ASC && kind != model.DSC {
		panic("linegeom: BuildHorizonLine called with a non-horizon LineKind")
	}
	wantRising := kind == model.ASC

	step := AdaptiveLonStep(deltaRad, defaultStepDeg)
	poly := make(model.Polyline, 0, int(360/step)+1)

	for lon := -180.0; lon <= 180.0; lon += step {
		if IsAllLatitudesHorizon(alphaRad, deltaRad, gmstRad, lon) {
			for lat := latMinDeg; lat <= latMaxDeg; lat += defaultLatStepDeg {
				poly = append(poly, model.LinePoint{LatDeg: lat, LonDeg: lon})
			}
			continue
		}

		latDeg, ok := HorizonLatitude(alphaRad, deltaRad, gmstRad, lon)
		if !ok {
			continue
		}
		if IsRising(alphaRad, gmstRad, lon) != wantRising {
			continue
		}
		poly = append(poly, model.LinePoint{LatDeg: latDeg, LonDeg: lon})
	}

	return model.Line{Body: body, Kind: kind, Polyline: poly}
}

// BuildAllLines builds the MC, IC, ASC and DSC lines for a single body.
func BuildAllLines(body model.Body, alphaRad, deltaRad, gmstRad, horizonStepDeg float64) [4]model.Line {
	return [4]model.Line{
		BuildMeridianLine(body, model.MC, alphaRad, gmstRad),
		BuildMeridianLine(body, model.IC, alphaRad, gmstRad),
		BuildHorizonLine(body, model.ASC, alphaRad, deltaRad, gmstRad, horizonStepDeg),
		BuildHorizonLine(body, model.DSC, alphaRad, deltaRad, gmstRad, horizonStepDeg),
	}
}
