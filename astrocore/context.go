// Package astrocore wires timescale, frames, ephemeris, linegeom,
// aspectparan and scoring together behind the six entry points a host
// application calls: computing a birth chart's angular/aspect lines,
// scoring one city, ranking many cities, an optimized grid scout, and
// rolling city rankings up to the country level.
package astrocore

import (
	"math"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/harshasoftware/halohome/ephemeris"
	"github.com/harshasoftware/halohome/frames"
	"github.com/harshasoftware/halohome/model"
	"github.com/harshasoftware/halohome/timescale"
)

const rad2deg = 180.0 / 3.14159265358979323846

// natalContext bundles everything derived once per birth instant and then
// reused across every body/line/aspect computation for that instant.
type natalContext struct {
	timeFrame    model.TimeFrame
	gmstRad      float64
	trueObliquity float64
	positions    map[model.Body]model.EquatorialPosition
}

// buildNatalContext resolves jdUTC to the three time scales, the frame
// rotation angles, and every body's apparent equatorial position.
func buildNatalContext(jdUTC float64) (*natalContext, error) {
	tf := timescale.BuildTimeFrame(jdUTC)

	T := frames.JulianCenturiesTT(tf.JDTT)
	meanObl := frames.MeanObliquity(T)
	dpsi, deps := frames.NutationAngles(T)
	trueObl := frames.TrueObliquity(meanObl, deps)
	gmst := frames.GMST(tf.JDUT1)

	positions := make(map[model.Body]model.EquatorialPosition, len(model.Bodies))
	for _, body := range model.Bodies {
		eclPos, err := ephemeris.GeocentricEcliptic(body, tf.JDTT)
		if err != nil {
			return nil, errors.Wrapf(err, "astrocore: body %v", body)
		}

		lambda := eclPos.LambdaRad + dpsi
		beta := eclPos.BetaRad
		alpha, delta := frames.EclipticToEquatorial(lambda, beta, trueObl)
		if body != model.Moon {
			alpha, delta = frames.AnnualAberration(alpha, delta, trueObl, T)
		}

		positions[body] = model.EquatorialPosition{
			AlphaRad:  alpha,
			DeltaRad:  delta,
			EclLonDeg: lambda * rad2deg,
		}
	}

	return &natalContext{
		timeFrame:     tf,
		gmstRad:       gmst,
		trueObliquity: trueObl,
		positions:     positions,
	}, nil
}

// resolveJDUTC converts a civil instant plus a known UTC offset to
// JD(UTC), validating the instant first: out-of-range civil fields are
// InvalidInput, short-circuiting at the entry point.
func resolveJDUTC(op string, instant model.Instant, utcOffsetHours float64) (float64, error) {
	jd, err := timescale.LocalToUTCJulianDate(instant, utcOffsetHours)
	if err != nil {
		return 0, model.WrapInvalidInput(op, err)
	}
	return jd, nil
}

// longitudeFallbackOffsetHours approximates a location's UTC offset from its
// longitude alone (15 degrees per hour of solar time), rounded to the
// nearest half hour band. Used only when a real zone lookup is unavailable.
func longitudeFallbackOffsetHours(lonDeg float64) float64 {
	return math.Round(lonDeg/15.0*2.0) / 2.0
}

// resolveJDUTCLocal resolves the UTC offset via a TimeZoneResolver first,
// using the stdlib's IANA tzdata loader to turn a zone name plus the civil
// instant into a concrete offset (so DST is handled for the specific
// calendar date rather than "now"). A resolver miss or an unrecognized
// zone name (a zone lookup miss) is recovered locally by falling back to a
// longitude-derived offset rather than surfaced as an error. A nil resolver
// is treated as a miss.
func resolveJDUTCLocal(op string, instant model.Instant, resolver model.TimeZoneResolver) (float64, error) {
	zoneName, ok := "", false
	if resolver != nil {
		zoneName, ok = resolver.Resolve(instant.LatDeg, instant.LonDeg)
	}
	utcOffsetHours := 0.0
	switch {
	case !ok:
		utcOffsetHours = longitudeFallbackOffsetHours(instant.LonDeg)
		log.Warn().Str("op", op).Float64("offset", utcOffsetHours).Msg("timezone lookup miss, falling back to longitude-derived offset")
	default:
		loc, locErr := time.LoadLocation(zoneName)
		if locErr != nil {
			utcOffsetHours = longitudeFallbackOffsetHours(instant.LonDeg)
			log.Warn().Str("op", op).Str("zone", zoneName).Float64("offset", utcOffsetHours).Msg("unrecognized zone name, falling back to longitude-derived offset")
			break
		}
		civil := time.Date(instant.Year, time.Month(instant.Month), instant.Day,
			instant.Hour, instant.Minute, instant.Second, 0, loc)
		_, offsetSec := civil.Zone()
		utcOffsetHours = float64(offsetSec) / 3600.0
	}
	return resolveJDUTC(op, instant, utcOffsetHours)
}
