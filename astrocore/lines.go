package astrocore

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/harshasoftware/halohome/aspectparan"
	"github.com/harshasoftware/halohome/linegeom"
	"github.com/harshasoftware/halohome/model"
	"github.com/harshasoftware/halohome/scoring"
)

// horizonSamplingStepDeg is the default longitude step CalculateAllLines
// passes to the horizon-line sampler (the caller-supplied default;
// linegeom tightens it adaptively near the equator).
const horizonSamplingStepDeg = 2.0

// AllLinesResult is CalculateAllLines' output: every body's apparent
// equatorial position, its four angular lines, its 24 zodiacal-aspect
// lines, and every paran found among the angular lines.
type AllLinesResult struct {
	CorrelationID string                                   `json:"correlation_id"`
	TimeFrame     model.TimeFrame                           `json:"time_frame"`
	Positions     map[model.Body]model.EquatorialPosition   `json:"planetary_positions"`
	Lines         []model.Line                              `json:"planetary_lines"`
	AspectLines   []model.AspectLine                        `json:"aspect_lines"`
	Parans        []model.Paran                             `json:"paran_lines"`
}

// CalculateAllLines is the primary entry point: given a birth instant and
// a known fixed UTC offset, returns the full angular/aspect/paran line set.
// ctx is observed between phases only (context construction, line/aspect
// fan-out, paran search), never inside a single body's computation.
func CalculateAllLines(ctx context.Context, instant model.Instant, utcOffsetHours float64) (AllLinesResult, error) {
	correlationID := uuid.NewString()
	logger := log.With().Str("correlation_id", correlationID).Str("op", "CalculateAllLines").Logger()
	logger.Info().Msg("starting")

	jdUTC, err := resolveJDUTC("CalculateAllLines", instant, utcOffsetHours)
	if err != nil {
		return AllLinesResult{}, err
	}
	return calculateAllLines(ctx, correlationID, jdUTC, logger)
}

// CalculateAllLinesLocal is CalculateAllLines' variant that resolves the
// UTC offset itself from the instant's location via resolver, instead of
// requiring the caller to already know it.
func CalculateAllLinesLocal(ctx context.Context, instant model.Instant, resolver model.TimeZoneResolver) (AllLinesResult, error) {
	correlationID := uuid.NewString()
	logger := log.With().Str("correlation_id", correlationID).Str("op", "CalculateAllLinesLocal").Logger()
	logger.Info().Msg("starting")

	jdUTC, err := resolveJDUTCLocal("CalculateAllLinesLocal", instant, resolver)
	if err != nil {
		return AllLinesResult{}, err
	}
	return calculateAllLines(ctx, correlationID, jdUTC, logger)
}

func calculateAllLines(ctx context.Context, correlationID string, jdUTC float64, logger zerolog.Logger) (AllLinesResult, error) {
	nc, err := buildNatalContext(jdUTC)
	if err != nil {
		return AllLinesResult{}, model.WrapInvalidInput("CalculateAllLines", err)
	}
	logger.Debug().Msg("natal context built")
	if err := ctx.Err(); err != nil {
		return AllLinesResult{}, err
	}

	bodyLines, bodyAspects := buildLinesAndAspectsForEachBody(nc, model.DefaultScoringConfig().SimplifyToleranceDeg)
	if err := ctx.Err(); err != nil {
		return AllLinesResult{}, err
	}

	var lines []model.Line
	var aspectLines []model.AspectLine
	for _, body := range model.Bodies {
		lines = append(lines, bodyLines[body][:]...)
		aspectLines = append(aspectLines, bodyAspects[body]...)
	}

	parans := findAllParans(nc, bodyLines)
	logger.Info().Int("lines", len(lines)).Int("aspect_lines", len(aspectLines)).Int("parans", len(parans)).Msg("done")

	return AllLinesResult{
		CorrelationID: correlationID,
		TimeFrame:     nc.timeFrame,
		Positions:     nc.positions,
		Lines:         lines,
		AspectLines:   aspectLines,
		Parans:        parans,
	}, nil
}

// buildLinesAndAspectsForEachBody fans out one goroutine per body (fork)
// and joins on a WaitGroup, writing into index-preserving per-body slots
// so the result is deterministic regardless of goroutine completion order
// (deterministic, input-ordered reduction, no locks needed since each
// goroutine owns a disjoint slice index).
func buildLinesAndAspectsForEachBody(nc *natalContext, simplifyToleranceDeg float64) (map[model.Body][4]model.Line, map[model.Body][]model.AspectLine) {
	bodies := model.Bodies[:]
	lineResults := make([][4]model.Line, len(bodies))
	aspectResults := make([][]model.AspectLine, len(bodies))

	var wg sync.WaitGroup
	wg.Add(len(bodies))
	for i, body := range bodies {
		go func(i int, body model.Body) {
			defer wg.Done()
			pos := nc.positions[body]
			lines := linegeom.BuildAllLines(body, pos.AlphaRad, pos.DeltaRad, nc.gmstRad, horizonSamplingStepDeg)
			for li := range lines {
				lines[li].Polyline = scoring.SimplifyPolyline(lines[li].Polyline, simplifyToleranceDeg)
			}
			lineResults[i] = lines

			aspects := aspectparan.BuildAspectLines(body, pos.EclLonDeg*deg2radLocal, nc.trueObliquity, nc.gmstRad)
			for ai := range aspects {
				aspects[ai].Polyline = scoring.SimplifyPolyline(aspects[ai].Polyline, simplifyToleranceDeg)
			}
			aspectResults[i] = aspects
		}(i, body)
	}
	wg.Wait()

	lineMap := make(map[model.Body][4]model.Line, len(bodies))
	aspectMap := make(map[model.Body][]model.AspectLine, len(bodies))
	for i, body := range bodies {
		lineMap[body] = lineResults[i]
		aspectMap[body] = aspectResults[i]
	}
	return lineMap, aspectMap
}

// findAllParans checks every pair of distinct bodies across all four
// angular line kinds for a paran match.
func findAllParans(nc *natalContext, bodyLines map[model.Body][4]model.Line) []model.Paran {
	var parans []model.Paran
	bodies := model.Bodies[:]
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			b1, b2 := bodies[i], bodies[j]
			p1, p2 := nc.positions[b1], nc.positions[b2]
			for _, k1 := range bodyLines[b1] {
				for _, k2 := range bodyLines[b2] {
					paran, ok := aspectparan.FindParan(
						b1, k1.Kind, p1.AlphaRad, p1.DeltaRad,
						b2, k2.Kind, p2.AlphaRad, p2.DeltaRad,
						nc.gmstRad)
					if ok {
						parans = append(parans, paran)
					}
				}
			}
		}
	}
	return parans
}

const deg2radLocal = 3.14159265358979323846 / 180.0
