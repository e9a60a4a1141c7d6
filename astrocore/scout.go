package astrocore

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/harshasoftware/halohome/model"
	"github.com/harshasoftware/halohome/scoring"
)

// ScoutCity scores one city against a birth instant's lines for a life
// category, given a known fixed UTC offset.
func ScoutCity(ctx context.Context, instant model.Instant, utcOffsetHours float64, city model.City, category model.LifeCategory, cfg model.ScoringConfig) (model.CityScore, error) {
	jdUTC, err := resolveJDUTC("ScoutCity", instant, utcOffsetHours)
	if err != nil {
		return model.CityScore{}, err
	}
	nc, err := buildNatalContext(jdUTC)
	if err != nil {
		return model.CityScore{}, model.WrapInvalidInput("ScoutCity", err)
	}
	if err := ctx.Err(); err != nil {
		return model.CityScore{}, err
	}
	lines, aspectLines := buildLinesAndAspectsForEachBody(nc, cfg.SimplifyToleranceDeg)
	if err := ctx.Err(); err != nil {
		return model.CityScore{}, err
	}
	return scoreCity(city, lines, aspectLines, category, cfg), nil
}

// scoreCity flattens the per-body line maps, computes the city's raw
// influences, filters them to category, and aggregates.
func scoreCity(city model.City, lines map[model.Body][4]model.Line, aspectLines map[model.Body][]model.AspectLine, category model.LifeCategory, cfg model.ScoringConfig) model.CityScore {
	var allLines []model.Line
	var allAspects []model.AspectLine
	for _, body := range model.Bodies {
		allLines = append(allLines, lines[body][:]...)
		allAspects = append(allAspects, aspectLines[body]...)
	}

	influences := computeInfluences(city, allLines, allAspects, cfg)
	influences = scoring.FilterByCategory(influences, category, bodyOf)
	return scoring.Aggregate(influences, cfg)
}

// ScoutCitiesForCategory ranks every city in cities for category, scoring
// each city concurrently (fork-join: one goroutine per city, index-
// preserving result slice, joined on a WaitGroup) since cities are
// independent of one another once the natal context is built.
func ScoutCitiesForCategory(ctx context.Context, instant model.Instant, utcOffsetHours float64, cities []model.City, category model.LifeCategory, cfg model.ScoringConfig) ([]model.CityRanking, error) {
	return scoutCitiesForCategory(ctx, instant, utcOffsetHours, cities, category, cfg, nil)
}

// ProgressFunc reports scouting progress as done/total cities complete.
type ProgressFunc func(done, total int)

// ScoutCitiesForCategoryWithProgress is ScoutCitiesForCategory's variant
// that reports progress via onProgress as each city finishes scoring.
func ScoutCitiesForCategoryWithProgress(ctx context.Context, instant model.Instant, utcOffsetHours float64, cities []model.City, category model.LifeCategory, cfg model.ScoringConfig, onProgress ProgressFunc) ([]model.CityRanking, error) {
	return scoutCitiesForCategory(ctx, instant, utcOffsetHours, cities, category, cfg, onProgress)
}

func scoutCitiesForCategory(ctx context.Context, instant model.Instant, utcOffsetHours float64, cities []model.City, category model.LifeCategory, cfg model.ScoringConfig, onProgress ProgressFunc) ([]model.CityRanking, error) {
	if len(cities) == 0 {
		return nil, model.NewInvalidInput("ScoutCitiesForCategory", "cities must not be empty")
	}

	correlationID := uuid.NewString()
	logger := log.With().Str("correlation_id", correlationID).Str("op", "ScoutCitiesForCategory").Logger()

	jdUTC, err := resolveJDUTC("ScoutCitiesForCategory", instant, utcOffsetHours)
	if err != nil {
		return nil, err
	}
	nc, err := buildNatalContext(jdUTC)
	if err != nil {
		return nil, model.WrapInvalidInput("ScoutCitiesForCategory", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	lines, aspectLines := buildLinesAndAspectsForEachBody(nc, cfg.SimplifyToleranceDeg)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rankings := make([]model.CityRanking, len(cities))
	var done int32
	var mu sync.Mutex
	var wg sync.WaitGroup
	wg.Add(len(cities))
	for i, city := range cities {
		go func(i int, city model.City) {
			defer wg.Done()
			score := scoreCity(city, lines, aspectLines, category, cfg)
			rankings[i] = model.CityRanking{City: city, Score: score}
			if onProgress != nil {
				mu.Lock()
				done++
				onProgress(int(done), len(cities))
				mu.Unlock()
			}
		}(i, city)
	}
	wg.Wait()

	sortRankings(rankings, cfg.Sort)
	logger.Info().Int("cities", len(cities)).Msg("scouted")
	return rankings, nil
}

func sortRankings(rankings []model.CityRanking, mode model.SortMode) {
	sort.SliceStable(rankings, func(i, j int) bool {
		switch mode {
		case model.IntensityFirst:
			return rankings[i].Score.Intensity > rankings[j].Score.Intensity
		default:
			return rankings[i].Score.Benefit > rankings[j].Score.Benefit
		}
	})
}

// ScoutGridOptimized runs scoring's hierarchical multi-resolution grid
// scout over the whole globe for category, evaluating the configured
// category's filtered influence set at each sampled coordinate.
func ScoutGridOptimized(ctx context.Context, instant model.Instant, utcOffsetHours float64, category model.LifeCategory, cfg model.ScoringConfig) ([]scoring.GridPoint, error) {
	jdUTC, err := resolveJDUTC("ScoutGridOptimized", instant, utcOffsetHours)
	if err != nil {
		return nil, err
	}
	nc, err := buildNatalContext(jdUTC)
	if err != nil {
		return nil, model.WrapInvalidInput("ScoutGridOptimized", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	lines, aspectLines := buildLinesAndAspectsForEachBody(nc, cfg.SimplifyToleranceDeg)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scan := func(latDeg, lonDeg float64) model.CityScore {
		probe := model.City{Name: "", LatDeg: latDeg, LonDeg: lonDeg}
		return scoreCity(probe, lines, aspectLines, category, cfg)
	}
	return scoring.HierarchicalGridScout(scan), nil
}
