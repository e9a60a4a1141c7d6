package astrocore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshasoftware/halohome/model"
)

func testInstant() model.Instant {
	return model.Instant{
		Year: 1990, Month: 6, Day: 15,
		Hour: 14, Minute: 30, Second: 0,
		LatDeg: 40.7128, LonDeg: -74.0060,
	}
}

func TestCalculateAllLines_ProducesAllBodyLines(t *testing.T) {
	result, err := CalculateAllLines(context.Background(), testInstant(), -4.0)
	require.NoError(t, err)

	assert.Len(t, result.Positions, len(model.Bodies))
	assert.Len(t, result.Lines, len(model.Bodies)*4)
	assert.Len(t, result.AspectLines, len(model.Bodies)*24)
	assert.NotEmpty(t, result.CorrelationID)
}

func TestCalculateAllLines_InvalidInstantIsInvalidInput(t *testing.T) {
	bad := testInstant()
	bad.Month = 13
	_, err := CalculateAllLines(context.Background(), bad, -4.0)
	require.Error(t, err)

	var astroErr *model.AstroError
	require.ErrorAs(t, err, &astroErr)
	assert.Equal(t, model.InvalidInput, astroErr.Kind)
}

type fixedResolver struct {
	zone string
	ok   bool
}

func (r fixedResolver) Resolve(latDeg, lonDeg float64) (string, bool) {
	return r.zone, r.ok
}

func TestCalculateAllLinesLocal_ResolvesZoneOffset(t *testing.T) {
	result, err := CalculateAllLinesLocal(context.Background(), testInstant(), fixedResolver{zone: "America/New_York", ok: true})
	require.NoError(t, err)
	assert.Len(t, result.Lines, len(model.Bodies)*4)
}

func TestCalculateAllLinesLocal_FallsBackOnResolverMiss(t *testing.T) {
	result, err := CalculateAllLinesLocal(context.Background(), testInstant(), fixedResolver{ok: false})
	require.NoError(t, err)
	assert.Len(t, result.Lines, len(model.Bodies)*4)
}

func TestScoutCity_ReturnsBoundedScore(t *testing.T) {
	city := model.City{Name: "New York", Country: "USA", LatDeg: 40.7128, LonDeg: -74.0060}
	score, err := ScoutCity(context.Background(), testInstant(), -4.0, city, model.Career, model.DefaultScoringConfig())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, score.Benefit, 0.0)
	assert.LessOrEqual(t, score.Benefit, 100.0)
	assert.GreaterOrEqual(t, score.Intensity, 0.0)
	assert.LessOrEqual(t, score.Intensity, 100.0)
}

func TestScoutCitiesForCategory_SortsBenefitFirstByDefault(t *testing.T) {
	cities := []model.City{
		{Name: "New York", Country: "USA", LatDeg: 40.7128, LonDeg: -74.0060},
		{Name: "London", Country: "UK", LatDeg: 51.5074, LonDeg: -0.1278},
		{Name: "Tokyo", Country: "Japan", LatDeg: 35.6762, LonDeg: 139.6503},
	}
	rankings, err := ScoutCitiesForCategory(context.Background(), testInstant(), -4.0, cities, model.Love, model.DefaultScoringConfig())
	require.NoError(t, err)
	require.Len(t, rankings, len(cities))

	for i := 1; i < len(rankings); i++ {
		assert.GreaterOrEqual(t, rankings[i-1].Score.Benefit, rankings[i].Score.Benefit)
	}
}

func TestScoutCitiesForCategory_EmptyCitiesIsInvalidInput(t *testing.T) {
	_, err := ScoutCitiesForCategory(context.Background(), testInstant(), -4.0, nil, model.Love, model.DefaultScoringConfig())
	require.Error(t, err)

	var astroErr *model.AstroError
	require.ErrorAs(t, err, &astroErr)
	assert.Equal(t, model.InvalidInput, astroErr.Kind)
}

func TestScoutCitiesForCategoryWithProgress_ReportsCompletion(t *testing.T) {
	cities := []model.City{
		{Name: "New York", Country: "USA", LatDeg: 40.7128, LonDeg: -74.0060},
		{Name: "London", Country: "UK", LatDeg: 51.5074, LonDeg: -0.1278},
	}
	var lastDone, lastTotal int
	_, err := ScoutCitiesForCategoryWithProgress(context.Background(), testInstant(), -4.0, cities, model.Health, model.DefaultScoringConfig(),
		func(done, total int) {
			lastDone, lastTotal = done, total
		})
	require.NoError(t, err)
	assert.Equal(t, len(cities), lastTotal)
	assert.Equal(t, len(cities), lastDone)
}

func TestRankCountriesFromCities_GroupsByCountry(t *testing.T) {
	rankings := []model.CityRanking{
		{City: model.City{Name: "New York", Country: "USA"}, Score: model.CityScore{Benefit: 80}},
		{City: model.City{Name: "London", Country: "UK"}, Score: model.CityScore{Benefit: 70}},
		{City: model.City{Name: "Los Angeles", Country: "USA"}, Score: model.CityScore{Benefit: 60}},
	}
	groups := RankCountriesFromCities(rankings)

	require.Len(t, groups, 2)
	assert.Equal(t, "USA", groups[0].Country)
	require.Len(t, groups[0].Cities, 2)
	assert.Equal(t, "UK", groups[1].Country)
}

func TestScoutGridOptimized_ReturnsPointsWithinBounds(t *testing.T) {
	if testing.Short() {
		t.Skip("global hierarchical grid scan is expensive, skipped with -short")
	}
	points, err := ScoutGridOptimized(context.Background(), testInstant(), -4.0, model.Wealth, model.DefaultScoringConfig())
	require.NoError(t, err)

	for _, p := range points {
		assert.GreaterOrEqual(t, p.LatDeg, -90.0)
		assert.LessOrEqual(t, p.LatDeg, 90.0)
		assert.GreaterOrEqual(t, p.Score.Benefit, 0.0)
		assert.LessOrEqual(t, p.Score.Benefit, 100.0)
	}
}

func BenchmarkCalculateAllLines(b *testing.B) {
	instant := testInstant()
	for i := 0; i < b.N; i++ {
		_, _ = CalculateAllLines(context.Background(), instant, -4.0)
	}
}
