package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshasoftware/halohome/model"
)

func TestHaversineKm_ZeroForSamePoint(t *testing.T) {
	d := HaversineKm(10, 20, 10, 20)
	assert.Less(t, d, 1e-6)
}

func TestHaversineKm_KnownDistance(t *testing.T) {
	// London to Paris, ~344 km.
	d := HaversineKm(51.5074, -0.1278, 48.8566, 2.3522)
	assert.InDelta(t, 344, d, 50)
}

func TestDistanceToPolylineKm_EmptyPolyline(t *testing.T) {
	_, ok := DistanceToPolylineKm(0, 0, nil)
	assert.False(t, ok)
}

func TestDistanceToPolylineKm_OnTheLine(t *testing.T) {
	poly := model.Polyline{{LatDeg: 0, LonDeg: 0}, {LatDeg: 0, LonDeg: 10}}
	d, ok := DistanceToPolylineKm(0, 5, poly)
	require.True(t, ok)
	assert.Less(t, d, 5.0)
}

func TestDistanceToPolylineKm_ClampsToEndpoint(t *testing.T) {
	poly := model.Polyline{{LatDeg: 0, LonDeg: 0}, {LatDeg: 0, LonDeg: 10}}
	d, ok := DistanceToPolylineKm(0, 50, poly)
	require.True(t, ok)
	want := HaversineKm(0, 50, 0, 10)
	assert.InDelta(t, want, d, 1.0)
}

func TestSimplifyPolyline_PreservesEndpoints(t *testing.T) {
	poly := model.Polyline{
		{LatDeg: 0, LonDeg: 0}, {LatDeg: 0.001, LonDeg: 1}, {LatDeg: -0.001, LonDeg: 2},
		{LatDeg: 0.001, LonDeg: 3}, {LatDeg: 10, LonDeg: 4},
	}
	out := SimplifyPolyline(poly, 0.1)
	require.NotEmpty(t, out)
	assert.Equal(t, poly[0], out[0])
	assert.Equal(t, poly[len(poly)-1], out[len(out)-1])
	assert.Less(t, len(out), len(poly))
}

func TestSimplifyPolyline_ShortInputUnchanged(t *testing.T) {
	poly := model.Polyline{{LatDeg: 0, LonDeg: 0}, {LatDeg: 1, LonDeg: 1}}
	out := SimplifyPolyline(poly, 0.1)
	assert.Len(t, out, 2)
}

func TestDecayWeight_ZeroDistanceIsMax(t *testing.T) {
	for _, k := range []model.KernelType{model.Linear, model.Gaussian, model.Exponential} {
		w := DecayWeight(0, k, 600)
		assert.InDelta(t, 1.0, w, 1e-9, "kernel %v", k)
	}
}

func TestDecayWeight_MonotonicDecrease(t *testing.T) {
	for _, k := range []model.KernelType{model.Linear, model.Gaussian, model.Exponential} {
		prev := DecayWeight(0, k, 600)
		for d := 100.0; d <= 2000; d += 100 {
			w := DecayWeight(d, k, 600)
			assert.LessOrEqual(t, w, prev, "kernel %v at distance %f", k, d)
			prev = w
		}
	}
}

func TestDecayWeight_LinearReachesZero(t *testing.T) {
	w := DecayWeight(1000, model.Linear, 600)
	assert.Zero(t, w)
}

func TestAggregate_EmptyInfluences(t *testing.T) {
	score := Aggregate(nil, model.DefaultScoringConfig())
	assert.Equal(t, 50.0, score.Benefit)
}

func TestAggregate_BoundedOutput(t *testing.T) {
	cfg := model.DefaultScoringConfig()
	var influences []model.Influence
	for i := 0; i < 20; i++ {
		aspect := model.Trine
		influences = append(influences, model.Influence{
			PlanetName: "Sun", AngleName: "MC", Rating: 5, Aspect: &aspect, DistanceKm: 10,
		})
	}
	score := Aggregate(influences, cfg)
	assert.True(t, score.Benefit >= 0 && score.Benefit <= 100)
	assert.True(t, score.Intensity >= 0 && score.Intensity <= 100)
	assert.True(t, score.Volatility >= 0 && score.Volatility <= 100)
}

func TestAggregate_MixedFlagsOnOpposingInfluences(t *testing.T) {
	cfg := model.DefaultScoringConfig()
	trine := model.Trine
	square := model.Square
	influences := []model.Influence{
		{PlanetName: "Jupiter", AngleName: "MC", Rating: 5, Aspect: &trine, DistanceKm: 5},
		{PlanetName: "Saturn", AngleName: "IC", Rating: 5, Aspect: &square, DistanceKm: 5},
	}
	score := Aggregate(influences, cfg)
	assert.Equal(t, 2, score.InfluenceCount)
	assert.True(t, score.Mixed, "a strong trine and a strong square should flag the city as mixed")
}

func TestAggregate_TruncatesToTopK(t *testing.T) {
	cfg := model.DefaultScoringConfig()
	cfg.TruncateTopK = 2
	var influences []model.Influence
	for i := 0; i < 10; i++ {
		influences = append(influences, model.Influence{PlanetName: "Sun", AngleName: "MC", Rating: 5, DistanceKm: 1})
	}
	score := Aggregate(influences, cfg)
	assert.Equal(t, 10, score.InfluenceCount, "InfluenceCount should reflect all influences seen, not just the truncated set")
	// Only the top two influences (raw benefit 2 each, decay ~1 at 1 km)
	// contribute, weighted 1.0 and 0.6.
	assert.InDelta(t, benefitOffset+2*(1.0+0.6)*benefitScale, score.Benefit, 0.01)
}

func TestFilterByCategory_UnknownBodyExcluded(t *testing.T) {
	bodyOf := func(name string) (model.Body, bool) {
		if name == "Sun" {
			return model.Sun, true
		}
		return 0, false
	}
	influences := []model.Influence{
		{PlanetName: "Sun", Rating: 3},
		{PlanetName: "Unknown", Rating: 3},
	}
	out := FilterByCategory(influences, model.Career, bodyOf)
	assert.Len(t, out, 1)
}

func TestFilterByCategory_LoveExcludesSaturn(t *testing.T) {
	bodyOf := func(name string) (model.Body, bool) { return model.Saturn, true }
	influences := []model.Influence{{PlanetName: "Saturn", Rating: 3}}
	out := FilterByCategory(influences, model.Love, bodyOf)
	assert.Empty(t, out)
}

func TestHierarchicalGridScout_ReturnsDedupedPoints(t *testing.T) {
	scan := func(lat, lon float64) model.CityScore {
		// A synthetic hotspot near (10, 20).
		d := HaversineKm(lat, lon, 10, 20)
		return model.CityScore{Benefit: 100 - d/100}
	}
	points := HierarchicalGridScout(scan)
	require.NotEmpty(t, points)
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			dLat := points[i].LatDeg - points[j].LatDeg
			dLon := points[i].LonDeg - points[j].LonDeg
			assert.GreaterOrEqual(t, math.Hypot(dLat, dLon), dedupToleranceDeg)
		}
	}
}

func BenchmarkAggregate(b *testing.B) {
	cfg := model.DefaultScoringConfig()
	var influences []model.Influence
	for i := 0; i < 12; i++ {
		influences = append(influences, model.Influence{PlanetName: "Sun", Rating: 4, DistanceKm: float64(i * 50)})
	}
	for i := 0; i < b.N; i++ {
		Aggregate(influences, cfg)
	}
}
