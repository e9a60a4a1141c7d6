package linegeom

import (
	"math"
	"testing"

	"github.com/harshasoftware/halohome/model"
)

func TestMCICLongitude_OppositeBy180(t *testing.T) {
	alpha := 1.2
	gmst := 0.7
	mc := MCLongitude(alpha, gmst)
	ic := ICLongitude(alpha, gmst)

	diff := math.Mod(mc-ic+540, 360) - 180
	if math.Abs(math.Abs(diff)-180) > 1e-6 {
		t.Errorf("MC/IC longitude difference should be 180deg, got diff=%f (mc=%f ic=%f)", diff, mc, ic)
	}
}

func TestMCLongitude_Range(t *testing.T) {
	for alpha := 0.0; alpha < 2*math.Pi; alpha += 0.3 {
		got := MCLongitude(alpha, 1.5)
		if got <= -180 || got > 180 {
			t.Errorf("MC longitude %f out of (-180,180] range", got)
		}
	}
}

func TestZenithPoint_MatchesDeclinationAndMC(t *testing.T) {
	alpha, delta, gmst := 1.0, 0.4, 2.0
	zp := ZenithPoint(alpha, delta, gmst)
	if math.Abs(zp.LatDeg-delta*rad2deg) > 1e-9 {
		t.Errorf("zenith latitude mismatch: got %f want %f", zp.LatDeg, delta*rad2deg)
	}
	if math.Abs(zp.LonDeg-MCLongitude(alpha, gmst)) > 1e-9 {
		t.Error("zenith longitude should equal MC longitude")
	}
}

func TestHorizonLatitude_KnownCase(t *testing.T) {
	// delta = 0, H = pi/2 -> cos H = 0 -> lat = atan(0) = 0
	alpha := 0.0
	delta := 0.0001 // avoid the exact degenerate branch
	gmst := math.Pi / 2

	lat, ok := HorizonLatitude(alpha, delta, gmst, 0)
	if !ok {
		t.Fatal("expected a solution")
	}
	if math.Abs(lat) > 1 {
		t.Errorf("expected latitude near 0, got %f", lat)
	}
}

func TestHorizonLatitude_BoundedRange(t *testing.T) {
	delta := 0.6
	for gmst := 0.0; gmst < 2*math.Pi; gmst += 0.4 {
		lat, ok := HorizonLatitude(0.5, delta, gmst, 10)
		if !ok {
			continue
		}
		if lat < -90 || lat > 90 {
			t.Errorf("horizon latitude %f out of bounds", lat)
		}
	}
}

func TestIsAllLatitudesHorizon_DegenerateCase(t *testing.T) {
	alpha := 0.0
	delta := 0.0
	gmst := math.Pi / 2 // H = gmst + lon - alpha = pi/2 at lon=0 -> cos H = 0
	if !IsAllLatitudesHorizon(alpha, delta, gmst, 0) {
		t.Error("expected the equatorial degenerate case to be detected")
	}
}

func TestIsAllLatitudesHorizon_FalseForNonEquatorial(t *testing.T) {
	if IsAllLatitudesHorizon(0, 0.5, math.Pi/2, 0) {
		t.Error("non-equatorial body should never trigger the degenerate case")
	}
}

func TestIsRising_OppositeSidesHaveOppositeSign(t *testing.T) {
	alpha, gmst := 0.5, 1.0
	risingASC := IsRising(alpha, gmst, 10)
	risingDSC := IsRising(alpha, gmst, 10+180)
	if risingASC == risingDSC {
		t.Error("rising/setting should flip across the opposite meridian")
	}
}

func TestAdaptiveLonStep_TightensNearEquator(t *testing.T) {
	got := AdaptiveLonStep(0.01, 2.0)
	if got != tightLatStepDeg {
		t.Errorf("expected the tightened step near delta=0, got %f", got)
	}
}

func TestAdaptiveLonStep_KeepsDefaultFarFromEquator(t *testing.T) {
	got := AdaptiveLonStep(0.9, 2.0)
	if got != 2.0 {
		t.Errorf("expected the default step far from the equator, got %f", got)
	}
}

func TestBuildMeridianLine_ConstantLongitude(t *testing.T) {
	line := BuildMeridianLine(model.Sun, model.MC, 1.0, 0.5)
	if len(line.Polyline) == 0 {
		t.Fatal("expected a non-empty polyline")
	}
	for _, p := range line.Polyline {
		if p.LonDeg != line.SignedLonDeg {
			t.Errorf("meridian line longitude should be constant, got %f want %f", p.LonDeg, line.SignedLonDeg)
		}
	}
	if line.Polyline[0].LatDeg != latMinDeg {
		t.Errorf("expected sampling to start at %f, got %f", latMinDeg, line.Polyline[0].LatDeg)
	}
}

func TestBuildMeridianLine_PanicsOnHorizonKind(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for a non-meridian LineKind")
		}
	}()
	BuildMeridianLine(model.Sun, model.ASC, 1.0, 0.5)
}

func TestBuildHorizonLine_PointsWithinLongitudeRange(t *testing.T) {
	line := BuildHorizonLine(model.Sun, model.ASC, 1.0, 0.3, 0.6, 2.0)
	for _, p := range line.Polyline {
		if p.LonDeg < -180.01 || p.LonDeg > 180.01 {
			t.Errorf("horizon point longitude %f out of range", p.LonDeg)
		}
	}
}

func TestBuildHorizonLine_ASCAndDSCDiffer(t *testing.T) {
	asc := BuildHorizonLine(model.Sun, model.ASC, 1.0, 0.3, 0.6, 2.0)
	dsc := BuildHorizonLine(model.Sun, model.DSC, 1.0, 0.3, 0.6, 2.0)
	if len(asc.Polyline) == 0 || len(dsc.Polyline) == 0 {
		t.Fatal("expected non-empty ASC and DSC polylines for a mid-declination body")
	}
	if asc.Polyline[0] == dsc.Polyline[0] {
		t.Errorf("ASC and DSC polylines start at the same point %+v", asc.Polyline[0])
	}
}

func TestBuildAllLines_ReturnsFourDistinctKinds(t *testing.T) {
	lines := BuildAllLines(model.Moon, 1.0, 0.2, 0.6, 2.0)
	kinds := map[model.LineKind]bool{}
	for _, l := range lines {
		kinds[l.Kind] = true
	}
	if len(kinds) != 4 {
		t.Errorf("expected 4 distinct line kinds, got %d", len(kinds))
	}
}

func BenchmarkBuildHorizonLine(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BuildHorizonLine(model.Sun, model.ASC, 1.0, 0.3, 0.6, 2.0)
	}
}
