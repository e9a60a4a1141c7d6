package aspectparan

import (
	"math"
	"testing"

	"github.com/harshasoftware/halohome/frames"
	"github.com/harshasoftware/halohome/linegeom"
	"github.com/harshasoftware/halohome/model"
)

func TestBuildAspectLines_CountIs24(t *testing.T) {
	lines := BuildAspectLines(model.Sun, 1.0, 0.409, 0.6)
	if len(lines) != 24 {
		t.Fatalf("expected 24 aspect lines per body, got %d", len(lines))
	}
}

func TestBuildAspectLines_SquareNotHarmonious(t *testing.T) {
	lines := BuildAspectLines(model.Sun, 1.0, 0.409, 0.6)
	for _, l := range lines {
		if l.Aspect == model.Square && l.Harmonious {
			t.Error("square aspect lines must be flagged non-harmonious")
		}
		if l.Aspect == model.Trine && !l.Harmonious {
			t.Error("trine aspect lines should be flagged harmonious")
		}
	}
}

func TestBuildAspectLines_ConjunctionHasZeroShift(t *testing.T) {
	lines := BuildAspectLines(model.Sun, 1.0, 0.409, 0.6)
	alpha, _ := frames.EclipticToEquatorial(1.0, 0, 0.409)
	want := linegeom.MCLongitude(alpha, 0.6)
	found := false
	for _, l := range lines {
		if l.Aspect == model.Conjunction && l.Kind == model.MC {
			found = true
			if math.Abs(l.SignedLonDeg-want) > 1e-12 {
				t.Errorf("conjunction MC longitude = %f, want the unshifted MC longitude %f", l.SignedLonDeg, want)
			}
		}
	}
	if !found {
		t.Error("expected a conjunction MC line")
	}
}

func TestLongitudeAtAngle_CircumpolarReturnsNotOk(t *testing.T) {
	// delta near 90, latitude near 90: tan(lat)*tan(delta) can exceed 1.
	_, ok := LongitudeAtAngle(0, 1.5, 0, 85, model.ASC)
	if ok {
		t.Error("expected no solution for a near-circumpolar configuration")
	}
}

func TestLongitudeAtAngle_ASCAndDSCDifferInSign(t *testing.T) {
	lonASC, okASC := LongitudeAtAngle(0.5, 0.3, 1.0, 20, model.ASC)
	lonDSC, okDSC := LongitudeAtAngle(0.5, 0.3, 1.0, 20, model.DSC)
	if !okASC || !okDSC {
		t.Fatal("expected solutions at a moderate latitude")
	}
	if lonASC == lonDSC {
		t.Error("ASC and DSC longitudes should differ")
	}
}

func TestCircularDistDeg_Wraparound(t *testing.T) {
	d := circularDistDeg(179, -179)
	if math.Abs(d-2) > 1e-9 {
		t.Errorf("expected wraparound distance of 2, got %f", d)
	}
}

func TestCircularMeanDeg_Wraparound(t *testing.T) {
	mean := circularMeanDeg(179, -179)
	if math.Abs(mean-180) > 1e-6 && math.Abs(mean+180) > 1e-6 {
		t.Errorf("expected mean near +-180, got %f", mean)
	}
}

func TestFindParan_MeridianMeridian_SameLongitudeMatches(t *testing.T) {
	alpha1 := 0.5
	alpha2 := 0.5 + 0.001 // nearly identical MC longitude
	p, ok := FindParan(model.Sun, model.MC, alpha1, 0.2, model.Moon, model.MC, alpha2, 0.1, 1.0)
	if !ok {
		t.Fatal("expected a meridian-meridian paran for near-identical right ascensions")
	}
	if !p.IsLatitudeCircle {
		t.Error("expected IsLatitudeCircle to be set for the meridian-meridian case")
	}
}

func TestFindParan_MeridianMeridian_FarApartNoMatch(t *testing.T) {
	_, ok := FindParan(model.Sun, model.MC, 0.0, 0.2, model.Moon, model.MC, 2.0, 0.1, 1.0)
	if ok {
		t.Error("expected no paran for widely separated meridian longitudes")
	}
}

func TestFindParan_MeridianHorizon_PreservesCallerOrder(t *testing.T) {
	// Construct a horizon body/meridian body pairing where a match is
	// plausible, and check body/kind order in the result matches the
	// order they were passed in, regardless of internal dispatch.
	p, ok := FindParan(model.Sun, model.ASC, 0.5, 0.3, model.Moon, model.MC, 0.5, 0.1, 1.0)
	if ok && (p.Body1 != model.Sun || p.Angle1 != model.ASC) {
		t.Errorf("expected caller order preserved: got Body1=%v Angle1=%v", p.Body1, p.Angle1)
	}
}

func TestFindParan_HorizonHorizon_BoundedLatitude(t *testing.T) {
	p, ok := FindParan(model.Sun, model.ASC, 0.5, 0.3, model.Moon, model.DSC, 0.5, 0.3, 1.0)
	if ok {
		if p.LatDeg < horizonScanMinLatDeg || p.LatDeg > horizonScanMaxLatDeg {
			t.Errorf("paran latitude %f out of scan bounds", p.LatDeg)
		}
	}
}

func BenchmarkFindParan_HorizonHorizon(b *testing.B) {
	for i := 0; i < b.N; i++ {
		FindParan(model.Sun, model.ASC, 0.5, 0.3, model.Moon, model.DSC, 0.5, 0.28, 1.0)
	}
}
