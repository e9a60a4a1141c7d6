package frames

import (
	"math"
	"testing"
)

func TestMeanObliquity_J2000(t *testing.T) {
	eps := MeanObliquity(0)
	wantArcsec := 84381.406
	gotArcsec := eps / arcsec2rad
	if math.Abs(gotArcsec-wantArcsec) > 1e-6 {
		t.Errorf("MeanObliquity(0) = %f arcsec, want %f", gotArcsec, wantArcsec)
	}
}

func TestMeanObliquity_DecreasesOverCentury(t *testing.T) {
	eps0 := MeanObliquity(0)
	eps1 := MeanObliquity(1)
	if eps1 >= eps0 {
		t.Errorf("expected obliquity to decrease over a century: eps0=%f eps1=%f", eps0, eps1)
	}
}

func TestNutationAngles_SmallAmplitude(t *testing.T) {
	dpsi, deps := NutationAngles(0.1)
	// Nutation in longitude and obliquity are both bounded under ~20
	// arcseconds in magnitude.
	maxRad := 20.0 * arcsec2rad
	if math.Abs(dpsi) > maxRad {
		t.Errorf("dpsi = %e rad, exceeds plausible bound", dpsi)
	}
	if math.Abs(deps) > maxRad {
		t.Errorf("deps = %e rad, exceeds plausible bound", deps)
	}
}

func TestNutationAngles_VariesWithTime(t *testing.T) {
	dpsi0, deps0 := NutationAngles(0.0)
	dpsi1, deps1 := NutationAngles(0.05)
	if dpsi0 == dpsi1 && deps0 == deps1 {
		t.Error("nutation angles unchanged across five years")
	}
}

func TestEclipticToEquatorial_ZeroBeta(t *testing.T) {
	eps := MeanObliquity(0)
	alpha, delta := EclipticToEquatorial(0, 0, eps)
	if math.Abs(alpha) > 1e-12 || math.Abs(delta) > 1e-12 {
		t.Errorf("lambda=0,beta=0: got alpha=%f delta=%f, want 0,0", alpha, delta)
	}
}

func TestEclipticEquatorialRoundTrip(t *testing.T) {
	eps := MeanObliquity(0.2)
	cases := []struct{ lambda, beta float64 }{
		{0.3, 0.1},
		{2.5, -0.4},
		{5.9, 0.05},
		{1.0, 1.5}, // near ecliptic pole, exercises the cosβ stabilization
	}
	for _, c := range cases {
		alpha, delta := EclipticToEquatorial(c.lambda, c.beta, eps)
		lambda2, beta2 := EquatorialToEcliptic(alpha, delta, eps)
		dl := WrapSigned(lambda2 - c.lambda)
		if math.Abs(dl) > 1e-9 || math.Abs(beta2-c.beta) > 1e-9 {
			t.Errorf("round trip (%f,%f) -> (%f,%f) -> (%f,%f)",
				c.lambda, c.beta, alpha, delta, lambda2, beta2)
		}
	}
}

func TestAnnualAberration_BoundedMagnitude(t *testing.T) {
	eps := MeanObliquity(0.25)
	alpha, delta := EclipticToEquatorial(1.2, 0.0, eps)
	aOut, dOut := AnnualAberration(alpha, delta, eps, 0.25)
	maxRad := 25.0 * arcsec2rad // aberration constant plus margin
	if math.Abs(WrapSigned(aOut-alpha)) > maxRad {
		t.Errorf("aberration shifted alpha by more than expected: %e rad", aOut-alpha)
	}
	if math.Abs(dOut-delta) > maxRad {
		t.Errorf("aberration shifted delta by more than expected: %e rad", dOut-delta)
	}
}

func TestGMST_J2000Noon(t *testing.T) {
	gmst := GMST(2451545.0)
	wantDeg := 280.46061837
	gotDeg := gmst * rad2deg
	if math.Abs(gotDeg-wantDeg) > 1e-6 {
		t.Errorf("GMST(J2000) = %f deg, want %f", gotDeg, wantDeg)
	}
}

func TestGMST_Normalized(t *testing.T) {
	for _, jd := range []float64{2400000.0, 2451545.0, 2500000.0, 2600000.5} {
		g := GMST(jd)
		if g < 0 || g >= 2*math.Pi {
			t.Errorf("GMST(%f) = %f, not in [0, 2pi)", jd, g)
		}
	}
}

func TestLST_AddsLongitude(t *testing.T) {
	gmst := GMST(2451545.0)
	lst := LST(gmst, 1.0)
	want := WrapPositive(gmst + 1.0)
	if math.Abs(lst-want) > 1e-12 {
		t.Errorf("LST = %f, want %f", lst, want)
	}
}

func TestARMC_MatchesLST(t *testing.T) {
	gmst := GMST(2451545.0)
	if ARMC(gmst, 0.7) != LST(gmst, 0.7) {
		t.Error("ARMC should be numerically identical to LST")
	}
}

func TestWrapSigned_Range(t *testing.T) {
	for _, v := range []float64{-10, -math.Pi - 0.001, 0, math.Pi, 3 * math.Pi, 100} {
		w := WrapSigned(v)
		if w <= -math.Pi || w > math.Pi+1e-12 {
			t.Errorf("WrapSigned(%f) = %f, out of (-pi, pi]", v, w)
		}
	}
}

func BenchmarkNutationAngles(b *testing.B) {
	for i := 0; i < b.N; i++ {
		NutationAngles(0.2)
	}
}

func BenchmarkGMST(b *testing.B) {
	for i := 0; i < b.N; i++ {
		GMST(2451545.0 + float64(i))
	}
}
