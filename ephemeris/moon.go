package ephemeris

import (
	"math"

	"github.com/harshasoftware/halohome/model"
)

// moonLongTerm is one row of the ELP2000-82/Meeus ch.47 longitude-distance
// series: integer multipliers of (D, M, M', F) and the longitude/distance
// amplitude coefficients, in units of 1e-6 degree and 1e-3 km
// respectively. Terms with |m| (the Sun's mean-anomaly multiplier) of 1
// or 2 are scaled by e or e^2 at evaluation time.
type moonLongTerm struct {
	d, m, mp, f int
	sigmaL      float64
	sigmaR      float64
}

// Reduced to the twenty largest-amplitude terms of Meeus Table 47.a
// (full series has 60); documented truncation, consistent with the
// precision budget astrocartography line geometry needs.
var moonLongTerms = []moonLongTerm{
	{0, 0, 1, 0, 6288774, -20905355},
	{2, 0, -1, 0, 1274027, -3699111},
	{2, 0, 0, 0, 658314, -2955968},
	{0, 0, 2, 0, 213618, -569925},
	{0, 1, 0, 0, -185116, 48888},
	{0, 0, 0, 2, -114332, -3149},
	{2, 0, -2, 0, 58793, 246158},
	{2, -1, -1, 0, 57066, -152138},
	{2, 0, 1, 0, 53322, -170733},
	{2, -1, 0, 0, 45758, -204586},
	{0, 1, -1, 0, -40923, -129620},
	{1, 0, 0, 0, -34720, 108743},
	{0, 1, 1, 0, -30383, 104755},
	{2, 0, 0, -2, 15327, 10321},
	{0, 0, 1, -2, 10980, 79661},
	{4, 0, -1, 0, 10675, -34782},
	{0, 0, 3, 0, 10034, -23210},
	{4, 0, -2, 0, 8548, -21636},
	{2, 1, -1, 0, -7888, 24208},
	{2, 1, 0, 0, -6766, 30824},
}

type moonLatTerm struct {
	d, m, mp, f int
	sigmaB      float64
}

// Reduced to the sixteen largest-amplitude terms of Meeus Table 47.b
// (full series has 60).
var moonLatTerms = []moonLatTerm{
	{0, 0, 0, 1, 5128122},
	{0, 0, 1, 1, 280602},
	{0, 0, 1, -1, 277693},
	{2, 0, 0, -1, 173237},
	{2, 0, -1, 1, 55413},
	{2, 0, -1, -1, 46271},
	{2, 0, 0, 1, 32573},
	{0, 0, 2, 1, 17198},
	{2, 0, 1, -1, 9266},
	{0, 0, 2, -1, 8822},
	{2, -1, 0, -1, 8216},
	{2, 0, -2, -1, 4324},
	{2, 0, 1, 1, 4200},
	{2, 1, 0, -1, -3359},
	{2, -1, -1, 1, 2463},
	{2, -1, 0, 1, 2211},
}

const moonEarthRadiusKm = 385000.56
const auKm = 149597870.7

// moonPosition returns the Moon's geocentric ecliptic position via the
// reduced ELP2000-82 series and the Meeus 47.6/47.7 planetary correction
// terms.
func moonPosition(jdTT float64) model.EclipticPosition {
	T := (jdTT - j2000JD) / 36525.0

	lp := degMod(218.3164477 + 481267.88123421*T - 0.0015786*T*T + T*T*T/538841 - T*T*T*T/65194000)
	d := degMod(297.8501921 + 445267.1114034*T - 0.0018819*T*T + T*T*T/545868 - T*T*T*T/113065000)
	m := degMod(357.5291092 + 35999.0502909*T - 0.0001536*T*T + T*T*T/24490000)
	mp := degMod(134.9633964 + 477198.8675055*T + 0.0087414*T*T + T*T*T/69699 - T*T*T*T/14712000)
	f := degMod(93.2720950 + 483202.0175233*T - 0.0036539*T*T - T*T*T/3526000 + T*T*T*T/863310000)

	a1 := degMod(119.75 + 131.849*T)
	a2 := degMod(53.09 + 479264.290*T)
	a3 := degMod(313.45 + 481266.484*T)

	e := 1 - 0.002516*T - 0.0000074*T*T

	dRad, mRad, mpRad, fRad := rad(d), rad(m), rad(mp), rad(f)

	var sigmaL, sigmaR float64
	for _, term := range moonLongTerms {
		arg := float64(term.d)*dRad + float64(term.m)*mRad + float64(term.mp)*mpRad + float64(term.f)*fRad
		sinArg, cosArg := math.Sincos(arg)
		scale := eccentricityScale(term.m, e)
		sigmaL += term.sigmaL * scale * sinArg
		sigmaR += term.sigmaR * scale * cosArg
	}

	var sigmaB float64
	for _, term := range moonLatTerms {
		arg := float64(term.d)*dRad + float64(term.m)*mRad + float64(term.mp)*mpRad + float64(term.f)*fRad
		scale := eccentricityScale(term.m, e)
		sigmaB += term.sigmaB * scale * math.Sin(arg)
	}

	sigmaL += 3958*math.Sin(rad(a1)) + 1962*math.Sin(rad(lp-f)) + 318*math.Sin(rad(a2))
	sigmaB += -2235*math.Sin(rad(lp)) + 382*math.Sin(rad(a3)) + 175*math.Sin(rad(a1-f)) +
		175*math.Sin(rad(a1+f)) + 127*math.Sin(rad(lp-mp)) - 115*math.Sin(rad(lp+mp))

	lonDeg := degMod(lp + sigmaL/1e6)
	latDeg := sigmaB / 1e6
	distKm := moonEarthRadiusKm + sigmaR/1e3

	return model.EclipticPosition{
		LambdaRad: rad(lonDeg),
		BetaRad:   rad(latDeg),
		RadiusAU:  distKm / auKm,
	}
}

// eccentricityScale applies the e or e^2 correction Meeus prescribes for
// terms whose Sun mean-anomaly multiplier has |m| = 1 or 2.
func eccentricityScale(mMultiplier int, e float64) float64 {
	switch mMultiplier {
	case 1, -1:
		return e
	case 2, -2:
		return e * e
	default:
		return 1
	}
}

func degMod(deg float64) float64 {
	d := math.Mod(deg, 360.0)
	if d < 0 {
		d += 360.0
	}
	return d
}

func rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
