package ephemeris

import (
	"math"

	"github.com/harshasoftware/halohome/lunarnodes"
	"github.com/harshasoftware/halohome/model"
)

// trueNodePosition returns the Moon's true (osculating) ascending node
// ecliptic longitude: the mean node from lunarnodes.MeanLunarNodes,
// corrected by the dominant terms of the periodic "wobble" between mean
// and true node (Meeus ch.48). Latitude is zero by definition.
func trueNodePosition(jdTT float64) model.EclipticPosition {
	T := (jdTT - j2000JD) / 36525.0

	lp := degMod(218.3164477 + 481267.88123421*T - 0.0015786*T*T)
	d := degMod(297.8501921 + 445267.1114034*T - 0.0018819*T*T)
	mp := degMod(134.9633964 + 477198.8675055*T + 0.0087414*T*T)
	f := degMod(93.2720950 + 483202.0175233*T - 0.0036539*T*T)

	omega, _ := lunarnodes.MeanLunarNodes(jdTT)

	wobbleDeg := -1.4979*math.Sin(rad(2*d-2*lp)) -
		0.1500*math.Sin(rad(mp)) -
		0.1226*math.Sin(rad(2*d)) +
		0.1176*math.Sin(rad(2*f)) -
		0.0801*math.Sin(rad(2*mp-2*d))

	lonDeg := degMod(omega + wobbleDeg)

	return model.EclipticPosition{
		LambdaRad: rad(lonDeg),
		BetaRad:   0,
		RadiusAU:  0,
	}
}
