package scoring

import (
	"math"

	"github.com/harshasoftware/halohome/model"
)

// DecayWeight maps a distance in km to an intensity multiplier in [0, 1]
// under the selected kernel, parameterized by paramKm (the kernel's
// characteristic length — the linear cutoff, the Gaussian sigma, or the
// exponential scale length, respectively).
func DecayWeight(distanceKm float64, kernel model.KernelType, paramKm float64) float64 {
	if paramKm <= 0 {
		return 0
	}
	switch kernel {
	case model.Linear:
		w := 1.0 - distanceKm/paramKm
		if w < 0 {
			return 0
		}
		return w
	case model.Exponential:
		return math.Exp(-distanceKm / paramKm)
	case model.Gaussian:
		fallthrough
	default:
		ratio := distanceKm / paramKm
		return math.Exp(-0.5 * ratio * ratio)
	}
}
