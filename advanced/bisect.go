package advanced

import (
	"math"

	"github.com/pkg/errors"
)

// Tolerances match the usual library defaults for scalar bisection: an
// absolute bracket width of 2e-12 widened by four machine epsilons of the
// current midpoint, within at most 100 halvings.
const (
	bisectXTol    = 2e-12
	bisectRTol    = 8.881784197001252e-16
	bisectMaxIter = 100
)

// ErrBracket is returned by Bisect when the bracket does not straddle a sign
// change. Callers that can interpret the condition (the vertical equilibrium
// solver turns it into a sinking verdict) must test for it with errors.Is.
var ErrBracket = errors.New("f(a) and f(b) must have different signs")

// Bisect finds a root of the continuous function f inside [a, b] by
// bracketing bisection. f(a) and f(b) must have opposite signs; an endpoint
// or midpoint where f evaluates to exactly zero is returned immediately,
// which keeps roots that land on the grid exact.
func Bisect(f func(float64) float64, a, b float64) (float64, error) {
	fa := f(a)
	if fa == 0 {
		return a, nil
	}
	fb := f(b)
	if fb == 0 {
		return b, nil
	}
	if (fa > 0) == (fb > 0) {
		return 0, ErrBracket
	}

	for i := 0; i < bisectMaxIter; i++ {
		mid := (a + b) / 2
		fm := f(mid)
		if fm == 0 {
			return mid, nil
		}
		if (fm > 0) == (fa > 0) {
			a, fa = mid, fm
		} else {
			b = mid
		}
		if math.Abs(b-a) < bisectXTol+bisectRTol*math.Abs(mid) {
			return (a + b) / 2, nil
		}
	}
	return 0, errors.Errorf("bisection did not converge in %d iterations", bisectMaxIter)
}
