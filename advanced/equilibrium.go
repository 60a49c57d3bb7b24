package advanced

import (
	"math"

	"github.com/pkg/errors"
)

// Margin added around the hull's vertical extent when bracketing the draft
// search, generous enough that any reachable target area produces a sign
// change inside the bracket.
const draftBracketMargin = 10

// DraftOffsetAtEquilibrium finds the vertical offset to apply to the hull so
// that its submerged area matches the target displacement. Positive offsets
// move the hull down. It throws a *SinkingError when no draft within the
// bracket can displace the target area, and rethrows any other solver failure
// unchanged; the package-level API recovers both into errors.
func DraftOffsetAtEquilibrium(hull Curve, targetArea float64) float64 {
	if len(hull.Points) == 0 {
		fatalf("cannot solve vertical equilibrium for an empty hull")
	}
	yMin, yMax := math.Inf(1), math.Inf(-1)
	for _, p := range hull.Points {
		yMin = math.Min(yMin, p.Y)
		yMax = math.Max(yMax, p.Y)
	}

	areaDifference := func(offset float64) float64 {
		submerged, _ := hull.Shift(offset).Submerged()
		area, _ := AreaAndCentroid(submerged)
		return area - targetArea
	}

	offset, err := Bisect(areaDifference, yMin-draftBracketMargin, yMax+draftBracketMargin)
	if err != nil {
		if errors.Is(err, ErrBracket) {
			throw(&SinkingError{TargetArea: targetArea})
		}
		throw(err)
	}
	return offset
}
