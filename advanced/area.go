package advanced

import "math"

// AreaAndCentroid computes the unsigned enclosed area and the centroid of a
// point sequence with the shoelace formula over consecutive pairs. The sum is
// linear over the whole sequence, so a self-overlapping contour tracing
// several loops (two squares sharing a path, say) accumulates the area of
// every loop.
//
// Degenerate inputs resolve to defined fallbacks rather than failing:
// an empty sequence has area 0 and an undefined (NaN, NaN) centroid; a single
// point has area 0 with that point as centroid; a sequence whose signed
// shoelace sum is exactly 0 (a flat line on the water) has area 0 with the
// lowest point as centroid, for continuity with resting on solid ground.
// The equality check on the signed sum is exact by choice; a tolerance band
// would change which point flat contact cases report.
func AreaAndCentroid(c Curve) (float64, Point) {
	points := c.Points
	switch len(points) {
	case 0:
		return 0, Point{X: math.NaN(), Y: math.NaN()}
	case 1:
		return 0, points[0]
	}

	var signed, sumX, sumY float64
	for i := 0; i+1 < len(points); i++ {
		p1, p2 := points[i], points[i+1]
		cross := p1.X*p2.Y - p2.X*p1.Y
		signed += cross
		sumX += (p1.X + p2.X) * cross
		sumY += (p1.Y + p2.Y) * cross
	}
	signed /= 2

	if signed == 0 {
		lowest := points[0]
		for _, p := range points[1:] {
			if p.Y < lowest.Y {
				lowest = p
			}
		}
		return 0, lowest
	}
	centroid := Point{X: sumX / (6 * signed), Y: sumY / (6 * signed)}
	return math.Abs(signed), centroid
}

// SubmergedHydrostatics clips the hull to the waterline and integrates the
// result: displaced area, center of buoyancy, and the metacentric radius
// BM = I/V with the waterplane inertia taken about the buoyancy center.
func SubmergedHydrostatics(c Curve) Hydrostatics {
	submerged, segments := c.Submerged()
	area, centroid := AreaAndCentroid(submerged)
	bm := math.NaN()
	if area > 0 {
		bm = FlotationInertia(segments, centroid.X) / area
	}
	return Hydrostatics{Area: area, Centroid: centroid, MetacentricRadius: bm}
}
