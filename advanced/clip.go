package advanced

// Submerged clips the curve against the waterline y = 0. It returns the
// ordered sequence of points at or below the waterline, with crossing points
// interpolated onto it, together with the flotation segments found among the
// emitted points.
//
// A point touching y = 0 counts as submerged and is emitted as-is; an
// intersection is interpolated only for a genuine crossing, where one
// endpoint is strictly above and the other strictly below. Two consecutive
// points both on the waterline are therefore never treated as a crossing.
// Every input, including the empty curve, maps to a defined output.
func (c Curve) Submerged() (Curve, []FlotationSegment) {
	var below []Point
	points := c.Points
	for i := 0; i+1 < len(points); i++ {
		p1, p2 := points[i], points[i+1]
		if p1.Y <= 0 {
			below = append(below, p1)
		}
		if (p1.Y < 0 && 0 < p2.Y) || (p2.Y < 0 && 0 < p1.Y) {
			t := -p1.Y / (p2.Y - p1.Y)
			below = append(below, Point{X: p1.X + t*(p2.X-p1.X), Y: 0})
		}
	}
	// The pairwise scan never emits the final point as p1, so test it here.
	if len(points) > 0 && points[len(points)-1].Y <= 0 {
		below = append(below, points[len(points)-1])
	}
	return Curve{Points: below}, flotationSegments(below)
}

// flotationSegments finds the waterplane chords of the submerged point
// sequence. A chord runs from each point where the contour leaves the
// waterline into the water (a waterline point followed by a strictly
// submerged one) to the next point where it comes back up to the waterline.
// Submergences and emergences alternate along the contour, so each chord
// spans exactly one submerged arc. When the sequence is closed the pairing
// wraps, so a hull traversed from an above-water or an underwater vertex
// yields the same chords. An unpaired submergence on an open sequence, and a
// chord of zero width, produce no segment.
func flotationSegments(points []Point) []FlotationSegment {
	type transition struct {
		x    float64
		down bool
	}
	var events []transition
	for i := 0; i+1 < len(points); i++ {
		p1, p2 := points[i], points[i+1]
		switch {
		case p1.Y == 0 && p2.Y < 0:
			events = append(events, transition{x: p1.X, down: true})
		case p1.Y < 0 && p2.Y == 0:
			events = append(events, transition{x: p2.X, down: false})
		}
	}
	if len(events) == 0 {
		return nil
	}

	closed := points[0] == points[len(points)-1]
	var segments []FlotationSegment
	for i, down := range events {
		if !down.down {
			continue
		}
		var up transition
		switch {
		case i+1 < len(events):
			up = events[i+1]
		case closed && !events[0].down:
			up = events[0]
		default:
			continue
		}
		if down.x != up.x {
			segments = append(segments, FlotationSegment{Start: down.x, End: up.x})
		}
	}
	return segments
}
