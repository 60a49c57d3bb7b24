package advanced

// Closed reports whether the curve's first and last points coincide exactly.
// Equality is exact, not tolerance based: closing is an explicit operation,
// and a curve closed by Close must test closed on the nose.
func (c Curve) Closed() bool {
	if len(c.Points) == 0 {
		return false
	}
	return c.Points[0] == c.Points[len(c.Points)-1]
}

// Close appends the first point if the curve does not already end on it,
// turning a point chain into a polygon. Idempotent: closing a closed curve
// returns an equal curve. The empty curve is returned unchanged.
func (c Curve) Close() Curve {
	if len(c.Points) == 0 || c.Closed() {
		return c
	}
	points := make([]Point, len(c.Points)+1)
	copy(points, c.Points)
	points[len(c.Points)] = c.Points[0]
	return Curve{Points: points}
}

// Shift returns a copy of the curve with every y lowered by offset. Positive
// offsets move the hull down into the water, increasing draft.
func (c Curve) Shift(offset float64) Curve {
	points := make([]Point, len(c.Points))
	for i, p := range c.Points {
		points[i] = Point{X: p.X, Y: p.Y - offset}
	}
	return Curve{Points: points}
}
