package advanced

// Point is a position in the section's local frame. X is horizontal and Y is
// vertical, positive up. The waterline is always the line y = 0: draft is
// applied by shifting the hull, never by moving the waterline.
type Point struct {
	X float64
	Y float64
}

// Curve is an ordered sequence of points. A curve is closed iff its first and
// last points are equal. Self-intersecting contours and repeated vertices are
// allowed everywhere; nothing in this package requires a simple polygon.
type Curve struct {
	Points []Point
}

// FlotationSegment is a maximal run of consecutive clipped points lying
// exactly on the waterline. Start and End are the x coordinates of the run's
// first and last point in traversal order, so Start < End is not guaranteed.
type FlotationSegment struct {
	Start float64
	End   float64
}

// Hydrostatics describes the submerged part of a hull at a fixed draft.
// Centroid is the center of buoyancy. MetacentricRadius is BM = I/V, the
// waterplane inertia about the buoyancy center's vertical axis divided by the
// displaced area; it is NaN when nothing is submerged.
type Hydrostatics struct {
	Area              float64
	Centroid          Point
	MetacentricRadius float64
}
