package advanced

import "math"

// FlotationInertia computes the second moment of area of the waterplane
// about the vertical axis x = center. Each flotation segment is a 1-D strip
// of length L contributing L³/12 about its own midpoint, transported to the
// axis by L·d² with d the midpoint's distance from center.
func FlotationInertia(segments []FlotationSegment, center float64) float64 {
	var inertia float64
	for _, s := range segments {
		length := math.Abs(s.End - s.Start)
		d := (s.Start+s.End)/2 - center
		inertia += length*length*length/12 + length*d*d
	}
	return inertia
}
