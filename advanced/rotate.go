package advanced

import "math"

// RotatePoint rotates a point rigidly about the origin by angle radians,
// counterclockwise for positive angles. Exact for a zero angle.
func RotatePoint(p Point, angle float64) Point {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Rotate returns a copy of the curve rotated rigidly about the origin.
func (c Curve) Rotate(angle float64) Curve {
	points := make([]Point, len(c.Points))
	for i, p := range c.Points {
		points[i] = RotatePoint(p, angle)
	}
	return Curve{Points: points}
}
