// Package samples provides fixed sample hull profiles for tests, examples,
// and the CLI. Each generator returns an open point sequence and the boat's
// center of gravity; callers close the curve themselves.
package samples

import (
	"math"

	"github.com/azmadax/hydrostatic"
)

// CircularBoat is a circle of radius 2 sampled at 50 points, lowered one
// meter, with the center of gravity at the circle's center. With the CG at
// the center, every heel angle leaves the righting arm at zero.
func CircularBoat() (hydrostatic.Curve, hydrostatic.Point) {
	const (
		radius    = 2.0
		numPoints = 50
		lower     = 1.0
	)
	points := make([]hydrostatic.Point, numPoints)
	for i := 0; i < numPoints; i++ {
		theta := 2 * math.Pi * float64(i) / float64(numPoints-1)
		points[i] = hydrostatic.Point{
			X: radius * math.Cos(theta),
			Y: radius*math.Sin(theta) - lower,
		}
	}
	return hydrostatic.Curve{Points: points}, hydrostatic.Point{X: 0, Y: -lower}
}

// SquareBoat is a 4x2 rectangle raised one meter, CG at its center.
func SquareBoat() (hydrostatic.Curve, hydrostatic.Point) {
	const (
		width  = 4.0
		height = 2.0
		lower  = -1.0
	)
	points := []hydrostatic.Point{
		{X: -width / 2, Y: -height/2 - lower},
		{X: -width / 2, Y: height/2 - lower},
		{X: width / 2, Y: height/2 - lower},
		{X: width / 2, Y: -height/2 - lower},
	}
	return hydrostatic.Curve{Points: points}, hydrostatic.Point{X: 0, Y: -lower}
}

// CulbutoBoat is a 4x2 rectangle capped by a semicircle, lowered one meter,
// CG at the rectangle's center. Like the roly-poly toy it is named after, it
// rights itself from any heel.
func CulbutoBoat() (hydrostatic.Curve, hydrostatic.Point) {
	const (
		width  = 4.0
		height = 2.0
		radius = width / 2
		lower  = 1.0
	)
	var points []hydrostatic.Point

	// Bottom, left to right
	for i := 0; i < 10; i++ {
		x := -width/2 + width*float64(i)/9
		points = append(points, hydrostatic.Point{X: x, Y: -height/2 - lower})
	}
	// Right side, upward
	for i := 0; i < 5; i++ {
		y := -height/2 + height*float64(i)/4
		points = append(points, hydrostatic.Point{X: width / 2, Y: y - lower})
	}
	// Semicircular cap, right to left
	for i := 0; i < 10; i++ {
		theta := math.Pi * float64(i) / 9
		points = append(points, hydrostatic.Point{
			X: radius * math.Cos(theta),
			Y: height/2 + radius*math.Sin(theta) - lower,
		})
	}
	// Left side, downward
	for i := 0; i < 5; i++ {
		y := height/2 - height*float64(i)/4
		points = append(points, hydrostatic.Point{X: -width / 2, Y: y - lower})
	}
	return hydrostatic.Curve{Points: points}, hydrostatic.Point{X: 0, Y: -lower}
}
