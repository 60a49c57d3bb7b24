package advanced

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAreaAndCentroidEmpty(t *testing.T) {
	area, centroid := AreaAndCentroid(Curve{})
	assert.Zero(t, area)
	assert.True(t, math.IsNaN(centroid.X))
	assert.True(t, math.IsNaN(centroid.Y))
}

func TestAreaAndCentroidSinglePoint(t *testing.T) {
	area, centroid := AreaAndCentroid(Curve{Points: []Point{{0, 0}}})
	assert.Zero(t, area)
	assert.Equal(t, Point{0, 0}, centroid)
}

func TestAreaAndCentroidFlat(t *testing.T) {
	// A degenerate contour with zero shoelace sum reports its lowest point,
	// for continuity with resting on solid ground.
	area, centroid := AreaAndCentroid(Curve{Points: []Point{{0, 1}, {0, 2}}})
	assert.Zero(t, area)
	assert.Equal(t, Point{0, 1}, centroid)
}

func TestAreaAndCentroidOrientationInvariant(t *testing.T) {
	square := Curve{Points: []Point{{0, -3}, {1, -3}, {1, -2}, {0, -2}, {0, -3}}}
	reversed := Curve{Points: make([]Point, len(square.Points))}
	for i, p := range square.Points {
		reversed.Points[len(square.Points)-1-i] = p
	}

	area, centroid := AreaAndCentroid(square)
	areaRev, centroidRev := AreaAndCentroid(reversed)
	assert.Equal(t, 1.0, area)
	assert.Equal(t, area, areaRev)
	assert.InDelta(t, centroid.X, centroidRev.X, 1e-12)
	assert.InDelta(t, centroid.Y, centroidRev.Y, 1e-12)
}

func TestSubmergedHydrostaticsCurveAbove(t *testing.T) {
	curve := Curve{Points: []Point{{0, 2}, {2, 3}, {4, 2}, {3, 4}}}.Close()
	hydro := SubmergedHydrostatics(curve)
	assert.Zero(t, hydro.Area)
	assert.True(t, math.IsNaN(hydro.MetacentricRadius))
}

func TestSubmergedHydrostaticsCurveBelow(t *testing.T) {
	curve := Curve{Points: []Point{{0, -2}, {1, -2}, {1, -3}, {0, -3}}}.Close()
	hydro := SubmergedHydrostatics(curve)
	assert.Equal(t, 1.0, hydro.Area)
}

func TestSubmergedHydrostaticsIntersecting(t *testing.T) {
	curve := Curve{Points: []Point{{0, 2}, {2, 2}, {2, -1}, {0, -1}}}.Close()
	hydro := SubmergedHydrostatics(curve)
	assert.Equal(t, 2.0, hydro.Area)
}

// Results visually checked in the reference implementation.
func TestSubmergedHydrostaticsNonRegression(t *testing.T) {
	curve := Curve{Points: []Point{
		{0, 2},
		{2, 3},
		{4, 2},
		{3, -2},
		{1, -2},
		{-1, 0},
		{0, 2},
	}}
	hydro := SubmergedHydrostatics(curve)
	assert.Greater(t, hydro.Area, 0.0)
	assert.InDelta(t, 1.576, hydro.Centroid.X, 0.1)
	assert.InDelta(t, -0.871, hydro.Centroid.Y, 0.1)
}

func TestSubmergedHydrostaticsDoubleSquare(t *testing.T) {
	// Area is additive over disjoint submerged loops traced as one contour.
	curve := Curve{Points: []Point{
		{-1, -1},
		{-2, -1},
		{-2, -2},
		{-1, -2},
		{-1, -1},
		{1, -1},
		{1, -2},
		{2, -2},
		{2, -1},
		{1, -1},
	}}.Close()
	hydro := SubmergedHydrostatics(curve)
	assert.Equal(t, 2.0, hydro.Area)
	assert.InDelta(t, 0.0, hydro.Centroid.X, 0.1)
	assert.InDelta(t, -1.5, hydro.Centroid.Y, 0.1)
}

func TestSubmergedHydrostaticsDoubleSquareWithOverlap(t *testing.T) {
	curve := Curve{Points: []Point{
		{0.25, -1},
		{-0.75, -1},
		{-0.75, -2},
		{0.25, -2},
		{0.25, -1},
		{-0.25, -1},
		{-0.25, -2},
		{0.75, -2},
		{0.75, -1},
		{-0.25, -1},
	}}.Close()
	hydro := SubmergedHydrostatics(curve)
	assert.Equal(t, 2.0, hydro.Area)
	assert.InDelta(t, 0.0, hydro.Centroid.X, 0.1)
	assert.InDelta(t, -1.5, hydro.Centroid.Y, 0.1)
}
