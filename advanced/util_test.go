package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloseAppendsFirstPoint(t *testing.T) {
	open := Curve{Points: []Point{{-1, 0}, {1, 0}, {1, 1}, {-1, 1}}}
	closed := open.Close()
	assert.Len(t, closed.Points, 5)
	assert.Equal(t, closed.Points[0], closed.Points[4])
	assert.True(t, closed.Closed())
}

func TestCloseIdempotent(t *testing.T) {
	open := Curve{Points: []Point{{-1, 0}, {1, 0}, {1, 1}}}
	closed := open.Close()
	assert.Equal(t, closed, closed.Close())
}

func TestCloseEmpty(t *testing.T) {
	assert.Empty(t, Curve{}.Close().Points)
	assert.False(t, Curve{}.Closed())
}

func TestCloseSinglePoint(t *testing.T) {
	// A single point is its own first and last point, so it is already
	// closed.
	single := Curve{Points: []Point{{0, 0}}}
	assert.True(t, single.Closed())
	assert.Equal(t, single, single.Close())
}

func TestShift(t *testing.T) {
	curve := Curve{Points: []Point{{1, 2}, {-1, -3}}}
	shifted := curve.Shift(0.5)
	assert.Equal(t, []Point{{1, 1.5}, {-1, -3.5}}, shifted.Points)
	// The original is untouched.
	assert.Equal(t, []Point{{1, 2}, {-1, -3}}, curve.Points)
}
