package advanced

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBisectFindsRoot(t *testing.T) {
	root, err := Bisect(func(x float64) float64 { return x*x - 4 }, 0, 10)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, root, 1e-9)
}

func TestBisectExactMidpoint(t *testing.T) {
	// A root hit exactly by a midpoint is returned without further halving,
	// so grid-aligned roots stay exact.
	root, err := Bisect(func(x float64) float64 { return x - 2.5 }, -8, 13)
	require.NoError(t, err)
	assert.Equal(t, 2.5, root)
}

func TestBisectExactEndpoint(t *testing.T) {
	root, err := Bisect(func(x float64) float64 { return x + 1 }, -1, 5)
	require.NoError(t, err)
	assert.Equal(t, -1.0, root)
}

func TestBisectSameSignBracket(t *testing.T) {
	_, err := Bisect(func(x float64) float64 { return x*x + 1 }, -3, 3)
	assert.ErrorIs(t, err, ErrBracket)
}

func TestBisectDecreasingFunction(t *testing.T) {
	root, err := Bisect(func(x float64) float64 { return math.Exp(-x) - 1 }, -3, 7)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, root, 1e-9)
}
