package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs the solver with the panic-recover boundary the public API uses.
func solveDraftOffset(hull Curve, targetArea float64) (offset float64, err error) {
	defer func() {
		if recoveredErr := HandleHydrostaticPanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	offset = DraftOffsetAtEquilibrium(hull, targetArea)
	return
}

func TestDraftOffsetDown(t *testing.T) {
	hull := Curve{Points: []Point{{-1, 2}, {-1, 3}, {1, 3}, {1, 2}}}.Close()
	offset, err := solveDraftOffset(hull, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.5, offset)
}

func TestDraftOffsetSkimming(t *testing.T) {
	hull := Curve{Points: []Point{{-1, 0}, {-1, 1}, {1, 1}, {1, 0}}}.Close()
	offset, err := solveDraftOffset(hull, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.5, offset)
}

func TestDraftOffsetSkimmingUp(t *testing.T) {
	hull := Curve{Points: []Point{{-1, -2}, {-1, -1}, {1, -1}, {1, -2}}}.Close()
	offset, err := solveDraftOffset(hull, 1)
	require.NoError(t, err)
	assert.Equal(t, -1.5, offset)
}

func TestDraftOffsetSinking(t *testing.T) {
	// The hull encloses area 2; no draft can displace 10.
	hull := Curve{Points: []Point{{-1, -2}, {-1, -1}, {1, -1}, {1, -2}}}.Close()
	_, err := solveDraftOffset(hull, 10)
	require.Error(t, err)
	sinking, ok := err.(*SinkingError)
	require.True(t, ok)
	assert.Equal(t, 10.0, sinking.TargetArea)
}

func TestDraftOffsetEmptyHull(t *testing.T) {
	_, err := solveDraftOffset(Curve{}, 1)
	require.Error(t, err)
	_, sinking := err.(*SinkingError)
	assert.False(t, sinking)
}
