package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlotationInertiaSingleSegment(t *testing.T) {
	inertia := FlotationInertia([]FlotationSegment{{Start: -1, End: 1}}, 0)
	assert.Equal(t, 2.0/3.0, inertia)
}

func TestFlotationInertiaTraversalOrderIrrelevant(t *testing.T) {
	forward := FlotationInertia([]FlotationSegment{{Start: -1, End: 1}}, 0)
	backward := FlotationInertia([]FlotationSegment{{Start: 1, End: -1}}, 0)
	assert.Equal(t, forward, backward)
}

func TestFlotationInertiaParallelAxis(t *testing.T) {
	// Segment (0, 2) about x = 0: L³/12 + L·d² with L = 2, d = 1.
	inertia := FlotationInertia([]FlotationSegment{{Start: 0, End: 2}}, 0)
	assert.InDelta(t, 2.0/3.0+2.0, inertia, 1e-12)
}

func TestFlotationInertiaSumsSegments(t *testing.T) {
	segments := []FlotationSegment{{Start: -2, End: -1}, {Start: 1, End: 2}}
	total := FlotationInertia(segments, 0)
	left := FlotationInertia(segments[:1], 0)
	right := FlotationInertia(segments[1:], 0)
	assert.Equal(t, left+right, total)
	// Each strip: 1/12 + 1·1.5² = 2.3333…
	assert.InDelta(t, 2*(1.0/12.0+2.25), total, 1e-12)
}

func TestFlotationInertiaEmpty(t *testing.T) {
	assert.Zero(t, FlotationInertia(nil, 3))
}
