package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModel(t *testing.T) {
	mdl := newModel(3, false)
	_, _, ok := mdl.bounds()
	assert.False(t, ok)
	assert.True(t, math.IsNaN(mdl.mean()))

	assert.False(t, mdl.push(0, 2))
	assert.False(t, mdl.push(1, 1))
	assert.False(t, mdl.push(2, -1))
	assert.True(t, mdl.push(3, 0))

	assert.Equal(t, 3, mdl.len())
	assert.Equal(t, []point{{x: 1, y: 1}, {x: 2, y: -1}, {x: 3, y: 0}}, mdl.points())
	assert.Equal(t, 0.0, mdl.mean())
	assert.InDelta(t, 2.0/3, mdl.variance(), 1e-12)
	assert.InDelta(t, math.Sqrt(2.0/3), mdl.std(), 1e-12)

	xb, yb, ok := mdl.bounds()
	require.True(t, ok)
	assert.Equal(t, 2.0, span(xb))
	assert.Equal(t, extremum[float64]{value: 1, index: 1}, yb.max)
	assert.Equal(t, extremum[float64]{value: -1, index: 2}, yb.min)

	mdl.clear()
	assert.Equal(t, 0, mdl.len())
	assert.Empty(t, mdl.points())
	_, _, ok = mdl.bounds()
	assert.False(t, ok)
}

func TestModelUnbounded(t *testing.T) {
	mdl := newModel(3, true)
	for i := 0; i < 10; i++ {
		assert.False(t, mdl.push(float64(i), float64(i)))
	}

	assert.Equal(t, 10, mdl.len())
	assert.Equal(t, 4.5, mdl.mean())
}

func TestModelZeroCapacity(t *testing.T) {
	mdl := newModel(0, false)
	assert.False(t, mdl.push(1, 1))
	assert.Equal(t, 0, mdl.len())
	assert.Empty(t, mdl.points())
}
