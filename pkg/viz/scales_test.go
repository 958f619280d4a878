package viz

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinearScale(t *testing.T) {
	s := NewLinearScale(0, 10, 0, 100)

	assert.Equal(t, 0.0, s.Map(0))
	assert.Equal(t, 100.0, s.Map(10))
	assert.Equal(t, 50.0, s.Map(5))
}

func TestLinearScaleInverted(t *testing.T) {
	s := NewLinearScale(0, 10, 100, 0)

	assert.Equal(t, 100.0, s.Map(0))
	assert.Equal(t, 0.0, s.Map(10))
}

func TestLinearScaleDegenerateDomain(t *testing.T) {
	s := NewLinearScale(3, 3, 0, 100)

	for _, v := range []float64{-1, 0, 3, 100} {
		got := s.Map(v)
		assert.False(t, math.IsNaN(got))
		assert.False(t, math.IsInf(got, 0))
		assert.Equal(t, 50.0, got)
	}
}

func TestSqrtScale(t *testing.T) {
	s := NewSqrtScale(0, 100, 4, 16)

	assert.Equal(t, 4.0, s.Map(0))
	assert.Equal(t, 16.0, s.Map(100))
	assert.InDelta(t, 4+0.5*12, s.Map(25), 1e-9)
}

func TestSqrtScaleDegenerateDomain(t *testing.T) {
	s := NewSqrtScale(5, 5, 4, 16)
	assert.Equal(t, 10.0, s.Map(5))
}

func TestSequentialScale(t *testing.T) {
	s := NewSequentialScale(0, 1, "#000000", "#ffffff")

	assert.Equal(t, "#000000", s.Map(0))
	assert.Equal(t, "#ffffff", s.Map(1))
	assert.Equal(t, "#808080", s.Map(0.5))

	// Out-of-domain inputs clamp to the stops.
	assert.Equal(t, "#000000", s.Map(-2))
	assert.Equal(t, "#ffffff", s.Map(3))
}

func TestSequentialScaleDegenerateDomain(t *testing.T) {
	s := NewSequentialScale(2, 2, "#e0e7ff", "#3730a3")
	assert.Equal(t, "#e0e7ff", s.Map(2))
	assert.Equal(t, "#e0e7ff", s.Map(99))
}
