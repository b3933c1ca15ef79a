package evm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXY(t *testing.T) {
	p := NewXY(3, -4)

	assert.Equal(t, 3.0, p.X())
	assert.Equal(t, -4.0, p.Y())
	assert.Equal(t, [2]float64{3, -4}, p.Array())

	x, y := p.Unpack()
	assert.Equal(t, 3.0, x)
	assert.Equal(t, -4.0, y)

	assert.InDelta(t, 5.0, p.R(), 1e-12)
	assert.InDelta(t, math.Atan2(-4, 3), p.Phi(), 1e-12)
	assert.Equal(t, "xy(x=3.00, y=-4.00)", p.String())
}

func TestXYPhiBranch(t *testing.T) {
	assert.Equal(t, math.Pi, NewXY(-1, 0).Phi())
	assert.Equal(t, math.Pi, NewXY(-1, math.Copysign(0, -1)).Phi())
	assert.Equal(t, 0.0, NewXY(0, 0).Phi())
	assert.InDelta(t, -math.Pi/2, NewXY(0, -2).Phi(), 1e-12)
}

func TestMinMax(t *testing.T) {
	m, err := NewMinMax(-2, 6)
	require.NoError(t, err)

	assert.Equal(t, -2.0, m.Min())
	assert.Equal(t, 6.0, m.Max())
	lo, hi := m.Bounds()
	assert.Equal(t, -2.0, lo)
	assert.Equal(t, 6.0, hi)
	assert.Equal(t, 8.0, m.Interval())
	assert.Equal(t, 2.0, m.Center())
	assert.True(t, m.Contains(-2))
	assert.True(t, m.Contains(6))
	assert.False(t, m.Contains(6.5))
}

func TestMinMaxInvalid(t *testing.T) {
	_, err := NewMinMax(3, 1)
	require.Error(t, err)

	var rangeErr *ErrInvalidRange
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, 3.0, rangeErr.Min)
	assert.Equal(t, 1.0, rangeErr.Max)

	degenerate, err := NewMinMax(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, degenerate.Interval())
}
