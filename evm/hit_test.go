package evm

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

type hitInput struct {
	peakNumber   int
	e, z         float64
	xPeak, yPeak float64
}

func drawHitInput(rng *rand.Rand) hitInput {
	return hitInput{
		z:          uniform(rng, .1, .9),
		e:          uniform(rng, 50, 100),
		peakNumber: intRange(rng, 1, 20),
		xPeak:      uniform(rng, -10, 2),
		yPeak:      uniform(rng, -20, 5),
	}
}

func TestHit(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < nSamples; i++ {
		ci := drawClusterInput(rng)
		hi := drawHitInput(rng)

		c := ci.cluster(t)
		h := NewHit(hi.peakNumber, c, hi.z, hi.e, NewXY(hi.xPeak, hi.yPeak))

		assert.Equal(t, hi.peakNumber, h.PeakNumber())
		assert.Equal(t, hi.peakNumber, h.Npeak())

		assertClose(t, "X", h.X(), ci.x, 1e-4)
		assertClose(t, "Y", h.Y(), ci.y, 1e-4)
		assertClose(t, "Z", h.Z(), hi.z, 1e-4)
		assertClose(t, "E", h.E(), hi.e, 1e-4)
		assertClose(t, "Xpeak", h.Xpeak(), hi.xPeak, 1e-4)
		assertClose(t, "Ypeak", h.Ypeak(), hi.yPeak, 1e-4)
		assert.Equal(t, [3]float64{ci.x, ci.y, hi.z}, h.XYZ())

		want := mat.NewVecDense(3, []float64{ci.x, ci.y, hi.z})
		assert.True(t, mat.EqualApprox(want, h.Pos(), 1e-4))
	}
}

func TestHitDelegatesToCluster(t *testing.T) {
	c, err := NewCluster(75.0, NewXY(3.0, 4.0), NewXY(0.25, 0.49), 5)
	require.NoError(t, err)
	h := NewHit(2, c, 120.5, 1500, NewXY(2.9, 4.1))

	assert.Equal(t, c.X(), h.X())
	assert.Equal(t, c.Y(), h.Y())
	assert.Equal(t, c.Xrms(), h.Xrms())
	assert.Equal(t, c.Yrms(), h.Yrms())
	assert.Equal(t, c.R(), h.R())
	assert.Equal(t, c.Phi(), h.Phi())
	assert.Equal(t, c.Nsipm(), h.Nsipm())

	// hit energy and cluster charge are unrelated
	assert.Equal(t, 75.0, h.Q())
	assert.Equal(t, 1500.0, h.E())
}
