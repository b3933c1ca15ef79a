package evm

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSensorParams(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	inputs := [][4]int{
		{12, 48000, 1792, 1200},
		{0, 0, 0, 0},
		{-1, -5, math.MinInt, math.MaxInt},
	}
	for i := 0; i < nSamples; i++ {
		inputs = append(inputs, [4]int{
			rng.Int() - rng.Int(),
			rng.Int() - rng.Int(),
			rng.Int() - rng.Int(),
			rng.Int() - rng.Int(),
		})
	}

	for _, in := range inputs {
		npmt, pmtwl, nsipm, sipmwl := in[0], in[1], in[2], in[3]
		sp := NewSensorParams(npmt, pmtwl, nsipm, sipmwl)

		assert.Equal(t, npmt, sp.Npmt())
		assert.Equal(t, npmt, sp.NPMT())
		assert.Equal(t, nsipm, sp.Nsipm())
		assert.Equal(t, nsipm, sp.NSIPM())
		assert.Equal(t, pmtwl, sp.Pmtwl())
		assert.Equal(t, pmtwl, sp.PMTWL())
		assert.Equal(t, sipmwl, sp.Sipmwl())
		assert.Equal(t, sipmwl, sp.SIPMWL())
	}
}

func TestSensorParamsString(t *testing.T) {
	sp := NewSensorParams(12, 48000, 1792, 1200)
	assert.Equal(t, "(npmt=12, pmtwl=48000, nsipm=1792, sipmwl=1200)", sp.String())
}
