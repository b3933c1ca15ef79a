package evm

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestVoxel(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	for i := 0; i < nSamples; i++ {
		x := uniform(rng, 1, 5)
		y := uniform(rng, -10, 10)
		z := uniform(rng, .01, .5)
		e := uniform(rng, 50, 100)
		size := [3]float64{uniform(rng, 1, 2), uniform(rng, 1, 2), uniform(rng, 1, 2)}

		v := NewVoxel(x, y, z, e, size)

		assert.Equal(t, [3]float64{x, y, z}, v.XYZ())
		assert.True(t, mat.EqualApprox(mat.NewVecDense(3, []float64{x, y, z}), v.Pos(), 1e-4))
		assertClose(t, "E", v.E(), e, 1e-4)
		assertClose(t, "X", v.X(), x, 1e-4)
		assertClose(t, "Y", v.Y(), y, 1e-4)
		assertClose(t, "Z", v.Z(), z, 1e-4)
		assert.Equal(t, size, v.Size())
	}
}
