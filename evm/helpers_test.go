package evm

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

const nSamples = 200

func uniform(rng *rand.Rand, min, max float64) float64 {
	return min + (max-min)*rng.Float64()
}

func intRange(rng *rand.Rand, min, max int) int {
	return min + rng.Intn(max-min+1)
}

func assertClose(t *testing.T, name string, got, want, rtol float64) {
	t.Helper()
	if !scalar.EqualWithinAbsOrRel(got, want, 1e-12, rtol) {
		t.Errorf("%s: got %v, want %v (rtol %v)", name, got, want, rtol)
	}
}

type clusterInput struct {
	q, x, y, xvar, yvar float64
	nsipm               int
}

func drawClusterInput(rng *rand.Rand) clusterInput {
	return clusterInput{
		x:     uniform(rng, 1, 5),
		y:     uniform(rng, -10, 10),
		xvar:  uniform(rng, .01, .5),
		yvar:  uniform(rng, .10, .9),
		q:     uniform(rng, 50, 100),
		nsipm: intRange(rng, 1, 20),
	}
}

func (ci clusterInput) cluster(t *testing.T) Cluster {
	t.Helper()
	c, err := NewCluster(ci.q, NewXY(ci.x, ci.y), NewXY(ci.xvar, ci.yvar), ci.nsipm)
	if err != nil {
		t.Fatalf("unexpected error building cluster: %v", err)
	}
	return c
}
