package evm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Cluster is a localized charge deposit on the tracking plane.
// R, Phi and the RMS values are computed once in NewCluster.
type Cluster struct {
	q        float64
	pos      XY
	variance XY
	nsipm    int

	r    float64
	phi  float64
	xrms float64
	yrms float64
}

// NewCluster builds a cluster from its charge, position, position variance
// and number of SiPMs. Negative or NaN variances are rejected with
// *ErrNegativeVariance.
func NewCluster(q float64, pos XY, variance XY, nsipm int) (Cluster, error) {
	if !(variance.X() >= 0) {
		return Cluster{}, &ErrNegativeVariance{Axis: "x", Value: variance.X()}
	}
	if !(variance.Y() >= 0) {
		return Cluster{}, &ErrNegativeVariance{Axis: "y", Value: variance.Y()}
	}
	return Cluster{
		q:        q,
		pos:      pos,
		variance: variance,
		nsipm:    nsipm,
		r:        pos.R(),
		phi:      pos.Phi(),
		xrms:     math.Sqrt(variance.X()),
		yrms:     math.Sqrt(variance.Y()),
	}, nil
}

func (c Cluster) Q() float64    { return c.q }
func (c Cluster) Pos() XY       { return c.pos }
func (c Cluster) Var() XY       { return c.variance }
func (c Cluster) X() float64    { return c.pos.X() }
func (c Cluster) Y() float64    { return c.pos.Y() }
func (c Cluster) XY() XY        { return c.pos }
func (c Cluster) R() float64    { return c.r }
func (c Cluster) Phi() float64  { return c.phi }
func (c Cluster) Xrms() float64 { return c.xrms }
func (c Cluster) Yrms() float64 { return c.yrms }
func (c Cluster) Nsipm() int    { return c.nsipm }

// Posxy returns a new 1x2 matrix [[X, Y]].
func (c Cluster) Posxy() *mat.Dense {
	return mat.NewDense(1, 2, []float64{c.pos.X(), c.pos.Y()})
}

func (c Cluster) String() string {
	return fmt.Sprintf("<nsipm = %d Q = %.2f xy = %s var = %s R = %.2f Phi = %.2f>",
		c.nsipm, c.q, c.pos, c.variance, c.r, c.phi)
}

// StackPosxy stacks the posxy rows of the clusters into an N x 2 matrix.
// It returns nil when no clusters are given, since gonum has no empty
// matrices.
func StackPosxy(clusters ...Cluster) *mat.Dense {
	if len(clusters) == 0 {
		return nil
	}
	data := make([]float64, 0, 2*len(clusters))
	for _, c := range clusters {
		data = append(data, c.pos.X(), c.pos.Y())
	}
	return mat.NewDense(len(clusters), 2, data)
}
