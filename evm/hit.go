package evm

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Hit is a 3D energy deposit: a Cluster plus its drift coordinate, energy
// and the S2 peak it belongs to. The cluster quantities (X, Y, R, Phi,
// Xrms, Yrms, Nsipm, Q) are read from the embedded Cluster.
type Hit struct {
	Cluster

	peakNumber int
	z          float64
	e          float64
	posPeak    XY
}

func NewHit(peakNumber int, cluster Cluster, z float64, e float64, posPeak XY) Hit {
	return Hit{
		Cluster:    cluster,
		peakNumber: peakNumber,
		z:          z,
		e:          e,
		posPeak:    posPeak,
	}
}

func (h Hit) PeakNumber() int { return h.peakNumber }

// Npeak is the same value as PeakNumber.
func (h Hit) Npeak() int { return h.peakNumber }

func (h Hit) Z() float64     { return h.z }
func (h Hit) E() float64     { return h.e }
func (h Hit) PosPeak() XY    { return h.posPeak }
func (h Hit) Xpeak() float64 { return h.posPeak.X() }
func (h Hit) Ypeak() float64 { return h.posPeak.Y() }

func (h Hit) XYZ() [3]float64 {
	return [3]float64{h.X(), h.Y(), h.z}
}

// Pos returns a new vector (X, Y, Z).
func (h Hit) Pos() *mat.VecDense {
	xyz := h.XYZ()
	return mat.NewVecDense(3, xyz[:])
}

func (h Hit) String() string {
	return fmt.Sprintf("<npeak = %d z = %.2f E = %.2f cluster = %s>",
		h.peakNumber, h.z, h.e, h.Cluster)
}
