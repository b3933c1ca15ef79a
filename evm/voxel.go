package evm

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Voxel is a cell of a 3D energy map. Size is kept for consumers and not
// used in any computation here.
type Voxel struct {
	x    float64
	y    float64
	z    float64
	e    float64
	size [3]float64
}

func NewVoxel(x, y, z, e float64, size [3]float64) Voxel {
	return Voxel{x: x, y: y, z: z, e: e, size: size}
}

func (v Voxel) X() float64       { return v.x }
func (v Voxel) Y() float64       { return v.y }
func (v Voxel) Z() float64       { return v.z }
func (v Voxel) E() float64       { return v.e }
func (v Voxel) Size() [3]float64 { return v.size }

func (v Voxel) XYZ() [3]float64 {
	return [3]float64{v.x, v.y, v.z}
}

func (v Voxel) Pos() *mat.VecDense {
	return mat.NewVecDense(3, []float64{v.x, v.y, v.z})
}

func (v Voxel) String() string {
	return fmt.Sprintf("<x = %.2f y = %.2f z = %.2f E = %.2f size = %v>", v.x, v.y, v.z, v.e, v.size)
}
