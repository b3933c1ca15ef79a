package evm

import (
	"fmt"
	"math"
)

// XY is an immutable (X, Y) pair used for positions and variances.
type XY struct {
	x float64
	y float64
}

func NewXY(x, y float64) XY {
	return XY{x: x, y: y}
}

func (p XY) X() float64 { return p.x }
func (p XY) Y() float64 { return p.y }

// Array returns the pair as a 2-element sequence in (X, Y) order.
func (p XY) Array() [2]float64 {
	return [2]float64{p.x, p.y}
}

func (p XY) Unpack() (float64, float64) {
	return p.x, p.y
}

func (p XY) R() float64 {
	return math.Hypot(p.x, p.y)
}

// Phi is atan2(Y, X) folded into (-π, π].
func (p XY) Phi() float64 {
	phi := math.Atan2(p.y, p.x)
	if phi == -math.Pi {
		return math.Pi
	}
	return phi
}

func (p XY) String() string {
	return fmt.Sprintf("xy(x=%.2f, y=%.2f)", p.x, p.y)
}

// MinMax is a closed interval [min, max].
type MinMax struct {
	min float64
	max float64
}

func NewMinMax(min, max float64) (MinMax, error) {
	if min > max {
		return MinMax{}, &ErrInvalidRange{Min: min, Max: max}
	}
	return MinMax{min: min, max: max}, nil
}

func (m MinMax) Min() float64 { return m.min }
func (m MinMax) Max() float64 { return m.max }

func (m MinMax) Bounds() (float64, float64) {
	return m.min, m.max
}

func (m MinMax) Interval() float64 {
	return m.max - m.min
}

func (m MinMax) Center() float64 {
	return (m.max + m.min) / 2
}

func (m MinMax) Contains(v float64) bool {
	return m.min <= v && v <= m.max
}

func (m MinMax) String() string {
	return fmt.Sprintf("(min=%.2f, max=%.2f)", m.min, m.max)
}
