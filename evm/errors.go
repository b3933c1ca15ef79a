package evm

import "fmt"

// ErrNegativeVariance is returned when a cluster is built with a variance
// that has no real square root.
type ErrNegativeVariance struct {
	Axis  string
	Value float64
}

func (e *ErrNegativeVariance) Error() string {
	return fmt.Sprintf("negative variance on %s axis: %v", e.Axis, e.Value)
}

// ErrInvalidRange represents a MinMax whose lower bound is above the upper one.
type ErrInvalidRange struct {
	Min float64
	Max float64
}

func (e *ErrInvalidRange) Error() string {
	return fmt.Sprintf("invalid range: min %v > max %v", e.Min, e.Max)
}

// ErrInconsistentKrEvent represents a KrEvent whose peak counter does not
// match the length of one of its per-peak lists.
type ErrInconsistentKrEvent struct {
	Field string
	Count int
	Len   int
}

func (e *ErrInconsistentKrEvent) Error() string {
	return fmt.Sprintf("kr event field %q has %d entries, expected %d", e.Field, e.Len, e.Count)
}
