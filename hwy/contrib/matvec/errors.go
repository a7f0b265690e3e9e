package matvec

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is wrapped by every error reporting incompatible
	// operand shapes (vector length vs. matrix columns, lane counts, data
	// lengths).
	ErrShapeMismatch = errors.New("matvec: shape mismatch")

	// ErrDegenerateSize is wrapped when a vector or matrix would have zero
	// or negative extent.
	ErrDegenerateSize = errors.New("matvec: degenerate size")

	// ErrIndexOutOfRange is wrapped by element and pack accessors.
	ErrIndexOutOfRange = errors.New("matvec: index out of range")

	// ErrVerification is wrapped when two kernels disagree beyond tolerance.
	ErrVerification = errors.New("matvec: verification failed")
)

// ShapeError describes an operand shape that does not match what an
// operation requires.
type ShapeError struct {
	Op   string // operation name, e.g. "Transform"
	What string // the mismatched quantity, e.g. "vector size"
	Want int
	Got  int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("matvec: %s: %s mismatch: want %d, got %d", e.Op, e.What, e.Want, e.Got)
}

func (e *ShapeError) Unwrap() error { return ErrShapeMismatch }

// MismatchError reports the first element at which two results diverge.
type MismatchError struct {
	Index     int
	Want      float32
	Got       float32
	Tolerance float32
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("matvec: element %d: want %v, got %v (tolerance %v)", e.Index, e.Want, e.Got, e.Tolerance)
}

func (e *MismatchError) Unwrap() error { return ErrVerification }

func degenerateError(what string, n int) error {
	return fmt.Errorf("%w: %s %d", ErrDegenerateSize, what, n)
}

func indexError(what string, i, n int) error {
	return fmt.Errorf("%w: %s %d not in [0,%d)", ErrIndexOutOfRange, what, i, n)
}
