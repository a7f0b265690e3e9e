// Package hwy provides a portable packed-vector abstraction with runtime
// register-width dispatch.
//
// A Vec holds one register's worth of floating-point lanes. Code written
// against Vec (Load, Broadcast, MulAdd, Store, ...) never names a register
// width: the lane count is a runtime constant picked from the detected CPU
// (see CurrentWidth and MaxLanes), so the same kernel runs with 4, 8 or 16
// float32 lanes.
//
// Basic usage:
//
//	import "github.com/ajroetker/soamatvec/hwy"
//
//	// Load one pack from each slice
//	a := hwy.Load(data1)
//	b := hwy.Load(data2)
//
//	// Multiply-accumulate: acc += a * b
//	acc = hwy.MulAdd(a, b, acc)
//
//	// Store results
//	hwy.Store(acc, output)
package hwy

// MaxVecLanes is the lane capacity of a Vec. It covers a 512-bit register of
// float32 values, the widest target the dispatcher selects.
const MaxVecLanes = 16

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// Vec is a packed vector of n lanes of type T.
//
// Vec is a value type: copying it copies the lanes, and no operation ever
// allocates. The active lane count is fixed when the vector is created
// (by Load, SetN or ZeroN) and carried through every operation.
//
// Vec instances should not be created directly; use Load, Set, or Zero instead.
type Vec[T Floats] struct {
	data [MaxVecLanes]T
	n    int
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return v.n
}

// Data returns a copy of the active lanes.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	out := make([]T, v.n)
	copy(out, v.data[:v.n])
	return out
}

// Store writes the vector's data to a slice.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	Store(v, dst)
}
