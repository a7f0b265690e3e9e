// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

import "math"

// This file provides the pure Go lane operations. Each operation is a fixed
// trip-count loop over the active lanes of a value-typed Vec, which keeps
// them free of allocations and of data-dependent branches.

// Load creates a vector by loading one pack from a slice.
// It reads min(len(src), MaxVecLanes) lanes; callers pass exactly one pack.
func Load[T Floats](src []T) Vec[T] {
	var v Vec[T]
	v.n = copy(v.data[:], src)
	return v
}

// Store writes a vector's data to a slice.
// It writes min(len(dst), v.NumLanes()) lanes.
func Store[T Floats](v Vec[T], dst []T) {
	copy(dst, v.data[:v.n])
}

// Set creates a vector with MaxLanes lanes all set to the same value.
func Set[T Floats](value T) Vec[T] {
	return SetN(value, MaxLanes[T]())
}

// SetN creates a vector with n lanes all set to value.
// n is clamped to [0, MaxVecLanes].
func SetN[T Floats](value T, n int) Vec[T] {
	v := ZeroN[T](n)
	for i := range v.n {
		v.data[i] = value
	}
	return v
}

// Zero creates a vector with MaxLanes lanes set to zero.
func Zero[T Floats]() Vec[T] {
	return ZeroN[T](MaxLanes[T]())
}

// ZeroN creates a vector with n zero lanes.
// n is clamped to [0, MaxVecLanes].
func ZeroN[T Floats](n int) Vec[T] {
	return Vec[T]{n: max(0, min(n, MaxVecLanes))}
}

// Add performs element-wise addition.
func Add[T Floats](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] + b.data[i]
	}
	return r
}

// Sub performs element-wise subtraction.
func Sub[T Floats](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] - b.data[i]
	}
	return r
}

// Mul performs element-wise multiplication.
func Mul[T Floats](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = T(a.data[i] * b.data[i])
	}
	return r
}

// MulAdd computes a*b + c with the product rounded to T before the addition.
//
// The two roundings make MulAdd lane-for-lane identical to the scalar
// expression float32(a*b) + c, which is what a separate multiply and add
// instruction pair produces. Use FMA for a single rounding.
func MulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	r := Vec[T]{n: min(c.n, min(a.n, b.n))}
	for i := range r.n {
		r.data[i] = T(a.data[i]*b.data[i]) + c.data[i]
	}
	return r
}

// FMA performs fused multiply-add: a*b + c with a single rounding.
func FMA[T Floats](a, b, c Vec[T]) Vec[T] {
	r := Vec[T]{n: min(c.n, min(a.n, b.n))}
	for i := range r.n {
		r.data[i] = T(math.FMA(float64(a.data[i]), float64(b.data[i]), float64(c.data[i])))
	}
	return r
}

// ReduceSum sums all lanes in lane order.
func ReduceSum[T Floats](v Vec[T]) T {
	var sum T
	for i := range v.n {
		sum += v.data[i]
	}
	return sum
}
