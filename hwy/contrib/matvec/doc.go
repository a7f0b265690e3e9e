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

// Package matvec provides float32 matrix-vector products over a padded,
// column-major (structure-of-arrays) layout built for packed-vector kernels.
//
// # Layouts
//
//   - Matrix is a plain row-major R x C matrix: element (r,c) is data[r*C+c].
//     It is the interchange format and the basis of the reference kernels.
//   - SOAMatrix stores each column as a contiguous run of RowStride packs,
//     RowStride = ceil(R/W), where W is the pack lane count. Element (r,c)
//     lives in pack r/W + c*RowStride at lane r%W. The tail of every column
//     is padded with PaddingValue, so a full pack load never reads past the
//     column or mixes two columns.
//   - Vector stores N logical elements in ceil(N/W) packs, padded the same way.
//
// W defaults to hwy.MaxLanes[float32]() (4 for SSE2/NEON, 8 for AVX2, 16 for
// AVX-512) and can be set per value with WithLanes. A matrix and a vector
// must share W to be multiplied.
//
// # Algorithm
//
// Transform computes result = M * v column by column:
//  1. Load one pack of v (W consecutive columns' scalars).
//  2. Broadcast each of its lanes i across a full pack; lanes whose column
//     index is >= C are padding and are skipped.
//  3. For each of the RowStride packs of that column, result_pack +=
//     column_pack * broadcast.
//
// Each row is summed in increasing column order, exactly like
// ScalarTransform, so the two agree bit for bit. WithFMA switches to a
// single-rounding fused multiply-add, which is close but not bit-identical.
//
// # Example Usage
//
//	import "github.com/ajroetker/soamatvec/hwy/contrib/matvec"
//
//	// 3x4 matrix in row-major order:
//	//   [1 2 3 4]
//	//   [5 6 7 8]
//	//   [9 0 1 2]
//	m := matvec.MatrixFrom(3, 4, []float32{
//	    1, 2, 3, 4,
//	    5, 6, 7, 8,
//	    9, 0, 1, 2,
//	})
//	soa := matvec.BuildLayout(m)
//	v := matvec.VectorFrom([]float32{1, 2, 3, 4})
//
//	result := matvec.Transform(soa, v)
//	// result.Values() = [30, 70, 20]
//
// # Parallel variants
//
// TransformParallel distributes the W broadcast lanes of each input pack over
// a workerpool.Pool. Every task accumulates into a private partial vector and
// partials are merged one at a time under a mutex. The merge order depends on
// scheduling, so the result may differ from Transform in the last bits.
//
// TransformPartitioned splits the row packs instead. Each worker owns a
// disjoint slice of the result and keeps the sequential column order, so it
// is bit-identical to Transform.
//
// # Errors
//
// Shape and index violations are programming errors and panic with an error
// value wrapping ErrShapeMismatch, ErrDegenerateSize or ErrIndexOutOfRange.
// TransformBatch, Compare and Verify report problems as returned errors.
package matvec
