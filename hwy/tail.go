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

// PadSize returns the number of lanes-wide packs needed to hold n elements,
// i.e. ceil(n / lanes) in exact integer arithmetic.
//
// Example:
//
//	hwy.PadSize(75, 8) // 10
//	hwy.PadSize(8, 8)  // 1
//	hwy.PadSize(1, 8)  // 1
//
// Panics if n <= 0 or lanes <= 0.
func PadSize(n, lanes int) int {
	if n <= 0 {
		panic("hwy: PadSize of non-positive size")
	}
	if lanes <= 0 {
		panic("hwy: PadSize with non-positive lane count")
	}
	return (n-1)/lanes + 1
}
