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

//go:build amd64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	switch {
	case cpu.X86.HasAVX512F:
		selectLevel(DispatchAVX512)
	case cpu.X86.HasAVX2:
		selectLevel(DispatchAVX2)
	default:
		selectLevel(DispatchSSE2)
	}
}

// HasFMA reports hardware fused multiply-add (FMA3). Go lowers math.FMA to
// VFMADD when it is present and to a software sequence otherwise.
func HasFMA() bool {
	return cpu.X86.HasFMA
}
