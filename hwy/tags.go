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

import "unsafe"

// Tag represents a vector size tag that determines how many lanes
// are used in SIMD operations. The register types declare their tag, which
// doubles as their alignment requirement in bytes.
type Tag interface {
	// Width returns the width in bytes (16 for 128-bit, 32 for 256-bit, etc.)
	Width() int

	// Name returns a human-readable name for this tag ("sse2", "avx2", etc.)
	Name() string
}

// FixedTag128 describes a 128-bit register (SSE, NEON).
// F32x4 is declared with this tag.
type FixedTag128[T Floats] struct{}

// Width returns 16 bytes (128 bits).
func (FixedTag128[T]) Width() int {
	return 16
}

// Name returns "128bit".
func (FixedTag128[T]) Name() string {
	return "128bit"
}

// MaxLanes returns the number of T values that fit in 128 bits.
func (t FixedTag128[T]) MaxLanes() int {
	var dummy T
	return 16 / int(unsafe.Sizeof(dummy))
}

// FixedTag256 describes a 256-bit register (AVX).
// F64x4 is declared with this tag.
type FixedTag256[T Floats] struct{}

// Width returns 32 bytes (256 bits).
func (FixedTag256[T]) Width() int {
	return 32
}

// Name returns "256bit".
func (FixedTag256[T]) Name() string {
	return "256bit"
}

// MaxLanes returns the number of T values that fit in 256 bits.
func (t FixedTag256[T]) MaxLanes() int {
	var dummy T
	return 32 / int(unsafe.Sizeof(dummy))
}
