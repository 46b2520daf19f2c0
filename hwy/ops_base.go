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

import (
	"math"

	"github.com/viterin/vek/vek32"
)

// This file provides pure Go (scalar) implementations of the register kernels.
// When the AVX kernels are available (ops_avx.go) they replace these through
// the kernel variables in registers.go. The scalar implementations serve as the
// fallback and are also used when HWY_NO_SIMD is set.

// RSqrtTolerance is the largest relative error F32x4.RSqrt may have, on both
// the hardware estimate (VRSQRTPS, 1.5*2^-12) and the software estimate below.
const RSqrtTolerance = 1.0 / 1024

// smallestNormal32 is the smallest positive normal float32. Hardware
// reciprocal square root estimates treat smaller inputs as zero.
const smallestNormal32 = 0x1p-126

func addF32x4Base(a, b F32x4) F32x4 {
	return F32x4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func subF32x4Base(a, b F32x4) F32x4 {
	return F32x4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

func mulF32x4Base(a, b F32x4) F32x4 {
	return F32x4{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

func divF32x4Base(a, b F32x4) F32x4 {
	return F32x4{a[0] / b[0], a[1] / b[1], a[2] / b[2], a[3] / b[3]}
}

func sqrtF32x4Base(a F32x4) F32x4 {
	var r F32x4
	for i := range r {
		r[i] = float32(math.Sqrt(float64(a[i])))
	}
	return r
}

func rsqrtF32x4Base(a F32x4) F32x4 {
	var r F32x4
	for i := range r {
		r[i] = rsqrtEstimate32(a[i])
	}
	return r
}

// rsqrtEstimate32 approximates 1/sqrt(x) the way a hardware estimate does:
// a bit-level initial guess refined with two Newton-Raphson steps.
// Formula: y = y * (1.5 - 0.5 * x * y * y)
func rsqrtEstimate32(x float32) float32 {
	switch {
	case x != x || x < 0:
		return float32(math.NaN())
	case x < smallestNormal32:
		// Zero and subnormals, keeping the sign of zero.
		if math.Signbit(float64(x)) {
			return float32(math.Inf(-1))
		}
		return float32(math.Inf(1))
	case math.IsInf(float64(x), 1):
		return 0
	}
	y := math.Float32frombits(0x5f375a86 - math.Float32bits(x)>>1)
	half := 0.5 * x
	y = y * (1.5 - half*y*y)
	y = y * (1.5 - half*y*y)
	return y
}

// dotMaskedF32x4 gathers the lanes selected by the high nibble of imm and
// hands them to vek32, which has its own accelerated dot product for the
// platforms where no AVX kernel is compiled in.
func dotMaskedF32x4(a, b F32x4, imm uint8) F32x4 {
	var xs, ys [4]float32
	n := 0
	for i := range 4 {
		if imm&(0x10<<i) != 0 {
			xs[n], ys[n] = a[i], b[i]
			n++
		}
	}
	var sum float32
	if n > 0 {
		sum = vek32.Dot(xs[:n], ys[:n])
	}
	var r F32x4
	for i := range 4 {
		if imm&(1<<i) != 0 {
			r[i] = sum
		}
	}
	return r
}

func addF64x4Base(a, b F64x4) F64x4 {
	return F64x4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func subF64x4Base(a, b F64x4) F64x4 {
	return F64x4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

func mulF64x4Base(a, b F64x4) F64x4 {
	return F64x4{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

func divF64x4Base(a, b F64x4) F64x4 {
	return F64x4{a[0] / b[0], a[1] / b[1], a[2] / b[2], a[3] / b[3]}
}

func sqrtF64x4Base(a F64x4) F64x4 {
	return F64x4{math.Sqrt(a[0]), math.Sqrt(a[1]), math.Sqrt(a[2]), math.Sqrt(a[3])}
}
