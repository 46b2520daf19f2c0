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

// F32x4 is a 128-bit register of four float32 lanes.
//
// It is a plain array: it is copied by value and no operation on it
// allocates. Lane 0 is the lowest lane, matching the memory order used by
// LoadF32x4.
type F32x4 [4]float32

// F64x4 is a 256-bit register of four float64 lanes.
type F64x4 [4]float64

// F64x2 is one 128-bit half of an F64x4.
type F64x2 [2]float64

// Kernels for the arithmetic operations. They start out as the pure Go
// versions in ops_base.go and are replaced by init() in ops_avx.go when the
// AVX kernels are compiled in and usable.
var (
	addF32x4   = addF32x4Base
	subF32x4   = subF32x4Base
	mulF32x4   = mulF32x4Base
	divF32x4   = divF32x4Base
	sqrtF32x4  = sqrtF32x4Base
	rsqrtF32x4 = rsqrtF32x4Base

	addF64x4  = addF64x4Base
	subF64x4  = subF64x4Base
	mulF64x4  = mulF64x4Base
	divF64x4  = divF64x4Base
	sqrtF64x4 = sqrtF64x4Base
)

// ===== F32x4 =====

// LoadF32x4 creates a register from the first four elements of src.
// Missing elements are zero.
func LoadF32x4(src []float32) F32x4 {
	var v F32x4
	copy(v[:], src)
	return v
}

// BroadcastF32x4 creates a register with all lanes set to x.
func BroadcastF32x4(x float32) F32x4 {
	return F32x4{x, x, x, x}
}

// Tag returns the size tag of the register.
func (F32x4) Tag() FixedTag128[float32] {
	return FixedTag128[float32]{}
}

// NumLanes returns the lane count declared by the register's tag.
func (v F32x4) NumLanes() int {
	return v.Tag().MaxLanes()
}

// GetLane extracts a single lane value.
// Returns zero if the index is out of bounds.
func (v F32x4) GetLane(i int) float32 {
	if i < 0 || i >= 4 {
		return 0
	}
	return v[i]
}

// InsertLane returns a copy of v with x in lane i.
// Returns v unchanged if the index is out of bounds.
func (v F32x4) InsertLane(i int, x float32) F32x4 {
	if i < 0 || i >= 4 {
		return v
	}
	v[i] = x
	return v
}

// Add performs element-wise addition.
func (v F32x4) Add(o F32x4) F32x4 {
	return addF32x4(v, o)
}

// Sub performs element-wise subtraction.
func (v F32x4) Sub(o F32x4) F32x4 {
	return subF32x4(v, o)
}

// Mul performs element-wise multiplication.
func (v F32x4) Mul(o F32x4) F32x4 {
	return mulF32x4(v, o)
}

// Div performs element-wise division on all four lanes.
// A zero divisor in any lane yields ±Inf or NaN in that lane.
func (v F32x4) Div(o F32x4) F32x4 {
	return divF32x4(v, o)
}

// Neg negates all lanes.
func (v F32x4) Neg() F32x4 {
	return F32x4{-v[0], -v[1], -v[2], -v[3]}
}

// Sqrt computes the square root of every lane.
func (v F32x4) Sqrt() F32x4 {
	return sqrtF32x4(v)
}

// RSqrt computes an approximate 1/sqrt(x) of every lane.
//
// The relative error is at most RSqrtTolerance. Special cases:
//   - RSqrt(±0) = ±Inf
//   - RSqrt(+Inf) = 0
//   - RSqrt(x < 0) = NaN
//   - RSqrt(NaN) = NaN
func (v F32x4) RSqrt() F32x4 {
	return rsqrtF32x4(v)
}

// DotMasked computes a masked dot product with DPPS semantics.
//
// The high nibble of imm selects the lanes whose products are summed; the low
// nibble selects the lanes that receive the sum, all other lanes are zero.
// Lanes outside the high nibble never reach the sum, whatever they contain.
//
//	a.DotMasked(b, 0x71) // lane 0 = a0*b0 + a1*b1 + a2*b2
func (v F32x4) DotMasked(o F32x4, imm uint8) F32x4 {
	return dotMaskedF32x4(v, o, imm)
}

// ===== F64x4 =====

// LoadF64x4 creates a register from the first four elements of src.
// Missing elements are zero.
func LoadF64x4(src []float64) F64x4 {
	var v F64x4
	copy(v[:], src)
	return v
}

// BroadcastF64x4 creates a register with all lanes set to x.
func BroadcastF64x4(x float64) F64x4 {
	return F64x4{x, x, x, x}
}

// Tag returns the size tag of the register.
func (F64x4) Tag() FixedTag256[float64] {
	return FixedTag256[float64]{}
}

// NumLanes returns the lane count declared by the register's tag.
func (v F64x4) NumLanes() int {
	return v.Tag().MaxLanes()
}

// GetLane extracts a single lane value.
// Returns zero if the index is out of bounds.
func (v F64x4) GetLane(i int) float64 {
	if i < 0 || i >= 4 {
		return 0
	}
	return v[i]
}

// InsertLane returns a copy of v with x in lane i.
// Returns v unchanged if the index is out of bounds.
func (v F64x4) InsertLane(i int, x float64) F64x4 {
	if i < 0 || i >= 4 {
		return v
	}
	v[i] = x
	return v
}

// Add performs element-wise addition.
func (v F64x4) Add(o F64x4) F64x4 {
	return addF64x4(v, o)
}

// Sub performs element-wise subtraction.
func (v F64x4) Sub(o F64x4) F64x4 {
	return subF64x4(v, o)
}

// Mul performs element-wise multiplication.
func (v F64x4) Mul(o F64x4) F64x4 {
	return mulF64x4(v, o)
}

// Div performs element-wise division on all four lanes.
// There is no masked form: every lane of o is used as a divisor.
func (v F64x4) Div(o F64x4) F64x4 {
	return divF64x4(v, o)
}

// Neg negates all lanes.
func (v F64x4) Neg() F64x4 {
	return F64x4{-v[0], -v[1], -v[2], -v[3]}
}

// Sqrt computes the square root of every lane.
func (v F64x4) Sqrt() F64x4 {
	return sqrtF64x4(v)
}

// GetLo returns lanes 0 and 1.
func (v F64x4) GetLo() F64x2 {
	return F64x2{v[0], v[1]}
}

// GetHi returns lanes 2 and 3.
func (v F64x4) GetHi() F64x2 {
	return F64x2{v[2], v[3]}
}

// AddPairs adds adjacent lanes within each 128-bit half (HADDPD semantics).
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a0+a1, b0+b1, a2+a3, b2+b3]
func (v F64x4) AddPairs(o F64x4) F64x4 {
	return F64x4{v[0] + v[1], o[0] + o[1], v[2] + v[3], o[2] + o[3]}
}

// ===== F64x2 =====

// GetLane extracts a single lane value.
// Returns zero if the index is out of bounds.
func (v F64x2) GetLane(i int) float64 {
	if i < 0 || i >= 2 {
		return 0
	}
	return v[i]
}

// Add performs element-wise addition.
func (v F64x2) Add(o F64x2) F64x2 {
	return F64x2{v[0] + o[0], v[1] + o[1]}
}
