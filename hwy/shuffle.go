package hwy

// This file provides shuffle and permutation operations for the registers.
// archsimd has no immediate-controlled permute for these shapes, so both the
// scalar and the AVX builds use this store/scalar/load form.

// Shuffle builds a permute immediate from four source lane indices, listed
// from the highest destination lane to the lowest, like the C _MM_SHUFFLE
// macro. Each index is taken modulo 4.
//
//	Shuffle(3, 0, 2, 1) // [v1, v2, v0, v3]
func Shuffle(d, c, b, a uint8) uint8 {
	return (d&3)<<6 | (c&3)<<4 | (b&3)<<2 | a&3
}

// Permute reorders lanes: lane i of the result is lane (imm >> 2i) & 3 of v.
// [v0,v1,v2,v3] with Shuffle(3, 0, 2, 1) -> [v1,v2,v0,v3]
func (v F32x4) Permute(imm uint8) F32x4 {
	return F32x4{v[imm&3], v[(imm>>2)&3], v[(imm>>4)&3], v[(imm>>6)&3]}
}

// Permute reorders lanes across the full 256-bit register (VPERMPD
// semantics): lane i of the result is lane (imm >> 2i) & 3 of v.
func (v F64x4) Permute(imm uint8) F64x4 {
	return F64x4{v[imm&3], v[(imm>>2)&3], v[(imm>>4)&3], v[(imm>>6)&3]}
}
