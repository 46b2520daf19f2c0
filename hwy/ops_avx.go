//go:build amd64 && goexperiment.simd

package hwy

import (
	"simd/archsimd"
)

// This file provides AVX implementations of the register kernels. They work
// directly with archsimd vector types and use the store/load pattern to move
// between the array registers and the hardware registers.
//
// The 128-bit F32x4 and 256-bit F64x4 float kernels are VEX encoded and need
// AVX only, so they are enabled whenever HasAVX reports true.

func init() {
	if !HasAVX() {
		return
	}
	addF32x4 = Add_AVX_F32x4
	subF32x4 = Sub_AVX_F32x4
	mulF32x4 = Mul_AVX_F32x4
	divF32x4 = Div_AVX_F32x4
	sqrtF32x4 = Sqrt_AVX_F32x4
	rsqrtF32x4 = RSqrt_AVX_F32x4

	addF64x4 = Add_AVX_F64x4
	subF64x4 = Sub_AVX_F64x4
	mulF64x4 = Mul_AVX_F64x4
	divF64x4 = Div_AVX_F64x4
	sqrtF64x4 = Sqrt_AVX_F64x4
}

func loadF32x4AVX(v F32x4) archsimd.Float32x4 {
	return archsimd.LoadFloat32x4Slice(v[:])
}

func storeF32x4AVX(v archsimd.Float32x4) F32x4 {
	var r F32x4
	v.StoreSlice(r[:])
	return r
}

func loadF64x4AVX(v F64x4) archsimd.Float64x4 {
	return archsimd.LoadFloat64x4Slice(v[:])
}

func storeF64x4AVX(v archsimd.Float64x4) F64x4 {
	var r F64x4
	v.StoreSlice(r[:])
	return r
}

// Add_AVX_F32x4 performs element-wise addition using VADDPS.
func Add_AVX_F32x4(a, b F32x4) F32x4 {
	return storeF32x4AVX(loadF32x4AVX(a).Add(loadF32x4AVX(b)))
}

// Sub_AVX_F32x4 performs element-wise subtraction using VSUBPS.
func Sub_AVX_F32x4(a, b F32x4) F32x4 {
	return storeF32x4AVX(loadF32x4AVX(a).Sub(loadF32x4AVX(b)))
}

// Mul_AVX_F32x4 performs element-wise multiplication using VMULPS.
func Mul_AVX_F32x4(a, b F32x4) F32x4 {
	return storeF32x4AVX(loadF32x4AVX(a).Mul(loadF32x4AVX(b)))
}

// Div_AVX_F32x4 performs element-wise division using VDIVPS.
func Div_AVX_F32x4(a, b F32x4) F32x4 {
	return storeF32x4AVX(loadF32x4AVX(a).Div(loadF32x4AVX(b)))
}

// Sqrt_AVX_F32x4 computes sqrt(x) using the hardware VSQRTPS instruction,
// which provides correctly rounded results.
func Sqrt_AVX_F32x4(a F32x4) F32x4 {
	return storeF32x4AVX(loadF32x4AVX(a).Sqrt())
}

// RSqrt_AVX_F32x4 computes the VRSQRTPS estimate of 1/sqrt(x).
// Relative error is at most 1.5*2^-12, inside RSqrtTolerance.
func RSqrt_AVX_F32x4(a F32x4) F32x4 {
	return storeF32x4AVX(loadF32x4AVX(a).ReciprocalSqrt())
}

// Add_AVX_F64x4 performs element-wise addition using VADDPD.
func Add_AVX_F64x4(a, b F64x4) F64x4 {
	return storeF64x4AVX(loadF64x4AVX(a).Add(loadF64x4AVX(b)))
}

// Sub_AVX_F64x4 performs element-wise subtraction using VSUBPD.
func Sub_AVX_F64x4(a, b F64x4) F64x4 {
	return storeF64x4AVX(loadF64x4AVX(a).Sub(loadF64x4AVX(b)))
}

// Mul_AVX_F64x4 performs element-wise multiplication using VMULPD.
func Mul_AVX_F64x4(a, b F64x4) F64x4 {
	return storeF64x4AVX(loadF64x4AVX(a).Mul(loadF64x4AVX(b)))
}

// Div_AVX_F64x4 performs element-wise division using VDIVPD.
func Div_AVX_F64x4(a, b F64x4) F64x4 {
	return storeF64x4AVX(loadF64x4AVX(a).Div(loadF64x4AVX(b)))
}

// Sqrt_AVX_F64x4 computes sqrt(x) using the hardware VSQRTPD instruction,
// which provides correctly rounded results.
func Sqrt_AVX_F64x4(a F64x4) F64x4 {
	return storeF64x4AVX(loadF64x4AVX(a).Sqrt())
}
