// Package hwy provides the fixed-width SIMD registers used by the vec3 backends.
//
// It follows the Highway C++ library's design philosophy: one portable API,
// with the body of each operation picked at build and run time. Every
// register operation has a pure Go kernel; when the module is built with
// GOEXPERIMENT=simd on amd64, AVX kernels from simd/archsimd replace them.
//
// Basic usage:
//
//	import "github.com/go-highway/vector3/hwy"
//
//	a := hwy.LoadF32x4([]float32{1, 2, 3, 0})
//	b := hwy.BroadcastF32x4(2)
//	sum := a.Add(b)
//	dot := a.DotMasked(a, 0x71).GetLane(0)
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}
