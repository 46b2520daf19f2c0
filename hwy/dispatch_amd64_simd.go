//go:build amd64 && goexperiment.simd

package hwy

import "simd/archsimd"

func init() {
	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	detectCPUFeatures()
}

func detectCPUFeatures() {
	// Use actual CPU detection from archsimd package
	if archsimd.X86.AVX512() {
		currentLevel = DispatchAVX512
		currentWidth = 64
		currentName = "avx512"
	} else if archsimd.X86.AVX2() {
		currentLevel = DispatchAVX2
		currentWidth = 32
		currentName = "avx2"
	} else {
		// SSE2 is baseline for amd64
		currentLevel = DispatchSSE2
		currentWidth = 16
		currentName = "sse2"
	}
}

// HasAVX reports whether the AVX register kernels are compiled in and usable.
// The 128-bit and 256-bit float kernels are VEX encoded and need AVX only.
func HasAVX() bool {
	return !NoSimdEnv() && archsimd.X86.AVX()
}

// HasSVE returns false on non-ARM64 platforms (SVE is ARM-specific).
func HasSVE() bool {
	return false
}
