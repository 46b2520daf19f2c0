//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	// Check for HWY_NO_SIMD environment variable first
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) available.
	// It's part of the ARMv8-A base architecture.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
		currentWidth = 16 // NEON is 128-bit (16 bytes)
		currentName = "neon"
	} else {
		// Fallback to scalar (should never happen on ARMv8+)
		setScalarMode()
	}

	// SVE is reported but not dispatched to: the vec3 registers are at most
	// 256 bits and NEON already covers the 128-bit half.
}

// HasAVX returns false on non-x86 platforms (AVX is x86-specific).
func HasAVX() bool {
	return false
}

// HasSVE reports whether the CPU implements the Scalable Vector Extension.
func HasSVE() bool {
	return cpu.ARM64.HasSVE
}
