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

//go:build amd64 && !goexperiment.simd

package hwy

// Fallback for when GOEXPERIMENT=simd is not enabled.
// Without archsimd there are no AVX kernels, so the level only reports the
// x86-64 baseline. Build with GOEXPERIMENT=simd for AVX2/AVX-512 detection.

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	currentLevel = DispatchSSE2
	currentWidth = 16
	currentName = "sse2"
}

// HasAVX reports whether the AVX register kernels are compiled in and usable.
// Always false without GOEXPERIMENT=simd.
func HasAVX() bool {
	return false
}

// HasSVE returns false on non-ARM64 platforms (SVE is ARM-specific).
func HasSVE() bool {
	return false
}
