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

// Package vec3 provides a three-component spatial vector in three
// interchangeable backends.
//
// # Backends
//
//   - Scalar[T] - plain x, y, z fields of float32 or float64. The reference
//     semantics every other backend is measured against.
//   - Narrow - float32 lanes packed into one 128-bit hwy.F32x4 register.
//   - Wide - float64 lanes packed into one 256-bit hwy.F64x4 register.
//
// All three implement Vector (value operations) and, through their pointer
// types, Mutable (assignment operations), so code written against those
// interfaces runs on any backend.
//
// # Padding Lane
//
// Narrow and Wide hold x, y, z in lanes 0-2 and carry a fourth padding lane.
// The padding lane is never observable: accessors, Dot, Length, String and
// Equal ignore it, and every public operation leaves it at zero. Divisions
// set the divisor's padding lane to 1 before dividing, and scalar operands are
// broadcast with a neutral padding value, so the full-register instructions
// never produce Inf or NaN there. A zero in x, y or z is not masked: it
// propagates ±Inf or NaN exactly as IEEE 754 prescribes.
//
// # Precision
//
// RLength and Normalize are exact (1/Length) on Scalar and Wide. Narrow uses
// the reciprocal square root estimate of hwy.F32x4.RSqrt, whose relative error
// is bounded by NarrowRLengthTolerance. Backend.RLengthTolerance reports the
// bound of each backend.
//
// # Chained Insertion
//
// Insert and Inserter.Then fill a vector one component at a time:
//
//	var v vec3.Wide
//	err := v.Insert(1).Then(2).Then(3).Done() // v == (1, 2, 3)
//
// Then returns the advanced chain, so its result must be used; Done ends the
// chain. A chain holds only pointers into the vector and does not allocate.
// Continuing a chain that was never armed, or passing more than three values,
// leaves the vector unchanged, logs the misuse to the diagnostic logger
// (see SetLogger) and is reported by Done. An Inserter is not safe for
// concurrent use; callers must serialize chained insertion on one vector.
//
// # Text Format
//
// String and WriteTo write "x y z " (note the trailing space) using the
// shortest representation that round-trips the element type. Scan and the
// Parse functions read three whitespace-separated numbers and ignore the rest.
//
// # Build Selection
//
// Vec, Real, New and Parse name the backend chosen for the build:
//
//	default                       Vec = Wide            Real = float64
//	-tags vec3_float32            Vec = Narrow          Real = float32
//	-tags vec3_scalar             Vec = Scalar[float64] Real = float64
//	-tags vec3_scalar,vec3_float32 Vec = Scalar[float32] Real = float32
//
// # Build Requirements
//
// The register kernels use AVX through simd/archsimd when built with:
//   - GOEXPERIMENT=simd build flag
//   - AMD64 architecture with AVX support
//
// Everywhere else, or when HWY_NO_SIMD is set, the pure Go kernels are used.
// Results are the same either way, except for the RSqrt estimate which stays
// within its documented tolerance.
package vec3
