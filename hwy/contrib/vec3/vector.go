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

package vec3

import (
	"fmt"
	"math"

	"github.com/go-highway/vector3/hwy"
)

// Vector is the set of value operations every backend provides.
//
// V is the concrete vector type and T its element type. None of the methods
// modify the receiver.
type Vector[V any, T hwy.Floats] interface {
	X() T
	Y() T
	Z() T
	XYZ() (x, y, z T)

	Add(o V) V
	Sub(o V) V
	Mul(o V) V
	Div(o V) V
	AddScalar(s T) V
	SubScalar(s T) V
	MulScalar(s T) V
	DivScalar(s T) V
	Neg() V

	Cross(o V) V
	Dot(o V) T
	Length() T
	RLength() T
	Normalize() V

	Equal(o V) bool
	ApproxEqual(o V, tol T) bool
	String() string
	Backend() Backend
}

// Mutable is the set of in-place operations, implemented by the pointer type
// of every backend.
type Mutable[V any, T hwy.Floats] interface {
	*V
	Vector[V, T]

	Set(x, y, z T)
	AddAssign(o V)
	SubAssign(o V)
	MulAssign(o V)
	DivAssign(o V)
	AddScalarAssign(s T)
	SubScalarAssign(s T)
	MulScalarAssign(s T)
	DivScalarAssign(s T)

	// Assign sets all three components to s.
	Assign(s T)

	Insert(x T) Inserter[T]
	Inserter() Inserter[T]

	fmt.Scanner
}

// Backend describes the storage of a vector type.
type Backend struct {
	// Name identifies the backend: "scalar32", "scalar64", "narrow" or "wide".
	Name string

	// ElementBits is the width of one component, 32 or 64.
	ElementBits int

	// RegisterBits is the width of the register holding the vector,
	// 0 for the plain field layout.
	RegisterBits int

	// PaddingLanes is the number of register lanes beyond x, y, z.
	PaddingLanes int

	// RLengthTolerance is the largest relative error of RLength and
	// Normalize. Zero means the result is 1/Length rounded once.
	RLengthTolerance float64
}

// String returns the backend name.
func (b Backend) String() string {
	return b.Name
}

// ScalarMul returns s*v, the scalar on the left.
func ScalarMul[V Vector[V, T], T hwy.Floats](s T, v V) V {
	return v.MulScalar(s)
}

// Distance returns the Euclidean distance between a and b.
func Distance[V Vector[V, T], T hwy.Floats](a, b V) T {
	return a.Sub(b).Length()
}

// Angle returns the angle between a and b in radians, in [0, π].
// It is NaN if either vector has zero length.
func Angle[V Vector[V, T], T hwy.Floats](a, b V) T {
	c := float64(a.Dot(b)) / (float64(a.Length()) * float64(b.Length()))
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return T(math.NaN())
	}
	// Rounding can push the cosine just outside [-1, 1].
	c = max(-1, min(1, c))
	return T(math.Acos(c))
}

// Lerp interpolates linearly between a (t = 0) and b (t = 1).
func Lerp[V Vector[V, T], T hwy.Floats](a, b V, t T) V {
	return a.Add(b.Sub(a).MulScalar(t))
}

// approxEqual reports whether a and b differ by at most tol, either
// absolutely or relative to the larger magnitude.
func approxEqual[T hwy.Floats](a, b, tol T) bool {
	if a == b {
		return true
	}
	d := math.Abs(float64(a) - float64(b))
	if d <= float64(tol) {
		return true
	}
	return d <= float64(tol)*max(math.Abs(float64(a)), math.Abs(float64(b)))
}
