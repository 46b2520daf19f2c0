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
	"io"

	"github.com/go-highway/vector3/hwy"
)

// NarrowRLengthTolerance is the largest relative error of Narrow.RLength and
// Narrow.Normalize.
const NarrowRLengthTolerance = hwy.RSqrtTolerance

// Lane permutations for the cross product.
var (
	rotate1 = hwy.Shuffle(3, 0, 2, 1) // [y, z, x, p]
	rotate2 = hwy.Shuffle(3, 1, 0, 2) // [z, x, y, p]
)

// DPPS immediates.
const (
	dotXYZToLane0 = 0x71 // sum lanes 0-2 into lane 0
	dotXYZToAll   = 0x7F // sum lanes 0-2 into every lane
)

// Narrow is a float32 vector held in one 128-bit register. Lane 3 is padding
// and always zero. The zero value is (0, 0, 0).
type Narrow struct {
	reg hwy.F32x4
}

// NewNarrow returns the vector (x, y, z).
func NewNarrow(x, y, z float32) Narrow {
	return Narrow{hwy.LoadF32x4([]float32{x, y, z})}
}

// NarrowFromRegister wraps r, clearing its padding lane.
func NarrowFromRegister(r hwy.F32x4) Narrow {
	return Narrow{r.InsertLane(3, 0)}
}

// ParseNarrow parses "x y z" text. Anything after the third number is ignored.
func ParseNarrow(s string) (Narrow, error) {
	return parseInto[Narrow](s)
}

// Register returns the underlying register. Its padding lane is zero.
func (v Narrow) Register() hwy.F32x4 {
	return v.reg
}

// Backend describes the 128-bit register layout.
func (v Narrow) Backend() Backend {
	return Backend{
		Name:             narrowID.String(),
		ElementBits:      32,
		RegisterBits:     v.reg.Tag().Width() * 8,
		PaddingLanes:     v.reg.NumLanes() - 3,
		RLengthTolerance: NarrowRLengthTolerance,
	}
}

func (v Narrow) X() float32 { return v.reg.GetLane(0) }
func (v Narrow) Y() float32 { return v.reg.GetLane(1) }
func (v Narrow) Z() float32 { return v.reg.GetLane(2) }

func (v Narrow) XYZ() (x, y, z float32) {
	return v.reg[0], v.reg[1], v.reg[2]
}

// splat3 broadcasts s to x, y, z with pad in lane 3.
func splat3(s, pad float32) hwy.F32x4 {
	return hwy.BroadcastF32x4(s).InsertLane(3, pad)
}

func (v Narrow) Add(o Narrow) Narrow {
	return Narrow{v.reg.Add(o.reg)}
}

func (v Narrow) Sub(o Narrow) Narrow {
	return Narrow{v.reg.Sub(o.reg)}
}

// Mul multiplies component-wise.
func (v Narrow) Mul(o Narrow) Narrow {
	return Narrow{v.reg.Mul(o.reg)}
}

// Div divides component-wise. The divisor's padding lane is replaced by 1, so
// only a zero x, y or z of o produces ±Inf or NaN.
func (v Narrow) Div(o Narrow) Narrow {
	return Narrow{v.reg.Div(o.reg.InsertLane(3, 1))}
}

func (v Narrow) AddScalar(s float32) Narrow {
	return Narrow{v.reg.Add(splat3(s, 0))}
}

func (v Narrow) SubScalar(s float32) Narrow {
	return Narrow{v.reg.Sub(splat3(s, 0))}
}

func (v Narrow) MulScalar(s float32) Narrow {
	return Narrow{v.reg.Mul(splat3(s, 0))}
}

func (v Narrow) DivScalar(s float32) Narrow {
	return Narrow{v.reg.Div(splat3(s, 1))}
}

func (v Narrow) Neg() Narrow {
	// -0 in the padding lane would compare equal but print differently.
	return Narrow{v.reg.Neg().InsertLane(3, 0)}
}

// Cross returns the cross product v × o.
func (v Narrow) Cross(o Narrow) Narrow {
	a := v.reg.Permute(rotate1).Mul(o.reg.Permute(rotate2))
	b := v.reg.Permute(rotate2).Mul(o.reg.Permute(rotate1))
	return Narrow{a.Sub(b)}
}

// Dot returns x*o.x + y*o.y + z*o.z. The padding lanes take no part.
func (v Narrow) Dot(o Narrow) float32 {
	return v.reg.DotMasked(o.reg, dotXYZToLane0).GetLane(0)
}

func (v Narrow) Length() float32 {
	return v.reg.DotMasked(v.reg, dotXYZToLane0).Sqrt().GetLane(0)
}

// RLength returns an estimate of 1/Length within NarrowRLengthTolerance.
// It is +Inf for the zero vector.
func (v Narrow) RLength() float32 {
	return v.reg.DotMasked(v.reg, dotXYZToLane0).RSqrt().GetLane(0)
}

// Normalize returns v scaled by RLength. The zero vector yields NaN
// components.
func (v Narrow) Normalize() Narrow {
	r := v.reg.DotMasked(v.reg, dotXYZToAll).RSqrt().InsertLane(3, 0)
	return Narrow{v.reg.Mul(r)}
}

// Equal compares x, y and z exactly.
func (v Narrow) Equal(o Narrow) bool {
	return v.reg[0] == o.reg[0] && v.reg[1] == o.reg[1] && v.reg[2] == o.reg[2]
}

// ApproxEqual reports whether every component is within tol of o's, either
// absolutely or relatively.
func (v Narrow) ApproxEqual(o Narrow, tol float32) bool {
	for i := range 3 {
		if !approxEqual(v.reg[i], o.reg[i], tol) {
			return false
		}
	}
	return true
}

// String returns "x y z ".
func (v Narrow) String() string {
	return formatTriple(v.XYZ())
}

// WriteTo writes the String form of v to w.
func (v Narrow) WriteTo(w io.Writer) (int64, error) {
	x, y, z := v.XYZ()
	return writeTriple(w, x, y, z)
}

func (v *Narrow) Set(x, y, z float32) {
	*v = NewNarrow(x, y, z)
}

func (v *Narrow) AddAssign(o Narrow)        { *v = v.Add(o) }
func (v *Narrow) SubAssign(o Narrow)        { *v = v.Sub(o) }
func (v *Narrow) MulAssign(o Narrow)        { *v = v.Mul(o) }
func (v *Narrow) DivAssign(o Narrow)        { *v = v.Div(o) }
func (v *Narrow) AddScalarAssign(s float32) { *v = v.AddScalar(s) }
func (v *Narrow) SubScalarAssign(s float32) { *v = v.SubScalar(s) }
func (v *Narrow) MulScalarAssign(s float32) { *v = v.MulScalar(s) }
func (v *Narrow) DivScalarAssign(s float32) { *v = v.DivScalar(s) }

// Assign sets all three components to s.
func (v *Narrow) Assign(s float32) {
	v.reg = splat3(s, 0)
}

// Insert writes x and returns an Inserter armed for y and z.
func (v *Narrow) Insert(x float32) Inserter[float32] {
	return v.Inserter().arm(x)
}

// Inserter returns an inert Inserter bound to v.
func (v *Narrow) Inserter() Inserter[float32] {
	return newInserter(narrowID, &v.reg[0], &v.reg[1], &v.reg[2])
}

// Scan implements fmt.Scanner. On error v is unchanged.
func (v *Narrow) Scan(state fmt.ScanState, _ rune) error {
	x, y, z, err := scanTriple[float32](state)
	if err != nil {
		return err
	}
	v.Set(x, y, z)
	return nil
}
