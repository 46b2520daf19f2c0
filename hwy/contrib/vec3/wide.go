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
	"math"

	"github.com/go-highway/vector3/hwy"
)

// Wide is a float64 vector held in one 256-bit register. Lane 3 is padding
// and always zero. The zero value is (0, 0, 0).
type Wide struct {
	reg hwy.F64x4
}

// NewWide returns the vector (x, y, z).
func NewWide(x, y, z float64) Wide {
	return Wide{hwy.LoadF64x4([]float64{x, y, z})}
}

// WideFromRegister wraps r, clearing its padding lane.
func WideFromRegister(r hwy.F64x4) Wide {
	return Wide{r.InsertLane(3, 0)}
}

// ParseWide parses "x y z" text. Anything after the third number is ignored.
func ParseWide(s string) (Wide, error) {
	return parseInto[Wide](s)
}

// Register returns the underlying register. Its padding lane is zero.
func (v Wide) Register() hwy.F64x4 {
	return v.reg
}

// Backend describes the 256-bit register layout.
func (v Wide) Backend() Backend {
	return Backend{
		Name:         wideID.String(),
		ElementBits:  64,
		RegisterBits: v.reg.Tag().Width() * 8,
		PaddingLanes: v.reg.NumLanes() - 3,
	}
}

func (v Wide) X() float64 { return v.reg.GetLane(0) }
func (v Wide) Y() float64 { return v.reg.GetLane(1) }
func (v Wide) Z() float64 { return v.reg.GetLane(2) }

func (v Wide) XYZ() (x, y, z float64) {
	return v.reg[0], v.reg[1], v.reg[2]
}

func splat3Wide(s, pad float64) hwy.F64x4 {
	return hwy.BroadcastF64x4(s).InsertLane(3, pad)
}

func (v Wide) Add(o Wide) Wide {
	return Wide{v.reg.Add(o.reg)}
}

func (v Wide) Sub(o Wide) Wide {
	return Wide{v.reg.Sub(o.reg)}
}

// Mul multiplies component-wise.
func (v Wide) Mul(o Wide) Wide {
	return Wide{v.reg.Mul(o.reg)}
}

// Div divides component-wise. The divisor's padding lane is replaced by 1.
func (v Wide) Div(o Wide) Wide {
	return Wide{v.reg.Div(o.reg.InsertLane(3, 1))}
}

func (v Wide) AddScalar(s float64) Wide {
	return Wide{v.reg.Add(splat3Wide(s, 0))}
}

func (v Wide) SubScalar(s float64) Wide {
	return Wide{v.reg.Sub(splat3Wide(s, 0))}
}

func (v Wide) MulScalar(s float64) Wide {
	return Wide{v.reg.Mul(splat3Wide(s, 0))}
}

func (v Wide) DivScalar(s float64) Wide {
	return Wide{v.reg.Div(splat3Wide(s, 1))}
}

func (v Wide) Neg() Wide {
	return Wide{v.reg.Neg().InsertLane(3, 0)}
}

// Cross returns the cross product v × o.
func (v Wide) Cross(o Wide) Wide {
	a := v.reg.Permute(rotate1).Mul(o.reg.Permute(rotate2))
	b := v.reg.Permute(rotate2).Mul(o.reg.Permute(rotate1))
	return Wide{a.Sub(b)}
}

// Dot returns x*o.x + y*o.y + z*o.z, summed as (x + y) + z.
func (v Wide) Dot(o Wide) float64 {
	p := v.reg.Mul(o.reg)
	// [x+y, x+y, z+p, z+p]; the padding product p is zero.
	h := p.AddPairs(p)
	return h.GetLo().Add(h.GetHi()).GetLane(0)
}

func (v Wide) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// RLength returns 1/Length exactly. It is +Inf for the zero vector.
func (v Wide) RLength() float64 {
	return 1 / v.Length()
}

// Normalize returns v scaled by RLength. The zero vector yields NaN
// components.
func (v Wide) Normalize() Wide {
	return Wide{v.reg.Mul(splat3Wide(v.RLength(), 0))}
}

// Equal compares x, y and z exactly.
func (v Wide) Equal(o Wide) bool {
	return v.reg[0] == o.reg[0] && v.reg[1] == o.reg[1] && v.reg[2] == o.reg[2]
}

// ApproxEqual reports whether every component is within tol of o's, either
// absolutely or relatively.
func (v Wide) ApproxEqual(o Wide, tol float64) bool {
	for i := range 3 {
		if !approxEqual(v.reg[i], o.reg[i], tol) {
			return false
		}
	}
	return true
}

// String returns "x y z ".
func (v Wide) String() string {
	return formatTriple(v.XYZ())
}

// WriteTo writes the String form of v to w.
func (v Wide) WriteTo(w io.Writer) (int64, error) {
	x, y, z := v.XYZ()
	return writeTriple(w, x, y, z)
}

func (v *Wide) Set(x, y, z float64) {
	*v = NewWide(x, y, z)
}

func (v *Wide) AddAssign(o Wide)          { *v = v.Add(o) }
func (v *Wide) SubAssign(o Wide)          { *v = v.Sub(o) }
func (v *Wide) MulAssign(o Wide)          { *v = v.Mul(o) }
func (v *Wide) DivAssign(o Wide)          { *v = v.Div(o) }
func (v *Wide) AddScalarAssign(s float64) { *v = v.AddScalar(s) }
func (v *Wide) SubScalarAssign(s float64) { *v = v.SubScalar(s) }
func (v *Wide) MulScalarAssign(s float64) { *v = v.MulScalar(s) }
func (v *Wide) DivScalarAssign(s float64) { *v = v.DivScalar(s) }

// Assign sets all three components to s.
func (v *Wide) Assign(s float64) {
	v.reg = splat3Wide(s, 0)
}

// Insert writes x and returns an Inserter armed for y and z.
func (v *Wide) Insert(x float64) Inserter[float64] {
	return v.Inserter().arm(x)
}

// Inserter returns an inert Inserter bound to v.
func (v *Wide) Inserter() Inserter[float64] {
	return newInserter(wideID, &v.reg[0], &v.reg[1], &v.reg[2])
}

// Scan implements fmt.Scanner. On error v is unchanged.
func (v *Wide) Scan(state fmt.ScanState, _ rune) error {
	x, y, z, err := scanTriple[float64](state)
	if err != nil {
		return err
	}
	v.Set(x, y, z)
	return nil
}
