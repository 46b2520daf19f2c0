package vec3

import (
	"fmt"
	"io"
	"math"

	"github.com/go-highway/vector3/hwy"
)

// Scalar is a vector stored as three plain fields. The zero value is (0, 0, 0).
type Scalar[T hwy.Floats] struct {
	x, y, z T
}

// NewScalar returns the vector (x, y, z).
func NewScalar[T hwy.Floats](x, y, z T) Scalar[T] {
	return Scalar[T]{x, y, z}
}

// ParseScalar parses "x y z" text. Anything after the third number is ignored.
func ParseScalar[T hwy.Floats](s string) (Scalar[T], error) {
	return parseInto[Scalar[T]](s)
}

// Backend describes the field layout.
func (Scalar[T]) Backend() Backend {
	return Backend{
		Name:        scalarID[T]().String(),
		ElementBits: elementBits[T](),
	}
}

func scalarID[T hwy.Floats]() backendID {
	if elementBits[T]() == 32 {
		return scalar32ID
	}
	return scalar64ID
}

func (v Scalar[T]) X() T { return v.x }
func (v Scalar[T]) Y() T { return v.y }
func (v Scalar[T]) Z() T { return v.z }

func (v Scalar[T]) XYZ() (x, y, z T) {
	return v.x, v.y, v.z
}

func (v Scalar[T]) Add(o Scalar[T]) Scalar[T] {
	return Scalar[T]{v.x + o.x, v.y + o.y, v.z + o.z}
}

func (v Scalar[T]) Sub(o Scalar[T]) Scalar[T] {
	return Scalar[T]{v.x - o.x, v.y - o.y, v.z - o.z}
}

// Mul multiplies component-wise.
func (v Scalar[T]) Mul(o Scalar[T]) Scalar[T] {
	return Scalar[T]{v.x * o.x, v.y * o.y, v.z * o.z}
}

// Div divides component-wise. A zero component of o yields ±Inf or NaN there.
func (v Scalar[T]) Div(o Scalar[T]) Scalar[T] {
	return Scalar[T]{v.x / o.x, v.y / o.y, v.z / o.z}
}

func (v Scalar[T]) AddScalar(s T) Scalar[T] {
	return Scalar[T]{v.x + s, v.y + s, v.z + s}
}

func (v Scalar[T]) SubScalar(s T) Scalar[T] {
	return Scalar[T]{v.x - s, v.y - s, v.z - s}
}

func (v Scalar[T]) MulScalar(s T) Scalar[T] {
	return Scalar[T]{v.x * s, v.y * s, v.z * s}
}

func (v Scalar[T]) DivScalar(s T) Scalar[T] {
	return Scalar[T]{v.x / s, v.y / s, v.z / s}
}

func (v Scalar[T]) Neg() Scalar[T] {
	return Scalar[T]{-v.x, -v.y, -v.z}
}

// Cross returns the cross product v × o.
func (v Scalar[T]) Cross(o Scalar[T]) Scalar[T] {
	return Scalar[T]{
		v.y*o.z - v.z*o.y,
		v.z*o.x - v.x*o.z,
		v.x*o.y - v.y*o.x,
	}
}

func (v Scalar[T]) Dot(o Scalar[T]) T {
	return v.x*o.x + v.y*o.y + v.z*o.z
}

func (v Scalar[T]) Length() T {
	return T(math.Sqrt(float64(v.Dot(v))))
}

// RLength returns 1/Length exactly. It is +Inf for the zero vector.
func (v Scalar[T]) RLength() T {
	return 1 / v.Length()
}

// Normalize returns v scaled to unit length. The zero vector yields NaN
// components.
func (v Scalar[T]) Normalize() Scalar[T] {
	return v.DivScalar(v.Length())
}

func (v Scalar[T]) Equal(o Scalar[T]) bool {
	return v == o
}

// ApproxEqual reports whether every component is within tol of o's, either
// absolutely or relatively.
func (v Scalar[T]) ApproxEqual(o Scalar[T], tol T) bool {
	return approxEqual(v.x, o.x, tol) && approxEqual(v.y, o.y, tol) && approxEqual(v.z, o.z, tol)
}

// String returns "x y z ".
func (v Scalar[T]) String() string {
	return formatTriple(v.x, v.y, v.z)
}

// WriteTo writes the String form of v to w.
func (v Scalar[T]) WriteTo(w io.Writer) (int64, error) {
	return writeTriple(w, v.x, v.y, v.z)
}

func (v *Scalar[T]) Set(x, y, z T) {
	v.x, v.y, v.z = x, y, z
}

func (v *Scalar[T]) AddAssign(o Scalar[T]) { *v = v.Add(o) }
func (v *Scalar[T]) SubAssign(o Scalar[T]) { *v = v.Sub(o) }
func (v *Scalar[T]) MulAssign(o Scalar[T]) { *v = v.Mul(o) }
func (v *Scalar[T]) DivAssign(o Scalar[T]) { *v = v.Div(o) }
func (v *Scalar[T]) AddScalarAssign(s T)   { *v = v.AddScalar(s) }
func (v *Scalar[T]) SubScalarAssign(s T)   { *v = v.SubScalar(s) }
func (v *Scalar[T]) MulScalarAssign(s T)   { *v = v.MulScalar(s) }
func (v *Scalar[T]) DivScalarAssign(s T)   { *v = v.DivScalar(s) }

// Assign sets all three components to s.
func (v *Scalar[T]) Assign(s T) {
	v.x, v.y, v.z = s, s, s
}

// Insert writes x and returns an Inserter armed for y and z.
func (v *Scalar[T]) Insert(x T) Inserter[T] {
	return v.Inserter().arm(x)
}

// Inserter returns an inert Inserter bound to v.
func (v *Scalar[T]) Inserter() Inserter[T] {
	return newInserter(scalarID[T](), &v.x, &v.y, &v.z)
}

// Scan implements fmt.Scanner. On error v is unchanged.
func (v *Scalar[T]) Scan(state fmt.ScanState, _ rune) error {
	x, y, z, err := scanTriple[T](state)
	if err != nil {
		return err
	}
	v.Set(x, y, z)
	return nil
}
