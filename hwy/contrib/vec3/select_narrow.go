//go:build vec3_float32 && !vec3_scalar

package vec3

// Real is the element type of Vec.
type Real = float32

// Vec is the vector type selected for this build.
type Vec = Narrow

// New returns the Vec (x, y, z).
func New(x, y, z Real) Vec {
	return NewNarrow(x, y, z)
}

// Parse parses "x y z" text into a Vec.
func Parse(s string) (Vec, error) {
	return ParseNarrow(s)
}
