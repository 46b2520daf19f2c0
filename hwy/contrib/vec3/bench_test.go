package vec3

import "testing"

var (
	sinkF32 float32
	sinkF64 float64
)

func BenchmarkCross(b *testing.B) {
	b.Run("scalar64", func(b *testing.B) {
		u, v := NewScalar[float64](1, 2, 3), NewScalar[float64](4, 5, 6)
		for b.Loop() {
			u = u.Cross(v).Add(v)
		}
		sinkF64 = u.X()
	})
	b.Run("narrow", func(b *testing.B) {
		u, v := NewNarrow(1, 2, 3), NewNarrow(4, 5, 6)
		for b.Loop() {
			u = u.Cross(v).Add(v)
		}
		sinkF32 = u.X()
	})
	b.Run("wide", func(b *testing.B) {
		u, v := NewWide(1, 2, 3), NewWide(4, 5, 6)
		for b.Loop() {
			u = u.Cross(v).Add(v)
		}
		sinkF64 = u.X()
	})
}

func BenchmarkNormalize(b *testing.B) {
	b.Run("scalar32", func(b *testing.B) {
		v := NewScalar[float32](1, 2, 3)
		for b.Loop() {
			v = v.Normalize().AddScalar(1)
		}
		sinkF32 = v.X()
	})
	b.Run("narrow", func(b *testing.B) {
		v := NewNarrow(1, 2, 3)
		for b.Loop() {
			v = v.Normalize().AddScalar(1)
		}
		sinkF32 = v.X()
	})
	b.Run("wide", func(b *testing.B) {
		v := NewWide(1, 2, 3)
		for b.Loop() {
			v = v.Normalize().AddScalar(1)
		}
		sinkF64 = v.X()
	})
}

func BenchmarkDot(b *testing.B) {
	b.Run("narrow", func(b *testing.B) {
		u, v := NewNarrow(1, 2, 3), NewNarrow(4, 5, 6)
		for b.Loop() {
			sinkF32 += u.Dot(v)
		}
	})
	b.Run("wide", func(b *testing.B) {
		u, v := NewWide(1, 2, 3), NewWide(4, 5, 6)
		for b.Loop() {
			sinkF64 += u.Dot(v)
		}
	})
}
