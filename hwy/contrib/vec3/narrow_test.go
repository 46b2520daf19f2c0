package vec3

import (
	"math"
	"testing"

	"github.com/go-highway/vector3/hwy"
)

func TestNarrowArithmetic(t *testing.T) {
	a := NewNarrow(1, 2, 3)
	b := NewNarrow(4, 5, 6)

	tests := []struct {
		name string
		got  Narrow
		want [3]float32
	}{
		{"Add", a.Add(b), [3]float32{5, 7, 9}},
		{"Sub", a.Sub(b), [3]float32{-3, -3, -3}},
		{"Mul", a.Mul(b), [3]float32{4, 10, 18}},
		{"Div", b.Div(a), [3]float32{4, 2.5, 2}},
		{"AddScalar", a.AddScalar(2), [3]float32{3, 4, 5}},
		{"SubScalar", a.SubScalar(2), [3]float32{-1, 0, 1}},
		{"MulScalar", a.MulScalar(2), [3]float32{2, 4, 6}},
		{"DivScalar", a.DivScalar(2), [3]float32{0.5, 1, 1.5}},
		{"Neg", a.Neg(), [3]float32{-1, -2, -3}},
		{"Cross", a.Cross(b), [3]float32{-3, 6, -3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.got.Register()
			for i, w := range tt.want {
				if r[i] != w {
					t.Errorf("%s: lane %d: got %v, want %v", tt.name, i, r[i], w)
				}
			}
			if r[3] != 0 || math.Signbit(float64(r[3])) {
				t.Errorf("%s: padding lane: got %v, want 0", tt.name, r[3])
			}
		})
	}
}

func TestNarrowCrossImmediates(t *testing.T) {
	if rotate1 != 0xC9 {
		t.Errorf("rotate1: got %#x, want 0xc9", rotate1)
	}
	if rotate2 != 0xD2 {
		t.Errorf("rotate2: got %#x, want 0xd2", rotate2)
	}
}

func TestNarrowMetric(t *testing.T) {
	v := NewNarrow(2, 3, 6)
	if got := v.Dot(NewNarrow(1, 1, 1)); got != 11 {
		t.Errorf("Dot: got %v, want 11", got)
	}
	if got := v.Length(); got != 7 {
		t.Errorf("Length: got %v, want 7", got)
	}

	got := float64(v.RLength())
	if rel := math.Abs(got*7 - 1); rel > NarrowRLengthTolerance {
		t.Errorf("RLength: got %v, relative error %v exceeds %v", got, rel, NarrowRLengthTolerance)
	}

	n := v.Normalize()
	want := [3]float64{2.0 / 7, 3.0 / 7, 6.0 / 7}
	for i, w := range want {
		g := float64(n.Register()[i])
		if rel := math.Abs(g-w) / w; rel > NarrowRLengthTolerance {
			t.Errorf("Normalize: lane %d: got %v, want %v (relative error %v)", i, g, w, rel)
		}
	}
	if p := n.Register()[3]; p != 0 {
		t.Errorf("Normalize: padding lane: got %v, want 0", p)
	}
}

func TestNarrowZeroVector(t *testing.T) {
	var zero Narrow
	if got := zero.RLength(); !math.IsInf(float64(got), 1) {
		t.Errorf("RLength: got %v, want +Inf", got)
	}
	n := zero.Normalize()
	for i := range 3 {
		if g := n.Register()[i]; !math.IsNaN(float64(g)) {
			t.Errorf("Normalize: lane %d: got %v, want NaN", i, g)
		}
	}
	if p := n.Register()[3]; p != 0 {
		t.Errorf("Normalize: padding lane: got %v, want 0", p)
	}
}

func TestNarrowDivisionPadding(t *testing.T) {
	v := NewNarrow(1, -1, 0)

	got := v.Div(NewNarrow(0, 0, 0)).Register()
	if !math.IsInf(float64(got[0]), 1) || !math.IsInf(float64(got[1]), -1) || !math.IsNaN(float64(got[2])) {
		t.Errorf("Div by zero vector: got %v, want [+Inf -Inf NaN ...]", got)
	}
	if got[3] != 0 {
		t.Errorf("Div by zero vector: padding lane: got %v, want 0", got[3])
	}

	got = v.DivScalar(0).Register()
	if !math.IsInf(float64(got[0]), 1) || got[3] != 0 {
		t.Errorf("DivScalar(0): got %v, want [+Inf -Inf NaN 0]", got)
	}

	inf := float32(math.Inf(1))
	got = v.MulScalar(inf).Register()
	if got[3] != 0 {
		t.Errorf("MulScalar(+Inf): padding lane: got %v, want 0", got[3])
	}
}

func TestNarrowFromRegister(t *testing.T) {
	r := hwy.F32x4{1, 2, 3, 99}
	v := NarrowFromRegister(r)
	if got := v.Register(); got != (hwy.F32x4{1, 2, 3, 0}) {
		t.Errorf("NarrowFromRegister: got %v, want [1 2 3 0]", got)
	}
	if got := v.Length(); got != float32(math.Sqrt(14)) {
		t.Errorf("Length: got %v, want %v", got, float32(math.Sqrt(14)))
	}
}

func TestNarrowMutable(t *testing.T) {
	v := NewNarrow(1, 2, 3)
	v.AddAssign(NewNarrow(1, 1, 1))
	v.MulScalarAssign(2)
	v.SubScalarAssign(1)
	v.DivAssign(NewNarrow(1, 5, 1))
	if want := NewNarrow(3, 1, 7); !v.Equal(want) {
		t.Errorf("assign chain: got %v, want %v", v, want)
	}
	v.Assign(4)
	if got := v.Register(); got != (hwy.F32x4{4, 4, 4, 0}) {
		t.Errorf("Assign: got %v, want [4 4 4 0]", got)
	}
}

func TestNarrowBackend(t *testing.T) {
	b := Narrow{}.Backend()
	if b.Name != "narrow" || b.ElementBits != 32 || b.RegisterBits != 128 || b.PaddingLanes != 1 {
		t.Errorf("Backend: got %+v", b)
	}
	if b.RLengthTolerance != NarrowRLengthTolerance {
		t.Errorf("RLengthTolerance: got %v, want %v", b.RLengthTolerance, NarrowRLengthTolerance)
	}
}
