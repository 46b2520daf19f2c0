package main

import (
	"errors"
	"fmt"

	"github.com/go-highway/vector3/hwy"
	"github.com/go-highway/vector3/hwy/contrib/vec3"
)

type result struct {
	backend string
	err     error
}

// selfCheck runs the same small computation on every backend and compares
// the outcome with known values.
func selfCheck() []result {
	return []result{
		{"scalar32", checkBackend[vec3.Scalar[float32], float32, *vec3.Scalar[float32]](vec3.NewScalar[float32], vec3.ParseScalar[float32])},
		{"scalar64", checkBackend[vec3.Scalar[float64], float64, *vec3.Scalar[float64]](vec3.NewScalar[float64], vec3.ParseScalar[float64])},
		{"narrow", checkBackend[vec3.Narrow, float32, *vec3.Narrow](vec3.NewNarrow, vec3.ParseNarrow)},
		{"wide", checkBackend[vec3.Wide, float64, *vec3.Wide](vec3.NewWide, vec3.ParseWide)},
	}
}

func checkBackend[V vec3.Vector[V, T], T hwy.Floats, P vec3.Mutable[V, T]](
	mk func(x, y, z T) V, parse func(string) (V, error)) error {
	var errs []error
	expect := func(what string, got, want V) {
		if !got.Equal(want) {
			errs = append(errs, fmt.Errorf("%s: got %v, want %v", what, got, want))
		}
	}

	a, b := mk(1, 2, 3), mk(4, 5, 6)
	expect("cross", a.Cross(b), mk(-3, 6, -3))
	expect("add", a.Add(b), mk(5, 7, 9))
	expect("div", b.DivScalar(2), mk(2, 2.5, 3))

	if got := mk(2, 3, 6).Length(); got != 7 {
		errs = append(errs, fmt.Errorf("length: got %v, want 7", got))
	}
	n := mk(0, 3, 4).Normalize()
	tol := T(a.Backend().RLengthTolerance + 1e-6)
	if !n.ApproxEqual(mk(0, 0.6, 0.8), tol) {
		errs = append(errs, fmt.Errorf("normalize: got %v", n))
	}

	var v V
	if err := P(&v).Insert(7).Then(8).Then(9).Done(); err != nil {
		errs = append(errs, err)
	}
	expect("insert", v, mk(7, 8, 9))

	p, err := parse(v.String())
	if err != nil {
		errs = append(errs, err)
	} else {
		expect("parse", p, v)
	}
	return errors.Join(errs...)
}
