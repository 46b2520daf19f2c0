package vec3

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"unsafe"

	"github.com/go-highway/vector3/hwy"
)

func elementBits[T hwy.Floats]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// appendTriple appends "x y z " using the shortest text that round-trips T.
func appendTriple[T hwy.Floats](dst []byte, x, y, z T) []byte {
	bits := elementBits[T]()
	for _, c := range [3]T{x, y, z} {
		dst = strconv.AppendFloat(dst, float64(c), 'g', -1, bits)
		dst = append(dst, ' ')
	}
	return dst
}

func formatTriple[T hwy.Floats](x, y, z T) string {
	var buf [80]byte
	return string(appendTriple(buf[:0], x, y, z))
}

func writeTriple[T hwy.Floats](w io.Writer, x, y, z T) (int64, error) {
	var buf [80]byte
	n, err := w.Write(appendTriple(buf[:0], x, y, z))
	return int64(n), err
}

// scanTriple reads three whitespace-delimited numbers from state. Nothing
// after the third token is consumed.
func scanTriple[T hwy.Floats](state fmt.ScanState) (x, y, z T, err error) {
	var c [3]T
	bits := elementBits[T]()
	for i := range c {
		tok, err := state.Token(true, nil)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("%w: component %d: %w", ErrMalformed, i, err)
		}
		if len(tok) == 0 {
			return 0, 0, 0, fmt.Errorf("%w: missing component %d", ErrMalformed, i)
		}
		f, err := strconv.ParseFloat(string(tok), bits)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("%w: component %d: %w", ErrMalformed, i, err)
		}
		c[i] = T(f)
	}
	return c[0], c[1], c[2], nil
}

// parseInto scans s into v, which is only written on success.
func parseInto[V any, P interface {
	*V
	fmt.Scanner
}](s string) (V, error) {
	var v V
	if _, err := fmt.Sscan(s, P(&v)); err != nil {
		var zero V
		if errors.Is(err, ErrMalformed) {
			return zero, err
		}
		return zero, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return v, nil
}
