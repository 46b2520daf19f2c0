package vec3

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"wide", NewWide(1, 2.5, -3).String(), "1 2.5 -3 "},
		{"narrow", NewNarrow(0.1, 1e10, -0).String(), "0.1 1e+10 0 "},
		{"scalar32", NewScalar[float32](0.1, 2, 3).String(), "0.1 2 3 "},
		{"scalar64", NewScalar(0.1, 2, 3).String(), "0.1 2 3 "},
		{"wide shortest", NewWide(0.1, 1.0/3, 0).String(), "0.1 0.3333333333333333 0 "},
		{"special", NewWide(math.Inf(1), math.NaN(), math.Inf(-1)).String(), "+Inf NaN -Inf "},
		{"Sprint", fmt.Sprint(NewNarrow(1, 2, 3)), "1 2 3 "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("String: got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestWriteTo(t *testing.T) {
	var sb strings.Builder
	n, err := NewWide(1, 2, 3).WriteTo(&sb)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if sb.String() != "1 2 3 " || n != 6 {
		t.Errorf("WriteTo: got %q (%d bytes), want %q (6 bytes)", sb.String(), n, "1 2 3 ")
	}

	sb.Reset()
	if _, err := NewNarrow(0.5, 0, -1).WriteTo(&sb); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if _, err := NewScalar[float32](4, 5, 6).WriteTo(&sb); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if got, want := sb.String(), "0.5 0 -1 4 5 6 "; got != want {
		t.Errorf("WriteTo: got %q, want %q", got, want)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Wide
	}{
		{"1 2 3", NewWide(1, 2, 3)},
		{"1 2 3 ", NewWide(1, 2, 3)},
		{"  -1.5\t2e3\n0.25", NewWide(-1.5, 2000, 0.25)},
		{"1 2 3 4 5", NewWide(1, 2, 3)},
		{"1 2 3 trailing words", NewWide(1, 2, 3)},
	}
	for _, tt := range tests {
		got, err := ParseWide(tt.in)
		if err != nil {
			t.Errorf("ParseWide(%q): unexpected error %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseWide(%q): got %v, want %v", tt.in, got, tt.want)
		}
		if p := got.Register()[3]; p != 0 {
			t.Errorf("ParseWide(%q): padding lane: got %v, want 0", tt.in, p)
		}
	}
}

func TestParseMalformed(t *testing.T) {
	inputs := []string{"", "1 2", "1 x 3", "a b c", "1,2,3"}
	for _, in := range inputs {
		if _, err := ParseWide(in); !errors.Is(err, ErrMalformed) {
			t.Errorf("ParseWide(%q): got %v, want ErrMalformed", in, err)
		}
		if _, err := ParseNarrow(in); !errors.Is(err, ErrMalformed) {
			t.Errorf("ParseNarrow(%q): got %v, want ErrMalformed", in, err)
		}
		if _, err := ParseScalar[float32](in); !errors.Is(err, ErrMalformed) {
			t.Errorf("ParseScalar(%q): got %v, want ErrMalformed", in, err)
		}
	}
}

func TestScanLeavesReceiverOnError(t *testing.T) {
	v := NewNarrow(7, 8, 9)
	if _, err := fmt.Sscan("1 2 oops", &v); !errors.Is(err, ErrMalformed) {
		t.Errorf("Sscan: got %v, want ErrMalformed", err)
	}
	if want := NewNarrow(7, 8, 9); !v.Equal(want) {
		t.Errorf("Sscan error: receiver changed to %v, want %v", v, want)
	}
}

func TestScanSequence(t *testing.T) {
	var a, b Wide
	var tail string
	n, err := fmt.Sscan("1 2 3 4 5 6 end", &a, &b, &tail)
	if err != nil || n != 3 {
		t.Fatalf("Sscan: got n=%d err=%v, want 3 items", n, err)
	}
	if !a.Equal(NewWide(1, 2, 3)) || !b.Equal(NewWide(4, 5, 6)) || tail != "end" {
		t.Errorf("Sscan: got %v, %v, %q", a, b, tail)
	}
}

func TestParseSelected(t *testing.T) {
	v, err := Parse("1 2 3")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !v.Equal(New(1, 2, 3)) {
		t.Errorf("Parse: got %v, want %v", v, New(1, 2, 3))
	}
	if got := Selected(); got != v.Backend() {
		t.Errorf("Selected: got %v, want %v", got, v.Backend())
	}
	var r Real = v.X()
	if r != 1 {
		t.Errorf("Real: got %v, want 1", r)
	}
}
