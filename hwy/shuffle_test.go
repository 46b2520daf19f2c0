package hwy

import (
	"testing"
)

func TestShuffle(t *testing.T) {
	tests := []struct {
		d, c, b, a uint8
		want       uint8
	}{
		{3, 2, 1, 0, 0xE4},
		{0, 1, 2, 3, 0x1B},
		{3, 0, 2, 1, 0xC9},
		{3, 1, 0, 2, 0xD2},
		{7, 6, 5, 4, 0xE4}, // indices wrap modulo 4
	}
	for _, tt := range tests {
		if got := Shuffle(tt.d, tt.c, tt.b, tt.a); got != tt.want {
			t.Errorf("Shuffle(%d, %d, %d, %d) = %#x, want %#x", tt.d, tt.c, tt.b, tt.a, got, tt.want)
		}
	}
}

func TestPermute_F32(t *testing.T) {
	tests := []struct {
		name   string
		imm    uint8
		expect F32x4
	}{
		{"identity", Shuffle(3, 2, 1, 0), F32x4{0, 1, 2, 3}},
		{"rotate by 1", Shuffle(3, 0, 2, 1), F32x4{1, 2, 0, 3}},
		{"rotate by 2", Shuffle(3, 1, 0, 2), F32x4{2, 0, 1, 3}},
		{"broadcast lane 2", Shuffle(2, 2, 2, 2), F32x4{2, 2, 2, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := F32x4{0, 1, 2, 3}
			result := v.Permute(tt.imm)
			if result != tt.expect {
				t.Errorf("Permute() = %v, want %v", result, tt.expect)
			}
		})
	}
}

func TestPermute_F64(t *testing.T) {
	tests := []struct {
		name   string
		imm    uint8
		expect F64x4
	}{
		{"identity", Shuffle(3, 2, 1, 0), F64x4{0, 1, 2, 3}},
		{"rotate by 1", Shuffle(3, 0, 2, 1), F64x4{1, 2, 0, 3}},
		{"rotate by 2", Shuffle(3, 1, 0, 2), F64x4{2, 0, 1, 3}},
		{"cross halves", Shuffle(1, 0, 3, 2), F64x4{2, 3, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := F64x4{0, 1, 2, 3}
			result := v.Permute(tt.imm)
			if result != tt.expect {
				t.Errorf("Permute() = %v, want %v", result, tt.expect)
			}
		})
	}
}
