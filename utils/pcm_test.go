// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"bytes"
	"testing"
)

func TestSignPCM8(t *testing.T) {
	t.Parallel()

	got := []byte{0x00, 0x80, 0xFF, 0x7F}
	SignPCM8(got)

	want := []byte{0x80, 0x00, 0x7F, 0xFF}
	if !bytes.Equal(got, want) {
		t.Errorf("SignPCM8 = % X, want % X", got, want)
	}
}

func TestSignPCM16LE(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []byte
		want []byte
	}{
		{
			name: "midpoint becomes zero",
			in:   []byte{0x00, 0x80},
			want: []byte{0x00, 0x00},
		},
		{
			name: "zero becomes minimum",
			in:   []byte{0x00, 0x00},
			want: []byte{0x00, 0x80},
		},
		{
			name: "maximum",
			in:   []byte{0xFF, 0xFF, 0x34, 0x12},
			want: []byte{0xFF, 0x7F, 0x34, 0x92},
		},
		{
			name: "odd trailing byte untouched",
			in:   []byte{0x00, 0x80, 0x55},
			want: []byte{0x00, 0x00, 0x55},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := append([]byte(nil), tt.in...)
			SignPCM16LE(got)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("SignPCM16LE(% X) = % X, want % X", tt.in, got, tt.want)
			}
		})
	}
}

func TestInterleaveSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		raw    []byte
		frames int
		width  int
		want   []byte
	}{
		{
			name:   "8-bit",
			raw:    []byte{1, 2, 3, 10, 20, 30},
			frames: 3,
			width:  1,
			want:   []byte{1, 10, 2, 20, 3, 30},
		},
		{
			name:   "16-bit",
			raw:    []byte{1, 2, 3, 4, 10, 20, 30, 40},
			frames: 2,
			width:  2,
			want:   []byte{1, 2, 10, 20, 3, 4, 30, 40},
		},
		{
			name:   "empty",
			raw:    nil,
			frames: 0,
			width:  2,
			want:   []byte{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := InterleaveSplit(tt.raw, tt.frames, tt.width)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("InterleaveSplit = %v, want %v", got, tt.want)
			}
		})
	}
}

func BenchmarkInterleaveSplit(b *testing.B) {
	raw := make([]byte, 2*8000*2)

	b.ReportAllocs()
	for range b.N {
		_ = InterleaveSplit(raw, 8000, 2)
	}
}
