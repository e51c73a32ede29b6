// SPDX-License-Identifier: EPL-2.0

package song

import (
	"bytes"
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// mockPCMReader hands out values a few at a time.
type mockPCMReader struct {
	format *goaudio.Format
	values []int
	step   int
	err    error
}

func (m *mockPCMReader) Format() *goaudio.Format { return m.format }

func (m *mockPCMReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if len(m.values) == 0 {
		return 0, m.err
	}
	n := min(len(buf.Data), m.step, len(m.values))
	copy(buf.Data, m.values[:n])
	m.values = m.values[n:]
	return n, nil
}

func TestReadPCM(t *testing.T) {
	t.Parallel()

	dec := &mockPCMReader{
		format: &goaudio.Format{NumChannels: 2, SampleRate: 44100},
		values: []int{1, -1, 2, -2, 3, -3},
		step:   4,
	}

	smp, err := ReadPCM(dec, 16, false)
	if err != nil {
		t.Fatalf("ReadPCM: %v", err)
	}
	if smp.Length != 3 || smp.C5Speed != 44100 || smp.Flags != Sample16Bit|SampleStereo {
		t.Errorf("length %d c5 %d flags %#x", smp.Length, smp.C5Speed, smp.Flags)
	}
	want := []byte{1, 0, 0xFF, 0xFF, 2, 0, 0xFE, 0xFF, 3, 0, 0xFD, 0xFF}
	if !bytes.Equal(smp.Data, want) {
		t.Errorf("Data = % X, want % X", smp.Data, want)
	}
}

func TestReadPCMErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		dec  *mockPCMReader
	}{
		{"no format", &mockPCMReader{}},
		{"decoder failure", &mockPCMReader{format: &goaudio.Format{NumChannels: 1}, err: io.ErrUnexpectedEOF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := ReadPCM(tt.dec, 16, false); !errors.Is(err, ErrFormat) {
				t.Errorf("err = %v, want ErrFormat", err)
			}
		})
	}
}
