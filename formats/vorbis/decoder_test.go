// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"io"
	"testing"

	"github.com/ik5/trackload/song"
	"github.com/ik5/trackload/source"
)

// mockOggVorbisReader simulates the oggvorbis.Reader for testing
type mockOggVorbisReader struct {
	sampleRate   int
	channels     int
	samples      []float32
	offset       int
	maxFrames    int // frames per Read, 0 means as many as fit
	returnErrors bool
}

func (m *mockOggVorbisReader) SampleRate() int {
	return m.sampleRate
}

func (m *mockOggVorbisReader) Channels() int {
	return m.channels
}

func (m *mockOggVorbisReader) Read(buf []float32) (int, error) {
	if m.returnErrors {
		return 0, io.ErrUnexpectedEOF
	}

	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	framesToRead := min(len(buf)/m.channels, (len(m.samples)-m.offset)/m.channels)
	if m.maxFrames > 0 {
		framesToRead = min(framesToRead, m.maxFrames)
	}

	n := framesToRead * m.channels
	copy(buf, m.samples[m.offset:m.offset+n])
	m.offset += n

	if m.offset >= len(m.samples) {
		return n, io.EOF
	}

	return n, nil
}

func TestReadSample(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		channels   int
		samples    []float32
		maxFrames  int
		wantFrames uint32
		wantStereo bool
		wantValues []int
	}{
		{
			name:       "mono",
			channels:   1,
			samples:    []float32{0, 1, -1},
			wantFrames: 3,
			wantValues: []int{0, 32767, -32767},
		},
		{
			name:       "stereo",
			channels:   2,
			samples:    []float32{1, -1, 0, 0},
			wantFrames: 2,
			wantStereo: true,
			wantValues: []int{32767, -32767, 0, 0},
		},
		{
			name:       "extra channels dropped",
			channels:   3,
			samples:    []float32{1, 0, -1, -1, 1, 1},
			wantFrames: 2,
			wantStereo: true,
			wantValues: []int{32767, 0, -32767, 32767},
		},
		{
			name:       "small reads",
			channels:   1,
			samples:    []float32{0, 1, 0, -1},
			maxFrames:  1,
			wantFrames: 4,
			wantValues: []int{0, 32767, 0, -32767},
		},
		{
			name:       "clamped",
			channels:   1,
			samples:    []float32{2, -3},
			wantFrames: 2,
			wantValues: []int{32767, -32767},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dec := &mockOggVorbisReader{
				sampleRate: 48000,
				channels:   tt.channels,
				samples:    tt.samples,
				maxFrames:  tt.maxFrames,
			}
			smp, err := readSample(dec)
			if err != nil {
				t.Fatalf("readSample() error = %v", err)
			}

			if smp.Length != tt.wantFrames {
				t.Errorf("Length = %d, want %d", smp.Length, tt.wantFrames)
			}
			if got := smp.Flags&song.SampleStereo != 0; got != tt.wantStereo {
				t.Errorf("stereo = %v, want %v", got, tt.wantStereo)
			}
			if smp.C5Speed != 48000 {
				t.Errorf("C5Speed = %d, want 48000", smp.C5Speed)
			}

			got := smp.IntBuffer().Data
			if len(got) != len(tt.wantValues) {
				t.Fatalf("values = %v, want %v", got, tt.wantValues)
			}
			for i := range got {
				if got[i] != tt.wantValues[i] {
					t.Errorf("value[%d] = %d, want %d", i, got[i], tt.wantValues[i])
				}
			}
		})
	}
}

func TestReadSample_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		dec  *mockOggVorbisReader
	}{
		{"read error", &mockOggVorbisReader{sampleRate: 44100, channels: 2, returnErrors: true}},
		{"no channels", &mockOggVorbisReader{sampleRate: 44100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := readSample(tt.dec)
			if !errors.Is(err, ErrVorbisDecode) {
				t.Errorf("readSample() error = %v, want ErrVorbisDecode", err)
			}
		})
	}
}

func TestLoadSample_Signature(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"text", []byte("This is not Ogg Vorbis data")},
		{"short", []byte("Ogg")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := SampleLoader{}.LoadSample(source.New(tt.data))
			if !errors.Is(err, song.ErrUnsupported) {
				t.Errorf("LoadSample() error = %v, want ErrUnsupported", err)
			}
		})
	}
}

func TestLoadSample_BrokenStream(t *testing.T) {
	t.Parallel()

	_, err := SampleLoader{}.LoadSample(source.New([]byte("OggS\x00garbage")))
	if !errors.Is(err, ErrVorbisDecode) {
		t.Errorf("LoadSample() error = %v, want ErrVorbisDecode", err)
	}
}

func BenchmarkReadSample(b *testing.B) {
	samples := make([]float32, 44100*2)
	for i := range samples {
		samples[i] = float32(i%200)/100 - 1
	}

	b.ReportAllocs()
	for range b.N {
		dec := &mockOggVorbisReader{sampleRate: 44100, channels: 2, samples: samples}
		if _, err := readSample(dec); err != nil {
			b.Fatal(err)
		}
	}
}
