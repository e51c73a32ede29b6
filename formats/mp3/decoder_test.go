// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/ik5/trackload/song"
	"github.com/ik5/trackload/source"
)

// mockMP3Reader simulates the gomp3.Decoder for testing
type mockMP3Reader struct {
	sampleRate   int
	samples      []int16 // PCM samples (16-bit)
	offset       int
	chunk        int // bytes per Read, 0 means as many as fit
	returnErrors bool
}

func (m *mockMP3Reader) SampleRate() int {
	return m.sampleRate
}

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.returnErrors {
		return 0, io.ErrUnexpectedEOF
	}

	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	bytesAvailable := (len(m.samples) - m.offset) * 2
	bytesToRead := min(len(buf), bytesAvailable)
	if m.chunk > 0 {
		bytesToRead = min(bytesToRead, m.chunk)
	}

	// complete samples only
	samplesToRead := bytesToRead / 2

	for i := range samplesToRead {
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(m.samples[m.offset+i]))
	}

	m.offset += samplesToRead

	if m.offset >= len(m.samples) {
		return samplesToRead * 2, io.EOF
	}

	return samplesToRead * 2, nil
}

func TestReadSample(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		samples    []int16
		chunk      int
		wantFrames uint32
		wantValues []int
	}{
		{
			name:       "single read",
			samples:    []int16{1, -1, 32767, -32768},
			wantFrames: 2,
			wantValues: []int{1, -1, 32767, -32768},
		},
		{
			name:       "small reads",
			samples:    []int16{10, 20, 30, 40, 50, 60},
			chunk:      2,
			wantFrames: 3,
			wantValues: []int{10, 20, 30, 40, 50, 60},
		},
		{
			name:       "partial frame dropped",
			samples:    []int16{5, 6, 7},
			wantFrames: 1,
			wantValues: []int{5, 6},
		},
		{
			name:       "empty",
			wantFrames: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dec := &mockMP3Reader{sampleRate: 44100, samples: tt.samples, chunk: tt.chunk}
			smp, err := readSample(dec)
			if err != nil {
				t.Fatalf("readSample() error = %v", err)
			}

			if smp.Length != tt.wantFrames {
				t.Errorf("Length = %d, want %d", smp.Length, tt.wantFrames)
			}
			if smp.C5Speed != 44100 {
				t.Errorf("C5Speed = %d, want 44100", smp.C5Speed)
			}
			if smp.Channels() != 2 || smp.BitDepth() != 16 {
				t.Errorf("Channels = %d, BitDepth = %d, want 2 and 16", smp.Channels(), smp.BitDepth())
			}

			var got []int
			if buf := smp.IntBuffer(); buf != nil {
				got = buf.Data
			}
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

func TestReadSample_Error(t *testing.T) {
	t.Parallel()

	_, err := readSample(&mockMP3Reader{sampleRate: 44100, returnErrors: true})
	if !errors.Is(err, ErrMP3Decode) {
		t.Errorf("readSample() error = %v, want ErrMP3Decode", err)
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("readSample() error = %v, want the reader error wrapped", err)
	}
}

func TestReadSample_ZeroRateKeepsDefault(t *testing.T) {
	t.Parallel()

	smp, err := readSample(&mockMP3Reader{samples: []int16{1, 2}})
	if err != nil {
		t.Fatalf("readSample() error = %v", err)
	}
	if smp.C5Speed != song.DefaultC5Speed {
		t.Errorf("C5Speed = %d, want %d", smp.C5Speed, song.DefaultC5Speed)
	}
}

func TestLoadSample_Signature(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"text", []byte("This is not MP3 data")},
		{"riff", []byte("RIFF\x00\x00\x00\x00WAVE")},
		{"half sync", []byte{0xFF, 0x10, 0x00, 0x00}},
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

	// an ID3 tag with nothing decodable behind it
	data := []byte("ID3\x03\x00\x00\x00\x00\x00\x00")
	_, err := SampleLoader{}.LoadSample(source.New(data))
	if err == nil {
		t.Fatal("LoadSample() error = nil, want error")
	}
	if errors.Is(err, song.ErrUnsupported) {
		t.Errorf("LoadSample() error = %v, want a committed failure", err)
	}
}

func TestErrors_Taxonomy(t *testing.T) {
	t.Parallel()

	if !errors.Is(ErrNotMP3File, song.ErrUnsupported) {
		t.Error("ErrNotMP3File does not wrap song.ErrUnsupported")
	}
	if !errors.Is(ErrMP3Decode, song.ErrFormat) {
		t.Error("ErrMP3Decode does not wrap song.ErrFormat")
	}
}
