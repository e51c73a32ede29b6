// SPDX-License-Identifier: EPL-2.0

package song

import (
	"encoding/binary"
	"fmt"

	goaudio "github.com/go-audio/audio"
)

// SampleKind tells PCM samples apart from synthesizer instruments.
type SampleKind uint8

const (
	SampleKindNone SampleKind = iota
	SampleKindPCM
	SampleKindAdlib
)

func (k SampleKind) String() string {
	switch k {
	case SampleKindPCM:
		return "pcm"
	case SampleKindAdlib:
		return "adlib"
	}
	return "none"
}

// Sample flags.
const (
	SampleLoop = 1 << iota
	Sample16Bit
	SampleStereo
	SampleAdlib
)

// Sample limits and defaults.
const (
	MaxFilename       = 12
	MaxSampleName     = 25
	DefaultC5Speed    = 8363
	MaxSampleLength   = 0x10000000
	DefaultVolume     = 64 * 4
	DefaultGlobalVol  = 64
	AdlibParamsLength = 12
)

// Sample is one sample slot.
//
// Data, when present, is the canonical payload: signed PCM, 16-bit values
// little endian, stereo frames interleaved. Length counts frames.
type Sample struct {
	Kind     SampleKind
	Filename string
	Name     string

	Length    uint32
	LoopStart uint32
	LoopEnd   uint32

	Volume       int // 0..256
	GlobalVolume int // 0..64
	C5Speed      uint32
	Flags        int

	AdlibBytes [AdlibParamsLength]byte

	Data []byte
}

// NewSample returns an empty slot with the usual defaults.
func NewSample() *Sample {
	return &Sample{
		Volume:       DefaultVolume,
		GlobalVolume: DefaultGlobalVol,
		C5Speed:      DefaultC5Speed,
	}
}

// Channels returns 2 for stereo samples and 1 otherwise.
func (s *Sample) Channels() int {
	if s.Flags&SampleStereo != 0 {
		return 2
	}
	return 1
}

// BitDepth returns 16 or 8.
func (s *Sample) BitDepth() int {
	if s.Flags&Sample16Bit != 0 {
		return 16
	}
	return 8
}

// FrameSize is the number of bytes per frame of Data.
func (s *Sample) FrameSize() int {
	return s.Channels() * s.BitDepth() / 8
}

// HasData reports whether the slot holds PCM data or AdLib parameters.
func (s *Sample) HasData() bool {
	return s.Kind == SampleKindAdlib || (s.Kind == SampleKindPCM && len(s.Data) > 0)
}

// AdjustLoop keeps the loop inside the sample and drops loops that cannot
// play.
func (s *Sample) AdjustLoop() {
	if s.LoopEnd > s.Length {
		s.LoopEnd = s.Length
	}
	if s.LoopStart >= s.LoopEnd {
		s.LoopStart = 0
		s.LoopEnd = 0
		s.Flags &^= SampleLoop
	}
}

// IntBuffer exposes Data as a go-audio buffer of interleaved signed values.
// It returns nil when the sample has no PCM data.
func (s *Sample) IntBuffer() *goaudio.IntBuffer {
	if s.Kind != SampleKindPCM || len(s.Data) == 0 {
		return nil
	}

	depth := s.BitDepth()
	var values []int
	if depth == 16 {
		values = make([]int, len(s.Data)/2)
		for i := range values {
			values[i] = int(int16(binary.LittleEndian.Uint16(s.Data[2*i:])))
		}
	} else {
		values = make([]int, len(s.Data))
		for i, b := range s.Data {
			values[i] = int(int8(b))
		}
	}

	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: s.Channels(),
			SampleRate:  int(s.C5Speed),
		},
		Data:           values,
		SourceBitDepth: depth,
	}
}

// SampleFromIntBuffer builds a PCM sample from a decoded go-audio buffer.
// Depths up to 8 bits become 8-bit samples, anything wider is reduced to
// 16 bits. Only the first two channels are kept. unsigned marks buffers
// whose values are offset binary rather than two's complement.
func SampleFromIntBuffer(buf *goaudio.IntBuffer, bitDepth int, unsigned bool) (*Sample, error) {
	if buf == nil || buf.Format == nil {
		return nil, fmt.Errorf("missing PCM format: %w", ErrFormat)
	}
	channels := buf.Format.NumChannels
	if channels < 1 {
		return nil, fmt.Errorf("%d channels: %w", channels, ErrFormat)
	}
	if bitDepth < 1 || bitDepth > 32 {
		return nil, fmt.Errorf("%d-bit PCM: %w", bitDepth, ErrFormat)
	}

	keep := min(channels, 2)
	frames := len(buf.Data) / channels
	if frames > MaxSampleLength {
		frames = MaxSampleLength
	}

	smp := NewSample()
	smp.Kind = SampleKindPCM
	smp.Length = uint32(frames)
	if buf.Format.SampleRate > 0 {
		smp.C5Speed = uint32(buf.Format.SampleRate)
	}
	if keep == 2 {
		smp.Flags |= SampleStereo
	}

	wide := bitDepth > 8
	if wide {
		smp.Flags |= Sample16Bit
		smp.Data = make([]byte, frames*keep*2)
	} else {
		smp.Data = make([]byte, frames*keep)
	}

	var bias int
	if unsigned {
		bias = 1 << (bitDepth - 1)
	}

	out := 0
	for f := range frames {
		for c := range keep {
			v := buf.Data[f*channels+c] - bias
			if wide {
				v >>= max(bitDepth-16, 0)
				v <<= max(16-bitDepth, 0)
				binary.LittleEndian.PutUint16(smp.Data[out:], uint16(int16(v)))
				out += 2
			} else {
				v <<= 8 - bitDepth
				smp.Data[out] = byte(int8(v))
				out++
			}
		}
	}

	return smp, nil
}
