// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/trackload/song"
	"github.com/ik5/trackload/source"
	"github.com/ik5/trackload/utils"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// SampleLoader decodes an Ogg Vorbis file into a 16-bit sample.
type SampleLoader struct{}

func (SampleLoader) Name() string { return "vorbis" }

func isOgg(src *source.Source) bool {
	var hdr [4]byte
	return src.Peek(hdr[:]) == len(hdr) && string(hdr[:]) == "OggS"
}

func (SampleLoader) LoadSample(src *source.Source) (*song.Sample, error) {
	if !isOgg(src) {
		return nil, ErrNotOggFile
	}

	dec, err := oggvorbis.NewReader(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrVorbisDecode, err)
	}

	return readSample(dec)
}

// readSample drains dec. Channels past the second are dropped.
func readSample(dec oggReader) (*song.Sample, error) {
	channels := dec.Channels()
	if channels < 1 {
		return nil, fmt.Errorf("%d channels: %w", channels, ErrVorbisDecode)
	}
	keep := min(channels, 2)

	// Read returns interleaved values, always a multiple of channels
	buf := make([]float32, 4096*channels)
	values := make([]float32, 0, len(buf))
	frames := 0

	for frames < song.MaxSampleLength {
		n, err := dec.Read(buf)
		for f := range min(n/channels, song.MaxSampleLength-frames) {
			values = append(values, buf[f*channels:f*channels+keep]...)
			frames++
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrVorbisDecode, err)
		}
		if n == 0 {
			break
		}
	}

	smp := song.NewSample()
	smp.Kind = song.SampleKindPCM
	smp.Flags = song.Sample16Bit
	if keep == 2 {
		smp.Flags |= song.SampleStereo
	}
	smp.Length = uint32(frames)
	smp.Data = utils.Float32ToPCM16LE(values)
	if rate := dec.SampleRate(); rate > 0 {
		smp.C5Speed = uint32(rate)
	}

	return smp, nil
}
