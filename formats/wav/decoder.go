// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"

	"github.com/go-audio/wav"

	"github.com/ik5/trackload/song"
	"github.com/ik5/trackload/source"
)

const wavFormatPCM = 1

// SampleLoader reads RIFF/WAVE files into a sample slot.
type SampleLoader struct{}

func (SampleLoader) Name() string { return "wav" }

func isWAV(src *source.Source) bool {
	var hdr [12]byte
	if src.Peek(hdr[:]) < len(hdr) {
		return false
	}
	return bytes.Equal(hdr[0:4], []byte("RIFF")) && bytes.Equal(hdr[8:12], []byte("WAVE"))
}

// LoadSample decodes integer PCM WAV data of 8 to 32 bits. 8-bit WAV data
// is unsigned; wider data is signed.
func (SampleLoader) LoadSample(src *source.Source) (*song.Sample, error) {
	if !isWAV(src) {
		return nil, ErrNotWavFile
	}

	dec := wav.NewDecoder(src)
	if !dec.IsValidFile() {
		return nil, ErrUnsupportedWavLayout
	}
	dec.ReadInfo()

	if dec.WavAudioFormat != wavFormatPCM {
		return nil, fmt.Errorf("format tag %#x: %w", dec.WavAudioFormat, ErrOnlyPCMSupported)
	}

	depth := int(dec.BitDepth)
	if depth == 0 || depth > 32 {
		return nil, fmt.Errorf("%d-bit: %w", depth, ErrUnsupportedWavLayout)
	}

	return song.ReadPCM(dec, depth, depth <= 8)
}
