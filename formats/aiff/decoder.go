// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"

	"github.com/go-audio/aiff"

	"github.com/ik5/trackload/song"
	"github.com/ik5/trackload/source"
)

// SampleLoader reads AIFF and uncompressed AIFF-C files into a sample
// slot.
type SampleLoader struct{}

func (SampleLoader) Name() string { return "aiff" }

func isAIFF(src *source.Source) bool {
	var hdr [12]byte
	if src.Peek(hdr[:]) < len(hdr) {
		return false
	}
	if !bytes.Equal(hdr[0:4], []byte("FORM")) {
		return false
	}
	form := hdr[8:12]
	return bytes.Equal(form, []byte("AIFF")) || bytes.Equal(form, []byte("AIFC"))
}

// LoadSample decodes signed big-endian PCM of 8 to 32 bits.
func (SampleLoader) LoadSample(src *source.Source) (*song.Sample, error) {
	if !isAIFF(src) {
		return nil, ErrNotAiffFile
	}

	dec := aiff.NewDecoder(src)
	if !dec.IsValidFile() {
		return nil, ErrUnsupportedAiffLayout
	}
	dec.ReadInfo()

	depth := int(dec.BitDepth)
	if depth == 0 || depth > 32 {
		return nil, fmt.Errorf("%d-bit: %w", depth, ErrUnsupportedBitDepth)
	}

	return song.ReadPCM(dec, depth, false)
}
