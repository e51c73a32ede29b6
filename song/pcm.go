// SPDX-License-Identifier: EPL-2.0

package song

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
)

// PCMReader is the part of the go-audio WAV and AIFF decoders used to pull
// sample data.
type PCMReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

const pcmChunk = 4096

// ReadPCM drains dec and converts everything it returns into a sample.
func ReadPCM(dec PCMReader, bitDepth int, unsigned bool) (*Sample, error) {
	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return nil, fmt.Errorf("missing PCM format: %w", ErrFormat)
	}

	all := &goaudio.IntBuffer{Format: format, SourceBitDepth: bitDepth}
	buf := &goaudio.IntBuffer{
		Format: format,
		Data:   make([]int, pcmChunk*format.NumChannels),
	}

	limit := MaxSampleLength * format.NumChannels
	for len(all.Data) < limit {
		n, err := dec.PCMBuffer(buf)
		if n > 0 {
			all.Data = append(all.Data, buf.Data[:n]...)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading PCM: %w: %w", ErrFormat, err)
		}
		if n == 0 {
			break
		}
	}

	return SampleFromIntBuffer(all, bitDepth, unsigned)
}
