// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/trackload/song"
	"github.com/ik5/trackload/source"
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// frameSize of go-mp3 output: 16-bit little-endian stereo.
const frameSize = 4

// SampleLoader decodes an MP3 file into a 16-bit stereo sample.
type SampleLoader struct{}

func (SampleLoader) Name() string { return "mp3" }

func isMP3(src *source.Source) bool {
	var hdr [3]byte
	if src.Peek(hdr[:]) < len(hdr) {
		return false
	}
	if string(hdr[:]) == "ID3" {
		return true
	}
	// frame sync
	return hdr[0] == 0xFF && hdr[1]&0xE0 == 0xE0
}

func (SampleLoader) LoadSample(src *source.Source) (*song.Sample, error) {
	if !isMP3(src) {
		return nil, ErrNotMP3File
	}

	dec, err := gomp3.NewDecoder(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMP3Decode, err)
	}

	return readSample(dec)
}

// readSample drains dec into a sample, dropping a trailing partial frame.
func readSample(dec mp3Reader) (*song.Sample, error) {
	buf := make([]byte, 8192)
	var data []byte

	for len(data) < song.MaxSampleLength*frameSize {
		n, err := dec.Read(buf)
		data = append(data, buf[:n]...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMP3Decode, err)
		}
		if n == 0 {
			break
		}
	}

	frames := min(len(data)/frameSize, song.MaxSampleLength)

	smp := song.NewSample()
	smp.Kind = song.SampleKindPCM
	smp.Flags = song.Sample16Bit | song.SampleStereo
	smp.Length = uint32(frames)
	smp.Data = data[:frames*frameSize]
	if rate := dec.SampleRate(); rate > 0 {
		smp.C5Speed = uint32(rate)
	}

	return smp, nil
}
