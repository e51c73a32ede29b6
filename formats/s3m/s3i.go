// SPDX-License-Identifier: EPL-2.0

package s3m

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ik5/trackload/song"
	"github.com/ik5/trackload/source"
)

var (
	tagSCRS = []byte("SCRS")
	tagSCRI = []byte("SCRI")
)

// SampleLoader reads Scream Tracker 3 instrument files (.s3i): one S3M
// sample header followed by its data.
type SampleLoader struct{}

func (SampleLoader) Name() string { return "s3i" }

// LoadSample decodes an S3I file. PCM data follows the header and is
// always stored unsigned.
func (SampleLoader) LoadSample(src *source.Source) (*song.Sample, error) {
	raw, err := src.Slice(0, sampleHeaderSize)
	if err != nil {
		return nil, ErrNotS3IFile
	}

	sh := parseSampleHeader(raw, true)
	smp := sh.sample

	switch {
	case bytes.Equal(sh.tag, tagSCRS) && raw[0] == typePCM:
	case bytes.Equal(sh.tag, tagSCRI) && raw[0] == typeAdlib:
		return smp, nil
	default:
		return nil, ErrNotS3IFile
	}

	need := int64(smp.Length) * sh.layout.frameSize()
	if err := src.Check(sampleHeaderSize, need); err != nil {
		return nil, fmt.Errorf("%d frames declared: %w", smp.Length, ErrS3ITruncated)
	}

	src.Seek(sampleHeaderSize, io.SeekStart)
	readPCM(src, smp, sh.layout)

	return smp, nil
}
