// SPDX-License-Identifier: EPL-2.0

package modtest

import (
	"encoding/binary"
	"math/bits"
)

// AIFF returns a FORM/AIFF file with a COMM and an SSND chunk. data is
// big-endian signed PCM and is stored as is.
func AIFF(sampleRate, channels, bitsPerSample int, data []byte) []byte {
	frameSize := channels * ((bitsPerSample + 7) / 8)
	frames := 0
	if frameSize > 0 {
		frames = len(data) / frameSize
	}

	comm := make([]byte, 0, 18)
	comm = binary.BigEndian.AppendUint16(comm, uint16(channels))
	comm = binary.BigEndian.AppendUint32(comm, uint32(frames))
	comm = binary.BigEndian.AppendUint16(comm, uint16(bitsPerSample))
	comm = append(comm, extended(uint64(sampleRate))...)

	ssnd := make([]byte, 8, 8+len(data))
	ssnd = append(ssnd, data...)

	body := []byte("AIFF")
	body = appendChunk(body, "COMM", comm)
	body = appendChunk(body, "SSND", ssnd)

	out := []byte("FORM")
	out = binary.BigEndian.AppendUint32(out, uint32(len(body)))
	return append(out, body...)
}

func appendChunk(b []byte, id string, data []byte) []byte {
	b = append(b, id...)
	b = binary.BigEndian.AppendUint32(b, uint32(len(data)))
	b = append(b, data...)
	if len(data)%2 != 0 {
		b = append(b, 0)
	}
	return b
}

// extended encodes a positive integer as an 80-bit IEEE extended float.
func extended(v uint64) []byte {
	out := make([]byte, 10)
	if v == 0 {
		return out
	}
	e := bits.Len64(v) - 1
	binary.BigEndian.PutUint16(out[0:], uint16(16383+e))
	binary.BigEndian.PutUint64(out[2:], v<<(63-e))
	return out
}
