// SPDX-License-Identifier: EPL-2.0

package source

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Source owns a fully buffered copy of a file and hands out random access
// reads over it. Short reads are padded with zeroes instead of failing.
//
// A Source is not safe for concurrent use.
type Source struct {
	data []byte
	pos  int64
}

// New wraps data. The Source takes ownership of the slice.
func New(data []byte) *Source {
	return &Source{data: data}
}

// Open reads the whole file at path into memory. A path of "-" reads
// standard input until EOF.
func Open(path string) (*Source, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return New(data), nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s: %w", path, ErrIsDirectory)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return New(data), nil
}

// Bytes returns the underlying buffer. Callers must not modify it.
func (s *Source) Bytes() []byte { return s.data }

// Len returns the buffer length in bytes.
func (s *Source) Len() int64 { return int64(len(s.data)) }

// Tell returns the current position.
func (s *Source) Tell() int64 { return s.pos }

// EOF reports whether the position is at or past the end of the buffer.
func (s *Source) EOF() bool { return s.pos >= int64(len(s.data)) }

// Rewind moves back to the start of the buffer.
func (s *Source) Rewind() { s.pos = 0 }

// Seek implements io.Seeker. Seeking before the start or past the end of
// the buffer fails with ErrOutOfRange and leaves the position unchanged.
func (s *Source) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = s.pos + offset
	case io.SeekEnd:
		abs = int64(len(s.data)) + offset
	default:
		return s.pos, fmt.Errorf("invalid whence: %d", whence)
	}

	if abs < 0 || abs > int64(len(s.data)) {
		return s.pos, fmt.Errorf("seek to %d of %d: %w", abs, len(s.data), ErrOutOfRange)
	}

	s.pos = abs
	return abs, nil
}

// Read implements io.Reader and returns io.EOF once the buffer is exhausted.
// Use Fill when zero padding is wanted instead.
func (s *Source) Read(p []byte) (int, error) {
	if s.EOF() {
		return 0, io.EOF
	}
	n := copy(p, s.data[s.pos:])
	s.pos += int64(n)
	return n, nil
}

// ReadByte implements io.ByteReader. io.EOF marks the end of input and is
// distinct from every byte value.
func (s *Source) ReadByte() (byte, error) {
	if s.EOF() {
		return 0, io.EOF
	}
	b := s.data[s.pos]
	s.pos++
	return b, nil
}

// Peek copies len(p) bytes from the current position into p without
// moving. Missing bytes past the end are zeroed. It returns how many bytes
// really came from the buffer.
func (s *Source) Peek(p []byte) int {
	var n int
	if !s.EOF() {
		n = copy(p, s.data[s.pos:])
	}
	clear(p[n:])
	return n
}

// Fill is Peek followed by advancing past the bytes that were present.
func (s *Source) Fill(p []byte) int {
	n := s.Peek(p)
	s.pos += int64(n)
	return n
}

// Take returns the next n bytes as a new slice, zero padded on a short read.
func (s *Source) Take(n int) []byte {
	p := make([]byte, n)
	s.Fill(p)
	return p
}

// Uint16 reads a little-endian 16-bit value.
func (s *Source) Uint16() uint16 {
	var b [2]byte
	s.Fill(b[:])
	return binary.LittleEndian.Uint16(b[:])
}

// Uint32 reads a little-endian 32-bit value.
func (s *Source) Uint32() uint32 {
	var b [4]byte
	s.Fill(b[:])
	return binary.LittleEndian.Uint32(b[:])
}

// Slice returns the n bytes starting at off without copying. It is the
// checked accessor used for every (offset, length) pair derived from file
// contents.
func (s *Source) Slice(off, n int64) ([]byte, error) {
	if err := s.Check(off, n); err != nil {
		return nil, err
	}
	return s.data[off : off+n], nil
}

// Check validates that [off, off+n) lies inside the buffer.
func (s *Source) Check(off, n int64) error {
	if off < 0 || n < 0 || off > int64(len(s.data)) || n > int64(len(s.data))-off {
		return fmt.Errorf("range %d+%d of %d: %w", off, n, len(s.data), ErrOutOfRange)
	}
	return nil
}
