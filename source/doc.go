// SPDX-License-Identifier: EPL-2.0

// Package source provides the in-memory byte source every loader reads from.
//
// Module files are small and loaders seek all over them, so the whole file
// is read up front and served from a single buffer:
//
//	src, err := source.Open("song.s3m")
//	if err != nil {
//	    // Handle error
//	}
//
//	src.Seek(44, io.SeekStart)
//	tag := src.Take(4) // "SCRM"
//
// # Short Reads
//
// Fill, Peek, Take, Uint16 and Uint32 never fail. When fewer bytes remain
// than were asked for, the missing tail is zero filled, so a truncated file
// reads as if it were padded with zeroes. Read and ReadByte follow the io
// conventions instead and return io.EOF at the end of the buffer; this lets
// a Source be handed to any io.ReadSeeker consumer.
//
// # Bounds
//
// Seek rejects positions outside [0, Len()] with ErrOutOfRange. Slice and
// Check validate (offset, length) pairs taken from file contents before
// anything dereferences them.
package source
