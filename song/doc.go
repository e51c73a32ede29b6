// SPDX-License-Identifier: EPL-2.0

// Package song is the in-memory model every module loader fills in, plus
// the registry that picks a loader for a file.
//
// # Model
//
// A Song carries the initial playback settings, 64 channels, a 256-entry
// order list, up to 240 patterns of 64-channel rows and up to 236 samples
// (1-indexed). Sample data is always stored signed, 16-bit values little
// endian, stereo frames interleaved, whatever the file used.
//
// # Loading
//
// Loaders are tried in registration order:
//
//	reg := song.NewRegistry()
//	reg.RegisterSong(s3m.Loader{})
//	s, err := reg.LoadSong(source.New(data), 0, logger)
//
// A loader that does not recognise the file returns an error wrapping
// ErrUnsupported and the next one is tried. Any other error ends the
// search. Once a loader commits, the caller gets either a fully built Song
// or no Song at all.
//
// # Error Handling
//
//   - ErrUnsupported: no loader recognised the file
//   - ErrFormat: a loader recognised the file but its structure is broken
//   - ErrFile: the file could not be read
package song
