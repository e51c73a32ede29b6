// SPDX-License-Identifier: EPL-2.0

// Package s3m decodes Scream Tracker 3 modules (.s3m) and instruments
// (.s3i) into the song model.
//
// # Decoding Modules
//
// Loader implements song.SongLoader and song.Prober:
//
//	src := source.New(data)
//	s, err := s3m.Loader{}.LoadSong(src, 0, nil)
//	if errors.Is(err, song.ErrUnsupported) {
//	    // not an S3M file, try another loader
//	}
//
// A file is recognised by the "SCRM" tag at offset 44. From that point on
// every failure wraps song.ErrFormat. Problems that only affect a part of
// the file, such as a pattern cut short by the end of the file or a
// parapointer past the end, are logged and collected in Song.Warnings.
//
// # File Layout
//
// An S3M file is:
//   - a 0x60-byte header with the counts, speed, tempo, volumes and the
//     32-entry channel table
//   - the order list
//   - the sample and pattern parapointers (offsets divided by 16)
//   - an optional 32-byte channel panning table, present when the header
//     byte at 0x35 is 0xFC
//   - 0x50-byte sample headers, sample data and packed patterns, each
//     wherever its parapointer says
//
// Sample data is converted to signed values with interleaved stereo
// frames. Effects are translated into the song.Effect numbering.
//
// # Tracker Identification
//
// Many trackers save S3M files. Identify guesses which one wrote a file
// from the version field and the quirks left in the header; the result is
// stored in Song.TrackerID.
package s3m
