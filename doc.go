// SPDX-License-Identifier: EPL-2.0

// Package trackload decodes tracker music modules into a validated song
// model.
//
// A Decoder strips any container around the file (MMCMP or zstd), then
// offers the bytes to each registered song loader in turn. The first
// loader that recognizes the signature commits and either returns a
// complete song or an error; a structurally broken file never yields a
// partial song.
//
// # Quick Start
//
//	var dec trackload.Decoder
//	s, err := dec.DecodeFile("song.s3m")
//	if err != nil {
//	    // errors.Is(err, song.ErrUnsupported) when no loader matched
//	    // errors.Is(err, song.ErrFormat) when the file is damaged
//	    // errors.Is(err, song.ErrFile) when it could not be read
//	}
//	fmt.Println(s.Title, s.TrackerID)
//
// # Supported Formats
//
// Modules:
//   - Scream Tracker 3 (S3M) via formats/s3m
//
// Standalone samples, tried in this order:
//   - Scream Tracker 3 instruments (S3I) via formats/s3m
//   - WAV via formats/wav
//   - AIFF via formats/aiff
//   - Ogg Vorbis via formats/vorbis
//   - MP3 via formats/mp3
//
// # Load Flags
//
// song.LoadNoSamples skips sample payloads and song.LoadNoPatterns skips
// pattern data. Headers, channels and orders are always decoded, which is
// enough for a file browser or a quick summary.
//
// # Warnings
//
// Non-fatal problems, such as a truncated pattern, are written to the
// Decoder's logger and collected in Song.Warnings.
//
// # Thread Safety
//
// Decoding shares no state between calls. A Decoder may be used from
// several goroutines, and every call on the same bytes gives the same
// song.
package trackload
