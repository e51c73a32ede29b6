// SPDX-License-Identifier: EPL-2.0

// Package mp3 loads MP3 files as instrument samples.
//
// Decoding is done by github.com/hajimehoshi/go-mp3, which always
// produces 16-bit little-endian stereo. That output already matches the
// song sample layout and is stored without conversion. The file's sample
// rate becomes the sample's C5 speed.
//
// A file is recognized by a leading ID3 tag or an MPEG frame sync. Once
// recognized, decoder failures are reported as ErrMP3Decode.
package mp3
