// SPDX-License-Identifier: EPL-2.0

// Package vorbis loads Ogg Vorbis files as instrument samples using
// github.com/jfreymuth/oggvorbis.
//
// Decoded float values are clamped to [-1, 1] and stored as signed
// 16-bit PCM. Mono and stereo streams keep their layout; for streams with
// more channels only the first two are kept.
package vorbis
