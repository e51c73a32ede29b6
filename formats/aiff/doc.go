// SPDX-License-Identifier: EPL-2.0

// Package aiff loads AIFF files as instrument samples using
// github.com/go-audio/aiff.
//
// Big-endian signed PCM is converted to the little-endian song sample
// layout. Data wider than 16 bits is reduced to 16 bits.
package aiff
