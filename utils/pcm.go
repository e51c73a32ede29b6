// SPDX-License-Identifier: EPL-2.0

package utils

// SignPCM8 flips unsigned 8-bit PCM to signed in place.
func SignPCM8(b []byte) {
	for i := range b {
		b[i] ^= 0x80
	}
}

// SignPCM16LE flips unsigned 16-bit little-endian PCM to signed in place.
// A trailing odd byte is left alone.
func SignPCM16LE(b []byte) {
	for i := 1; i < len(b); i += 2 {
		b[i] ^= 0x80
	}
}

// InterleaveSplit turns split stereo (every left value, then every right
// value) into interleaved frames. width is the size of one value in bytes.
func InterleaveSplit(raw []byte, frames, width int) []byte {
	out := make([]byte, 2*frames*width)
	right := frames * width
	for f := range frames {
		src := f * width
		dst := 2 * f * width
		copy(out[dst:dst+width], raw[src:src+width])
		copy(out[dst+width:dst+2*width], raw[right+src:right+src+width])
	}
	return out
}
