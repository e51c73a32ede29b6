// SPDX-License-Identifier: EPL-2.0

package utils

import "encoding/binary"

func Float32ToInt16(x float32) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// Float32ToPCM16LE converts float samples in [-1, 1] into signed 16-bit
// little-endian PCM, two bytes per input value.
func Float32ToPCM16LE(src []float32) []byte {
	out := make([]byte, 2*len(src))
	for i, x := range src {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(Float32ToInt16(x)))
	}
	return out
}
