// SPDX-License-Identifier: EPL-2.0

// Package container transparently unwraps compressed module containers.
//
// Loaders never see container formats. The whole file is unpacked first and
// the result is handed to format detection:
//
//	data, _ := os.ReadFile("song.s3m")
//	data = container.Unpack(data)
//
// # Supported Containers
//
//   - MMCMP ("ziRCONia" at offset 0): an adaptive bit-width delta codec.
//     Each block is either stored, 8-bit packed or 16-bit packed.
//   - zstd frames, via github.com/klauspost/compress/zstd.
//
// # Failure Policy
//
// A header that points outside the input, or declares an absurd size, makes
// Unpack return the input unchanged. Damage inside a block stops that block
// only; blocks already decoded are kept and the result still counts as
// unpacked. The output of an MMCMP container is always exactly the declared
// file size.
package container
