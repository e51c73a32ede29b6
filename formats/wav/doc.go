// SPDX-License-Identifier: EPL-2.0

// Package wav loads WAV files as instrument samples.
//
// It uses the github.com/go-audio/wav decoder for chunk parsing and
// converts the decoded PCM into the song sample layout.
//
// # Supported Formats
//
//   - Integer PCM, 8 to 32 bits (wider data is reduced to 16 bits)
//   - Mono and stereo (extra channels are dropped)
//   - Any sample rate, stored as the sample's C5 speed
//
// # Loading Samples
//
//	smp, err := wav.SampleLoader{}.LoadSample(source.New(data))
//	if errors.Is(err, song.ErrUnsupported) {
//	    // not a WAV file
//	}
//
// # Error Handling
//
//   - ErrNotWavFile: no RIFF/WAVE signature, wraps song.ErrUnsupported
//   - ErrUnsupportedWavLayout: broken chunks or bit depth, wraps song.ErrFormat
//   - ErrOnlyPCMSupported: compressed or float data, wraps song.ErrFormat
package wav
