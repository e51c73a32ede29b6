// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"

	"github.com/ik5/trackload/song"
)

var (
	// ErrNotMP3File indicates the file has neither an ID3 tag nor a frame sync
	ErrNotMP3File = fmt.Errorf("not an MP3 file: %w", song.ErrUnsupported)

	// ErrMP3Decode indicates go-mp3 failed on a file that looked like MP3
	ErrMP3Decode = fmt.Errorf("MP3 decoding failed: %w", song.ErrFormat)
)
