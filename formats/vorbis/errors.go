// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"

	"github.com/ik5/trackload/song"
)

var (
	// ErrNotOggFile indicates the file does not start with an Ogg page
	ErrNotOggFile = fmt.Errorf("not an Ogg file: %w", song.ErrUnsupported)

	// ErrVorbisDecode indicates an Ogg file whose Vorbis stream could not be decoded
	ErrVorbisDecode = fmt.Errorf("Vorbis decoding failed: %w", song.ErrFormat)
)
