// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"

	"github.com/ik5/trackload/song"
)

var (
	ErrNotWavFile           = fmt.Errorf("not a WAV file: %w", song.ErrUnsupported)
	ErrUnsupportedWavLayout = fmt.Errorf("unsupported WAV layout: %w", song.ErrFormat)
	ErrOnlyPCMSupported     = fmt.Errorf("only integer PCM WAV supported: %w", song.ErrFormat)
)
