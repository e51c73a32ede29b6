// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"

	"github.com/ik5/trackload/song"
)

var (
	// ErrNotAiffFile indicates the file is not a valid AIFF file
	ErrNotAiffFile = fmt.Errorf("not an AIFF file: %w", song.ErrUnsupported)

	// ErrUnsupportedBitDepth indicates a sample size the loader cannot convert
	ErrUnsupportedBitDepth = fmt.Errorf("unsupported AIFF bit depth: %w", song.ErrFormat)

	// ErrUnsupportedAiffLayout indicates an unsupported AIFF layout
	ErrUnsupportedAiffLayout = fmt.Errorf("unsupported AIFF layout: %w", song.ErrFormat)
)
