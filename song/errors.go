// SPDX-License-Identifier: EPL-2.0

package song

import "errors"

var (
	// ErrUnsupported indicates a loader did not recognize the file and the
	// next one should be tried
	ErrUnsupported = errors.New("unrecognised file type")

	// ErrFormat indicates a recognized file whose structure is broken
	ErrFormat = errors.New("file format error (corrupt?)")

	// ErrFile indicates the file could not be read
	ErrFile = errors.New("file error")
)
