// SPDX-License-Identifier: EPL-2.0

package source

import "errors"

var (
	// ErrOutOfRange indicates a seek or slice outside the buffer
	ErrOutOfRange = errors.New("offset out of range")

	// ErrIsDirectory indicates Open was given a directory
	ErrIsDirectory = errors.New("is a directory")
)
