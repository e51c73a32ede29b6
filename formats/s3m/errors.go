// SPDX-License-Identifier: EPL-2.0

package s3m

import (
	"fmt"

	"github.com/ik5/trackload/song"
)

var (
	ErrNotS3MFile   = fmt.Errorf("not an S3M file: %w", song.ErrUnsupported)
	ErrNotS3IFile   = fmt.Errorf("not an S3I file: %w", song.ErrUnsupported)
	ErrS3ITruncated = fmt.Errorf("S3I sample data truncated: %w", song.ErrFormat)
)
