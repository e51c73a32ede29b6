// SPDX-License-Identifier: EPL-2.0

package s3m

import (
	"bytes"

	"github.com/ik5/trackload/song"
)

const infoTitleLength = 27

// Probe describes an S3M file without decoding it.
func (Loader) Probe(data []byte) (song.Info, bool) {
	if len(data) <= tagOffset+len(tagSCRM) || !bytes.Equal(data[tagOffset:tagOffset+4], tagSCRM) {
		return song.Info{}, false
	}

	return song.Info{
		Format:      "s3m",
		Description: "Scream Tracker 3",
		Title:       song.CString(data, infoTitleLength),
	}, true
}
