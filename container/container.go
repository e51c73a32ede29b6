// SPDX-License-Identifier: EPL-2.0

package container

// Format names a recognized container.
type Format string

const (
	FormatNone  Format = ""
	FormatMMCMP Format = "mmcmp"
	FormatZstd  Format = "zstd"
)

type unpacker struct {
	format Format
	unpack func([]byte) ([]byte, bool)
}

// Tried in order; the first one that recognizes the data wins.
var unpackers = []unpacker{
	{FormatMMCMP, unpackMMCMP},
	{FormatZstd, unpackZstd},
}

// Unpack returns the decompressed contents of data when it is a recognized
// container, and data itself otherwise. A container with a corrupt header
// is also returned unchanged.
func Unpack(data []byte) []byte {
	out, _ := UnpackFormat(data)
	return out
}

// UnpackFormat is Unpack that also reports which container was found.
func UnpackFormat(data []byte) ([]byte, Format) {
	for _, u := range unpackers {
		if out, ok := u.unpack(data); ok {
			return out, u.format
		}
	}
	return data, FormatNone
}

// Detect reports the container format by signature alone, without
// validating or decoding anything.
func Detect(data []byte) Format {
	switch {
	case isMMCMP(data):
		return FormatMMCMP
	case isZstd(data):
		return FormatZstd
	}
	return FormatNone
}
