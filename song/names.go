// SPDX-License-Identifier: EPL-2.0

package song

import (
	"bytes"
	"strings"
)

// FixName turns a fixed-size name field into a string: at most limit bytes,
// embedded NULs shown as spaces, trailing padding dropped.
func FixName(raw []byte, limit int) string {
	if len(raw) > limit {
		raw = raw[:limit]
	}
	b := make([]byte, len(raw))
	for i, c := range raw {
		if c == 0 {
			c = ' '
		}
		b[i] = c
	}
	return strings.TrimRight(string(b), " ")
}

// CString reads a NUL-terminated name of at most limit bytes.
func CString(raw []byte, limit int) string {
	if len(raw) > limit {
		raw = raw[:limit]
	}
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	return string(raw)
}
