// SPDX-License-Identifier: EPL-2.0

package container

import (
	"bytes"
	"sync"

	"github.com/klauspost/compress/zstd"
)

var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

var zstdDecPool = sync.Pool{
	New: func() any {
		dec, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderMaxMemory(mmcmpMaxFileSize),
		)
		if err != nil {
			return nil
		}
		return dec
	},
}

func isZstd(data []byte) bool {
	return bytes.HasPrefix(data, zstdMagic)
}

// unpackZstd decodes a zstd frame. Output is capped at the same size as the
// largest MMCMP container.
func unpackZstd(data []byte) ([]byte, bool) {
	if !isZstd(data) {
		return nil, false
	}

	dec, _ := zstdDecPool.Get().(*zstd.Decoder)
	if dec == nil {
		return nil, false
	}
	defer zstdDecPool.Put(dec)

	out, err := dec.DecodeAll(data, nil)
	if err != nil || len(out) == 0 {
		return nil, false
	}
	return out, true
}
