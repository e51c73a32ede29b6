// SPDX-License-Identifier: EPL-2.0

package modtest

import "encoding/binary"

// MMMode selects how an MMBlock is stored.
type MMMode int

const (
	MMStored MMMode = iota
	MMPacked8
	MMPacked16
)

// MMBlock is one block of a synthetic MMCMP container.
type MMBlock struct {
	Mode   MMMode
	Offset uint32 // destination offset in the unpacked file
	Data   []byte // unpacked content
	Delta  bool   // store differences between values
	Split  int    // bytes per sub-block, 0 for a single sub-block
}

// MMCMP builds a ziRCONia container declaring fileSize unpacked bytes.
// Packed 8-bit blocks start at a bit width of 1 and switch to 8 bits
// before the first value; 16-bit blocks use zigzag values at 16 bits.
func MMCMP(fileSize uint32, blocks ...MMBlock) []byte {
	const hdrSize = 24

	out := make([]byte, hdrSize+4*len(blocks))
	copy(out, "ziRCONia")
	binary.LittleEndian.PutUint16(out[8:], 14)
	binary.LittleEndian.PutUint16(out[10:], 0x1310)
	binary.LittleEndian.PutUint16(out[12:], uint16(len(blocks)))
	binary.LittleEndian.PutUint32(out[14:], fileSize)
	binary.LittleEndian.PutUint32(out[18:], hdrSize)

	for i, blk := range blocks {
		binary.LittleEndian.PutUint32(out[hdrSize+4*i:], uint32(len(out)))
		out = append(out, blk.encode()...)
	}

	for len(out) < 256 {
		out = append(out, 0)
	}
	return out
}

func (blk MMBlock) subBlocks() [][2]uint32 {
	size := len(blk.Data)
	step := blk.Split
	if step <= 0 || step > size {
		step = size
	}
	var subs [][2]uint32
	for off := 0; off < size; off += step {
		n := min(step, size-off)
		subs = append(subs, [2]uint32{blk.Offset + uint32(off), uint32(n)})
	}
	if len(subs) == 0 {
		subs = append(subs, [2]uint32{blk.Offset, 0})
	}
	return subs
}

func (blk MMBlock) encode() []byte {
	var (
		flags     uint16
		ttEntries uint16
		numBits   uint16
		payload   []byte
	)

	switch blk.Mode {
	case MMStored:
		payload = blk.Data
	case MMPacked8:
		flags = 0x0001
		ttEntries = 256
		// identity translation table
		for i := range 256 {
			payload = append(payload, byte(i))
		}
		payload = append(payload, pack8(blk.Data, blk.Delta)...)
	case MMPacked16:
		flags = 0x0001 | 0x0004
		numBits = 15
		payload = pack16(blk.Data, blk.Delta)
	}
	if blk.Delta {
		flags |= 0x0002
	}

	subs := blk.subBlocks()
	b := make([]byte, 20+8*len(subs))
	binary.LittleEndian.PutUint32(b[0:], uint32(len(blk.Data)))
	binary.LittleEndian.PutUint32(b[4:], uint32(len(payload)))
	binary.LittleEndian.PutUint16(b[12:], uint16(len(subs)))
	binary.LittleEndian.PutUint16(b[14:], flags)
	binary.LittleEndian.PutUint16(b[16:], ttEntries)
	binary.LittleEndian.PutUint16(b[18:], numBits)
	for i, sb := range subs {
		binary.LittleEndian.PutUint32(b[20+8*i:], sb[0])
		binary.LittleEndian.PutUint32(b[24+8*i:], sb[1])
	}

	return append(b, payload...)
}

// bitWriter packs values LSB first.
type bitWriter struct {
	out  []byte
	acc  uint64
	bits uint
}

func (w *bitWriter) put(v uint32, n uint) {
	w.acc |= uint64(v&(1<<n-1)) << w.bits
	w.bits += n
	for w.bits >= 8 {
		w.out = append(w.out, byte(w.acc))
		w.acc >>= 8
		w.bits -= 8
	}
}

func (w *bitWriter) bytes() []byte {
	if w.bits > 0 {
		w.out = append(w.out, byte(w.acc))
		w.acc, w.bits = 0, 0
	}
	return w.out
}

func pack8(data []byte, delta bool) []byte {
	var w bitWriter

	// at width 1 a set bit is a command; three more bits give the new
	// width minus one
	w.put(1, 1)
	w.put(7, 3)

	var prev byte
	for _, v := range data {
		if delta {
			v, prev = v-prev, v
		}
		switch {
		case v < 0xF8:
			w.put(uint32(v), 8)
		case v < 0xFF:
			w.put(0xFF, 8)
			w.put(uint32(v-0xF8), 3)
		default:
			w.put(0xFF, 8)
			w.put(7, 3)
			w.put(0, 1)
		}
	}

	// end of block
	w.put(0xFF, 8)
	w.put(7, 3)
	w.put(1, 1)

	return w.bytes()
}

func pack16(data []byte, delta bool) []byte {
	var w bitWriter

	var prev uint16
	for i := 0; i+1 < len(data); i += 2 {
		v := binary.LittleEndian.Uint16(data[i:])
		var d int16
		if delta {
			d = int16(v - prev)
			prev = v
		} else {
			d = int16(v ^ 0x8000)
		}

		z := uint32(d) << 1
		if d < 0 {
			z = uint32(-int32(d))<<1 - 1
		}
		z &= 0xFFFF

		switch {
		case z < 0xFFF0:
			w.put(z, 16)
		case z < 0xFFFF:
			w.put(0xFFFF, 16)
			w.put(z-0xFFF0, 4)
		default:
			w.put(0xFFFF, 16)
			w.put(0x0F, 4)
			w.put(0, 1)
		}
	}

	w.put(0xFFFF, 16)
	w.put(0x0F, 4)
	w.put(1, 1)

	return w.bytes()
}
