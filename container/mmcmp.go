// SPDX-License-Identifier: EPL-2.0

package container

import (
	"bytes"
	"encoding/binary"
)

const (
	mmcmpMagic       = "ziRCONia"
	mmcmpHeaderSize  = 24
	mmcmpBlockSize   = 20
	mmcmpSubSize     = 8
	mmcmpMinInput    = 256
	mmcmpMaxFileSize = 0x8000000
)

// block flags
const (
	mmComp  = 0x0001
	mmDelta = 0x0002
	mm16Bit = 0x0004
	mmAbs16 = 0x0200
)

var (
	mm8BitCommands = [8]uint32{0x01, 0x03, 0x07, 0x0F, 0x1E, 0x3C, 0x78, 0xF8}
	mm8BitFetch    = [8]uint32{3, 3, 3, 3, 2, 1, 0, 0}

	mm16BitCommands = [16]uint32{
		0x0001, 0x0003, 0x0007, 0x000F, 0x001E, 0x003C, 0x0078, 0x00F0,
		0x01F0, 0x03F0, 0x07F0, 0x0FF0, 0x1FF0, 0x3FF0, 0x7FF0, 0xFFF0,
	}
	mm16BitFetch = [16]uint32{4, 4, 4, 4, 3, 2, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0}
)

type mmHeader struct {
	headerSize uint16
	version    uint16
	blocks     uint16
	fileSize   uint32
	blockTable uint32
}

type mmBlock struct {
	unpackedSize uint32
	packedSize   uint32
	xorCheck     uint32
	subBlocks    uint16
	flags        uint16
	ttEntries    uint16
	numBits      uint16
}

type mmSubBlock struct {
	pos  uint32
	size uint32
}

// bitReader pulls bits LSB first from src[pos:end]. Bits past end read as
// zero.
type bitReader struct {
	src    []byte
	pos    int
	end    int
	bits   uint32
	buffer uint32
}

func (br *bitReader) get(n uint32) uint32 {
	if n == 0 {
		return 0
	}
	for br.bits < 24 {
		var b uint32
		if br.pos < br.end {
			b = uint32(br.src[br.pos])
			br.pos++
		}
		br.buffer |= b << br.bits
		br.bits += 8
	}
	d := br.buffer & ((1 << n) - 1)
	br.buffer >>= n
	br.bits -= n
	return d
}

// mmState is the per-block decoding state: the output cursor inside the
// current sub-block and the running delta value.
type mmState struct {
	out     []byte
	subs    []mmSubBlock
	sub     int
	dest    uint32
	destPos uint32
	size    uint32
	oldVal  uint32
}

func isMMCMP(data []byte) bool {
	return len(data) >= mmcmpMinInput && bytes.Equal(data[:8], []byte(mmcmpMagic))
}

func parseMMHeader(data []byte) (mmHeader, bool) {
	hdr := mmHeader{
		headerSize: binary.LittleEndian.Uint16(data[8:10]),
		version:    binary.LittleEndian.Uint16(data[10:12]),
		blocks:     binary.LittleEndian.Uint16(data[12:14]),
		fileSize:   binary.LittleEndian.Uint32(data[14:18]),
		blockTable: binary.LittleEndian.Uint32(data[18:22]),
	}

	length := uint64(len(data))
	if hdr.headerSize < 14 ||
		hdr.blocks == 0 ||
		hdr.fileSize < 16 ||
		hdr.fileSize > mmcmpMaxFileSize ||
		uint64(hdr.blockTable) >= length ||
		uint64(hdr.blockTable)+4*uint64(hdr.blocks) > length {
		return hdr, false
	}
	return hdr, true
}

// unpackMMCMP expands a ziRCONia container. ok is false when the input is
// not a container or its header is corrupt, in which case the input should
// be used as is. A damaged block stops that block only; everything decoded
// so far is kept.
func unpackMMCMP(data []byte) (out []byte, ok bool) {
	if !isMMCMP(data) {
		return nil, false
	}
	hdr, ok := parseMMHeader(data)
	if !ok {
		return nil, false
	}

	fileSize := hdr.fileSize
	buf := make([]byte, (fileSize+31)&^15)

	for block := range uint32(hdr.blocks) {
		pos := binary.LittleEndian.Uint32(data[hdr.blockTable+4*block:])
		unpackBlock(data, buf, fileSize, uint64(pos))
	}

	return buf[:fileSize], true
}

func unpackBlock(data, buf []byte, fileSize uint32, pos uint64) {
	length := uint64(len(data))
	if pos+mmcmpBlockSize >= length {
		return
	}

	raw := data[pos:]
	blk := mmBlock{
		unpackedSize: binary.LittleEndian.Uint32(raw[0:4]),
		packedSize:   binary.LittleEndian.Uint32(raw[4:8]),
		xorCheck:     binary.LittleEndian.Uint32(raw[8:12]),
		subBlocks:    binary.LittleEndian.Uint16(raw[12:14]),
		flags:        binary.LittleEndian.Uint16(raw[14:16]),
		ttEntries:    binary.LittleEndian.Uint16(raw[16:18]),
		numBits:      binary.LittleEndian.Uint16(raw[18:20]),
	}

	subStart := pos + mmcmpBlockSize
	if subStart+uint64(blk.subBlocks)*mmcmpSubSize >= length {
		return
	}

	subs := make([]mmSubBlock, blk.subBlocks)
	for i := range subs {
		off := subStart + uint64(i)*mmcmpSubSize
		subs[i] = mmSubBlock{
			pos:  binary.LittleEndian.Uint32(data[off:]),
			size: binary.LittleEndian.Uint32(data[off+4:]),
		}
	}
	pos = subStart + uint64(blk.subBlocks)*mmcmpSubSize

	switch {
	case blk.flags&mmComp == 0:
		copyStored(data, buf, fileSize, pos, subs)
	case len(subs) == 0:
		return
	case blk.flags&mm16Bit != 0:
		unpack16(data, buf, pos, blk, subs)
	default:
		unpack8(data, buf, pos, blk, subs)
	}
}

func copyStored(data, buf []byte, fileSize uint32, pos uint64, subs []mmSubBlock) {
	for _, sb := range subs {
		end := uint64(sb.pos) + uint64(sb.size)
		if sb.pos > fileSize || end > uint64(fileSize) {
			return
		}
		if pos+uint64(sb.size) > uint64(len(data)) {
			return
		}
		copy(buf[sb.pos:end], data[pos:pos+uint64(sb.size)])
		pos += uint64(sb.size)
	}
}

func newBitReader(data []byte, pos uint64, blk mmBlock) *bitReader {
	length := uint64(len(data))
	start := min(pos+uint64(blk.ttEntries), length)
	end := min(pos+uint64(blk.packedSize), length)
	return &bitReader{src: data, pos: int(start), end: int(end)}
}

func newMMState(buf []byte, subs []mmSubBlock, unit uint32) *mmState {
	st := &mmState{out: buf, subs: subs}
	st.enter(0, unit)
	return st
}

func (st *mmState) enter(sub int, unit uint32) {
	st.sub = sub
	st.destPos = 0
	if sub < len(st.subs) {
		st.dest = st.subs[sub].pos
		st.size = st.subs[sub].size / unit
	}
}

// advance moves to the next sub-block once the current one is full. It
// reports false when all sub-blocks are done.
func (st *mmState) advance(unit uint32) bool {
	if st.destPos >= st.size {
		st.enter(st.sub+1, unit)
	}
	return st.sub < len(st.subs)
}

// put writes one output unit. It reports false when the write would land
// outside the output buffer.
func (st *mmState) put(v uint32, unit uint32) bool {
	off := uint64(st.dest) + uint64(st.destPos)*uint64(unit)
	if off+uint64(unit) > uint64(len(st.out)) {
		return false
	}
	if unit == 2 {
		binary.LittleEndian.PutUint16(st.out[off:], uint16(v))
	} else {
		st.out[off] = byte(v)
	}
	st.destPos++
	return true
}

func unpack8(data, buf []byte, pos uint64, blk mmBlock, subs []mmSubBlock) {
	if blk.numBits >= uint16(len(mm8BitCommands)) {
		return
	}

	numBits := uint32(blk.numBits)
	br := newBitReader(data, pos, blk)
	st := newMMState(buf, subs, 1)

	for st.sub < len(subs) {
		newVal := uint32(0x100)
		d := br.get(numBits + 1)

		if d >= mm8BitCommands[numBits] {
			fetch := mm8BitFetch[numBits]
			newBits := br.get(fetch) + ((d - mm8BitCommands[numBits]) << fetch)
			if newBits != numBits {
				numBits = newBits & 0x07
			} else {
				if d = br.get(3); d == 7 {
					if br.get(1) != 0 {
						break
					}
					newVal = 0xFF
				} else {
					newVal = 0xF8 + d
				}
			}
		} else {
			newVal = d
		}

		if newVal < 0x100 {
			tt := pos + uint64(newVal)
			var n uint32
			if tt < uint64(len(data)) {
				n = uint32(data[tt])
			}
			if blk.flags&mmDelta != 0 {
				n += st.oldVal
				st.oldVal = n
			}
			if !st.put(n, 1) {
				return
			}
		}

		if !st.advance(1) {
			return
		}
	}
}

func unpack16(data, buf []byte, pos uint64, blk mmBlock, subs []mmSubBlock) {
	if blk.numBits >= uint16(len(mm16BitCommands)) {
		return
	}

	numBits := uint32(blk.numBits)
	br := newBitReader(data, pos, blk)
	st := newMMState(buf, subs, 2)

	for st.sub < len(subs) {
		newVal := uint32(0x10000)
		d := br.get(numBits + 1)

		if d >= mm16BitCommands[numBits] {
			fetch := mm16BitFetch[numBits]
			newBits := br.get(fetch) + ((d - mm16BitCommands[numBits]) << fetch)
			if newBits != numBits {
				numBits = newBits & 0x0F
			} else {
				if d = br.get(4); d == 0x0F {
					if br.get(1) != 0 {
						break
					}
					newVal = 0xFFFF
				} else {
					newVal = 0xFFF0 + d
				}
			}
		} else {
			newVal = d
		}

		if newVal < 0x10000 {
			if newVal&1 != 0 {
				newVal = uint32(-int32((newVal + 1) >> 1))
			} else {
				newVal >>= 1
			}
			if blk.flags&mmDelta != 0 {
				newVal += st.oldVal
				st.oldVal = newVal
			} else if blk.flags&mmAbs16 == 0 {
				newVal ^= 0x8000
			}
			if !st.put(newVal, 2) {
				return
			}
		}

		if !st.advance(2) {
			return
		}
	}
}
