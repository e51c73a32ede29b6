// SPDX-License-Identifier: EPL-2.0

// Package modtest builds synthetic module files for tests.
package modtest

import "encoding/binary"

// S3M describes a synthetic Scream Tracker 3 module. Zero values give a
// plain ST 3.20 file with unsigned samples and a panning table.
type S3M struct {
	Title        string
	Version      uint16 // Cwt/v, 0x1320 when zero
	FormatInfo   uint16 // 1 signed, 2 unsigned; 2 when zero
	Flags        uint16
	GlobalVolume uint8
	Speed        uint8
	Tempo        uint8
	MixVolume    uint8
	Ultraclick   uint8
	Reserved     uint16
	Special      uint16

	// Channels is the header channel table; nil gives L R R L on the
	// first four channels and the rest disabled.
	Channels []byte

	NoPanTable bool
	Pannings   []byte

	Orders   []byte
	Samples  []S3MSample
	Patterns []*Pattern // nil entries get a zero parapointer
}

// S3MSample is one sample header plus its raw stored data.
type S3MSample struct {
	Type       byte // 1 PCM, 2 AdLib
	Filename   string
	Name       string
	Length     uint32
	LoopStart  uint32
	LoopEnd    uint32
	Volume     byte
	Flags      byte // 1 loop, 2 stereo, 4 16-bit
	C5Speed    uint32
	GUSAddress uint16
	Adlib      [12]byte
	Data       []byte

	// DataPara overrides the data parapointer when nonzero.
	DataPara uint32
}

// DefaultChannels is the table used when S3M.Channels is nil.
var DefaultChannels = func() []byte {
	c := make([]byte, 32)
	for i := range c {
		c[i] = 0xFF
	}
	c[0], c[1], c[2], c[3] = 0, 8, 9, 1
	return c
}()

func align16(b []byte) []byte {
	for len(b)%16 != 0 {
		b = append(b, 0)
	}
	return b
}

// Bytes lays the module out in file order: header, orders, parapointers,
// panning, then sample headers, sample data and patterns on 16-byte
// boundaries.
func (m *S3M) Bytes() []byte {
	version := m.Version
	if version == 0 {
		version = 0x1320
	}
	ffi := m.FormatInfo
	if ffi == 0 {
		ffi = 2
	}
	channels := m.Channels
	if channels == nil {
		channels = DefaultChannels
	}

	hdr := make([]byte, 0x60)
	copy(hdr[0:25], m.Title)
	hdr[0x1C] = 0x1A
	hdr[0x1D] = 16
	binary.LittleEndian.PutUint16(hdr[0x20:], uint16(len(m.Orders)))
	binary.LittleEndian.PutUint16(hdr[0x22:], uint16(len(m.Samples)))
	binary.LittleEndian.PutUint16(hdr[0x24:], uint16(len(m.Patterns)))
	binary.LittleEndian.PutUint16(hdr[0x26:], m.Flags)
	binary.LittleEndian.PutUint16(hdr[0x28:], version)
	binary.LittleEndian.PutUint16(hdr[0x2A:], ffi)
	copy(hdr[0x2C:], "SCRM")
	hdr[0x30] = m.GlobalVolume
	hdr[0x31] = m.Speed
	hdr[0x32] = m.Tempo
	hdr[0x33] = m.MixVolume
	hdr[0x34] = m.Ultraclick
	if !m.NoPanTable {
		hdr[0x35] = 0xFC
	}
	binary.LittleEndian.PutUint16(hdr[0x36:], m.Reserved)
	binary.LittleEndian.PutUint16(hdr[0x3E:], m.Special)
	copy(hdr[0x40:0x60], channels)

	out := append(hdr, m.Orders...)

	smpTable := len(out)
	out = append(out, make([]byte, 2*len(m.Samples))...)
	patTable := len(out)
	out = append(out, make([]byte, 2*len(m.Patterns))...)

	if !m.NoPanTable {
		pans := make([]byte, 32)
		copy(pans, m.Pannings)
		out = append(out, pans...)
	}

	// sample headers
	headers := make([]int, len(m.Samples))
	for i := range m.Samples {
		out = align16(out)
		headers[i] = len(out)
		binary.LittleEndian.PutUint16(out[smpTable+2*i:], uint16(len(out)>>4))
		out = append(out, m.Samples[i].header()...)
	}

	// sample data
	for i, smp := range m.Samples {
		para := smp.DataPara
		if len(smp.Data) > 0 && para == 0 {
			out = align16(out)
			para = uint32(len(out) >> 4)
			out = append(out, smp.Data...)
		}
		h := out[headers[i]:]
		h[13] = byte(para >> 16)
		h[14] = byte(para)
		h[15] = byte(para >> 8)
	}

	for i, p := range m.Patterns {
		if p == nil {
			continue
		}
		out = align16(out)
		binary.LittleEndian.PutUint16(out[patTable+2*i:], uint16(len(out)>>4))
		data := p.Bytes()
		length := p.Length
		if length == 0 {
			length = uint16(len(data))
		}
		out = binary.LittleEndian.AppendUint16(out, length)
		out = append(out, data...)
	}

	return out
}

func (s S3MSample) header() []byte {
	h := make([]byte, 0x50)
	h[0] = s.Type
	copy(h[1:13], s.Filename)
	switch s.Type {
	case 2:
		copy(h[0x10:0x1C], s.Adlib[:])
		copy(h[0x4C:], "SCRI")
	default:
		binary.LittleEndian.PutUint32(h[0x10:], s.Length)
		binary.LittleEndian.PutUint32(h[0x14:], s.LoopStart)
		binary.LittleEndian.PutUint32(h[0x18:], s.LoopEnd)
		copy(h[0x4C:], "SCRS")
	}
	h[0x1C] = s.Volume
	h[0x1F] = s.Flags
	binary.LittleEndian.PutUint32(h[0x20:], s.C5Speed)
	binary.LittleEndian.PutUint16(h[0x28:], s.GUSAddress)
	copy(h[0x30:0x30+25], s.Name)
	return h
}

// S3I returns a standalone instrument file: the sample header with its
// data right after it.
func (s S3MSample) S3I() []byte {
	h := s.header()
	if len(s.Data) > 0 {
		// data parapointer 5 = offset 0x50
		h[14] = 0x05
	}
	return append(h, s.Data...)
}

// Cell is one packed pattern entry. Nil fields are not stored.
type Cell struct {
	Channel    int
	Note       *byte // octave in the high nibble, semitone in the low
	Instrument byte
	Volume     *byte
	Command    byte // 1 is A
	Param      byte
	HasEffect  bool
}

// Pattern accumulates a packed pattern stream.
type Pattern struct {
	// Length overrides the stored length word when nonzero.
	Length uint16

	data []byte
}

// Put appends one cell to the current row.
func (p *Pattern) Put(c Cell) *Pattern {
	mask := byte(c.Channel & 0x1F)
	if c.Note != nil {
		mask |= 0x20
	}
	if c.Volume != nil {
		mask |= 0x40
	}
	if c.HasEffect {
		mask |= 0x80
	}
	p.data = append(p.data, mask)
	if c.Note != nil {
		p.data = append(p.data, *c.Note, c.Instrument)
	}
	if c.Volume != nil {
		p.data = append(p.data, *c.Volume)
	}
	if c.HasEffect {
		p.data = append(p.data, c.Command, c.Param)
	}
	return p
}

// EndRow closes the current row.
func (p *Pattern) EndRow() *Pattern {
	p.data = append(p.data, 0)
	return p
}

// EndRows closes n rows.
func (p *Pattern) EndRows(n int) *Pattern {
	for range n {
		p.EndRow()
	}
	return p
}

// Raw appends bytes as they are.
func (p *Pattern) Raw(b ...byte) *Pattern {
	p.data = append(p.data, b...)
	return p
}

// Bytes returns the packed stream without the length word.
func (p *Pattern) Bytes() []byte {
	return p.data
}

// Byte returns a pointer to b, for Cell fields.
func Byte(b byte) *byte { return &b }
