// SPDX-License-Identifier: EPL-2.0

package s3m

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"log"

	"github.com/ik5/trackload/song"
	"github.com/ik5/trackload/source"
)

const (
	headerSize    = 0x60
	tagOffset     = 44
	channelsInHdr = 32
)

var tagSCRM = []byte("SCRM")

// misc flags gathered while loading, used by tracker identification
const (
	miscUnsigned = 1 << iota
	miscChanPan  // the 0xFC byte: per-channel panning table present
)

// channel types in the header table, after the mute bit is masked off
const (
	chanLeftEnd  = 0x08 // 00-07: L1-L8
	chanRightEnd = 0x10 // 08-0F: R1-R8
	chanAdlibEnd = 0x19 // 10-18: A1-A9
)

// default pannings in ST3 units (0..64) before scaling
const (
	panLeft   = 14
	panRight  = 50
	panCenter = 32
)

// Loader decodes Scream Tracker 3 modules.
type Loader struct{}

func (Loader) Name() string { return "s3m" }

// header is the fixed 0x60-byte S3M header.
type header struct {
	title      []byte
	orders     uint16
	samples    uint16
	patterns   uint16
	flags      uint16
	version    uint16
	formatInfo uint16
	globalVol  uint8
	speed      uint8
	tempo      uint8
	mixVol     uint8
	ultraclick uint8
	panMarker  uint8
	reserved   uint16
	special    uint16
	channels   []byte
}

func parseHeader(b []byte) header {
	return header{
		title:      b[0:song.MaxTitle],
		orders:     binary.LittleEndian.Uint16(b[0x20:]),
		samples:    binary.LittleEndian.Uint16(b[0x22:]),
		patterns:   binary.LittleEndian.Uint16(b[0x24:]),
		flags:      binary.LittleEndian.Uint16(b[0x26:]),
		version:    binary.LittleEndian.Uint16(b[0x28:]),
		formatInfo: binary.LittleEndian.Uint16(b[0x2A:]),
		globalVol:  b[0x30],
		speed:      b[0x31],
		tempo:      b[0x32],
		mixVol:     b[0x33],
		ultraclick: b[0x34],
		panMarker:  b[0x35],
		reserved:   binary.LittleEndian.Uint16(b[0x36:]),
		special:    binary.LittleEndian.Uint16(b[0x3E:]),
		channels:   b[0x40:0x60],
	}
}

// decoder carries the state of one LoadSong call.
type decoder struct {
	src    *source.Source
	flags  song.LoadFlags
	logger *log.Logger
	song   *song.Song

	hdr   header
	misc  int
	adlib uint32 // bitset of AdLib channels

	sampleParas  []uint16
	patternParas []uint16
	dataParas    []uint32
	layouts      []pcmLayout

	gusAddresses uint16
	anySamples   bool
}

// LoadSong decodes an S3M module. Sections are read in file order: header,
// channel table, orders, parapointers, panning, sample headers, sample
// data, patterns.
func (Loader) LoadSong(src *source.Source, flags song.LoadFlags, logger *log.Logger) (*song.Song, error) {
	if logger == nil {
		logger = log.Default()
	}

	if !hasTag(src) {
		return nil, ErrNotS3MFile
	}
	if src.Len() < headerSize {
		return nil, fmt.Errorf("header needs %d bytes, have %d: %w", headerSize, src.Len(), song.ErrFormat)
	}

	d := &decoder{
		src:    src,
		flags:  flags,
		logger: logger,
		song:   song.New(),
		misc:   miscUnsigned | miscChanPan,
	}

	if err := d.readHeader(); err != nil {
		return nil, err
	}
	d.readChannels()
	d.readOrders()
	if err := d.readParapointers(); err != nil {
		return nil, err
	}
	d.readPanning()
	d.readSampleHeaders()

	if flags&song.LoadNoSamples == 0 {
		d.readSampleData()
	}

	// Mixing volume is not used with the GUS driver.
	if d.gusAddresses > 1 {
		d.song.MixingVolume = 48
	}

	if flags&song.LoadNoPatterns == 0 {
		d.readPatterns()
	}

	d.song.TrackerID = Identify(d.fingerprint())

	return d.song, nil
}

func hasTag(src *source.Source) bool {
	if _, err := src.Seek(tagOffset, io.SeekStart); err != nil {
		return false
	}
	return bytes.Equal(src.Take(len(tagSCRM)), tagSCRM)
}

func (d *decoder) warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	d.logger.Printf("s3m: %s", msg)
	d.song.Warnings = append(d.song.Warnings, msg)
}

func (d *decoder) readHeader() error {
	raw, err := d.src.Slice(0, headerSize)
	if err != nil {
		return fmt.Errorf("header: %w", song.ErrFormat)
	}
	h := parseHeader(raw)
	d.hdr = h

	if h.orders > song.MaxOrders {
		return fmt.Errorf("%d orders, max %d: %w", h.orders, song.MaxOrders, song.ErrFormat)
	}
	if h.samples > song.MaxSamples {
		return fmt.Errorf("%d samples, max %d: %w", h.samples, song.MaxSamples, song.ErrFormat)
	}
	if h.patterns > song.MaxPatterns {
		return fmt.Errorf("%d patterns, max %d: %w", h.patterns, song.MaxPatterns, song.ErrFormat)
	}

	s := d.song
	s.Title = song.CString(h.title, song.MaxTitle)
	s.Flags = song.SongITOldEffects

	// ancient files store signed samples
	if h.formatInfo == 1 {
		d.misc &^= miscUnsigned
	}

	s.InitialGlobalVolume = int(h.globalVol) << 1

	// ST3 would keep whatever speed/tempo the player had before loading.
	s.InitialSpeed = int(h.speed)
	if s.InitialSpeed == 0 {
		s.InitialSpeed = 6
	}
	// 32 is ignored by Scream Tracker too.
	s.InitialTempo = int(h.tempo)
	if s.InitialTempo <= 32 {
		s.InitialTempo = 125
	}

	mv := int(h.mixVol)
	if mv&0x80 != 0 {
		mv ^= 0x80
	} else {
		s.Flags |= song.SongNoStereo
	}
	s.MixingVolume = mv

	if h.panMarker != 0xFC {
		d.misc &^= miscChanPan
	}

	return nil
}

// readChannels decodes the 32 channel settings. 0xFF is a disabled
// channel and any channel with the high bit set is muted. Types past 0x18
// do not play in ST3 and are treated as disabled.
func (d *decoder) readChannels() {
	s := d.song
	for n, c := range d.hdr.channels {
		ch := &s.Channels[n]
		ch.Flags = 0
		if c&0x80 != 0 {
			ch.Flags |= song.ChannelMute
			c &^= 0x80
		}
		switch {
		case c < chanLeftEnd:
			ch.Panning = panLeft
		case c < chanRightEnd:
			ch.Panning = panRight
		case c < chanAdlibEnd:
			ch.Panning = panCenter
			ch.Flags |= song.ChannelAdlib
			d.adlib |= 1 << n
		default:
			ch.Panning = panCenter
			ch.Flags |= song.ChannelMute
		}
		ch.Volume = 64
	}
	for n := channelsInHdr; n < song.MaxChannels; n++ {
		s.Channels[n] = song.Channel{Panning: panCenter, Volume: 64, Flags: song.ChannelMute}
	}

	// Schism Tracker before 2018-11-12 played AdLib instruments louder
	// than ST3.
	v := d.hdr.version
	if d.adlib != 0 && v >= 0x4000 && v < 0x4D33 {
		s.MixingVolume = s.MixingVolume * 2274 / 4096
	}
}

func (d *decoder) isAdlib(channel int) bool {
	return channel < channelsInHdr && d.adlib&(1<<channel) != 0
}

func (d *decoder) readOrders() {
	d.src.Seek(headerSize, io.SeekStart)
	n := int(d.hdr.orders)
	d.src.Fill(d.song.Orders[:n])
	for i := n; i < song.MaxOrders; i++ {
		d.song.Orders[i] = song.OrderLast
	}
}

// readParapointers loads the sample and pattern offset tables. Both tables
// must lie inside the file.
func (d *decoder) readParapointers() error {
	start := int64(headerSize) + int64(d.hdr.orders)
	size := 2 * (int64(d.hdr.samples) + int64(d.hdr.patterns))
	if err := d.src.Check(start, size); err != nil {
		return fmt.Errorf("parapointer tables: %w: %w", song.ErrFormat, err)
	}

	d.src.Seek(start, io.SeekStart)
	d.sampleParas = make([]uint16, d.hdr.samples)
	for i := range d.sampleParas {
		d.sampleParas[i] = d.src.Uint16()
	}
	d.patternParas = make([]uint16, d.hdr.patterns)
	for i := range d.patternParas {
		d.patternParas[i] = d.src.Uint16()
	}
	return nil
}

// readPanning applies the optional per-channel default panning table that
// follows the parapointers, then scales every channel into 0..256.
func (d *decoder) readPanning() {
	s := d.song
	if d.misc&miscChanPan != 0 {
		var pans [channelsInHdr]byte
		d.src.Fill(pans[:])
		for n, c := range pans {
			// ST3 before 3.21 ignores stored panning on AdLib channels
			if c&0x20 != 0 && (!d.isAdlib(n) || d.hdr.version > 0x1320) {
				s.Channels[n].Panning = (int(c&0x0F) << 2) + 2
			}
		}
	}

	for n := range s.Channels {
		s.Channels[n].Panning *= 4
	}
}

// seekPara converts a parapointer into an absolute offset and moves there.
// Zero pointers are absent data; pointers outside the file are reported
// and not followed.
func (d *decoder) seekPara(para uint32, what string, index int) bool {
	if para == 0 {
		return false
	}
	off := int64(para) << 4
	if off >= d.src.Len() {
		d.warnf("%s %d: offset %#x is past end of file (%d bytes)", what, index, off, d.src.Len())
		return false
	}
	_, err := d.src.Seek(off, io.SeekStart)
	return err == nil
}

func (d *decoder) readSampleHeaders() {
	n := len(d.sampleParas)
	d.dataParas = make([]uint32, n)
	d.layouts = make([]pcmLayout, n)

	for i, para := range d.sampleParas {
		slot := song.NewSample()
		d.song.Samples[i+1] = slot

		if !d.seekPara(uint32(para), "sample", i+1) {
			continue
		}

		var raw [sampleHeaderSize]byte
		d.src.Fill(raw[:])

		sh := parseSampleHeader(raw[:], d.misc&miscUnsigned != 0)
		*slot = *sh.sample
		d.dataParas[i] = sh.dataPara
		d.layouts[i] = sh.layout
		d.gusAddresses |= sh.gusAddress

		if sh.sample.Kind == song.SampleKindPCM && sh.sample.Length != 0 {
			d.anySamples = true
		}
	}
}

func (d *decoder) readSampleData() {
	for i := range d.sampleParas {
		smp := d.song.Samples[i+1]
		if smp.Kind != song.SampleKindPCM || smp.Length == 0 {
			continue
		}
		if !d.seekPara(d.dataParas[i], "sample data", i+1) {
			continue
		}
		readPCM(d.src, smp, d.layouts[i])
	}
}

func (d *decoder) readPatterns() {
	for n, para := range d.patternParas {
		if !d.seekPara(uint32(para), "pattern", n) {
			continue
		}
		d.song.Patterns[n] = d.readPattern(n, int64(para)<<4)
	}
}

// readPattern decodes one packed pattern. Each row is a run of
// (mask, fields...) groups ended by a zero mask.
func (d *decoder) readPattern(n int, start int64) *song.Pattern {
	src := d.src
	end := start + int64(src.Uint16()) + 2

	p := song.NewPattern(song.DefaultRows)
	row := 0
	var fields [5]byte

	for row < song.DefaultRows && src.Tell() < end {
		mask, err := src.ReadByte()
		if err != nil {
			p.Truncated = true
			break
		}
		if mask == 0 {
			row++
			continue
		}

		size := 0
		if mask&0x20 != 0 {
			size += 2
		}
		if mask&0x40 != 0 {
			size++
		}
		if mask&0x80 != 0 {
			size += 2
		}
		if src.Fill(fields[:size]) < size {
			p.Truncated = true
			break
		}

		chn := int(mask & 0x1F)
		note := p.Note(row, chn)
		f := fields[:size]

		if mask&0x20 != 0 {
			note.Note = d.decodeNote(f[0], chn)
			note.Instrument = f[1]
			f = f[2:]
		}
		if mask&0x40 != 0 {
			note.VolEffect, note.VolParam = decodeVolume(f[0])
			f = f[1:]
		}
		if mask&0x80 != 0 {
			note.Effect, note.Param = importEffect(f[0], f[1])
			applySpecial(note)
		}
	}

	p.Decoded = row
	if p.Truncated {
		d.warnf("pattern %d: file truncated after %d rows", n, row)
	}
	return p
}

// decodeNote maps the packed octave/semitone byte onto the note range.
func (d *decoder) decodeNote(b byte, chn int) uint8 {
	switch b {
	case 255:
		return song.NoteNone
	case 254:
		if d.isAdlib(chn) {
			return song.NoteOff
		}
		return song.NoteCut
	}
	v := int(b>>4)*12 + int(b&0x0F) + 13
	if v > song.NoteLast {
		return song.NoteNone
	}
	return uint8(v)
}

func decodeVolume(b byte) (song.VolEffect, uint8) {
	switch {
	case b == 255:
		return song.VolFXNone, 0
	case b >= 128 && b <= 192:
		// ModPlug panning in the volume column
		return song.VolFXPanning, b - 128
	case b > 64:
		return song.VolFXVolume, 64
	}
	return song.VolFXVolume, b
}

// applySpecial mimics ST3's SD0 and SC0: a zero-tick note delay wipes the
// whole cell, a zero-tick note cut is dropped.
func applySpecial(note *song.Note) {
	if note.Effect != song.FXSpecial {
		return
	}
	switch note.Param {
	case 0xD0:
		*note = song.Note{}
	case 0xC0:
		note.Effect = song.FXNone
		note.Param = 0
	}
}

func (d *decoder) fingerprint() Fingerprint {
	return Fingerprint{
		Version:       d.hdr.version,
		Reserved:      d.hdr.reserved,
		Special:       d.hdr.special,
		Flags:         d.hdr.flags,
		Ultraclick:    d.hdr.ultraclick,
		Orders:        int(d.hdr.orders),
		StoredPanning: d.misc&miscChanPan != 0,
		SignedSamples: d.misc&miscUnsigned == 0,
		GUSAddresses:  d.gusAddresses,
		AnySamples:    d.anySamples,
	}
}
