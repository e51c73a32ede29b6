// SPDX-License-Identifier: EPL-2.0

package s3m

import (
	"encoding/binary"
	"io"

	"github.com/ik5/trackload/song"
	"github.com/ik5/trackload/source"
	"github.com/ik5/trackload/utils"
)

const sampleHeaderSize = 0x50

// sample types
const (
	typeNone  = 0
	typePCM   = 1
	typeAdlib = 2 // AdLib melodic instrument
)

// sample header flags
const (
	flagLoop   = 1
	flagStereo = 2
	flag16Bit  = 4
)

// pcmLayout is how sample data is stored in the file.
type pcmLayout struct {
	unsigned bool
	wide     bool
	stereo   bool
}

func (l pcmLayout) frameSize() int64 {
	n := int64(1)
	if l.wide {
		n = 2
	}
	if l.stereo {
		n *= 2
	}
	return n
}

type sampleHeader struct {
	sample     *song.Sample
	dataPara   uint32
	layout     pcmLayout
	gusAddress uint16
	tag        []byte
}

// parseSampleHeader decodes an 0x50-byte sample header, the same record
// used inside modules and by standalone S3I files.
func parseSampleHeader(b []byte, unsigned bool) sampleHeader {
	smp := song.NewSample()
	typ := b[0]

	smp.Filename = song.CString(b[1:13], song.MaxFilename)
	smp.Name = song.FixName(b[0x30:0x30+song.MaxSampleName], song.MaxSampleName)

	sh := sampleHeader{
		sample:     smp,
		gusAddress: binary.LittleEndian.Uint16(b[0x28:]),
		tag:        b[0x4C:0x50],
		layout:     pcmLayout{unsigned: unsigned},
	}

	// memseg is a 24-bit parapointer stored high byte first
	sh.dataPara = uint32(b[14]) | uint32(b[15])<<8 | uint32(b[13])<<16

	smp.Volume = int(min(b[0x1C], 64)) * 4
	smp.C5Speed = binary.LittleEndian.Uint32(b[0x20:])
	flags := b[0x1F]

	switch typ {
	case typePCM:
		smp.Kind = song.SampleKindPCM
		smp.Length = min(binary.LittleEndian.Uint32(b[0x10:]), song.MaxSampleLength)
		smp.LoopStart = binary.LittleEndian.Uint32(b[0x14:])
		smp.LoopEnd = binary.LittleEndian.Uint32(b[0x18:])
		if flags&flagLoop != 0 {
			smp.Flags |= song.SampleLoop
		}
		if flags&flagStereo != 0 {
			smp.Flags |= song.SampleStereo
			sh.layout.stereo = true
		}
		if flags&flag16Bit != 0 {
			smp.Flags |= song.Sample16Bit
			sh.layout.wide = true
		}
	case typeAdlib:
		smp.Kind = song.SampleKindAdlib
		smp.Flags |= song.SampleAdlib
		copy(smp.AdlibBytes[:], b[0x10:0x10+song.AdlibParamsLength])
		smp.Length = 1
		// AdLib instruments with a bogus rate play at the default one
		if smp.C5Speed < 1000 || smp.C5Speed > 0xFFFF {
			smp.C5Speed = song.DefaultC5Speed
		}
	default:
		smp.Kind = song.SampleKindNone
	}

	return sh
}

// readPCM reads sample data at the current position into the canonical
// layout. The length is trimmed to the frames actually present.
func readPCM(src *source.Source, smp *song.Sample, layout pcmLayout) {
	off := src.Tell()
	fs := layout.frameSize()
	frames := min(int64(smp.Length), (src.Len()-off)/fs)
	if frames <= 0 {
		smp.Length = 0
		smp.AdjustLoop()
		return
	}

	raw, err := src.Slice(off, frames*fs)
	if err != nil {
		smp.Length = 0
		smp.AdjustLoop()
		return
	}
	src.Seek(off+frames*fs, io.SeekStart)

	width := 1
	if layout.wide {
		width = 2
	}

	var data []byte
	if layout.stereo {
		// stored as a full left channel followed by a full right channel
		data = utils.InterleaveSplit(raw, int(frames), width)
	} else {
		data = append([]byte(nil), raw...)
	}

	if layout.unsigned {
		if layout.wide {
			utils.SignPCM16LE(data)
		} else {
			utils.SignPCM8(data)
		}
	}

	smp.Length = uint32(frames)
	smp.Data = data
	smp.AdjustLoop()
}
