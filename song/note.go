// SPDX-License-Identifier: EPL-2.0

package song

import "fmt"

// Note values. Anything from NoteFirst to NoteLast is a playable pitch.
const (
	NoteNone  = 0
	NoteFirst = 1
	NoteLast  = 120
	NoteFade  = 253
	NoteCut   = 254
	NoteOff   = 255
)

// VolEffect is a volume-column command.
type VolEffect uint8

const (
	VolFXNone VolEffect = iota
	VolFXVolume
	VolFXPanning
	VolFXVolSlideUp
	VolFXVolSlideDown
	VolFXFineVolUp
	VolFXFineVolDown
	VolFXVibratoSpeed
	VolFXVibratoDepth
	VolFXPanSlideLeft
	VolFXPanSlideRight
	VolFXTonePortamento
	VolFXPortaUp
	VolFXPortaDown
)

// Effect is an effect-column command in the internal numbering every
// loader translates into.
type Effect uint8

const (
	FXNone Effect = iota
	FXArpeggio
	FXPortamentoUp
	FXPortamentoDown
	FXTonePortamento
	FXVibrato
	FXTonePortaVol
	FXVibratoVol
	FXTremolo
	FXPanning
	FXOffset
	FXVolumeSlide
	FXPositionJump
	FXVolume
	FXPatternBreak
	FXRetrig
	FXSpeed
	FXTempo
	FXTremor
	FXModCmdEx
	FXSpecial
	FXChannelVolume
	FXChannelVolSlide
	FXGlobalVolume
	FXGlobalVolSlide
	FXKeyOff
	FXFineVibrato
	FXPanbrello
	FXPanningSlide
	FXSetEnvPosition
	FXMidi
	FXNoteSlideUp
	FXNoteSlideDown
)

// Note is one pattern cell.
type Note struct {
	Note       uint8
	Instrument uint8
	VolEffect  VolEffect
	VolParam   uint8
	Effect     Effect
	Param      uint8
}

// IsEmpty reports whether the cell carries nothing at all.
func (n Note) IsEmpty() bool { return n == Note{} }

// HasPitch reports whether Note is a playable pitch.
func (n Note) HasPitch() bool { return n.Note >= NoteFirst && n.Note <= NoteLast }

var noteNames = [12]string{"C-", "C#", "D-", "D#", "E-", "F-", "F#", "G-", "G#", "A-", "A#", "B-"}

// NoteName renders a note value the way trackers display it.
func NoteName(v uint8) string {
	switch {
	case v == NoteNone:
		return "..."
	case v == NoteCut:
		return "^^^"
	case v == NoteOff:
		return "==="
	case v == NoteFade:
		return "~~~"
	case v >= NoteFirst && v <= NoteLast:
		v--
		return fmt.Sprintf("%s%d", noteNames[v%12], v/12)
	}
	return "???"
}

// String renders the cell in a compact tracker-like form.
func (n Note) String() string {
	ins := ".."
	if n.Instrument != 0 {
		ins = fmt.Sprintf("%02d", n.Instrument)
	}
	vol := ".."
	if n.VolEffect != VolFXNone {
		vol = fmt.Sprintf("%02d", n.VolParam)
	}
	fx := "...."
	if n.Effect != FXNone {
		fx = fmt.Sprintf("%02X%02X", uint8(n.Effect), n.Param)
	}
	return fmt.Sprintf("%s %s %s %s", NoteName(n.Note), ins, vol, fx)
}
