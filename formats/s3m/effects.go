// SPDX-License-Identifier: EPL-2.0

package s3m

import "github.com/ik5/trackload/song"

// effectLetters maps ST3 command letters A..Z onto internal effects.
var effectLetters = [...]song.Effect{
	'A': song.FXSpeed,
	'B': song.FXPositionJump,
	'C': song.FXPatternBreak,
	'D': song.FXVolumeSlide,
	'E': song.FXPortamentoDown,
	'F': song.FXPortamentoUp,
	'G': song.FXTonePortamento,
	'H': song.FXVibrato,
	'I': song.FXTremor,
	'J': song.FXArpeggio,
	'K': song.FXVibratoVol,
	'L': song.FXTonePortaVol,
	'M': song.FXChannelVolume,
	'N': song.FXChannelVolSlide,
	'O': song.FXOffset,
	'P': song.FXPanningSlide,
	'Q': song.FXRetrig,
	'R': song.FXTremolo,
	'S': song.FXSpecial,
	'T': song.FXTempo,
	'U': song.FXFineVibrato,
	'V': song.FXGlobalVolume,
	'W': song.FXGlobalVolSlide,
	'X': song.FXPanning,
	'Y': song.FXPanbrello,
	'Z': song.FXMidi,
}

// importEffect translates a stored command (1 = A) and its parameter.
// Unknown commands become FXNone.
func importEffect(cmd, param byte) (song.Effect, byte) {
	letter := int(cmd) + 0x40
	if cmd == 0 || letter >= len(effectLetters) {
		return song.FXNone, param
	}
	fx := effectLetters[letter]
	if fx == song.FXNone {
		return song.FXNone, param
	}

	switch letter {
	case 'C':
		// pattern break rows are stored as BCD
		param = (param>>4)*10 + param&0x0F
	case 'S':
		// SAx is ST3's stereo control: S8x with bit 3 of x flipped
		if param&0xF0 == 0xA0 {
			param = 0x80 | (param&0x0F ^ 8)
		}
	case 'V':
		// global volume is 0..64 in ST3 and 0..128 internally
		if param < 0x80 {
			param <<= 1
		} else {
			param = 0xFF
		}
	case 'X':
		switch {
		case param == 0xA4:
			// surround
			fx = song.FXSpecial
			param = 0x91
		case param > 0x7F:
			param = 0xFF
		default:
			param <<= 1
		}
	}

	return fx, param
}
