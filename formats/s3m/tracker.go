// SPDX-License-Identifier: EPL-2.0

package s3m

import (
	"fmt"
	"time"
)

// UnknownTracker is reported when nothing in the header points at a known
// tracker.
const UnknownTracker = "Unknown tracker"

// Fingerprint holds the header quirks trackers leave behind in files they
// save as S3M.
type Fingerprint struct {
	Version       uint16 // Cwt/v field
	Reserved      uint16
	Special       uint16
	Flags         uint16
	Ultraclick    uint8
	Orders        int
	StoredPanning bool
	SignedSamples bool
	GUSAddresses  uint16
	AnySamples    bool
}

// Identify names the tracker that most likely wrote a file. It never
// fails; anything it cannot place is UnknownTracker.
func Identify(fp Fingerprint) string {
	v := fp.Version
	major, minor := int(v&0xF00)>>8, int(v&0xFF)

	// ModPlug and Velvet Studio both claim to be ST 3.20.
	if v == 0x1320 {
		unsignedOnly := !fp.SignedSamples && !fp.StoredPanning
		switch {
		case fp.Special == 0 && fp.Ultraclick == 0 && fp.Flags&^0x50 == 0 &&
			!fp.SignedSamples && fp.StoredPanning && fp.Orders%16 == 0:
			return "Modplug Tracker"
		case fp.Special == 0 && fp.Ultraclick == 0 && fp.Flags == 0 && unsignedOnly:
			return "Velvet Studio"
		case fp.Ultraclick != 16 && fp.Ultraclick != 24 && fp.Ultraclick != 32:
			// ST 3.2x always writes one of these
			return UnknownTracker
		}
	}

	switch v >> 12 {
	case 1:
		switch {
		case fp.GUSAddresses > 1:
			return fmt.Sprintf("Scream Tracker %d.%02x (GUS)", major, minor)
		case fp.GUSAddresses == 1 || !fp.AnySamples || v == 0x1300:
			// a GUS file with a single sample looks the same
			return fmt.Sprintf("Scream Tracker %d.%02x (SB)", major, minor)
		}
		return UnknownTracker
	case 2:
		return fmt.Sprintf("Imago Orpheus %d.%02x", major, minor)
	case 3:
		if v <= 0x3214 {
			return fmt.Sprintf("Impulse Tracker %d.%02x", major, minor)
		}
		return fmt.Sprintf("Impulse Tracker 2.14p%d", v-0x3214)
	case 4:
		return "Schism Tracker " + SchismVersion(v, fp.Reserved)
	case 5:
		if v >= 0x5129 && fp.Reserved != 0 {
			return fmt.Sprintf("OpenMPT %d.%02x.%02x.%02x", major, minor,
				fp.Reserved>>8&0xFF, fp.Reserved&0xFF)
		}
		return fmt.Sprintf("OpenMPT %d.%02x", major, minor)
	}

	return UnknownTracker
}

// schismEpoch is day zero of the date-based version numbers.
var schismEpoch = time.Date(2009, time.October, 31, 0, 0, 0, 0, time.UTC)

// SchismVersion decodes the low 12 bits of a Schism Tracker Cwt/v. Small
// values are the old 0.x releases; larger ones count days since
// 2009-10-31, and 0xFFF moves the day count into the reserved field.
func SchismVersion(cwtv, reserved uint16) string {
	n := cwtv & 0xFFF
	if n <= 0x050 {
		return fmt.Sprintf("0.%x", n)
	}

	days := int(n) - 0x050
	if n == 0xFFF {
		days = int(reserved)
	}
	return schismEpoch.AddDate(0, 0, days).Format("2006-01-02")
}
