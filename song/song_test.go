// SPDX-License-Identifier: EPL-2.0

package song

import "testing"

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	s := New()

	if s.InitialSpeed != 6 || s.InitialTempo != 125 {
		t.Errorf("speed/tempo = %d/%d, want 6/125", s.InitialSpeed, s.InitialTempo)
	}
	if got := len(s.Orders); got != MaxOrders {
		t.Fatalf("len(Orders) = %d, want %d", got, MaxOrders)
	}
	if got := s.OrderCount(); got != 0 {
		t.Errorf("OrderCount() = %d, want 0", got)
	}
	if got := len(s.Samples); got != MaxSamples+1 {
		t.Errorf("len(Samples) = %d, want %d", got, MaxSamples+1)
	}
	for i, ch := range s.Channels {
		if ch.Volume != 64 || ch.Panning != 128 || ch.Muted() {
			t.Fatalf("channel %d = %+v, want centered, full volume, unmuted", i, ch)
		}
	}
}

func TestCounts(t *testing.T) {
	t.Parallel()

	s := New()
	copy(s.Orders, []uint8{0, 1, OrderSkip, 0})
	s.Patterns[0] = NewPattern(DefaultRows)
	s.Patterns[5] = NewPattern(DefaultRows)

	s.Samples[1] = NewSample()
	s.Samples[2] = &Sample{Kind: SampleKindPCM, Length: 2, Data: []byte{1, 2}}
	s.Samples[3] = &Sample{Kind: SampleKindAdlib, Length: 1}

	if got := s.OrderCount(); got != 4 {
		t.Errorf("OrderCount() = %d, want 4", got)
	}
	if got := s.PatternCount(); got != 2 {
		t.Errorf("PatternCount() = %d, want 2", got)
	}
	if got := s.SampleCount(); got != 2 {
		t.Errorf("SampleCount() = %d, want 2", got)
	}
}

func TestPatternAccess(t *testing.T) {
	t.Parallel()

	p := NewPattern(DefaultRows)
	p.Note(3, 7).Note = 49

	row := p.Row(3)
	if len(row) != MaxChannels {
		t.Fatalf("len(Row) = %d, want %d", len(row), MaxChannels)
	}
	if row[7].Note != 49 {
		t.Errorf("Row(3)[7].Note = %d, want 49", row[7].Note)
	}
	if !p.Row(2)[7].IsEmpty() {
		t.Error("neighbouring row was written")
	}
}

func TestNoteName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v    uint8
		want string
	}{
		{NoteNone, "..."},
		{1, "C-0"},
		{13, "C-1"},
		{14, "C#1"},
		{61, "C-5"},
		{NoteLast, "B-9"},
		{NoteCut, "^^^"},
		{NoteOff, "==="},
		{NoteFade, "~~~"},
		{200, "???"},
	}

	for _, tt := range tests {
		if got := NoteName(tt.v); got != tt.want {
			t.Errorf("NoteName(%d) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestNoteString(t *testing.T) {
	t.Parallel()

	n := Note{Note: 61, Instrument: 1, VolEffect: VolFXVolume, VolParam: 32, Effect: FXSpeed, Param: 3}
	if got, want := n.String(), "C-5 01 32 1003"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if got, want := (Note{}).String(), "... .. .. ...."; got != want {
		t.Errorf("empty String() = %q, want %q", got, want)
	}
}

func TestNoteHasPitch(t *testing.T) {
	t.Parallel()

	for _, v := range []uint8{NoteNone, NoteCut, NoteOff, NoteFade} {
		if (Note{Note: v}).HasPitch() {
			t.Errorf("Note %d has pitch", v)
		}
	}
	if !(Note{Note: NoteFirst}).HasPitch() || !(Note{Note: NoteLast}).HasPitch() {
		t.Error("range bounds have no pitch")
	}
}

func TestFixName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		raw   []byte
		limit int
		want  string
	}{
		{"plain", []byte("piano"), 12, "piano"},
		{"embedded nul", []byte("bass\x00drum\x00\x00"), 12, "bass drum"},
		{"trailing padding", []byte("kick   "), 12, "kick"},
		{"limit", []byte("0123456789ABCDEF"), 12, "0123456789AB"},
		{"empty", []byte{0, 0, 0}, 12, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FixName(tt.raw, tt.limit); got != tt.want {
				t.Errorf("FixName(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCString(t *testing.T) {
	t.Parallel()

	if got := CString([]byte("song\x00junk"), 25); got != "song" {
		t.Errorf("CString = %q, want %q", got, "song")
	}
	if got := CString([]byte("abcdef"), 3); got != "abc" {
		t.Errorf("CString = %q, want %q", got, "abc")
	}
}
