// SPDX-License-Identifier: EPL-2.0

package song

// Static limits shared by all loaders.
const (
	MaxOrders   = 256
	MaxSamples  = 236
	MaxPatterns = 240
	MaxChannels = 64
	MaxTitle    = 25

	// DefaultRows is the row count of a freshly allocated pattern.
	DefaultRows = 64
)

// Order list sentinels.
const (
	OrderSkip = 254 // "+++"
	OrderLast = 255 // "---", end of song
)

// Song flags.
const (
	SongITOldEffects = 1 << iota
	SongNoStereo
)

// Channel flags.
const (
	ChannelMute = 1 << iota
	ChannelAdlib
)

// Channel holds the initial settings of one mixer channel.
type Channel struct {
	Panning int // 0..256
	Volume  int // 0..64
	Flags   int
}

// Muted reports whether the channel starts muted.
func (c Channel) Muted() bool { return c.Flags&ChannelMute != 0 }

// Song is the decoded, validated module handed to playback.
type Song struct {
	Title     string
	TrackerID string

	InitialSpeed        int
	InitialTempo        int
	InitialGlobalVolume int // 0..128
	MixingVolume        int
	Flags               int

	Channels [MaxChannels]Channel

	// Orders always has MaxOrders entries; unused slots hold OrderLast.
	Orders []uint8

	// Patterns is sparse: nil entries are absent patterns.
	Patterns []*Pattern

	// Samples is sparse and 1-indexed; slot 0 is never used.
	Samples []*Sample

	// Warnings collects non-fatal problems met while loading.
	Warnings []string
}

// New returns an empty song with every slot initialized to its default:
// all channels at full volume and centered, an order list of OrderLast.
func New() *Song {
	s := &Song{
		InitialSpeed:        6,
		InitialTempo:        125,
		InitialGlobalVolume: 128,
		MixingVolume:        48,
		Orders:              make([]uint8, MaxOrders),
		Patterns:            make([]*Pattern, MaxPatterns),
		Samples:             make([]*Sample, MaxSamples+1),
	}
	for i := range s.Orders {
		s.Orders[i] = OrderLast
	}
	for i := range s.Channels {
		s.Channels[i] = Channel{Panning: 128, Volume: 64}
	}
	return s
}

// OrderCount returns the number of orders before the first OrderLast.
func (s *Song) OrderCount() int {
	for i, o := range s.Orders {
		if o == OrderLast {
			return i
		}
	}
	return len(s.Orders)
}

// PatternCount returns the number of allocated patterns.
func (s *Song) PatternCount() int {
	n := 0
	for _, p := range s.Patterns {
		if p != nil {
			n++
		}
	}
	return n
}

// SampleCount returns the number of samples that carry PCM data or
// synthesizer parameters.
func (s *Song) SampleCount() int {
	n := 0
	for _, smp := range s.Samples {
		if smp != nil && smp.HasData() {
			n++
		}
	}
	return n
}

// Pattern is a row-major grid of notes, MaxChannels per row.
type Pattern struct {
	Rows  int
	Notes []Note

	// Decoded is how many rows were read from the file. It is below Rows
	// when the stored data ended early.
	Decoded   int
	Truncated bool
}

// NewPattern allocates an empty pattern.
func NewPattern(rows int) *Pattern {
	return &Pattern{
		Rows:  rows,
		Notes: make([]Note, rows*MaxChannels),
	}
}

// Note returns the cell at row, channel.
func (p *Pattern) Note(row, channel int) *Note {
	return &p.Notes[row*MaxChannels+channel]
}

// Row returns the MaxChannels cells of one row.
func (p *Pattern) Row(row int) []Note {
	return p.Notes[row*MaxChannels : (row+1)*MaxChannels]
}
