// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/ik5/trackload/song"
)

func writeSummary(w io.Writer, s *song.Song) {
	fmt.Fprintf(w, "Title:    %s\n", s.Title)
	fmt.Fprintf(w, "Tracker:  %s\n", s.TrackerID)
	fmt.Fprintf(w, "Speed:    %d\n", s.InitialSpeed)
	fmt.Fprintf(w, "Tempo:    %d\n", s.InitialTempo)
	fmt.Fprintf(w, "Global:   %d\n", s.InitialGlobalVolume)
	fmt.Fprintf(w, "Mixing:   %d\n", s.MixingVolume)
	fmt.Fprintf(w, "Channels: %d\n", activeChannels(s))
	fmt.Fprintf(w, "Orders:   %s\n", orderList(s))
	fmt.Fprintf(w, "Patterns: %d\n", s.PatternCount())
	fmt.Fprintf(w, "Samples:  %d\n", s.SampleCount())

	for i, smp := range s.Samples {
		if smp != nil && (smp.HasData() || smp.Name != "") {
			writeSample(w, i, smp)
		}
	}

	for _, warn := range s.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warn)
	}
}

// writeSample prints one line per sample; index 0 leaves out the slot.
func writeSample(w io.Writer, index int, smp *song.Sample) {
	if index > 0 {
		fmt.Fprintf(w, "%3d ", index)
	}

	var loop string
	if smp.Flags&song.SampleLoop != 0 {
		loop = fmt.Sprintf(" loop %d-%d", smp.LoopStart, smp.LoopEnd)
	}

	switch smp.Kind {
	case song.SampleKindAdlib:
		fmt.Fprintf(w, "%-25s adlib %dHz vol %d\n", smp.Name, smp.C5Speed, smp.Volume)
	default:
		fmt.Fprintf(w, "%-25s %d-bit %dch %d frames %dHz vol %d%s\n", smp.Name,
			smp.BitDepth(), smp.Channels(), smp.Length, smp.C5Speed, smp.Volume, loop)
	}
}

func orderList(s *song.Song) string {
	n := s.OrderCount()
	parts := make([]string, 0, n)
	for _, o := range s.Orders[:n] {
		if o == song.OrderSkip {
			parts = append(parts, "+++")
			continue
		}
		parts = append(parts, fmt.Sprintf("%d", o))
	}
	return strings.Join(parts, " ")
}

// activeChannels counts channels up to the last one that is not muted.
func activeChannels(s *song.Song) int {
	for i := len(s.Channels) - 1; i >= 0; i-- {
		if !s.Channels[i].Muted() {
			return i + 1
		}
	}
	return 0
}

// cellWidth is len("C-5 01 32 1003") plus a separator.
const cellWidth = 15

// writePattern prints as many channels of pattern n as fit in width
// columns.
func writePattern(w io.Writer, s *song.Song, n, width int) error {
	if n >= len(s.Patterns) || s.Patterns[n] == nil {
		return fmt.Errorf("pattern %d is not in the song", n)
	}
	p := s.Patterns[n]

	channels := max(activeChannels(s), 1)
	channels = min(channels, max((width-4)/cellWidth, 1))

	fmt.Fprintf(w, "Pattern %d, %d rows", n, p.Rows)
	if p.Truncated {
		fmt.Fprintf(w, " (truncated after %d)", p.Decoded)
	}
	fmt.Fprintln(w)

	var b strings.Builder
	for row := range p.Rows {
		b.Reset()
		fmt.Fprintf(&b, "%3d", row)
		for _, note := range p.Row(row)[:channels] {
			b.WriteByte('|')
			b.WriteString(note.String())
		}
		fmt.Fprintln(w, b.String())
	}
	return nil
}
