package midifile

import (
	"fmt"
	"strings"

	"github.com/gitrdm/gomusiko/pkg/musiko"
)

// Classification labels one note set: either a recognized triad voicing
// or nothing.
type Classification struct {
	Set     NoteSet
	Voicing *musiko.TriadVoicing
}

// Label renders the classification for the report, e.g.
// "C4 major (first inversion)".
func (c Classification) Label(th *musiko.Theory) string {
	if c.Voicing == nil {
		return "-"
	}
	inversion := [...]string{"root position", "first inversion", "second inversion"}
	return fmt.Sprintf("%s %s (%s)",
		noteName(th, c.Voicing.Root), c.Voicing.Quality, inversion[c.Voicing.Inversion])
}

// Classify runs every three-note set through the triad relations.
// Sets of any other size are reported unclassified; the engine's chord
// relation covers triads only.
func Classify(th *musiko.Theory, sets []NoteSet) []Classification {
	out := make([]Classification, 0, len(sets))
	for _, set := range sets {
		c := Classification{Set: set}
		if len(set.Notes) == 3 {
			v, ok := th.ClassifyTriad(int(set.Notes[0]), int(set.Notes[1]), int(set.Notes[2]))
			if ok {
				c.Voicing = &v
			}
		}
		out = append(out, c)
	}
	return out
}

// Report renders classifications as a deterministic text table, one line
// per note set: offset, sounding notes, label.
func Report(th *musiko.Theory, sets []NoteSet) string {
	var b strings.Builder
	for _, c := range Classify(th, sets) {
		names := make([]string, len(c.Set.Notes))
		for i, n := range c.Set.Notes {
			names[i] = noteName(th, int(n))
		}
		fmt.Fprintf(&b, "%s  %-14s  %s\n",
			formatOffset(c.Set.Offset), strings.Join(names, " "), c.Label(th))
	}
	return b.String()
}

// noteName renders an absolute pitch as class+octave, falling back to
// the raw number outside the active bound.
func noteName(th *musiko.Theory, p int) string {
	class, octave, err := th.Space.AbsoluteToPitch(p)
	if err != nil {
		return fmt.Sprintf("#%d", p)
	}
	return fmt.Sprintf("%s%d", class, octave)
}

// formatOffset renders microseconds as mm:ss.mmm.
func formatOffset(micros int64) string {
	millis := micros / 1000
	return fmt.Sprintf("%02d:%02d.%03d", millis/60000, (millis/1000)%60, millis%1000)
}
