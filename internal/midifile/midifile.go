// Package midifile extracts simultaneous note sets from Standard MIDI
// Files and classifies them through the relational engine. It is an
// offline consumer of the core: the only interfaces it uses are the
// pitch conversions and the triad relations.
package midifile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"gitlab.com/gomidi/midi/v2/smf"
)

// NoteEvent is a reduced note-on/note-off event with an absolute offset
// in microseconds from the start of the file.
type NoteEvent struct {
	Offset  int64
	NoteOff bool
	Note    uint8
}

// NoteSet is the set of notes sounding together at a moment, ascending.
type NoteSet struct {
	Offset int64
	Notes  []uint8
}

// ReadFile reads and parses a Standard MIDI File.
func ReadFile(path string) (s *smf.SMF, e error) {
	// The SMF parser panics on some malformed files.
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading midi file: %w", err)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, fmt.Errorf("parsing midi file: %w", err)
	}
	return res, nil
}

// Reduce flattens all tracks of an SMF into note events with absolute
// offsets, dropping everything that is not a note boundary.
func Reduce(s *smf.SMF) []NoteEvent {
	var events []NoteEvent
	for _, track := range s.Tracks {
		var absTicks int64
		for _, event := range track {
			absTicks += int64(event.Delta)
			absTime := s.TimeAt(absTicks)
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				events = append(events, NoteEvent{Offset: absTime, NoteOff: false, Note: key})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				events = append(events, NoteEvent{Offset: absTime, NoteOff: true, Note: key})
			}
		}
	}
	return events
}

// Sweep replays reduced events in time order and snapshots the sounding
// note set after each boundary. Releases sort before presses at equal
// offsets so retriggered notes do not produce phantom clusters.
// Consecutive identical sets collapse into one.
func Sweep(events []NoteEvent) []NoteSet {
	sorted := make([]NoteEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Offset != sorted[j].Offset {
			return sorted[i].Offset < sorted[j].Offset
		}
		return sorted[i].NoteOff && !sorted[j].NoteOff
	})

	var sets []NoteSet
	pressed := make(map[uint8]bool)
	for i, evt := range sorted {
		if evt.NoteOff {
			delete(pressed, evt.Note)
		} else {
			pressed[evt.Note] = true
		}
		// Only snapshot once per offset, after all its events applied.
		if i+1 < len(sorted) && sorted[i+1].Offset == evt.Offset {
			continue
		}
		if len(pressed) == 0 {
			continue
		}
		notes := make([]uint8, 0, len(pressed))
		for n := range pressed {
			notes = append(notes, n)
		}
		sort.Slice(notes, func(a, b int) bool { return notes[a] < notes[b] })
		if len(sets) > 0 && sameNotes(sets[len(sets)-1].Notes, notes) {
			continue
		}
		sets = append(sets, NoteSet{Offset: evt.Offset, Notes: notes})
	}
	return sets
}

// Extract returns the note sets of an SMF, in time order.
func Extract(s *smf.SMF) []NoteSet {
	return Sweep(Reduce(s))
}

func sameNotes(a, b []uint8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
