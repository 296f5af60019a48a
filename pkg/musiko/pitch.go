package musiko

import "fmt"

// canonicalClasses positions the 12 canonical pitch-class names on the
// chromatic circle. The sharp spellings are canonical; flat and other
// enharmonic spellings are aliases that resolve to the same position.
var canonicalClasses = [12]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

// enharmonicAliases maps alternate spellings to chromatic positions.
// Aliases never introduce a 13th position; they collapse onto the
// canonical circle.
var enharmonicAliases = map[string]int{
	"Db": 1,
	"Eb": 3,
	"Gb": 6,
	"Ab": 8,
	"Bb": 10,
	"B#": 0,
	"Cb": 11,
	"E#": 5,
	"Fb": 4,
}

// Bound is an inclusive range of admissible absolute pitches.
type Bound struct {
	Min int
	Max int
}

// DefaultBound covers the full MIDI pitch range.
var DefaultBound = Bound{Min: 0, Max: 127}

// PianoBound covers the 88 keys of a standard piano, A0 through C8.
var PianoBound = Bound{Min: 21, Max: 108}

// PitchSpace converts between absolute pitch numbers and
// (pitch class, octave) pairs under a configured bound. Pitch-class C at
// octave 4 maps to 60, the MIDI convention. PitchSpace is read-only after
// construction and safe for concurrent use.
type PitchSpace struct {
	bound Bound
}

// NewPitchSpace creates a pitch space restricted to the given bound.
// The bound must satisfy 0 <= Min <= Max <= 127.
func NewPitchSpace(b Bound) (*PitchSpace, error) {
	if b.Min < 0 || b.Max > 127 || b.Min > b.Max {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidBound, b.Min, b.Max)
	}
	return &PitchSpace{bound: b}, nil
}

// Bound returns the active inclusive pitch bound.
func (ps *PitchSpace) Bound() Bound { return ps.bound }

// Contains reports whether an absolute pitch lies within the bound.
func (ps *PitchSpace) Contains(p int) bool {
	return p >= ps.bound.Min && p <= ps.bound.Max
}

// Domain returns the full admissible pitch domain as a finite domain,
// ready to attach to logic variables.
func (ps *PitchSpace) Domain() Domain {
	return NewDomainRange(ps.bound.Min, ps.bound.Max)
}

// PositionOf resolves a pitch-class name — canonical or enharmonic
// alias — to its chromatic position 0..11.
func (ps *PitchSpace) PositionOf(name string) (int, error) {
	for pos, c := range canonicalClasses {
		if c == name {
			return pos, nil
		}
	}
	if pos, ok := enharmonicAliases[name]; ok {
		return pos, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPitchClass, name)
}

// ClassName returns the canonical pitch-class name for a chromatic
// position 0..11.
func (ps *PitchSpace) ClassName(position int) string {
	return canonicalClasses[((position%12)+12)%12]
}

// PitchToAbsolute converts a (pitch class, octave) pair to an absolute
// pitch. The class may be an alias; aliases collapse to their canonical
// position. Fails with ErrOutOfDomain when the result lies outside the
// active bound.
func (ps *PitchSpace) PitchToAbsolute(class string, octave int) (int, error) {
	pos, err := ps.PositionOf(class)
	if err != nil {
		return 0, err
	}
	p := pos + 12*(octave+1)
	if !ps.Contains(p) {
		return 0, fmt.Errorf("%w: %s%d = %d outside [%d, %d]",
			ErrOutOfDomain, class, octave, p, ps.bound.Min, ps.bound.Max)
	}
	return p, nil
}

// AbsoluteToPitch converts an absolute pitch to its canonical pitch class
// and octave. The round trip PitchToAbsolute(AbsoluteToPitch(p)) == p
// holds for every p in the active bound; the reverse round trip holds
// only for canonical class names, since aliases collapse.
func (ps *PitchSpace) AbsoluteToPitch(p int) (string, int, error) {
	if !ps.Contains(p) {
		return "", 0, fmt.Errorf("%w: %d outside [%d, %d]",
			ErrOutOfDomain, p, ps.bound.Min, ps.bound.Max)
	}
	return canonicalClasses[p%12], p/12 - 1, nil
}

// octaveRange returns the inclusive octave span implied by the bound.
// Octave o covers absolute pitches 12*(o+1) .. 12*(o+1)+11, so the span
// is derived from the bound rather than hardcoded.
func (ps *PitchSpace) octaveRange() (int, int) {
	return ps.bound.Min/12 - 1, ps.bound.Max/12 - 1
}
