package musiko

// Quality identifies a chord quality accepted by Chordo.
type Quality string

// Chord qualities.
const (
	Major Quality = "major"
	Minor Quality = "minor"
)

// Theory bundles the pitch space and interval table the music relations
// consult. A Theory is read-only after construction and safe for
// concurrent use; build one per configuration (bound) and share it.
type Theory struct {
	Space     *PitchSpace
	Intervals *IntervalTable
}

// NewTheory creates a theory over the given pitch space with the standard
// interval table.
func NewTheory(space *PitchSpace) *Theory {
	return &Theory{Space: space, Intervals: NewIntervalTable()}
}

var defaultTheory = func() *Theory {
	ps, err := NewPitchSpace(DefaultBound)
	if err != nil {
		panic(err) // DefaultBound is statically valid
	}
	return NewTheory(ps)
}()

// Default returns the shared theory over the full MIDI bound 0..127.
func Default() *Theory {
	return defaultTheory
}

// Noteo relates a pitch class, an octave and an absolute pitch under the
// pitch space's conversion: class at octave sounds as pitch. Any subset
// of the arguments may be bound; the relation enumerates all consistent
// completions within the active bound.
//
//	Noteo(NewAtom("C"), NewAtom(4), p)  // p = 60
//	Noteo(c, o, NewAtom(60))            // c = C, o = 4
//	Noteo(c, NewAtom(4), p)             // 12 solutions, one per class
//
// A bound class may be an enharmonic alias; it relates through its
// canonical position. An unknown class name fails the branch (resolve
// names with PositionOf first to surface ErrUnknownPitchClass instead).
func (th *Theory) Noteo(class, octave, pitch Term) Goal {
	return func(st *State) []*State {
		wc := st.Walk(class)
		wo := st.Walk(octave)
		wp := st.Walk(pitch)

		className, classGround := atomString(wc)
		classPos := -1
		if classGround {
			pos, err := th.Space.PositionOf(className)
			if err != nil {
				return nil
			}
			classPos = pos
		} else if !wc.IsVar() {
			return nil
		}
		octaveVal, octaveGround := atomInt(wo)
		pitchVal, pitchGround := atomInt(wp)

		switch {
		case pitchGround:
			if !th.Space.Contains(pitchVal) {
				return nil
			}
			pos := pitchVal % 12
			oct := pitchVal/12 - 1
			// An already-bound class matches by chromatic position, so
			// enharmonic aliases relate to the same pitch as their
			// canonical spelling.
			if classGround {
				if classPos != pos {
					return nil
				}
				return Eq(octave, NewAtom(oct))(st)
			}
			return Conj(
				Eq(class, NewAtom(th.Space.ClassName(pos))),
				Eq(octave, NewAtom(oct)),
			)(st)

		case classGround && octaveGround:
			p := classPos + 12*(octaveVal+1)
			if !th.Space.Contains(p) {
				return nil
			}
			return Eq(pitch, NewAtom(p))(st)

		case classGround:
			return th.octaveBranches(classPos, octave, pitch)(st)

		case octaveGround:
			return th.classBranches(octaveVal, class, pitch)(st)

		default:
			lo, hi := th.Space.octaveRange()
			var branches []Goal
			for oct := lo; oct <= hi; oct++ {
				branches = append(branches, Conj(
					Eq(octave, NewAtom(oct)),
					th.classBranches(oct, class, pitch),
				))
			}
			return Disj(branches...)(st)
		}
	}
}

// octaveBranches disjoins over every octave at which a chromatic position
// falls inside the bound, ascending.
func (th *Theory) octaveBranches(pos int, octave, pitch Term) Goal {
	lo, hi := th.Space.octaveRange()
	var branches []Goal
	for oct := lo; oct <= hi; oct++ {
		p := pos + 12*(oct+1)
		if !th.Space.Contains(p) {
			continue
		}
		branches = append(branches, Conj(
			Eq(octave, NewAtom(oct)),
			Eq(pitch, NewAtom(p)),
		))
	}
	return Disj(branches...)
}

// classBranches disjoins over the 12 canonical classes at a fixed octave,
// in chromatic order, keeping only in-bound pitches.
func (th *Theory) classBranches(oct int, class, pitch Term) Goal {
	var branches []Goal
	for pos := 0; pos < 12; pos++ {
		p := pos + 12*(oct+1)
		if !th.Space.Contains(p) {
			continue
		}
		branches = append(branches, Conj(
			Eq(class, NewAtom(canonicalClasses[pos])),
			Eq(pitch, NewAtom(p)),
		))
	}
	return Disj(branches...)
}

// Intervalo relates two absolute pitches separated by a semitone
// distance, in either direction: a - b = d or b - a = d. Both pitches
// are constrained to the active bound. A distance of zero collapses the
// two directions into one, so unisons are not reported twice. Negative
// distances never hold.
//
//	Intervalo(4, NewAtom(60), p) // p = 64 or p = 56
func (th *Theory) Intervalo(distance int, a, b Term) Goal {
	if distance < 0 {
		return Failure
	}
	dom := th.Space.Domain()
	direction := Disj(Diffo(a, b, distance), Diffo(b, a, distance))
	if distance == 0 {
		direction = Diffo(a, b, 0)
	}
	return Conj(Ino(a, dom), Ino(b, dom), direction)
}

// IntervaloName is Intervalo with the distance resolved from an interval
// name. Name resolution happens here, once, at the query boundary;
// unknown names are hard errors rather than silent failures.
func (th *Theory) IntervaloName(name string, a, b Term) (Goal, error) {
	d, err := th.Intervals.DistanceOf(name)
	if err != nil {
		return nil, err
	}
	return th.Intervalo(d, a, b), nil
}

// MajorTriado relates the three pitches of a major triad: a major third
// (4 semitones) between root and third, a perfect fifth (7 semitones)
// between root and fifth. Intervals are bidirectional, so voicings with
// the third or fifth below the root also satisfy the relation.
func (th *Theory) MajorTriado(root, third, fifth Term) Goal {
	return Conj(
		th.Intervalo(4, root, third),
		th.Intervalo(7, root, fifth),
	)
}

// MinorTriado relates the three pitches of a minor triad: minor third
// (3) and perfect fifth (7) against the root.
func (th *Theory) MinorTriado(root, third, fifth Term) Goal {
	return Conj(
		th.Intervalo(3, root, third),
		th.Intervalo(7, root, fifth),
	)
}

// chordShape describes one voicing of a triad as the two semitone
// distances from the lowest-role pitch a to b and to c, plus which of
// the three pitches carries the chord root.
type chordShape struct {
	ab, ac   int
	rootSlot int // 0 = a, 1 = b, 2 = c
}

// chordShapes lists, per quality, the root position followed by the
// first and second inversions. The inversion interval pairs are the
// enharmonic complements of the root-position stack: for major, E-G-C
// stacks a minor third and a minor sixth, G-C-E a perfect fourth and a
// major sixth.
var chordShapes = map[Quality][]chordShape{
	Major: {
		{ab: 4, ac: 7, rootSlot: 0},
		{ab: 3, ac: 8, rootSlot: 2},
		{ab: 5, ac: 9, rootSlot: 1},
	},
	Minor: {
		{ab: 3, ac: 7, rootSlot: 0},
		{ab: 4, ac: 9, rootSlot: 2},
		{ab: 5, ac: 8, rootSlot: 1},
	},
}

// Chordo relates three sounded pitches a, b, c forming a triad of the
// given quality in root position, first inversion or second inversion,
// tried in that order. The shapes are directional (b and c stack upward
// from a), so every solution's pitch-class set is a genuine triad of the
// quality; the inversions merely move the root between the three slots.
// An unrecognized quality fails.
//
//	Chordo(Major, NewAtom(60), NewAtom(64), NewAtom(67)) // succeeds
func (th *Theory) Chordo(quality Quality, a, b, c Term) Goal {
	shapes, ok := chordShapes[quality]
	if !ok {
		return Failure
	}
	dom := th.Space.Domain()
	branches := make([]Goal, 0, len(shapes))
	for _, sh := range shapes {
		branches = append(branches, Conj(
			Ino(a, dom), Ino(b, dom), Ino(c, dom),
			Diffo(b, a, sh.ab),
			Diffo(c, a, sh.ac),
		))
	}
	return Disj(branches...)
}

// TriadVoicing describes how three sounded pitches map onto a triad:
// the quality, the inversion (0 root position, 1 first, 2 second) and
// the absolute pitch carrying the chord root.
type TriadVoicing struct {
	Quality   Quality
	Inversion int
	Root      int
}

// ClassifyTriad runs three concrete pitches through the chord shapes and
// reports the first voicing they satisfy, major shapes before minor,
// root position before inversions. Returns false if the pitches form no
// triad of either quality.
func (th *Theory) ClassifyTriad(a, b, c int) (TriadVoicing, bool) {
	pitches := [3]int{a, b, c}
	dom := th.Space.Domain()
	for _, q := range []Quality{Major, Minor} {
		for inv, sh := range chordShapes[q] {
			goal := Conj(
				Ino(NewAtom(a), dom), Ino(NewAtom(b), dom), Ino(NewAtom(c), dom),
				Diffo(NewAtom(b), NewAtom(a), sh.ab),
				Diffo(NewAtom(c), NewAtom(a), sh.ac),
			)
			if len(goal(NewState())) > 0 {
				return TriadVoicing{Quality: q, Inversion: inv, Root: pitches[sh.rootSlot]}, true
			}
		}
	}
	return TriadVoicing{}, false
}
