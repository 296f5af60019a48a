package musiko

import (
	"fmt"
	"strings"
)

// defaultIntervals maps named intervals to semitone distances. The table
// is many-to-one: several names share a distance (a major third and a
// diminished fourth both span 4 semitones). Distance is the only
// operative value; names resolve once at the query boundary.
var defaultIntervals = map[string]int{
	"perfect-unison":     0,
	"unison":             0,
	"augmented-unison":   1,
	"minor-second":       1,
	"major-second":       2,
	"diminished-third":   2,
	"augmented-second":   3,
	"minor-third":        3,
	"major-third":        4,
	"diminished-fourth":  4,
	"perfect-fourth":     5,
	"augmented-third":    5,
	"augmented-fourth":   6,
	"diminished-fifth":   6,
	"tritone":            6,
	"perfect-fifth":      7,
	"diminished-sixth":   7,
	"augmented-fifth":    8,
	"minor-sixth":        8,
	"major-sixth":        9,
	"diminished-seventh": 9,
	"augmented-sixth":    10,
	"minor-seventh":      10,
	"major-seventh":      11,
	"diminished-octave":  11,
	"augmented-seventh":  12,
	"octave":             12,
	"perfect-octave":     12,
}

// IntervalTable resolves interval names to semitone distances and picks a
// deterministic canonical name per distance. Read-only after
// construction aside from Define, which callers use during setup.
type IntervalTable struct {
	distances map[string]int
	canonical map[int]string
}

// NewIntervalTable creates a table populated with the standard interval
// names up to an octave.
func NewIntervalTable() *IntervalTable {
	t := &IntervalTable{
		distances: make(map[string]int, len(defaultIntervals)),
		canonical: make(map[int]string),
	}
	for name, d := range defaultIntervals {
		t.distances[name] = d
		t.updateCanonical(name, d)
	}
	return t
}

// DistanceOf resolves an interval name to its semitone distance.
func (t *IntervalTable) DistanceOf(name string) (int, error) {
	if d, ok := t.distances[name]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownInterval, name)
}

// NameOf returns the canonical name for a distance, if any name covers
// it. When several names share a distance the choice is fixed by quality
// priority — perfect before major before minor before augmented before
// diminished — with a lexicographic tie-break, so the answer never
// depends on map iteration order.
func (t *IntervalTable) NameOf(distance int) (string, bool) {
	name, ok := t.canonical[distance]
	return name, ok
}

// Define adds an interval name. Distances must be non-negative.
// Redefining an existing name overrides its distance.
func (t *IntervalTable) Define(name string, distance int) error {
	if distance < 0 {
		return fmt.Errorf("%w: %q has negative distance %d", ErrUnknownInterval, name, distance)
	}
	t.distances[name] = distance
	t.updateCanonical(name, distance)
	return nil
}

func (t *IntervalTable) updateCanonical(name string, d int) {
	cur, ok := t.canonical[d]
	if !ok || betterName(name, cur) {
		t.canonical[d] = name
	}
}

// qualityRank orders interval qualities for canonical-name selection.
// Unqualified names like "tritone" or "octave" rank with the perfect
// class.
func qualityRank(name string) int {
	switch {
	case strings.HasPrefix(name, "major-"):
		return 1
	case strings.HasPrefix(name, "minor-"):
		return 2
	case strings.HasPrefix(name, "augmented-"):
		return 3
	case strings.HasPrefix(name, "diminished-"):
		return 4
	default:
		return 0
	}
}

func betterName(a, b string) bool {
	ra, rb := qualityRank(a), qualityRank(b)
	if ra != rb {
		return ra < rb
	}
	return a < b
}
