package musiko

import "errors"

// Sentinel errors returned by the name-resolution and conversion boundary.
// Everything below the boundary (unification conflicts, empty domains,
// out-of-range derivations inside goals) is reported as branch failure —
// zero solution states — never as an error value.
var (
	// ErrUnknownPitchClass indicates a pitch-class name absent from the
	// canonical table and every alias list.
	ErrUnknownPitchClass = errors.New("unknown pitch class")

	// ErrUnknownInterval indicates an interval name absent from the table.
	ErrUnknownInterval = errors.New("unknown interval")

	// ErrOutOfDomain indicates an absolute pitch outside the active bound.
	ErrOutOfDomain = errors.New("pitch out of domain")

	// ErrInvalidBound indicates a malformed pitch bound (min > max, or
	// limits outside the MIDI range 0..127).
	ErrInvalidBound = errors.New("invalid pitch bound")
)
