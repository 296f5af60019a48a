package musiko

import (
	"fmt"
	"math/bits"
	"strings"
)

// Domain is an immutable finite set of admissible integer values for a
// logic variable, backed by a bitset over an inclusive base range.
// All operations return new domains rather than modifying in place, which
// keeps sibling search branches independent.
//
// Unlike classic 1-indexed CSP domains, values here are absolute pitches,
// so 0 is a valid member (MIDI note 0 is C in octave -1).
type Domain struct {
	lo, hi int // base range, inclusive; hi < lo means the empty domain
	words  []uint64
}

// emptyDomain is the canonical empty domain.
var emptyDomain = Domain{lo: 0, hi: -1}

// NewDomainRange returns the full domain over the inclusive range
// [lo, hi]. An inverted range yields the empty domain.
func NewDomainRange(lo, hi int) Domain {
	if hi < lo {
		return emptyDomain
	}
	n := hi - lo + 1
	words := make([]uint64, (n+63)/64)
	for i := 0; i < n; i++ {
		words[i/64] |= 1 << uint(i%64)
	}
	return Domain{lo: lo, hi: hi, words: words}
}

// NewDomainValues returns the domain containing exactly the given values.
func NewDomainValues(vals ...int) Domain {
	if len(vals) == 0 {
		return emptyDomain
	}
	lo, hi := vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	n := hi - lo + 1
	words := make([]uint64, (n+63)/64)
	for _, v := range vals {
		i := v - lo
		words[i/64] |= 1 << uint(i%64)
	}
	return Domain{lo: lo, hi: hi, words: words}
}

// IsEmpty returns true if the domain contains no values.
func (d Domain) IsEmpty() bool {
	if d.hi < d.lo {
		return true
	}
	for _, w := range d.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Has returns true if the domain contains the given value.
func (d Domain) Has(v int) bool {
	if v < d.lo || v > d.hi {
		return false
	}
	i := v - d.lo
	return (d.words[i/64]>>uint(i%64))&1 == 1
}

// Count returns the number of values in the domain.
func (d Domain) Count() int {
	c := 0
	for _, w := range d.words {
		c += bits.OnesCount64(w)
	}
	return c
}

// IsSingleton returns true if the domain contains exactly one value.
func (d Domain) IsSingleton() bool { return d.Count() == 1 }

// SingletonValue returns the single value of a singleton domain.
// Behavior is undefined if the domain is not a singleton.
func (d Domain) SingletonValue() int {
	for i, w := range d.words {
		if w != 0 {
			return d.lo + i*64 + bits.TrailingZeros64(w)
		}
	}
	return d.lo - 1
}

// Min returns the minimum value in the domain, or 0 if empty.
func (d Domain) Min() int {
	for i, w := range d.words {
		if w != 0 {
			return d.lo + i*64 + bits.TrailingZeros64(w)
		}
	}
	return 0
}

// Max returns the maximum value in the domain, or 0 if empty.
func (d Domain) Max() int {
	for i := len(d.words) - 1; i >= 0; i-- {
		if d.words[i] != 0 {
			return d.lo + i*64 + 63 - bits.LeadingZeros64(d.words[i])
		}
	}
	return 0
}

// Intersect returns the domain of values present in both domains.
func (d Domain) Intersect(other Domain) Domain {
	lo := d.lo
	if other.lo > lo {
		lo = other.lo
	}
	hi := d.hi
	if other.hi < hi {
		hi = other.hi
	}
	if hi < lo {
		return emptyDomain
	}
	n := hi - lo + 1
	words := make([]uint64, (n+63)/64)
	empty := true
	for v := lo; v <= hi; v++ {
		if d.Has(v) && other.Has(v) {
			i := v - lo
			words[i/64] |= 1 << uint(i%64)
			empty = false
		}
	}
	if empty {
		return emptyDomain
	}
	return Domain{lo: lo, hi: hi, words: words}
}

// Shift returns the domain with every value translated by delta.
// Used by the difference propagator: if b's admissible values are D,
// then a = b + delta admits D shifted by delta.
func (d Domain) Shift(delta int) Domain {
	if d.IsEmpty() {
		return emptyDomain
	}
	words := make([]uint64, len(d.words))
	copy(words, d.words)
	return Domain{lo: d.lo + delta, hi: d.hi + delta, words: words}
}

// Values returns the domain's values in ascending order.
func (d Domain) Values() []int {
	var vals []int
	d.IterateValues(func(v int) { vals = append(vals, v) })
	return vals
}

// IterateValues calls f for each value in the domain in ascending order.
func (d Domain) IterateValues(f func(v int)) {
	for i, w := range d.words {
		for w != 0 {
			off := bits.TrailingZeros64(w)
			f(d.lo + i*64 + off)
			w &= w - 1
		}
	}
}

// Equal returns true if both domains contain exactly the same values.
func (d Domain) Equal(other Domain) bool {
	if d.Count() != other.Count() {
		return false
	}
	eq := true
	d.IterateValues(func(v int) {
		if !other.Has(v) {
			eq = false
		}
	})
	return eq
}

// String returns a human-readable representation of the domain.
func (d Domain) String() string {
	if d.IsEmpty() {
		return "{}"
	}
	var parts []string
	d.IterateValues(func(v int) {
		parts = append(parts, fmt.Sprintf("%d", v))
	})
	return "{" + strings.Join(parts, " ") + "}"
}
