// Package musiko provides a relational music-theory engine in Go.
// It answers questions like "what pitch is C in octave 4?", "which pitches
// form a major third with this pitch?" or "which major-chord voicings
// contain these notes?" through a single query mechanism that works in any
// direction: some arguments concrete, others logic variables, with the
// engine enumerating every consistent binding.
//
// The engine is a small constraint solver built from first principles:
//   - Unification (Eq): constrains two terms to be equal
//   - Fresh variables: introduces new logic variables
//   - Disjunction (Disj/Conde): represents choice points
//   - Conjunction (Conj): combines goals that must all succeed
//   - Run/RunTuples: executes a goal and returns solutions
//
// On top of the solver sit three music relations — Noteo, Intervalo and
// Chordo — that relate pitch classes, octaves, absolute pitches and
// semitone distances under a configurable bounded pitch domain.
//
// The core is purely functional: every operation consumes a solver state
// and produces new states without mutating shared data, so independent
// queries may run concurrently from any goroutine. Enumeration order is
// deterministic for a fixed goal and disjunction declaration order.
package musiko

import (
	"fmt"
	"sync/atomic"
)

// Term represents any value in the relational universe.
// Terms are either atoms (concrete values) or logic variables.
type Term interface {
	// String returns a human-readable representation of the term.
	String() string

	// Equal checks if this term is structurally equal to another term.
	// This is a strict equality check, not unification.
	Equal(other Term) bool

	// IsVar returns true if this term is a logic variable.
	IsVar() bool
}

// Var represents a logic variable. Variables have no intrinsic value;
// they acquire values through unification. Each variable carries a
// globally unique identifier, so distinct variables are never equal
// unless unified.
type Var struct {
	id   int64
	name string // optional, for debugging
}

var varCounter int64

// Fresh creates a new logic variable with an optional name for debugging.
// Each call generates a variable with a globally unique ID, so no two
// variables conflict even across concurrent queries.
//
// Example:
//
//	p := Fresh("pitch")
//	q := Fresh("")
func Fresh(name string) *Var {
	id := atomic.AddInt64(&varCounter, 1)
	return &Var{id: id, name: name}
}

// String returns a string representation of the variable.
func (v *Var) String() string {
	if v.name != "" {
		return fmt.Sprintf("_%s_%d", v.name, v.id)
	}
	return fmt.Sprintf("_%d", v.id)
}

// Equal checks if two variables are the same variable.
func (v *Var) Equal(other Term) bool {
	if ov, ok := other.(*Var); ok {
		return v.id == ov.id
	}
	return false
}

// IsVar always returns true for variables.
func (v *Var) IsVar() bool { return true }

// Atom represents an atomic value (a pitch number, a pitch-class name,
// an octave). Atoms are immutable and represent themselves.
type Atom struct {
	value interface{}
}

// NewAtom creates a new atom from any comparable Go value.
func NewAtom(value interface{}) *Atom {
	return &Atom{value: value}
}

// String returns a string representation of the atom.
func (a *Atom) String() string {
	return fmt.Sprintf("%v", a.value)
}

// Equal checks if two atoms hold the same value.
func (a *Atom) Equal(other Term) bool {
	if oa, ok := other.(*Atom); ok {
		return a.value == oa.value
	}
	return false
}

// IsVar always returns false for atoms.
func (a *Atom) IsVar() bool { return false }

// Value returns the underlying Go value.
func (a *Atom) Value() interface{} { return a.value }

// atomInt extracts an int from a term, if it is an integer atom.
func atomInt(t Term) (int, bool) {
	if a, ok := t.(*Atom); ok {
		if n, ok := a.value.(int); ok {
			return n, true
		}
	}
	return 0, false
}

// atomString extracts a string from a term, if it is a string atom.
func atomString(t Term) (string, bool) {
	if a, ok := t.(*Atom); ok {
		if s, ok := a.value.(string); ok {
			return s, true
		}
	}
	return "", false
}

// Substitution is a mapping from variables to terms, extended on each
// successful unification. Bindings may chain variable-to-variable; Walk
// resolves a chain to its terminal value or unbound variable. A
// substitution is never mutated in place: Bind returns an extended copy,
// so states on sibling search branches never interfere.
type Substitution struct {
	bindings map[int64]Term
}

// NewSubstitution creates an empty substitution.
func NewSubstitution() *Substitution {
	return &Substitution{bindings: make(map[int64]Term)}
}

// Lookup returns the term bound to a variable, or nil if unbound.
func (s *Substitution) Lookup(v *Var) Term {
	return s.bindings[v.id]
}

// Bind returns a new substitution extended with v -> term.
// Binding a variable to itself returns the substitution unchanged,
// so chains can never contain cycles.
func (s *Substitution) Bind(v *Var, term Term) *Substitution {
	if tv, ok := term.(*Var); ok && tv.id == v.id {
		return s
	}
	next := make(map[int64]Term, len(s.bindings)+1)
	for k, t := range s.bindings {
		next[k] = t
	}
	next[v.id] = term
	return &Substitution{bindings: next}
}

// Walk traverses a term following variable bindings to a terminal value
// or an unbound variable.
func (s *Substitution) Walk(term Term) Term {
	for term.IsVar() {
		bound := s.Lookup(term.(*Var))
		if bound == nil {
			return term
		}
		term = bound
	}
	return term
}

// Size returns the number of bindings in the substitution.
func (s *Substitution) Size() int { return len(s.bindings) }

// State is the solver state threaded through a search branch: the current
// substitution paired with the finite-domain store. States are created
// fresh per top-level query, extended on each successful constraint
// application and discarded on backtrack. All extension operations return
// new State values.
type State struct {
	sub  *Substitution
	doms *DomainStore
}

// NewState creates an empty solver state.
func NewState() *State {
	return &State{sub: NewSubstitution(), doms: NewDomainStore()}
}

// Walk resolves a term through the state's substitution.
func (st *State) Walk(term Term) Term {
	return st.sub.Walk(term)
}

// DomainOf returns the finite domain attached to a term's terminal
// variable, if any. Bound terms have no domain.
func (st *State) DomainOf(term Term) (Domain, bool) {
	t := st.Walk(term)
	if v, ok := t.(*Var); ok {
		return st.doms.Get(v.id)
	}
	return Domain{}, false
}

// withDomain returns a state whose store maps v to d, or failure if d is
// empty. An empty domain must immediately fail the owning goal.
func (st *State) withDomain(v *Var, d Domain) (*State, bool) {
	if d.IsEmpty() {
		return nil, false
	}
	return &State{sub: st.sub, doms: st.doms.With(v.id, d)}, true
}

// unify makes two terms equal under the state, binding variables as
// needed. It returns the extended state and true on success, or nil and
// false on conflict. Bindings respect the domain store: grounding a
// variable to an integer outside its domain fails, and unifying two
// domain-carrying variables intersects their domains.
func unify(a, b Term, st *State) (*State, bool) {
	ta := st.Walk(a)
	tb := st.Walk(b)

	if ta.Equal(tb) {
		return st, true
	}
	if va, ok := ta.(*Var); ok {
		return bindVar(va, tb, st)
	}
	if vb, ok := tb.(*Var); ok {
		return bindVar(vb, ta, st)
	}
	return nil, false
}

// bindVar binds a walked, unbound variable to a walked term, reconciling
// the domain store with the new binding.
func bindVar(v *Var, t Term, st *State) (*State, bool) {
	dv, hasDom := st.doms.Get(v.id)

	if tv, ok := t.(*Var); ok {
		// Variable-to-variable: the binding target inherits the
		// intersection of both domains.
		next := &State{sub: st.sub.Bind(v, t), doms: st.doms}
		if !hasDom {
			return next, true
		}
		if dt, ok := st.doms.Get(tv.id); ok {
			merged := dv.Intersect(dt)
			if merged.IsEmpty() {
				return nil, false
			}
			next.doms = next.doms.With(tv.id, merged).Without(v.id)
			return next, true
		}
		next.doms = next.doms.With(tv.id, dv).Without(v.id)
		return next, true
	}

	if hasDom {
		n, isInt := atomInt(t)
		if !isInt || !dv.Has(n) {
			return nil, false
		}
		return &State{sub: st.sub.Bind(v, t), doms: st.doms.Without(v.id)}, true
	}
	return &State{sub: st.sub.Bind(v, t), doms: st.doms}, true
}

// Goal is the unit of composition: a function from an incoming solver
// state to the ordered sequence of states in which it holds. An empty
// result means the goal fails on that state. Goals never mutate the
// incoming state.
type Goal func(st *State) []*State

// Success is a goal that always succeeds with the given state.
var Success Goal = func(st *State) []*State {
	return []*State{st}
}

// Failure is a goal that always fails.
var Failure Goal = func(st *State) []*State {
	return nil
}
