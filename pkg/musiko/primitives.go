package musiko

import "fmt"

// Conj creates a conjunction goal that requires all goals to succeed on
// the same state. Goals are evaluated sequentially: each goal runs on
// every state produced by the goals before it, outer-to-inner, so the
// result order is the nested iteration order.
//
// Example:
//
//	th := Default()
//	goal := Conj(
//	    th.Intervalo(4, root, third),
//	    th.Intervalo(7, root, fifth),
//	)
func Conj(goals ...Goal) Goal {
	if len(goals) == 0 {
		return Success
	}
	if len(goals) == 1 {
		return goals[0]
	}
	return func(st *State) []*State {
		states := []*State{st}
		for _, g := range goals {
			var next []*State
			for _, s := range states {
				next = append(next, g(s)...)
			}
			if len(next) == 0 {
				return nil
			}
			states = next
		}
		return states
	}
}

// Disj creates a disjunction goal that succeeds if any sub-goal succeeds.
// Each sub-goal is applied independently to the incoming state and the
// results are concatenated in declaration order, which makes enumeration
// order stable and repeatable.
//
// Example:
//
//	goal := Disj(Diffo(a, b, 4), Diffo(b, a, 4)) // a above b, or b above a
func Disj(goals ...Goal) Goal {
	if len(goals) == 0 {
		return Failure
	}
	if len(goals) == 1 {
		return goals[0]
	}
	return func(st *State) []*State {
		var out []*State
		for _, g := range goals {
			out = append(out, g(st)...)
		}
		return out
	}
}

// Conde is an alias for Disj, following miniKanren naming conventions.
func Conde(goals ...Goal) Goal {
	return Disj(goals...)
}

// Eq creates a unification goal that constrains two terms to be equal.
// This is the fundamental constraint: it makes two terms identical by
// binding variables as needed, or fails if they are bound to different
// concrete values.
//
// Example:
//
//	p := Fresh("p")
//	goal := Eq(p, NewAtom(60)) // binds p to 60
func Eq(a, b Term) Goal {
	return func(st *State) []*State {
		out, ok := unify(a, b, st)
		if !ok {
			return nil
		}
		return []*State{out}
	}
}

// RunTuples executes a goal against an empty state and materializes up to
// n solutions as tuples of the given variables' terminal values, in
// search order. A non-positive n exhausts the (finite, domain-bounded)
// search space.
//
// A variable of interest that a solution leaves unbound is expanded into
// its remaining domain candidates in ascending order, one tuple per
// candidate (leftmost variable outermost), so no unresolved variable ever
// appears in output. Variables without a domain reify to placeholder
// atoms "_0", "_1", ... numbered per tuple.
func RunTuples(n int, goal Goal, vars ...*Var) [][]Term {
	var results [][]Term
	for _, st := range goal(NewState()) {
		for _, tuple := range expand(st, vars) {
			results = append(results, tuple)
			if n > 0 && len(results) == n {
				return results
			}
		}
	}
	return results
}

// expand resolves each variable of interest in a solution state,
// multiplying out domain candidates for any variable left unbound.
func expand(st *State, vars []*Var) [][]Term {
	tuples := [][]Term{nil}
	reified := 0
	for _, v := range vars {
		w := st.Walk(v)
		var choices []Term
		if uv, ok := w.(*Var); ok {
			if d, has := st.doms.Get(uv.id); has {
				d.IterateValues(func(val int) {
					choices = append(choices, NewAtom(val))
				})
			} else {
				choices = []Term{NewAtom(fmt.Sprintf("_%d", reified))}
				reified++
			}
		} else {
			choices = []Term{w}
		}
		var next [][]Term
		for _, t := range tuples {
			for _, c := range choices {
				row := make([]Term, len(t), len(t)+1)
				copy(row, t)
				next = append(next, append(row, c))
			}
		}
		tuples = next
	}
	return tuples
}

// Run executes a goal over a single query variable and returns up to n
// solutions for it. This is the classic entry point for single-variable
// queries.
//
// Example:
//
//	pitches := Run(0, func(q *Var) Goal {
//	    return Default().Noteo(NewAtom("C"), NewAtom(4), q)
//	})
//	// pitches: [60]
func Run(n int, goalFunc func(q *Var) Goal) []Term {
	q := Fresh("q")
	tuples := RunTuples(n, goalFunc(q), q)
	results := make([]Term, 0, len(tuples))
	for _, t := range tuples {
		results = append(results, t[0])
	}
	return results
}

// RunStar executes a goal and returns all solutions for the query
// variable. The search space of every relation in this package is
// domain-bounded, so exhaustive enumeration always terminates.
func RunStar(goalFunc func(q *Var) Goal) []Term {
	return Run(0, goalFunc)
}
