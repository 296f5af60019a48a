package musiko

// DomainStore maps logic variables to their finite domains. Like the
// substitution it is extended copy-on-write, so states on sibling search
// branches never observe each other's propagation.
type DomainStore struct {
	doms map[int64]Domain
}

// NewDomainStore creates an empty domain store.
func NewDomainStore() *DomainStore {
	return &DomainStore{doms: make(map[int64]Domain)}
}

// Get returns the domain attached to a variable ID, if any.
func (ds *DomainStore) Get(id int64) (Domain, bool) {
	d, ok := ds.doms[id]
	return d, ok
}

// With returns a new store with id mapped to d.
func (ds *DomainStore) With(id int64, d Domain) *DomainStore {
	next := make(map[int64]Domain, len(ds.doms)+1)
	for k, v := range ds.doms {
		next[k] = v
	}
	next[id] = d
	return &DomainStore{doms: next}
}

// Without returns a new store with id's domain removed. Used when a
// variable becomes ground: its admissibility has been checked and the
// domain entry is no longer needed.
func (ds *DomainStore) Without(id int64) *DomainStore {
	if _, ok := ds.doms[id]; !ok {
		return ds
	}
	next := make(map[int64]Domain, len(ds.doms))
	for k, v := range ds.doms {
		if k != id {
			next[k] = v
		}
	}
	return &DomainStore{doms: next}
}

// Size returns the number of variables carrying a domain.
func (ds *DomainStore) Size() int { return len(ds.doms) }

// Ino constrains a term to lie in the given domain. If the term is
// already ground it succeeds iff the value is a member; if it is a
// variable, its domain is intersected with d (or set to d if it had
// none), failing when the intersection is empty.
//
// Example:
//
//	p := Fresh("p")
//	goal := Ino(p, NewDomainRange(21, 108)) // p is a piano key
func Ino(t Term, d Domain) Goal {
	return func(st *State) []*State {
		w := st.Walk(t)
		if n, ok := atomInt(w); ok {
			if d.Has(n) {
				return []*State{st}
			}
			return nil
		}
		v, ok := w.(*Var)
		if !ok {
			return nil
		}
		cur, has := st.doms.Get(v.id)
		next := d
		if has {
			next = cur.Intersect(d)
		}
		out, ok := st.withDomain(v, next)
		if !ok {
			return nil
		}
		// A domain narrowed to one value grounds the variable.
		if next.IsSingleton() {
			out, ok = unify(v, NewAtom(next.SingletonValue()), out)
			if !ok {
				return nil
			}
		}
		return []*State{out}
	}
}

// Diffo constrains a = b + d, the directional difference propagator.
// Its behavior depends on which sides are ground:
//
//   - both ground: arithmetic check, succeed or fail;
//   - one ground: the other is derived and unified (respecting its
//     domain), yielding at most one state;
//   - neither ground: both domains are narrowed against each other
//     (shift-and-intersect), then the relation grounds both sides by
//     enumerating b's narrowed domain in ascending order, one state per
//     consistent pair.
//
// The enumeration in the last case keeps every emitted state fully
// ground with respect to a and b, so no joint constraint is ever left
// pending for the search driver to misinterpret.
func Diffo(a, b Term, d int) Goal {
	return func(st *State) []*State {
		wa := st.Walk(a)
		wb := st.Walk(b)

		na, aGround := atomInt(wa)
		nb, bGround := atomInt(wb)

		switch {
		case aGround && bGround:
			if na == nb+d {
				return []*State{st}
			}
			return nil

		case aGround:
			out, ok := unify(wb, NewAtom(na-d), st)
			if !ok {
				return nil
			}
			return []*State{out}

		case bGround:
			out, ok := unify(wa, NewAtom(nb+d), st)
			if !ok {
				return nil
			}
			return []*State{out}
		}

		va, aVar := wa.(*Var)
		vb, bVar := wb.(*Var)
		if !aVar || !bVar {
			return nil
		}
		if va.id == vb.id {
			// a = a + d holds only for d = 0.
			if d == 0 {
				return []*State{st}
			}
			return nil
		}

		da, hasA := st.doms.Get(va.id)
		db, hasB := st.doms.Get(vb.id)
		if !hasA || !hasB {
			// Without a finite domain on both sides there is nothing
			// to enumerate; the relation cannot be satisfied finitely.
			return nil
		}

		da = da.Intersect(db.Shift(d))
		db = db.Intersect(da.Shift(-d))
		if da.IsEmpty() || db.IsEmpty() {
			return nil
		}

		var out []*State
		db.IterateValues(func(v int) {
			s1, ok := unify(vb, NewAtom(v), st)
			if !ok {
				return
			}
			s2, ok := unify(va, NewAtom(v+d), s1)
			if !ok {
				return
			}
			out = append(out, s2)
		})
		return out
	}
}
