package musiko

import (
	"testing"
)

func TestWalk(t *testing.T) {
	t.Run("unbound variable walks to itself", func(t *testing.T) {
		st := NewState()
		x := Fresh("x")
		if got := st.Walk(x); !got.Equal(x) {
			t.Errorf("Expected %v, got %v", x, got)
		}
	})

	t.Run("chained bindings walk to terminal value", func(t *testing.T) {
		st := NewState()
		x := Fresh("x")
		y := Fresh("y")
		st, ok := unify(x, y, st)
		if !ok {
			t.Fatal("var-var unification should succeed")
		}
		st, ok = unify(y, NewAtom(60), st)
		if !ok {
			t.Fatal("var-atom unification should succeed")
		}
		if got := st.Walk(x); !got.Equal(NewAtom(60)) {
			t.Errorf("Expected 60, got %v", got)
		}
	})
}

func TestUnify(t *testing.T) {
	t.Run("equal atoms unify without extending", func(t *testing.T) {
		st := NewState()
		out, ok := unify(NewAtom("C"), NewAtom("C"), st)
		if !ok {
			t.Fatal("equal atoms should unify")
		}
		if out.sub.Size() != 0 {
			t.Errorf("Expected no new bindings, got %d", out.sub.Size())
		}
	})

	t.Run("different atoms conflict", func(t *testing.T) {
		if _, ok := unify(NewAtom(60), NewAtom(61), NewState()); ok {
			t.Error("distinct concrete values must not unify")
		}
	})

	t.Run("bound variable conflicts with different value", func(t *testing.T) {
		st := NewState()
		x := Fresh("x")
		st, _ = unify(x, NewAtom(60), st)
		if _, ok := unify(x, NewAtom(61), st); ok {
			t.Error("x is already 60, unifying with 61 must fail")
		}
	})

	t.Run("unifying a variable with itself is a no-op", func(t *testing.T) {
		st := NewState()
		x := Fresh("x")
		out, ok := unify(x, x, st)
		if !ok {
			t.Fatal("self-unification should succeed")
		}
		if out.sub.Size() != 0 {
			t.Error("self-unification must not create a binding")
		}
	})

	t.Run("distinct fresh variables are not equal", func(t *testing.T) {
		x := Fresh("v")
		y := Fresh("v")
		if x.Equal(y) {
			t.Error("fresh variables must be distinct regardless of name")
		}
	})
}

func TestDomainAwareBinding(t *testing.T) {
	t.Run("grounding inside domain succeeds", func(t *testing.T) {
		st := NewState()
		x := Fresh("x")
		st, ok := st.withDomain(x, NewDomainRange(60, 62))
		if !ok {
			t.Fatal("non-empty domain must attach")
		}
		out, ok := unify(x, NewAtom(61), st)
		if !ok {
			t.Fatal("61 lies in [60,62], binding should succeed")
		}
		if _, has := out.doms.Get(x.id); has {
			t.Error("grounded variable should drop its domain entry")
		}
	})

	t.Run("grounding outside domain fails", func(t *testing.T) {
		st := NewState()
		x := Fresh("x")
		st, _ = st.withDomain(x, NewDomainRange(60, 62))
		if _, ok := unify(x, NewAtom(70), st); ok {
			t.Error("70 lies outside [60,62], binding must fail")
		}
	})

	t.Run("var-var binding intersects domains", func(t *testing.T) {
		st := NewState()
		x := Fresh("x")
		y := Fresh("y")
		st, _ = st.withDomain(x, NewDomainRange(60, 70))
		st, _ = st.withDomain(y, NewDomainRange(65, 80))
		out, ok := unify(x, y, st)
		if !ok {
			t.Fatal("overlapping domains should merge")
		}
		d, has := out.DomainOf(x)
		if !has {
			t.Fatal("merged variable should carry a domain")
		}
		if !d.Equal(NewDomainRange(65, 70)) {
			t.Errorf("Expected [65,70], got %v", d)
		}
	})

	t.Run("var-var binding with disjoint domains fails", func(t *testing.T) {
		st := NewState()
		x := Fresh("x")
		y := Fresh("y")
		st, _ = st.withDomain(x, NewDomainRange(0, 10))
		st, _ = st.withDomain(y, NewDomainRange(20, 30))
		if _, ok := unify(x, y, st); ok {
			t.Error("disjoint domains must not merge")
		}
	})
}
