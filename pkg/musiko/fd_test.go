package musiko

import "testing"

func TestIno(t *testing.T) {
	dom := NewDomainRange(0, 127)

	t.Run("ground member succeeds", func(t *testing.T) {
		if got := Ino(NewAtom(60), dom)(NewState()); len(got) != 1 {
			t.Errorf("Expected 1 state, got %d", len(got))
		}
	})

	t.Run("ground non-member fails", func(t *testing.T) {
		if got := Ino(NewAtom(128), dom)(NewState()); len(got) != 0 {
			t.Errorf("Expected 0 states, got %d", len(got))
		}
	})

	t.Run("variable acquires the domain", func(t *testing.T) {
		x := Fresh("x")
		states := Ino(x, dom)(NewState())
		if len(states) != 1 {
			t.Fatalf("Expected 1 state, got %d", len(states))
		}
		d, has := states[0].DomainOf(x)
		if !has || !d.Equal(dom) {
			t.Errorf("Expected full domain on x, got %v", d)
		}
	})

	t.Run("repeated restriction intersects", func(t *testing.T) {
		x := Fresh("x")
		goal := Conj(Ino(x, NewDomainRange(0, 64)), Ino(x, NewDomainRange(60, 127)))
		states := goal(NewState())
		if len(states) != 1 {
			t.Fatalf("Expected 1 state, got %d", len(states))
		}
		d, _ := states[0].DomainOf(x)
		if !d.Equal(NewDomainRange(60, 64)) {
			t.Errorf("Expected [60,64], got %v", d)
		}
	})

	t.Run("empty intersection fails", func(t *testing.T) {
		x := Fresh("x")
		goal := Conj(Ino(x, NewDomainRange(0, 10)), Ino(x, NewDomainRange(20, 30)))
		if got := goal(NewState()); len(got) != 0 {
			t.Errorf("Expected 0 states, got %d", len(got))
		}
	})

	t.Run("singleton restriction grounds the variable", func(t *testing.T) {
		x := Fresh("x")
		states := Ino(x, NewDomainValues(60))(NewState())
		if len(states) != 1 {
			t.Fatalf("Expected 1 state, got %d", len(states))
		}
		if got := states[0].Walk(x); !got.Equal(NewAtom(60)) {
			t.Errorf("Expected x = 60, got %v", got)
		}
	})
}

func TestDiffo(t *testing.T) {
	dom := NewDomainRange(0, 127)

	t.Run("both ground consistent", func(t *testing.T) {
		if got := Diffo(NewAtom(64), NewAtom(60), 4)(NewState()); len(got) != 1 {
			t.Errorf("Expected 1 state, got %d", len(got))
		}
	})

	t.Run("both ground inconsistent", func(t *testing.T) {
		if got := Diffo(NewAtom(64), NewAtom(60), 5)(NewState()); len(got) != 0 {
			t.Errorf("Expected 0 states, got %d", len(got))
		}
	})

	t.Run("first ground derives second", func(t *testing.T) {
		b := Fresh("b")
		states := Conj(Ino(b, dom), Diffo(NewAtom(64), b, 4))(NewState())
		if len(states) != 1 {
			t.Fatalf("Expected 1 state, got %d", len(states))
		}
		if got := states[0].Walk(b); !got.Equal(NewAtom(60)) {
			t.Errorf("Expected b = 60, got %v", got)
		}
	})

	t.Run("second ground derives first", func(t *testing.T) {
		a := Fresh("a")
		states := Conj(Ino(a, dom), Diffo(a, NewAtom(60), 4))(NewState())
		if len(states) != 1 {
			t.Fatalf("Expected 1 state, got %d", len(states))
		}
		if got := states[0].Walk(a); !got.Equal(NewAtom(64)) {
			t.Errorf("Expected a = 64, got %v", got)
		}
	})

	t.Run("derived value outside domain fails", func(t *testing.T) {
		b := Fresh("b")
		// 2 - 4 = -2 is no pitch.
		states := Conj(Ino(b, dom), Diffo(NewAtom(2), b, 4))(NewState())
		if len(states) != 0 {
			t.Errorf("Expected 0 states, got %d", len(states))
		}
	})

	t.Run("neither ground enumerates consistent pairs ascending", func(t *testing.T) {
		a := Fresh("a")
		b := Fresh("b")
		goal := Conj(Ino(a, NewDomainRange(0, 5)), Ino(b, NewDomainRange(0, 5)), Diffo(a, b, 3))
		states := goal(NewState())
		if len(states) != 3 {
			t.Fatalf("Expected 3 states, got %d", len(states))
		}
		for i, st := range states {
			wantB, wantA := i, i+3
			if got := st.Walk(b); !got.Equal(NewAtom(wantB)) {
				t.Errorf("state %d: expected b = %d, got %v", i, wantB, got)
			}
			if got := st.Walk(a); !got.Equal(NewAtom(wantA)) {
				t.Errorf("state %d: expected a = %d, got %v", i, wantA, got)
			}
		}
	})

	t.Run("same variable on both sides", func(t *testing.T) {
		x := Fresh("x")
		if got := Diffo(x, x, 0)(NewState()); len(got) != 1 {
			t.Error("x = x + 0 must hold")
		}
		if got := Diffo(x, x, 4)(NewState()); len(got) != 0 {
			t.Error("x = x + 4 must fail")
		}
	})
}
