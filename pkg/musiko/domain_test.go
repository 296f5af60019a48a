package musiko

import (
	"reflect"
	"testing"
)

func TestDomainRange(t *testing.T) {
	d := NewDomainRange(21, 108)

	if d.Count() != 88 {
		t.Errorf("Expected 88 values, got %d", d.Count())
	}
	if !d.Has(21) || !d.Has(108) {
		t.Error("range endpoints must be members")
	}
	if d.Has(20) || d.Has(109) {
		t.Error("values outside the range must not be members")
	}
	if d.Min() != 21 || d.Max() != 108 {
		t.Errorf("Expected min 21 max 108, got %d %d", d.Min(), d.Max())
	}

	if !NewDomainRange(5, 4).IsEmpty() {
		t.Error("inverted range must be empty")
	}
}

func TestDomainValues(t *testing.T) {
	d := NewDomainValues(9, 3, 5)

	if got := d.Values(); !reflect.DeepEqual(got, []int{3, 5, 9}) {
		t.Errorf("Expected ascending [3 5 9], got %v", got)
	}
	if d.IsSingleton() {
		t.Error("three-value domain is not a singleton")
	}

	s := NewDomainValues(60)
	if !s.IsSingleton() || s.SingletonValue() != 60 {
		t.Errorf("Expected singleton 60, got %v", s)
	}
}

func TestDomainIntersect(t *testing.T) {
	t.Run("overlapping ranges", func(t *testing.T) {
		got := NewDomainRange(0, 10).Intersect(NewDomainRange(5, 20))
		if !got.Equal(NewDomainRange(5, 10)) {
			t.Errorf("Expected [5,10], got %v", got)
		}
	})

	t.Run("disjoint ranges are empty", func(t *testing.T) {
		if !NewDomainRange(0, 4).Intersect(NewDomainRange(10, 12)).IsEmpty() {
			t.Error("disjoint intersection must be empty")
		}
	})

	t.Run("sparse values", func(t *testing.T) {
		got := NewDomainValues(1, 4, 7).Intersect(NewDomainValues(4, 7, 9))
		if !got.Equal(NewDomainValues(4, 7)) {
			t.Errorf("Expected {4 7}, got %v", got)
		}
	})
}

func TestDomainShift(t *testing.T) {
	d := NewDomainValues(60, 64).Shift(7)
	if !d.Equal(NewDomainValues(67, 71)) {
		t.Errorf("Expected {67 71}, got %v", d)
	}

	// Shifts may leave the MIDI range; intersection clips them back.
	clipped := NewDomainRange(120, 127).Shift(4).Intersect(NewDomainRange(0, 127))
	if !clipped.Equal(NewDomainRange(124, 127)) {
		t.Errorf("Expected [124,127], got %v", clipped)
	}
}
