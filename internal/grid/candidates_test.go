package grid

import "testing"

func TestCandidatesBasics(t *testing.T) {
	c := NewCandidates([]int{2, 4, 6})
	if c.Count() != 3 {
		t.Errorf("Count = %d, want 3", c.Count())
	}
	if !c.Has(4) || c.Has(5) {
		t.Error("Has mismatch")
	}
	c = c.Clear(4)
	if c.Has(4) {
		t.Error("Clear(4) failed")
	}
	if _, ok := c.Only(); ok {
		t.Error("Only() true for 2 candidates")
	}
	single := NewCandidates([]int{7})
	if v, ok := single.Only(); !ok || v != 7 {
		t.Errorf("Only() = %d, %v, want 7, true", v, ok)
	}
}

func TestCandidatesSetOps(t *testing.T) {
	a := NewCandidates([]int{1, 2, 3})
	b := NewCandidates([]int{2, 3, 4})
	if a.Intersect(b).Count() != 2 {
		t.Error("Intersect wrong size")
	}
	if a.Union(b).Count() != 4 {
		t.Error("Union wrong size")
	}
	if a.Subtract(b).ToSlice()[0] != 1 {
		t.Error("Subtract wrong result")
	}
}

func TestAllCandidatesForN(t *testing.T) {
	for _, n := range []int{4, 6, 9, 16} {
		c := AllCandidates(n)
		if c.Count() != n {
			t.Errorf("AllCandidates(%d).Count() = %d, want %d", n, c.Count(), n)
		}
		if c.Has(0) {
			t.Error("AllCandidates must not include digit 0")
		}
	}
}
