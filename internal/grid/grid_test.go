package grid

import "testing"

func TestNewValidatesSize(t *testing.T) {
	if _, err := New(0, 3); err == nil {
		t.Error("New(0,3) = nil error, want error")
	}
	g, err := New(3, 2)
	if err != nil {
		t.Fatalf("New(3,2): %v", err)
	}
	if g.N != 6 {
		t.Errorf("N = %d, want 6", g.N)
	}
}

func TestGetSetRoundTrip(t *testing.T) {
	g, _ := New(3, 3)
	if err := g.Set(2, 3, 7); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, err := g.Get(2, 3)
	if err != nil || v != 7 {
		t.Errorf("Get(2,3) = %d, %v, want 7, nil", v, err)
	}
}

func TestOutOfRangeCoordinate(t *testing.T) {
	g, _ := New(3, 3)
	if _, err := g.Get(9, 0); err == nil {
		t.Error("Get(9,0) = nil error, want InvalidCoordinate")
	}
	if err := g.Set(-1, 0, 1); err == nil {
		t.Error("Set(-1,0,1) = nil error, want InvalidCoordinate")
	}
}

func TestCandidatesIndependentOfNumbers(t *testing.T) {
	g, _ := New(3, 3)
	g.Set(0, 0, 5)
	// Set() must not touch candidates (spec §3 invariant).
	c, _ := g.GetCandidates(0, 0)
	if !c.IsEmpty() {
		t.Errorf("candidates after Set = %v, want empty", c)
	}
	g.SetCandidates(0, 0, NewCandidates([]int{1, 2, 3}))
	c, _ = g.GetCandidates(0, 0)
	if c.Count() != 3 {
		t.Errorf("candidates count = %d, want 3", c.Count())
	}
	g.RemoveCandidates(0, 0, NewCandidates([]int{2}))
	c, _ = g.GetCandidates(0, 0)
	if c.Has(2) {
		t.Error("candidate 2 still present after removal")
	}
}

func TestCopyIncludeCandidates(t *testing.T) {
	g, _ := New(3, 3)
	g.Set(0, 0, 5)
	g.SetCandidates(1, 1, NewCandidates([]int{4, 5}))

	withC := g.Copy(true)
	if c, _ := withC.GetCandidates(1, 1); c.Count() != 2 {
		t.Errorf("copy with candidates lost them")
	}

	without := g.Copy(false)
	if c, _ := without.GetCandidates(1, 1); !c.IsEmpty() {
		t.Errorf("copy without candidates kept them")
	}
	if v, _ := without.Get(0, 0); v != 5 {
		t.Errorf("copy lost numbers")
	}
}

func TestDiffAndEqual(t *testing.T) {
	a, _ := New(3, 3)
	b, _ := New(3, 3)
	a.Set(0, 0, 1)
	b.Set(0, 0, 2)
	diff := a.Diff(b)
	if len(diff) != 1 || diff[0].Row != 0 || diff[0].Col != 0 {
		t.Errorf("Diff = %+v, want [{0 0}]", diff)
	}
	if a.Equal(b) {
		t.Error("Equal = true, want false")
	}
	b.Set(0, 0, 1)
	if !a.Equal(b) {
		t.Error("Equal = false, want true")
	}
	// Candidates must not affect Equal.
	b.SetCandidates(0, 0, NewCandidates([]int{9}))
	if !a.Equal(b) {
		t.Error("Equal should ignore candidates")
	}
}

func TestEmptyAndFilled(t *testing.T) {
	g, _ := New(3, 3)
	g.Set(0, 0, 1)
	if len(g.Filled()) != 1 {
		t.Errorf("Filled count = %d, want 1", len(g.Filled()))
	}
	if len(g.Empty()) != g.N*g.N-1 {
		t.Errorf("Empty count = %d, want %d", len(g.Empty()), g.N*g.N-1)
	}
}
