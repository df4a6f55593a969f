package ioformat

import (
	"testing"

	"sudokuengine/internal/grid"
)

const s1Puzzle = "" +
	"003020600" +
	"900305001" +
	"001806400" +
	"008102900" +
	"700000008" +
	"006708200" +
	"002609500" +
	"800203009" +
	"005010300"

func TestAutoSizeSquareGrids(t *testing.T) {
	cases := []struct {
		length, w, h int
	}{
		{81, 3, 3},
		{36, 2, 3},
		{16, 2, 2},
		{256, 4, 4},
	}
	for _, c := range cases {
		w, h, err := AutoSize(c.length)
		if err != nil {
			t.Fatalf("AutoSize(%d): %v", c.length, err)
		}
		if w != c.w || h != c.h {
			t.Errorf("AutoSize(%d) = (%d,%d), want (%d,%d)", c.length, w, h, c.w, c.h)
		}
	}
}

func TestAutoSizeRejectsNonSquare(t *testing.T) {
	if _, _, err := AutoSize(80); err == nil {
		t.Error("expected an error for a non-square field count")
	}
}

func TestParseFormatRoundTrip9x9(t *testing.T) {
	g, err := Parse(s1Puzzle, ParseOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if g.W != 3 || g.H != 3 || g.N != 9 {
		t.Fatalf("Parse auto-sized to W=%d H=%d N=%d, want 3,3,9", g.W, g.H, g.N)
	}
	if got := Format(g); got != s1Puzzle {
		t.Errorf("Format round trip = %q, want %q", got, s1Puzzle)
	}
}

func TestParseIgnoresWhitespace(t *testing.T) {
	spaced := "003 020 600\n900 305 001\n001 806 400\n008 102 900\n" +
		"700 000 008\n006 708 200\n002 609 500\n800 203 009\n005 010 300"
	g, err := Parse(spaced, ParseOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if Format(g) != s1Puzzle {
		t.Error("whitespace in the input changed the parsed grid")
	}
}

func TestParseRejectsWrongFieldCount(t *testing.T) {
	if _, err := Parse("00302060", ParseOptions{}); err == nil {
		t.Error("expected an error for a non-square field count")
	}
}

func TestCandidateSectionRoundTrip(t *testing.T) {
	g, err := Parse(s1Puzzle, ParseOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if err := g.SetCandidates(0, 0, grid.NewCandidates([]int{1, 4, 5})); err != nil {
		t.Fatal(err)
	}
	s := FormatWithCandidates(g, "")

	g2, err := Parse(s, ParseOptions{})
	if err != nil {
		t.Fatal(err)
	}
	c, _ := g2.GetCandidates(0, 0)
	if c.Count() != 3 || !c.Has(1) || !c.Has(4) || !c.Has(5) {
		t.Errorf("candidate round trip for (0,0) = %v, want {1,4,5}", c)
	}
}

func TestParseExplicit6x6(t *testing.T) {
	s := "123456" +
		"630001" +
		"500002" +
		"462513" +
		"314625" +
		"251364"
	g, err := Parse(s, ParseOptions{W: 3, H: 2})
	if err != nil {
		t.Fatal(err)
	}
	if g.W != 3 || g.H != 2 || g.N != 6 {
		t.Fatalf("explicit parse = W=%d H=%d N=%d, want 3,2,6", g.W, g.H, g.N)
	}
}
