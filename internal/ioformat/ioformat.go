// Package ioformat implements the grid string format of spec.md §6:
// an N² field section of digit characters, an optional "|"-separated
// candidate section, and auto-sizing when W and H aren't given
// explicitly. Grounded on
// original_source/sudokutools/sudoku.py's Sudoku.__str__/from_str and
// printing.py's pretty_str, generalized from hardcoded 9×9 to
// arbitrary N and extended with the candidate section spec.md adds.
package ioformat

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"sudokuengine/internal/grid"
	"sudokuengine/internal/sudokuerr"
)

// ParseOptions controls how Parse reads a grid string. A zero value
// means "auto-size, default candidate digit separator".
type ParseOptions struct {
	W, H int // explicit box dimensions; if both are 0, auto-size from length
	// NSep separates digits within one cell's candidate list when N>9.
	// Defaults to ";" when empty; unused when N<=9.
	NSep string
}

// AutoSize infers (W, H) from a field-section length matching spec.md
// §6: N = sqrt(length) verified by squaring (never by float
// comparison, to avoid FP drift), then W is the largest divisor of N
// with W <= sqrt(N).
func AutoSize(length int) (w, h int, err error) {
	if length <= 0 {
		return 0, 0, fmt.Errorf("%w: empty grid string", sudokuerr.ErrParse)
	}
	root := int(math.Sqrt(float64(length)))
	for root*root > length {
		root--
	}
	for (root+1)*(root+1) <= length {
		root++
	}
	if root*root != length {
		return 0, 0, fmt.Errorf("%w: %d is not a perfect square", sudokuerr.ErrParse, length)
	}
	n := root

	bound := int(math.Sqrt(float64(n)))
	for bound*bound > n {
		bound--
	}
	for (bound+1)*(bound+1) <= n {
		bound++
	}

	for w := bound; w >= 1; w-- {
		if n%w == 0 {
			return w, n / w, nil
		}
	}
	return 0, 0, fmt.Errorf("%w: %d has no rectangular box factorization", sudokuerr.ErrParse, n)
}

// Parse decodes a grid string. Whitespace is stripped before parsing.
// Field tokens are single characters when N<=9 (the only case where
// auto-sizing from length alone applies); for N>9 the field section
// is comma-separated numbers and callers must pass an explicit (W,H),
// since a bare digit string can no longer be split unambiguously.
func Parse(s string, opts ParseOptions) (*grid.Grid, error) {
	fields, candPart, err := splitSections(s)
	if err != nil {
		return nil, err
	}

	w, h := opts.W, opts.H
	tokens, err := fieldTokens(fields, w, h)
	if err != nil {
		return nil, err
	}

	if w == 0 && h == 0 {
		w, h, err = AutoSize(len(tokens))
		if err != nil {
			return nil, err
		}
	}

	g, err := grid.New(w, h)
	if err != nil {
		return nil, err
	}
	if len(tokens) != g.N*g.N {
		return nil, fmt.Errorf("%w: expected %d fields, got %d", sudokuerr.ErrParse, g.N*g.N, len(tokens))
	}

	for i, tok := range tokens {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q is not a number", sudokuerr.ErrParse, tok)
		}
		if err := g.Set(i/g.N, i%g.N, v); err != nil {
			return nil, err
		}
	}

	if candPart != "" {
		if err := parseCandidates(g, candPart, opts.NSep); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func splitSections(s string) (fields, candidates string, err error) {
	parts := strings.SplitN(s, "|", 2)
	fields = stripWhitespace(parts[0])
	if len(parts) == 2 {
		candidates = parts[1]
	}
	return fields, candidates, nil
}

func stripWhitespace(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == ' ' || r == '\n' || r == '\t' || r == '\r' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// fieldTokens splits the field section into per-cell tokens. When W,H
// are given and N>9, tokens are comma-separated; otherwise each
// character is its own token.
func fieldTokens(fields string, w, h int) ([]string, error) {
	if w > 0 && h > 0 && w*h > 9 {
		var out []string
		for _, t := range strings.Split(fields, ",") {
			if t == "" {
				continue
			}
			out = append(out, t)
		}
		return out, nil
	}
	out := make([]string, 0, len(fields))
	for _, r := range fields {
		out = append(out, string(r))
	}
	return out, nil
}

func parseCandidates(g *grid.Grid, candPart, nsep string) error {
	if nsep == "" && g.N > 9 {
		nsep = ";"
	}
	// Cells are always comma-separated; within a cell, digits are
	// concatenated when N<=9 and nsep-separated when N>9.
	cells := strings.Split(candPart, ",")
	if len(cells) != g.N*g.N {
		return fmt.Errorf("%w: expected %d candidate cells, got %d", sudokuerr.ErrParse, g.N*g.N, len(cells))
	}
	for i, cellStr := range cells {
		digits, err := parseCellCandidates(cellStr, g.N, nsep)
		if err != nil {
			return err
		}
		if err := g.SetCandidates(i/g.N, i%g.N, grid.NewCandidates(digits)); err != nil {
			return err
		}
	}
	return nil
}

func parseCellCandidates(s string, n int, nsep string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	var parts []string
	if n > 9 {
		parts = strings.Split(s, nsep)
	} else {
		parts = make([]string, len(s))
		for i, r := range s {
			parts[i] = string(r)
		}
	}
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%w: candidate %q is not a number", sudokuerr.ErrParse, p)
		}
		out = append(out, v)
	}
	return out, nil
}

// Format encodes g's field section, one character/token per cell, in
// row-major order. For N<=9 cells are concatenated digit characters;
// for N>9 cells are comma-separated numbers.
func Format(g *grid.Grid) string {
	var b strings.Builder
	for i, cell := range g.AllCells() {
		v, _ := g.Get(cell.Row, cell.Col)
		if g.N > 9 && i > 0 {
			b.WriteString(",")
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// FormatWithCandidates encodes g's field section followed by "|" and
// its candidate section, one comma-separated group per cell.
func FormatWithCandidates(g *grid.Grid, nsep string) string {
	if nsep == "" && g.N > 9 {
		nsep = ";"
	}
	var b strings.Builder
	b.WriteString(Format(g))
	b.WriteString("|")
	for i, cell := range g.AllCells() {
		if i > 0 {
			b.WriteString(",")
		}
		c, _ := g.GetCandidates(cell.Row, cell.Col)
		digits := c.ToSlice()
		for j, d := range digits {
			if j > 0 {
				b.WriteString(nsep)
			}
			b.WriteString(strconv.Itoa(d))
		}
	}
	return b.String()
}
