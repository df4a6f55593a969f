// Package notation implements the rncn/bnpn coordinate notation of
// spec.md §6: cells are named either by 1-based row/column ("r1c1") or
// by 1-based box/part ("b1p1"), and several cells sharing a row,
// column or box can be grouped into one token ("r1c147"). When N>9,
// the numbers inside a group must be separated (by nsep, "," by
// default) since digits would otherwise run together.
package notation

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"sudokuengine/internal/geometry"
)

// Form selects which notation Encode should prefer.
type Form int

const (
	// Auto picks whichever of rncn/bnpn form is shorter.
	Auto Form = iota
	RowCol
	BoxPart
)

// EncodeOptions configures Encode. A zero value uses Auto form with
// the default group and number separators.
//
// Sep and NSep default to ";" and "," respectively rather than both
// defaulting to "," as in sudokutools.notation.encode: that library's
// decode() was never implemented (it raises NotImplementedError
// before any parsing logic runs), so the collision between the two
// defaults was never exercised. Decode here is a real implementation,
// and a shared separator is ambiguous the moment a single token uses
// grouped numbers (e.g. "r1c12,13" for N=16) next to another token.
type EncodeOptions struct {
	Form Form
	Sep  string // separates groups of coordinates, default ";"
	NSep string // separates numbers > 9 inside a group, default ","
}

// Encode renders coordinates as a notation string, grouping cells that
// share a row (or box) into a single "r1c147"-style (or "b1p12"-style)
// token; the numbers inside a token are joined by NSep only when N>9.
func Encode(coords []geometry.Coord, w, h int, opts EncodeOptions) (string, error) {
	if err := geometry.Validate(w, h); err != nil {
		return "", err
	}
	n := geometry.N(w, h)
	sep := opts.Sep
	if sep == "" {
		sep = ";"
	}
	nsep := opts.NSep
	if nsep == "" {
		if n > 9 {
			nsep = ","
		}
	}

	for _, c := range coords {
		if !geometry.InBounds(n, c.Row, c.Col) {
			return "", fmt.Errorf("notation: coordinate (%d,%d) out of range for N=%d", c.Row, c.Col, n)
		}
	}

	rowGroups := groupBy(coords, func(c geometry.Coord) (int, int) { return c.Row, c.Col })
	boxGroups := groupBy(coords, func(c geometry.Coord) (int, int) {
		return geometry.BoxAt(w, h, c.Row, c.Col), partOf(w, h, c.Row, c.Col)
	})

	rowStr := render("r", "c", rowGroups, sep, nsep)
	boxStr := render("b", "p", boxGroups, sep, nsep)

	switch opts.Form {
	case RowCol:
		return rowStr, nil
	case BoxPart:
		return boxStr, nil
	default:
		if len(boxStr) < len(rowStr) {
			return boxStr, nil
		}
		return rowStr, nil
	}
}

// partOf returns the intra-box offset of (row,col): the same formula
// spec.md §3 uses for the_part, inverted for a single cell.
func partOf(w, h, row, col int) int {
	return (col % w) + (row%h)*w
}

// groupBy merges coordinates sharing the same "key" component (first
// return of keyFn) into sets of the "value" component (second
// return), joining any two keys whose value sets are identical — the
// same grouping original_source/sudokutools/notation.py's
// _join_keys does to keep "r1c1,4" shorter than "r1c1" + "r1c4".
func groupBy(coords []geometry.Coord, keyFn func(geometry.Coord) (int, int)) map[string][]int {
	byKey := make(map[int]map[int]bool)
	var keyOrder []int
	for _, c := range coords {
		k, v := keyFn(c)
		if byKey[k] == nil {
			byKey[k] = make(map[int]bool)
			keyOrder = append(keyOrder, k)
		}
		byKey[k][v] = true
	}

	type group struct {
		keys   []int
		values map[int]bool
	}
	var groups []group
	for _, k := range keyOrder {
		vs := byKey[k]
		merged := false
		for i := range groups {
			if sameSet(groups[i].values, vs) {
				groups[i].keys = append(groups[i].keys, k)
				merged = true
				break
			}
		}
		if !merged {
			groups = append(groups, group{keys: []int{k}, values: vs})
		}
	}

	out := make(map[string][]int, len(groups))
	for _, g := range groups {
		sort.Ints(g.keys)
		keyStrs := make([]string, len(g.keys))
		for i, k := range g.keys {
			keyStrs[i] = strconv.Itoa(k + 1)
		}
		out[strings.Join(keyStrs, "\x00")] = setToSortedSlice(g.values)
	}
	return out
}

func sameSet(a, b map[int]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

func setToSortedSlice(s map[int]bool) []int {
	out := make([]int, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

func render(keyLetter, valLetter string, groups map[string][]int, sep, nsep string) string {
	var tokens []string
	for keyStr, values := range groups {
		keys := strings.Split(keyStr, "\x00")
		valStrs := make([]string, len(values))
		for i, v := range values {
			valStrs[i] = strconv.Itoa(v + 1)
		}
		tokens = append(tokens, fmt.Sprintf("%s%s%s%s%s",
			keyLetter, strings.Join(keys, nsepOrDefault(nsep)),
			valLetter, strings.Join(valStrs, nsepOrDefault(nsep)), ""))
	}
	sort.Strings(tokens)
	return strings.Join(tokens, sep)
}

func nsepOrDefault(nsep string) string {
	if nsep == "" {
		return ""
	}
	return nsep
}
