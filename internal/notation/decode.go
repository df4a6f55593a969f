package notation

import (
	"fmt"
	"strconv"
	"strings"

	"sudokuengine/internal/geometry"
	"sudokuengine/internal/sudokuerr"
)

// DecodeOptions configures Decode. A zero value uses ";" for the group
// separator and "," for the number separator, matching EncodeOptions.
type DecodeOptions struct {
	Sep  string
	NSep string
}

// Decode parses a notation string (as produced by Encode, or written
// by hand) into its coordinates. original_source/sudokutools never
// finished its own decode() (it raises NotImplementedError before any
// logic runs); this is a complete implementation of the grammar its
// docstring and Encode's output describe.
func Decode(s string, w, h int, opts DecodeOptions) ([]geometry.Coord, error) {
	if err := geometry.Validate(w, h); err != nil {
		return nil, err
	}
	n := geometry.N(w, h)
	sep := opts.Sep
	if sep == "" {
		sep = ";"
	}
	nsep := opts.NSep
	if nsep == "" {
		nsep = ","
	}

	var out []geometry.Coord
	for _, group := range strings.Split(s, sep) {
		group = strings.TrimSpace(group)
		if group == "" {
			continue
		}
		coords, err := decodeGroup(group, w, h, n, nsep)
		if err != nil {
			return nil, err
		}
		out = append(out, coords...)
	}
	return out, nil
}

// decodeGroup parses one "r1c1,4" / "b2p3" style token into the
// coordinates it names.
func decodeGroup(tok string, w, h, n int, nsep string) ([]geometry.Coord, error) {
	letterPos := make([]int, 0, 4)
	for i, c := range tok {
		switch c {
		case 'r', 'c', 'b', 'p':
			letterPos = append(letterPos, i)
		}
	}
	if len(letterPos) != 2 {
		return nil, fmt.Errorf("%w: %q must name exactly two fields (e.g. r1c1 or b1p1)", sudokuerr.ErrParse, tok)
	}

	first := string(tok[letterPos[0]])
	second := string(tok[letterPos[1]])
	firstNums, err := parseNumberList(tok[letterPos[0]+1:letterPos[1]], nsep, n)
	if err != nil {
		return nil, err
	}
	secondNums, err := parseNumberList(tok[letterPos[1]+1:], nsep, n)
	if err != nil {
		return nil, err
	}

	var coords []geometry.Coord
	switch {
	case first == "r" && second == "c":
		for _, r := range firstNums {
			for _, c := range secondNums {
				coords = append(coords, geometry.Coord{Row: r, Col: c})
			}
		}
	case first == "b" && second == "p":
		for _, b := range firstNums {
			for _, p := range secondNums {
				box := geometry.TheBox(w, h, b)
				if p < 0 || p >= len(box) {
					return nil, fmt.Errorf("%w: part %d out of range for box of size %d", sudokuerr.ErrParse, p+1, len(box))
				}
				coords = append(coords, box[p])
			}
		}
	default:
		return nil, fmt.Errorf("%w: %q mixes incompatible fields %q/%q", sudokuerr.ErrParse, tok, first, second)
	}

	for _, c := range coords {
		if !geometry.InBounds(n, c.Row, c.Col) {
			return nil, fmt.Errorf("%w: %q decodes to an out-of-range coordinate", sudokuerr.ErrParse, tok)
		}
	}
	return coords, nil
}

// parseNumberList parses the 1-based numbers following a field letter
// (e.g. "1,4,7" or, when n<=9, the concatenated digit run "147") and
// returns them as 0-based indices.
func parseNumberList(s string, nsep string, n int) ([]int, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: expected a number after a field letter", sudokuerr.ErrParse)
	}
	var parts []string
	if n > 9 {
		parts = strings.Split(s, nsep)
	} else {
		parts = make([]string, len(s))
		for i, c := range s {
			parts[i] = string(c)
		}
	}

	out := make([]int, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", sudokuerr.ErrParse, p)
		}
		out = append(out, v-1)
	}
	return out, nil
}
