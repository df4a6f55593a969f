package human

import (
	"sudokuengine/internal/geometry"
	"sudokuengine/internal/grid"
)

// allHouses returns every row, column and box of g, in that order, as
// a flat list of cell-coordinate slices.
func allHouses(g *grid.Grid) [][]geometry.Coord {
	houses := make([][]geometry.Coord, 0, 3*g.N)
	for r := 0; r < g.N; r++ {
		houses = append(houses, geometry.TheRow(g.N, r))
	}
	for c := 0; c < g.N; c++ {
		houses = append(houses, geometry.TheColumn(g.N, c))
	}
	for b := 0; b < g.N; b++ {
		houses = append(houses, geometry.TheBox(g.W, g.H, b))
	}
	return houses
}
