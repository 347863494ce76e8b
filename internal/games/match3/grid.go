package match3

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned for any coordinate access outside the grid.
var ErrOutOfBounds = errors.New("match3: coordinate out of bounds")

// Grid owns the board's tile slots, stored in row-major order
// (index = y*W + x). Every in-bounds coordinate always holds exactly one
// tile; "empty" is a state of a tile, never its absence.
type Grid struct {
	W     int
	H     int
	cells []Tile
}

// NewGrid creates a grid with all slots empty (destroyed).
func NewGrid(w, h int) *Grid {
	g := &Grid{
		W:     w,
		H:     h,
		cells: make([]Tile, w*h),
	}
	for i := range g.cells {
		g.cells[i] = emptyTile()
	}
	return g
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Y*g.W + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// At returns the tile at the given coordinate, or ErrOutOfBounds.
func (g *Grid) At(c Coord) (Tile, error) {
	if !g.InBounds(c) {
		return Tile{}, fmt.Errorf("%w: %s on %dx%d grid", ErrOutOfBounds, c, g.W, g.H)
	}
	return g.cells[g.index(c)], nil
}

// tile returns the tile at a coordinate the caller has already validated.
func (g *Grid) tile(c Coord) Tile {
	return g.cells[g.index(c)]
}

// Set assigns a tile type at the given coordinate, clearing the destroyed
// flag. Setting EmptyType clears the slot instead. Out-of-bounds
// coordinates return ErrOutOfBounds.
func (g *Grid) Set(c Coord, typeID int) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %s on %dx%d grid", ErrOutOfBounds, c, g.W, g.H)
	}
	if typeID == EmptyType {
		g.cells[g.index(c)] = emptyTile()
		return nil
	}
	g.cells[g.index(c)] = Tile{TypeID: typeID}
	return nil
}

// MarkDestroyed clears the slot at the given coordinate.
func (g *Grid) MarkDestroyed(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %s on %dx%d grid", ErrOutOfBounds, c, g.W, g.H)
	}
	g.cells[g.index(c)] = emptyTile()
	return nil
}

// swapTiles exchanges the content of two validated coordinates.
func (g *Grid) swapTiles(a, b Coord) {
	ia, ib := g.index(a), g.index(b)
	g.cells[ia], g.cells[ib] = g.cells[ib], g.cells[ia]
}

// AdjacentCoords returns the in-bounds cardinal neighbors of c.
// Used for selection-adjacency checks only; matching scans full lines.
func (g *Grid) AdjacentCoords(c Coord) []Coord {
	coords := make([]Coord, 0, 4)
	for _, d := range cardinalOffsets {
		n := c.Add(d[0], d[1])
		if g.InBounds(n) {
			coords = append(coords, n)
		}
	}
	return coords
}

// AllCoords returns every coordinate of the grid, row by row.
func (g *Grid) AllCoords() []Coord {
	coords := make([]Coord, 0, g.W*g.H)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			coords = append(coords, C(x, y))
		}
	}
	return coords
}

// DestroyedCount returns the number of cleared slots.
func (g *Grid) DestroyedCount() int {
	count := 0
	for _, t := range g.cells {
		if t.Destroyed {
			count++
		}
	}
	return count
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Tile, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		W:     g.W,
		H:     g.H,
		cells: cells,
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, t := range g.cells {
		if t != other.cells[i] {
			return false
		}
	}
	return true
}
