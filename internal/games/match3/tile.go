// Package match3 implements the tile-crush game logic: a rectangular board
// of typed tiles where swapping two adjacent tiles that line up three or
// more of a kind clears them and cascades refills until the board settles.
// This package is UI-agnostic and deterministic.
package match3

import "fmt"

// EmptyType is the type id of a destroyed/empty tile slot.
const EmptyType = -1

// Tile is a single board cell's content. Tiles swap content, not
// coordinates: the slot at a coordinate is permanent, its type changes.
// Invariant: Destroyed is true exactly when TypeID == EmptyType.
type Tile struct {
	TypeID    int
	Destroyed bool
}

// emptyTile returns the content of a cleared slot.
func emptyTile() Tile {
	return Tile{TypeID: EmptyType, Destroyed: true}
}

// Coord is a 2D board coordinate. X increases to the right, Y increases
// downward (screen coordinates).
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// AdjacentTo returns true if other is one of c's 4 cardinal neighbors.
func (c Coord) AdjacentTo(other Coord) bool {
	dx := c.X - other.X
	dy := c.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx+dy == 1
}

// cardinalOffsets lists the four scan/neighbor directions.
var cardinalOffsets = [4][2]int{
	{0, -1}, // up
	{0, 1},  // down
	{-1, 0}, // left
	{1, 0},  // right
}

// CoordSet is an unordered set of board coordinates.
type CoordSet map[Coord]struct{}

// NewCoordSet creates a set containing the given coordinates.
func NewCoordSet(coords ...Coord) CoordSet {
	s := make(CoordSet, len(coords))
	for _, c := range coords {
		s[c] = struct{}{}
	}
	return s
}

// Add inserts a coordinate into the set.
func (s CoordSet) Add(c Coord) {
	s[c] = struct{}{}
}

// Has returns true if the coordinate is in the set.
func (s CoordSet) Has(c Coord) bool {
	_, ok := s[c]
	return ok
}

// Union inserts all coordinates of other into s.
func (s CoordSet) Union(other CoordSet) {
	for c := range other {
		s[c] = struct{}{}
	}
}

// Len returns the number of coordinates in the set.
func (s CoordSet) Len() int {
	return len(s)
}
