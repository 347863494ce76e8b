package match3

// MatchFinder scans the grid for runs of three or more same-typed,
// non-destroyed tiles in a row or column.
type MatchFinder struct {
	grid *Grid
}

// NewMatchFinder creates a finder over the given grid.
func NewMatchFinder(g *Grid) *MatchFinder {
	return &MatchFinder{grid: g}
}

// minLineNeighbors is the number of same-typed tiles a line must contribute
// beyond the origin for the run to count (origin + 2 = a run of 3).
const minLineNeighbors = 2

// MatchesAt returns the full matched set through origin: the union of the
// qualifying horizontal and vertical runs plus the origin itself. Returns
// an empty set when no line qualifies or when the origin is destroyed.
func (m *MatchFinder) MatchesAt(origin Coord) CoordSet {
	matched := NewCoordSet()

	if !m.grid.InBounds(origin) {
		return matched
	}
	t := m.grid.tile(origin)
	if t.Destroyed {
		// Destroyed tiles never participate in or trigger matching.
		return matched
	}

	up := m.scan(origin, t.TypeID, 0, -1)
	down := m.scan(origin, t.TypeID, 0, 1)
	left := m.scan(origin, t.TypeID, -1, 0)
	right := m.scan(origin, t.TypeID, 1, 0)

	// A line qualifies only as a whole; shorter runs are discarded entirely.
	if len(up)+len(down) >= minLineNeighbors {
		for _, c := range up {
			matched.Add(c)
		}
		for _, c := range down {
			matched.Add(c)
		}
	}
	if len(left)+len(right) >= minLineNeighbors {
		for _, c := range left {
			matched.Add(c)
		}
		for _, c := range right {
			matched.Add(c)
		}
	}

	if matched.Len() > 0 {
		matched.Add(origin)
	}
	return matched
}

// scan walks outward from origin one step at a time, collecting coordinates
// while the next cell is in bounds, alive, and of the same type.
func (m *MatchFinder) scan(origin Coord, typeID, dx, dy int) []Coord {
	var run []Coord
	c := origin.Add(dx, dy)
	for m.grid.InBounds(c) {
		t := m.grid.tile(c)
		if t.Destroyed || t.TypeID != typeID {
			break
		}
		run = append(run, c)
		c = c.Add(dx, dy)
	}
	return run
}

// AllMatches returns the union of MatchesAt over every non-destroyed
// coordinate. This is the board-wide signal for "did this swap create a
// match" and "are there still matches to resolve".
func (m *MatchFinder) AllMatches() CoordSet {
	all := NewCoordSet()
	for y := 0; y < m.grid.H; y++ {
		for x := 0; x < m.grid.W; x++ {
			c := C(x, y)
			if m.grid.tile(c).Destroyed {
				continue
			}
			all.Union(m.MatchesAt(c))
		}
	}
	return all
}
