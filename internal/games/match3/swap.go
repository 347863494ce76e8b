package match3

import "fmt"

// SwapOutcome is the result of a swap attempt.
type SwapOutcome int

const (
	// SwapRejected: the swap produced no match and was fully reverted.
	SwapRejected SwapOutcome = iota
	// SwapAccepted: the swap stands and at least one match exists.
	SwapAccepted
)

// String returns a human-readable name for the outcome.
func (o SwapOutcome) String() string {
	if o == SwapAccepted {
		return "accepted"
	}
	return "rejected"
}

// SwapResolver validates and performs a tile swap, accepting it only when
// it produces at least one match somewhere on the board.
type SwapResolver struct {
	grid   *Grid
	finder *MatchFinder
}

// NewSwapResolver creates a resolver over the given grid and finder.
func NewSwapResolver(g *Grid, f *MatchFinder) *SwapResolver {
	return &SwapResolver{grid: g, finder: f}
}

// Swap exchanges the content of a and b, then asks the board-wide match
// query whether any match exists. On SwapAccepted the returned set is the
// full board match union seeding the cascade. On SwapRejected the grid is
// restored bit-identical to its pre-swap state and the set is nil.
// Adjacency is the caller's contract; out-of-bounds coordinates are an
// error.
func (r *SwapResolver) Swap(a, b Coord) (SwapOutcome, CoordSet, error) {
	if !r.grid.InBounds(a) {
		return SwapRejected, nil, fmt.Errorf("swap %s/%s: %w", a, b, ErrOutOfBounds)
	}
	if !r.grid.InBounds(b) {
		return SwapRejected, nil, fmt.Errorf("swap %s/%s: %w", a, b, ErrOutOfBounds)
	}

	r.grid.swapTiles(a, b)

	matches := r.finder.AllMatches()
	if matches.Len() == 0 {
		// Exact inverse of the exchange above.
		r.grid.swapTiles(a, b)
		return SwapRejected, nil, nil
	}

	return SwapAccepted, matches, nil
}
