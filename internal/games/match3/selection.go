package match3

// PickOutcome describes what a pick did to the selection state.
type PickOutcome int

const (
	// PickSelected: no tile was held, the picked tile is now selected.
	PickSelected PickOutcome = iota
	// PickDeselected: the held tile was picked again and released.
	PickDeselected
	// PickReselected: a non-adjacent tile replaced the held selection.
	PickReselected
	// PickSwap: an adjacent tile was picked; the selection is released and
	// the pair should be handed to the swap resolver.
	PickSwap
)

// SelectionController tracks the single held tile of one game session.
// At most one tile is selected at any time across the whole board.
type SelectionController struct {
	selected *Coord
}

// NewSelectionController creates a controller with nothing selected.
func NewSelectionController() *SelectionController {
	return &SelectionController{}
}

// Selected returns the held coordinate, if any.
func (s *SelectionController) Selected() (Coord, bool) {
	if s.selected == nil {
		return Coord{}, false
	}
	return *s.selected, true
}

// Clear releases any held selection.
func (s *SelectionController) Clear() {
	s.selected = nil
}

// Pick applies a tile-pick at c and returns the outcome. When the outcome
// is PickSwap, partner is the previously held tile; the selection is
// already released and the caller owns the swap from here. Gating (board
// animating, game over, contentless target) is the caller's job: the
// controller only implements the selection state machine.
func (s *SelectionController) Pick(c Coord) (outcome PickOutcome, partner Coord) {
	if s.selected == nil {
		s.selected = &c
		return PickSelected, Coord{}
	}

	prev := *s.selected
	if prev == c {
		s.selected = nil
		return PickDeselected, Coord{}
	}

	if prev.AdjacentTo(c) {
		s.selected = nil
		return PickSwap, prev
	}

	s.selected = &c
	return PickReselected, prev
}
