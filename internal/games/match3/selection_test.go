package match3

import "testing"

func TestPickSelectsAndDeselects(t *testing.T) {
	s := NewSelectionController()

	if _, ok := s.Selected(); ok {
		t.Fatal("fresh controller has a selection")
	}

	outcome, _ := s.Pick(C(2, 2))
	if outcome != PickSelected {
		t.Fatalf("first pick = %v, want PickSelected", outcome)
	}
	if sel, ok := s.Selected(); !ok || sel != C(2, 2) {
		t.Fatalf("Selected() = %v, %v, want (2,2), true", sel, ok)
	}

	outcome, _ = s.Pick(C(2, 2))
	if outcome != PickDeselected {
		t.Fatalf("repicking the same tile = %v, want PickDeselected", outcome)
	}
	if _, ok := s.Selected(); ok {
		t.Error("selection survived a deselect")
	}
}

func TestPickAdjacentTriggersSwap(t *testing.T) {
	s := NewSelectionController()

	s.Pick(C(2, 2))
	outcome, partner := s.Pick(C(3, 2))
	if outcome != PickSwap {
		t.Fatalf("adjacent pick = %v, want PickSwap", outcome)
	}
	if partner != C(2, 2) {
		t.Errorf("partner = %s, want (2,2)", partner)
	}
	if _, ok := s.Selected(); ok {
		t.Error("selection survived a swap handoff")
	}
}

func TestPickNonAdjacentReselects(t *testing.T) {
	tests := []struct {
		name   string
		second Coord
	}{
		{"far tile", C(5, 5)},
		{"diagonal neighbor", C(3, 3)},
		{"same row two apart", C(4, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelectionController()
			s.Pick(C(2, 2))

			outcome, prev := s.Pick(tt.second)
			if outcome != PickReselected {
				t.Fatalf("pick = %v, want PickReselected", outcome)
			}
			if prev != C(2, 2) {
				t.Errorf("previous = %s, want (2,2)", prev)
			}
			if sel, ok := s.Selected(); !ok || sel != tt.second {
				t.Errorf("Selected() = %v, %v, want %s, true", sel, ok, tt.second)
			}
		})
	}
}

func TestClear(t *testing.T) {
	s := NewSelectionController()
	s.Pick(C(1, 1))
	s.Clear()
	if _, ok := s.Selected(); ok {
		t.Error("selection survived Clear")
	}

	// After a clear the next pick starts fresh
	outcome, _ := s.Pick(C(0, 0))
	if outcome != PickSelected {
		t.Errorf("pick after Clear = %v, want PickSelected", outcome)
	}
}
