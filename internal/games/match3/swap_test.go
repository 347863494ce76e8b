package match3

import (
	"errors"
	"testing"
)

func TestSwapAccepted(t *testing.T) {
	g := gridFromRows(t, []string{
		"abaa",
		"bcbc",
		"cbcb",
	})
	resolver := NewSwapResolver(g, NewMatchFinder(g))

	outcome, matches, err := resolver.Swap(C(0, 0), C(1, 0))
	if err != nil {
		t.Fatalf("Swap = %v", err)
	}
	if outcome != SwapAccepted {
		t.Fatalf("outcome = %v, want accepted", outcome)
	}

	want := []Coord{C(1, 0), C(2, 0), C(3, 0)}
	if matches.Len() != len(want) {
		t.Fatalf("match set has %d coords, want %d", matches.Len(), len(want))
	}
	for _, c := range want {
		if !matches.Has(c) {
			t.Errorf("match set missing %s", c)
		}
	}

	// The swap must stand on the grid
	tile, _ := g.At(C(0, 0))
	if tile.TypeID != 1 {
		t.Errorf("tile at (0,0) = %d, want 1 after accepted swap", tile.TypeID)
	}
}

func TestSwapRejectedRestoresGrid(t *testing.T) {
	g := gridFromRows(t, []string{
		"abaa",
		"bcbc",
		"cbcb",
	})
	resolver := NewSwapResolver(g, NewMatchFinder(g))
	before := g.Clone()

	outcome, matches, err := resolver.Swap(C(0, 2), C(1, 2))
	if err != nil {
		t.Fatalf("Swap = %v", err)
	}
	if outcome != SwapRejected {
		t.Fatalf("outcome = %v, want rejected", outcome)
	}
	if matches != nil {
		t.Errorf("rejected swap returned a match set of %d coords", matches.Len())
	}
	if !g.Equal(before) {
		t.Error("grid differs from its pre-swap state after a rejected swap")
	}
}

func TestSwapOutOfBounds(t *testing.T) {
	g := gridFromRows(t, []string{
		"aba",
		"bab",
	})
	resolver := NewSwapResolver(g, NewMatchFinder(g))
	before := g.Clone()

	tests := []struct {
		name string
		a, b Coord
	}{
		{"first out", C(-1, 0), C(0, 0)},
		{"second out", C(2, 1), C(3, 1)},
		{"both out", C(9, 9), C(9, 8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, _, err := resolver.Swap(tt.a, tt.b)
			if !errors.Is(err, ErrOutOfBounds) {
				t.Fatalf("Swap(%s, %s) error = %v, want ErrOutOfBounds", tt.a, tt.b, err)
			}
			if outcome != SwapRejected {
				t.Errorf("outcome = %v, want rejected", outcome)
			}
			if !g.Equal(before) {
				t.Error("grid changed on an out-of-bounds swap")
			}
		})
	}
}
