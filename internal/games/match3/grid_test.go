package match3

import (
	"errors"
	"testing"
)

// gridFromRows builds a grid from ASCII rows: 'a'..'z' are type ids 0..25,
// '.' leaves the slot empty, 'A'..'Z' place a destroyed tile of that type.
func gridFromRows(t *testing.T, rows []string) *Grid {
	t.Helper()
	h := len(rows)
	w := len(rows[0])
	g := NewGrid(w, h)
	for y, row := range rows {
		for x, r := range row {
			c := C(x, y)
			switch {
			case r == '.':
				// empty
			case r >= 'A' && r <= 'Z':
				if err := g.Set(c, int(r-'A')); err != nil {
					t.Fatalf("Set(%s) = %v", c, err)
				}
				if err := g.MarkDestroyed(c); err != nil {
					t.Fatalf("MarkDestroyed(%s) = %v", c, err)
				}
			default:
				if err := g.Set(c, int(r-'a')); err != nil {
					t.Fatalf("Set(%s) = %v", c, err)
				}
			}
		}
	}
	return g
}

func TestNewGridEmpty(t *testing.T) {
	g := NewGrid(4, 3)
	for _, c := range g.AllCoords() {
		tile, err := g.At(c)
		if err != nil {
			t.Fatalf("At(%s) = %v", c, err)
		}
		if tile.TypeID != EmptyType {
			t.Errorf("At(%s).TypeID = %d, want EmptyType", c, tile.TypeID)
		}
		if tile.Destroyed {
			t.Errorf("At(%s).Destroyed = true, want false", c)
		}
	}
}

func TestAtOutOfBounds(t *testing.T) {
	g := NewGrid(3, 3)

	tests := []Coord{
		C(-1, 0),
		C(0, -1),
		C(3, 0),
		C(0, 3),
		C(100, 100),
	}

	for _, c := range tests {
		if _, err := g.At(c); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("At(%s) error = %v, want ErrOutOfBounds", c, err)
		}
	}
}

func TestSetClearsDestroyed(t *testing.T) {
	g := NewGrid(3, 3)
	c := C(1, 1)

	if err := g.Set(c, 2); err != nil {
		t.Fatalf("Set = %v", err)
	}
	if err := g.MarkDestroyed(c); err != nil {
		t.Fatalf("MarkDestroyed = %v", err)
	}

	tile, _ := g.At(c)
	if !tile.Destroyed {
		t.Fatal("tile not destroyed after MarkDestroyed")
	}

	if err := g.Set(c, 4); err != nil {
		t.Fatalf("Set = %v", err)
	}
	tile, _ = g.At(c)
	if tile.Destroyed {
		t.Error("Set did not clear the destroyed flag")
	}
	if tile.TypeID != 4 {
		t.Errorf("TypeID = %d, want 4", tile.TypeID)
	}
}

func TestAdjacentCoords(t *testing.T) {
	g := NewGrid(3, 3)

	tests := []struct {
		name string
		c    Coord
		want int
	}{
		{"center", C(1, 1), 4},
		{"corner", C(0, 0), 2},
		{"edge", C(1, 0), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.AdjacentCoords(tt.c)
			if len(got) != tt.want {
				t.Errorf("AdjacentCoords(%s) returned %d coords, want %d", tt.c, len(got), tt.want)
			}
			for _, n := range got {
				if !g.InBounds(n) {
					t.Errorf("AdjacentCoords(%s) returned out-of-bounds %s", tt.c, n)
				}
				if !n.AdjacentTo(tt.c) {
					t.Errorf("AdjacentCoords(%s) returned non-adjacent %s", tt.c, n)
				}
			}
		})
	}
}

func TestCloneEqual(t *testing.T) {
	g := gridFromRows(t, []string{
		"abc",
		"cab",
		"bca",
	})

	clone := g.Clone()
	if !g.Equal(clone) {
		t.Fatal("clone differs from original")
	}

	if err := clone.Set(C(0, 0), 5); err != nil {
		t.Fatalf("Set = %v", err)
	}
	if g.Equal(clone) {
		t.Error("mutating the clone changed equality with the original")
	}

	tile, _ := g.At(C(0, 0))
	if tile.TypeID != 0 {
		t.Error("mutating the clone leaked into the original")
	}
}

func TestDestroyedCount(t *testing.T) {
	g := gridFromRows(t, []string{
		"aAb",
		"Bca",
	})
	if got := g.DestroyedCount(); got != 2 {
		t.Errorf("DestroyedCount = %d, want 2", got)
	}
}
