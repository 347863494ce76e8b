package match3

import "testing"

// seqSource feeds a fixed cycle of type ids, for predictable refills.
type seqSource struct {
	vals []int
	i    int
}

func (s *seqSource) NextTileType(int) int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

var testTiming = PhaseTiming{DestroyTicks: 1, CollapseTicks: 1, RefillTicks: 1}

// runCascade ticks the engine until it goes idle, with a safety cap.
func runCascade(t *testing.T, e *CascadeEngine) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		if _, active := e.Tick(); !active {
			return
		}
	}
	t.Fatal("cascade did not terminate")
}

func TestCascadeSinglePass(t *testing.T) {
	g := gridFromRows(t, []string{
		"aaa",
		"bcb",
		"cbc",
	})
	finder := NewMatchFinder(g)
	src := &seqSource{vals: []int{0, 1, 2}}
	engine := NewCascadeEngine(g, finder, src, 3, testTiming)

	cleared := engine.Start(finder.AllMatches())
	if cleared != 3 {
		t.Fatalf("Start cleared %d tiles, want 3", cleared)
	}
	if !engine.Active() {
		t.Fatal("engine idle after Start")
	}

	runCascade(t, engine)

	if engine.Chain() != 1 {
		t.Errorf("Chain = %d, want 1", engine.Chain())
	}
	if engine.TilesCleared() != 3 {
		t.Errorf("TilesCleared = %d, want 3", engine.TilesCleared())
	}
	if g.DestroyedCount() != 0 {
		t.Errorf("%d destroyed tiles remain after the cascade", g.DestroyedCount())
	}

	// The refill wrote the sequence into the vacated top row
	for x, want := range []int{0, 1, 2} {
		tile, _ := g.At(C(x, 0))
		if tile.TypeID != want {
			t.Errorf("tile at (%d,0) = %d, want %d", x, tile.TypeID, want)
		}
	}
}

func TestCascadeChains(t *testing.T) {
	g := gridFromRows(t, []string{
		"aaa",
		"bcb",
		"cbc",
	})
	finder := NewMatchFinder(g)
	// First refill recreates a top-row match, the second settles the board
	src := &seqSource{vals: []int{0, 0, 0, 1, 2, 1}}
	engine := NewCascadeEngine(g, finder, src, 3, testTiming)

	engine.Start(finder.AllMatches())
	runCascade(t, engine)

	if engine.Chain() != 2 {
		t.Errorf("Chain = %d, want 2", engine.Chain())
	}
	if engine.TilesCleared() != 6 {
		t.Errorf("TilesCleared = %d, want 6", engine.TilesCleared())
	}
	if got := finder.AllMatches(); got.Len() != 0 {
		t.Errorf("board still has %d matched coords after the cascade", got.Len())
	}
}

func TestCascadeCollapseOrder(t *testing.T) {
	g := gridFromRows(t, []string{
		"a",
		"b",
		"c",
		"d",
	})
	finder := NewMatchFinder(g)
	src := &seqSource{vals: []int{4, 5}}
	engine := NewCascadeEngine(g, finder, src, 6, testTiming)

	seed := NewCoordSet()
	seed.Add(C(0, 1))
	seed.Add(C(0, 2))
	engine.Start(seed)
	runCascade(t, engine)

	// Survivors keep their order at the bottom, new tiles land on top
	want := []int{4, 5, 0, 3}
	for y, wantType := range want {
		tile, _ := g.At(C(0, y))
		if tile.TypeID != wantType {
			t.Errorf("tile at (0,%d) = %d, want %d", y, tile.TypeID, wantType)
		}
		if tile.Destroyed {
			t.Errorf("tile at (0,%d) still destroyed", y)
		}
	}
}

func TestCascadeStartEmpty(t *testing.T) {
	g := gridFromRows(t, []string{
		"abc",
		"bca",
	})
	finder := NewMatchFinder(g)
	engine := NewCascadeEngine(g, finder, &seqSource{vals: []int{0}}, 3, testTiming)

	if cleared := engine.Start(NewCoordSet()); cleared != 0 {
		t.Errorf("Start with empty set cleared %d tiles", cleared)
	}
	if engine.Active() {
		t.Error("engine active after empty Start")
	}
	if _, active := engine.Tick(); active {
		t.Error("Tick on idle engine reported active")
	}
}
