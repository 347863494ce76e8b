package match3

import (
	"testing"

	"github.com/vovakirdan/tile-crush/internal/core"
)

func newTestGame(t *testing.T, mode Mode, seed int64) *Game {
	t.Helper()
	var g *Game
	if mode == ModeMoves {
		g = NewMoves()
	} else {
		g = New()
	}
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	g.Reset(cfg)
	return g
}

// stepIdle runs empty frames until the board stops animating.
func stepIdle(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		if !g.isAnimating() {
			return
		}
		g.Step(core.NewInputFrame())
	}
	t.Fatal("board never stopped animating")
}

func TestResetSeedsPlayableBoard(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 12345} {
		g := newTestGame(t, ModeClassic, seed)

		if got := g.finder.AllMatches(); got.Len() != 0 {
			t.Errorf("seed %d: fresh board has %d matched coords", seed, got.Len())
		}
		if !g.HasValidMove() {
			t.Errorf("seed %d: fresh board has no valid move", seed)
		}
		for _, c := range g.grid.AllCoords() {
			tile, err := g.grid.At(c)
			if err != nil {
				t.Fatalf("At(%s) = %v", c, err)
			}
			if tile.TypeID == EmptyType || tile.Destroyed {
				t.Fatalf("seed %d: slot %s not filled", seed, c)
			}
			if tile.TypeID < 0 || tile.TypeID >= g.cfg.Board.TileTypes {
				t.Fatalf("seed %d: slot %s has type %d outside [0,%d)", seed, c, tile.TypeID, g.cfg.Board.TileTypes)
			}
		}
	}
}

func TestDeterministicReplay(t *testing.T) {
	inputs := func(tick int) core.InputFrame {
		in := core.NewInputFrame()
		switch tick % 5 {
		case 0:
			in.Set(core.ActionRight)
		case 1:
			in.Set(core.ActionPick)
		case 2:
			in.Set(core.ActionDown)
		case 3:
			in.Set(core.ActionPick)
		case 4:
			in.Set(core.ActionUp)
		}
		return in
	}

	a := newTestGame(t, ModeClassic, 99)
	b := newTestGame(t, ModeClassic, 99)

	for i := 0; i < 600; i++ {
		a.Step(inputs(i))
		b.Step(inputs(i))
	}

	snapA := a.Snapshot()
	snapB := b.Snapshot()
	if snapA.Score != snapB.Score || snapA.MovesUsed != snapB.MovesUsed ||
		snapA.State != snapB.State || snapA.Phase != snapB.Phase {
		t.Fatalf("replays diverged: %+v vs %+v", snapA, snapB)
	}
	for i := range snapA.Board {
		if snapA.Board[i] != snapB.Board[i] {
			t.Fatalf("boards diverged at slot %d: %d vs %d", i, snapA.Board[i], snapB.Board[i])
		}
	}
}

// findSwapPair scans for an adjacent pair whose swap matches (or doesn't).
func findSwapPair(t *testing.T, g *Game, wantMatch bool) (Coord, Coord) {
	t.Helper()
	for y := 0; y < g.grid.H; y++ {
		for x := 0; x < g.grid.W; x++ {
			a := C(x, y)
			for _, b := range []Coord{C(x + 1, y), C(x, y + 1)} {
				if !g.grid.InBounds(b) {
					continue
				}
				g.grid.swapTiles(a, b)
				found := g.finder.MatchesAt(a).Len() > 0 || g.finder.MatchesAt(b).Len() > 0
				g.grid.swapTiles(a, b)
				if found == wantMatch {
					return a, b
				}
			}
		}
	}
	t.Fatalf("no adjacent pair with match=%v on this board", wantMatch)
	return Coord{}, Coord{}
}

func TestAcceptedSwapScoresAndConsumesMove(t *testing.T) {
	g := newTestGame(t, ModeClassic, 42)
	a, b := findSwapPair(t, g, true)

	g.pickAt(a)
	g.pickAt(b)
	if g.anim != animSwapping {
		t.Fatal("adjacent picks did not start the swap animation")
	}

	stepIdle(t, g)

	if g.MovesUsed() != 1 {
		t.Errorf("MovesUsed = %d, want 1", g.MovesUsed())
	}
	if g.State().Score <= 0 {
		t.Errorf("Score = %d, want > 0", g.State().Score)
	}
	if g.TilesCleared() < 3 {
		t.Errorf("TilesCleared = %d, want >= 3", g.TilesCleared())
	}
	if g.grid.DestroyedCount() != 0 {
		t.Errorf("%d destroyed tiles remain at rest", g.grid.DestroyedCount())
	}
}

func TestRejectedSwapLeavesBoardUntouched(t *testing.T) {
	g := newTestGame(t, ModeClassic, 42)
	a, b := findSwapPair(t, g, false)
	before := g.grid.Clone()

	g.pickAt(a)
	g.pickAt(b)
	stepIdle(t, g)

	if !g.grid.Equal(before) {
		t.Error("grid differs from its pre-swap state after a rejected swap")
	}
	if g.MovesUsed() != 0 {
		t.Errorf("MovesUsed = %d, want 0", g.MovesUsed())
	}
	if g.State().Score != 0 {
		t.Errorf("Score = %d, want 0", g.State().Score)
	}
}

func TestPickIgnoredWhileAnimating(t *testing.T) {
	g := newTestGame(t, ModeClassic, 42)
	a, b := findSwapPair(t, g, true)

	g.pickAt(a)
	g.pickAt(b)

	// Mid-animation picks must not touch the selection
	g.pickAt(C(0, 0))
	if _, ok := g.selector.Selected(); ok {
		t.Error("pick during the swap animation changed the selection")
	}

	stepIdle(t, g)
	if g.MovesUsed() != 1 {
		t.Errorf("MovesUsed = %d, want 1", g.MovesUsed())
	}
}

func TestCursorClampedToBoard(t *testing.T) {
	g := newTestGame(t, ModeClassic, 1)

	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	for i := 0; i < g.grid.W+5; i++ {
		g.Step(left)
	}
	if g.cursor.X != 0 {
		t.Errorf("cursor.X = %d, want 0 after walking off the left edge", g.cursor.X)
	}

	down := core.NewInputFrame()
	down.Set(core.ActionDown)
	for i := 0; i < g.grid.H+5; i++ {
		g.Step(down)
	}
	if g.cursor.Y != g.grid.H-1 {
		t.Errorf("cursor.Y = %d, want %d after walking off the bottom edge", g.cursor.Y, g.grid.H-1)
	}
}

func TestMovesModeEndsWhenBudgetSpent(t *testing.T) {
	g := newTestGame(t, ModeMoves, 42)
	g.movesUsed = g.cfg.Gameplay.Moves

	g.afterCascade()
	if !g.gameOver {
		t.Error("game not over with the move budget spent")
	}
}

func TestPauseFreezesInput(t *testing.T) {
	g := newTestGame(t, ModeClassic, 1)
	start := g.cursor

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("pause action did not pause the game")
	}

	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	g.Step(right)
	if g.cursor != start {
		t.Error("cursor moved while paused")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("second pause action did not resume")
	}
}

func TestClickPicksCell(t *testing.T) {
	g := newTestGame(t, ModeClassic, 1)
	l := g.boardLayout()

	// Center of cell (2,1)
	px := l.X + 2*cellWidth + cellWidth/2
	py := l.Y + 1*cellHeight + cellHeight/2

	in := core.NewInputFrame()
	in.SetClick(px, py)
	g.Step(in)

	if g.cursor != C(2, 1) {
		t.Errorf("cursor = %s, want (2,1) after click", g.cursor)
	}
	if sel, ok := g.selector.Selected(); !ok || sel != C(2, 1) {
		t.Errorf("Selected() = %v, %v, want (2,1), true", sel, ok)
	}

	// Clicking a border line does nothing
	in = core.NewInputFrame()
	in.SetClick(l.X, l.Y)
	g.Step(in)
	if sel, ok := g.selector.Selected(); !ok || sel != C(2, 1) {
		t.Errorf("border click changed the selection: %v, %v", sel, ok)
	}
}
