package match3

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateSwapping    GameStateType = "swapping"
	StateCascading   GameStateType = "cascading"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	Mode         string // "classic" or "moves"
	Score        int
	MovesUsed    int
	BestChain    int
	TilesCleared int
	Cursor       Coord
	Board        []int // row-major type ids, EmptyType for destroyed slots
	Phase        string
	State        GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.anim != animNone:
		state = StateSwapping
	case g.engine.Active():
		state = StateCascading
	}

	board := make([]int, 0, g.grid.W*g.grid.H)
	for _, c := range g.grid.AllCoords() {
		t := g.grid.tile(c)
		if t.Destroyed {
			board = append(board, EmptyType)
			continue
		}
		board = append(board, t.TypeID)
	}

	return Snapshot{
		Tick:         g.tick,
		Mode:         string(g.mode),
		Score:        g.score,
		MovesUsed:    g.movesUsed,
		BestChain:    g.bestChain,
		TilesCleared: g.engine.TilesCleared(),
		Cursor:       g.cursor,
		Board:        board,
		Phase:        g.engine.PhaseName(),
		State:        state,
	}
}
