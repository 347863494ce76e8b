package match3

import (
	"github.com/vovakirdan/tile-crush/internal/config"
	"github.com/vovakirdan/tile-crush/internal/core"
	"github.com/vovakirdan/tile-crush/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic" // play until no valid move remains
	ModeMoves   Mode = "moves"   // fixed move budget
)

// animPhase tracks the swap animation outside the cascade.
type animPhase int

const (
	animNone animPhase = iota
	animSwapping
	animReverting
)

// Game implements the tile matching game.
type Game struct {
	mode Mode
	cfg  config.Match3Config
	src  TypeSource
	tick uint64

	grid     *Grid
	finder   *MatchFinder
	selector *SelectionController
	resolver *SwapResolver
	engine   *CascadeEngine

	cursor    Coord
	score     int
	movesUsed int
	bestChain int

	// Swap animation state: the pair is shown swapping for SwapTicks,
	// then resolved; a rejected pair swings back for another SwapTicks.
	anim      animPhase
	animTicks int
	swapA     Coord
	swapB     Coord

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver      bool
	paused        bool
	tooSmall      bool
	pickProcessed bool // Prevent multiple picks per tick
}

// Package-level variables for config
var (
	configPath     string
	selectedPreset config.DifficultyPreset
)

// SetConfigPath sets a custom config file path for the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for the next Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	selectedPreset = preset
}

// New creates a new classic mode game.
func New() *Game {
	return &Game{
		mode: ModeClassic,
	}
}

// NewMoves creates a new move-budget mode game.
func NewMoves() *Game {
	return &Game{
		mode: ModeMoves,
	}
}

func init() {
	registry.Register("crush", func() registry.Game {
		return New()
	})
	registry.Register("crush_moves", func() registry.Game {
		return NewMoves()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeMoves {
		return "crush_moves"
	}
	return "crush"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeMoves {
		return "Tile Crush (Moves)"
	}
	return "Tile Crush"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadMatch3(configPath)
	if err != nil {
		cfg = config.DefaultMatch3Config()
	}
	if selectedPreset != "" {
		config.ApplyMatch3Preset(&cfg, selectedPreset)
	}
	g.cfg = cfg

	g.src = NewRandSource(rc.Seed)
	g.tick = 0
	g.score = 0
	g.movesUsed = 0
	g.bestChain = 0
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.gameOver = false
	g.paused = false
	g.pickProcessed = false
	g.anim = animNone
	g.animTicks = 0

	g.grid = NewGrid(cfg.Board.Width, cfg.Board.Height)
	g.finder = NewMatchFinder(g.grid)
	g.selector = NewSelectionController()
	g.resolver = NewSwapResolver(g.grid, g.finder)
	g.engine = NewCascadeEngine(g.grid, g.finder, g.src, cfg.Board.TileTypes, PhaseTiming{
		DestroyTicks:  cfg.Timing.DestroyTicks,
		CollapseTicks: cfg.Timing.CollapseTicks,
		RefillTicks:   cfg.Timing.RefillTicks,
	})

	g.cursor = C(cfg.Board.Width/2, cfg.Board.Height/2)
	g.seedBoard()
	g.checkScreenSize()
}

// seedBoard fills the grid so that no match exists at rest and at least
// one valid move is available.
func (g *Game) seedBoard() {
	for {
		for _, c := range g.grid.AllCoords() {
			_ = g.grid.Set(c, g.src.NextTileType(g.cfg.Board.TileTypes))
			// Re-roll until this tile doesn't complete a run
			for g.finder.MatchesAt(c).Len() > 0 {
				_ = g.grid.Set(c, g.src.NextTileType(g.cfg.Board.TileTypes))
			}
		}
		if g.HasValidMove() {
			return
		}
		// Dead board straight out of the shuffle; rare, just redo it
	}
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	layout := g.boardLayout()
	minW := layout.W + 2
	minH := layout.H + hudLines + 2
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.pickProcessed = false

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.gameOver {
		// Restart is handled by the platform via Reset
		return core.StepResult{State: g.State()}
	}

	// Swap animation has priority over everything else
	if g.anim != animNone {
		g.stepSwapAnim()
		return core.StepResult{State: g.State()}
	}

	// Cascade runs to completion before input is accepted again
	if g.engine.Active() {
		g.stepCascade()
		return core.StepResult{State: g.State()}
	}

	g.processInput(in)

	return core.StepResult{State: g.State()}
}

// isAnimating reports whether the board is mid-animation and input
// should be ignored.
func (g *Game) isAnimating() bool {
	return g.anim != animNone || g.engine.Active()
}

// stepSwapAnim advances the swap/revert animation one tick and resolves
// the swap when the forward half completes.
func (g *Game) stepSwapAnim() {
	g.animTicks++
	if g.animTicks < g.cfg.Timing.SwapTicks {
		return
	}

	switch g.anim {
	case animSwapping:
		outcome, matches, err := g.resolver.Swap(g.swapA, g.swapB)
		if err != nil || outcome == SwapRejected {
			g.anim = animReverting
			g.animTicks = 0
			return
		}
		g.movesUsed++
		cleared := g.engine.Start(matches)
		g.addScore(cleared)
		g.anim = animNone
		g.animTicks = 0

	case animReverting:
		g.anim = animNone
		g.animTicks = 0
	}
}

// stepCascade advances the cascade one tick and handles its completion.
func (g *Game) stepCascade() {
	cleared, active := g.engine.Tick()
	if cleared > 0 {
		g.addScore(cleared)
	}
	if !active {
		g.afterCascade()
	}
}

// addScore credits destroyed tiles, scaled by the current chain depth.
func (g *Game) addScore(cleared int) {
	chain := g.engine.Chain()
	g.score += cleared * g.cfg.Scoring.TilePoints * chain
	if chain > g.bestChain {
		g.bestChain = chain
	}
}

// afterCascade runs the end-of-turn checks once the board is stable.
func (g *Game) afterCascade() {
	if g.mode == ModeMoves && g.movesUsed >= g.cfg.Gameplay.Moves {
		g.gameOver = true
		return
	}
	if !g.HasValidMove() {
		g.gameOver = true
	}
}

// processInput handles cursor movement and tile picking.
func (g *Game) processInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(0, -1)
	case in.Has(core.ActionDown):
		g.moveCursor(0, 1)
	case in.Has(core.ActionLeft):
		g.moveCursor(-1, 0)
	case in.Has(core.ActionRight):
		g.moveCursor(1, 0)
	}

	if in.Click != nil {
		if c, ok := g.cellAtScreen(in.Click.X, in.Click.Y); ok && !g.pickProcessed {
			g.cursor = c
			g.pickAt(c)
			g.pickProcessed = true
		}
	}

	if (in.Has(core.ActionPick) || in.Has(core.ActionConfirm)) && !g.pickProcessed {
		g.pickAt(g.cursor)
		g.pickProcessed = true
	}
}

// moveCursor shifts the cursor, clamped to the board.
func (g *Game) moveCursor(dx, dy int) {
	g.cursor = C(
		core.Clamp(g.cursor.X+dx, 0, g.grid.W-1),
		core.Clamp(g.cursor.Y+dy, 0, g.grid.H-1),
	)
}

// pickAt runs one pick through the selection state machine. Picks are
// ignored entirely while the board is animating.
func (g *Game) pickAt(c Coord) {
	if g.isAnimating() || !g.grid.InBounds(c) {
		return
	}
	if t, err := g.grid.At(c); err != nil || t.Destroyed {
		return
	}

	outcome, partner := g.selector.Pick(c)
	if outcome != PickSwap {
		return
	}

	g.swapA = partner
	g.swapB = c
	g.anim = animSwapping
	g.animTicks = 0
}

// HasValidMove reports whether any adjacent swap would produce a match.
// It trial-swaps each right/down neighbor pair and undoes the exchange.
func (g *Game) HasValidMove() bool {
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
				if found {
					return true
				}
			}
		}
	}
	return false
}

// BestChain returns the deepest cascade reached this run.
func (g *Game) BestChain() int {
	return g.bestChain
}

// TilesCleared returns the total tiles destroyed this run.
func (g *Game) TilesCleared() int {
	return g.engine.TilesCleared()
}

// MovesUsed returns how many accepted swaps the player has spent.
func (g *Game) MovesUsed() int {
	return g.movesUsed
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}
