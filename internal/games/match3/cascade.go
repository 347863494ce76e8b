package match3

// PhaseTiming holds per-phase durations of the cascade, in ticks.
type PhaseTiming struct {
	DestroyTicks  int // destroy shrink phase
	CollapseTicks int // tiles falling into vacated slots
	RefillTicks   int // new tiles popping in
}

// cascadePhase identifies where the resolution loop currently is.
// Rescanning happens instantaneously at the end of the refill wait.
type cascadePhase int

const (
	cascadeIdle cascadePhase = iota
	cascadeDestroying
	cascadeCollapsing
	cascadeRefilling
)

// String returns a human-readable phase name.
func (p cascadePhase) String() string {
	switch p {
	case cascadeDestroying:
		return "destroying"
	case cascadeCollapsing:
		return "collapsing"
	case cascadeRefilling:
		return "refilling"
	default:
		return "idle"
	}
}

// CascadeEngine drives the destroy -> collapse -> refill -> rescan loop
// until a rescan finds nothing. It is tick-stepped: each grid mutation
// happens once at a phase boundary, and the phase then holds for its
// configured duration so the platform can show it. The loop has no
// iteration cap; termination is probabilistic because refills are random.
type CascadeEngine struct {
	grid      *Grid
	finder    *MatchFinder
	src       TypeSource
	typeCount int
	timing    PhaseTiming

	phase cascadePhase
	ticks int

	chain        int // 1 for the swap-caused match, +1 per rescan hit
	tilesCleared int
}

// NewCascadeEngine creates an engine over the given grid.
func NewCascadeEngine(g *Grid, f *MatchFinder, src TypeSource, typeCount int, timing PhaseTiming) *CascadeEngine {
	return &CascadeEngine{
		grid:      g,
		finder:    f,
		src:       src,
		typeCount: typeCount,
		timing:    timing,
	}
}

// Start seeds the engine with the match set produced by an accepted swap,
// destroys those tiles, and enters the Destroying phase. Returns the
// number of tiles destroyed. An empty set leaves the engine idle.
func (e *CascadeEngine) Start(matches CoordSet) int {
	if matches.Len() == 0 {
		return 0
	}
	e.chain = 1
	e.phase = cascadeDestroying
	e.ticks = 0
	return e.destroy(matches)
}

// Active returns true while the cascade is running.
func (e *CascadeEngine) Active() bool {
	return e.phase != cascadeIdle
}

// Chain returns the current cascade depth (1 = swap-caused match).
func (e *CascadeEngine) Chain() int {
	return e.chain
}

// TilesCleared returns the total number of tiles destroyed since the
// engine was created.
func (e *CascadeEngine) TilesCleared() int {
	return e.tilesCleared
}

// PhaseName returns the current phase for snapshots and debugging.
func (e *CascadeEngine) PhaseName() string {
	return e.phase.String()
}

// Tick advances the cascade by one tick. It returns the number of tiles
// destroyed on this tick (non-zero only when a rescan found a new match)
// and whether the cascade is still running.
func (e *CascadeEngine) Tick() (cleared int, active bool) {
	if e.phase == cascadeIdle {
		return 0, false
	}

	e.ticks++

	switch e.phase {
	case cascadeDestroying:
		if e.ticks >= e.timing.DestroyTicks {
			e.collapse()
			e.phase = cascadeCollapsing
			e.ticks = 0
		}

	case cascadeCollapsing:
		if e.ticks >= e.timing.CollapseTicks {
			e.refill()
			e.phase = cascadeRefilling
			e.ticks = 0
		}

	case cascadeRefilling:
		if e.ticks >= e.timing.RefillTicks {
			matches := e.finder.AllMatches()
			if matches.Len() == 0 {
				// Board is stable; back to idle, ready for input.
				e.phase = cascadeIdle
				e.ticks = 0
				return 0, false
			}
			e.chain++
			cleared = e.destroy(matches)
			e.phase = cascadeDestroying
			e.ticks = 0
		}
	}

	return cleared, e.phase != cascadeIdle
}

// destroy marks every tile of the set destroyed and returns the count.
func (e *CascadeEngine) destroy(matches CoordSet) int {
	for c := range matches {
		_ = e.grid.MarkDestroyed(c) // finder coordinates are always in bounds
	}
	e.tilesCleared += matches.Len()
	return matches.Len()
}

// collapse compacts each column downward independently: survivors keep
// their relative vertical order, vacated slots accumulate at the top.
func (e *CascadeEngine) collapse() {
	for x := 0; x < e.grid.W; x++ {
		write := e.grid.H - 1
		for y := e.grid.H - 1; y >= 0; y-- {
			t := e.grid.tile(C(x, y))
			if t.Destroyed {
				continue
			}
			if write != y {
				_ = e.grid.Set(C(x, write), t.TypeID)
				_ = e.grid.MarkDestroyed(C(x, y))
			}
			write--
		}
	}
}

// refill assigns every still-destroyed slot a fresh type from the
// injected source, clearing its destroyed flag.
func (e *CascadeEngine) refill() {
	for y := 0; y < e.grid.H; y++ {
		for x := 0; x < e.grid.W; x++ {
			c := C(x, y)
			if !e.grid.tile(c).Destroyed {
				continue
			}
			_ = e.grid.Set(c, e.src.NextTileType(e.typeCount))
		}
	}
}
