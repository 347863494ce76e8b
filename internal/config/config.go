// Package config provides YAML-based game configuration loading and
// difficulty management for the tile-crush platform.
package config

// Match3Config contains all configuration for the tile matching game.
type Match3Config struct {
	Board    Match3Board    `yaml:"board"`
	Timing   Match3Timing   `yaml:"timing"`
	Scoring  Match3Scoring  `yaml:"scoring"`
	Gameplay Match3Gameplay `yaml:"gameplay"`
}

// Match3Board defines board dimensions and tile variety.
type Match3Board struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TileTypes int `yaml:"tile_types"`
}

// Match3Timing defines animation phase durations, in ticks.
type Match3Timing struct {
	SwapTicks     int `yaml:"swap_ticks"`
	DestroyTicks  int `yaml:"destroy_ticks"`
	CollapseTicks int `yaml:"collapse_ticks"`
	RefillTicks   int `yaml:"refill_ticks"`
}

// Match3Scoring defines point values.
type Match3Scoring struct {
	TilePoints int `yaml:"tile_points"` // per destroyed tile, multiplied by chain depth
}

// Match3Gameplay defines mode parameters.
type Match3Gameplay struct {
	Moves int `yaml:"moves"` // move budget for the limited-moves mode
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyMatch3Preset modifies the config based on a difficulty preset.
// More tile types mean rarer matches; hard also trims the move budget.
func ApplyMatch3Preset(cfg *Match3Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Board.TileTypes = 5
		cfg.Gameplay.Moves = 30
	case DifficultyHard:
		cfg.Board.TileTypes = 7
		cfg.Gameplay.Moves = 15
	}
}

// Validate clamps the config to playable values.
func (c *Match3Config) Validate() {
	if c.Board.Width < 3 {
		c.Board.Width = 3
	}
	if c.Board.Height < 3 {
		c.Board.Height = 3
	}
	if c.Board.TileTypes < 3 {
		c.Board.TileTypes = 3
	}
	if c.Scoring.TilePoints <= 0 {
		c.Scoring.TilePoints = 10
	}
	if c.Gameplay.Moves <= 0 {
		c.Gameplay.Moves = 20
	}
}
