package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the default tile matching configuration.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Board: Match3Board{
			Width:     8,
			Height:    8,
			TileTypes: 6,
		},
		Timing: Match3Timing{
			SwapTicks:     6,
			DestroyTicks:  8,
			CollapseTicks: 6,
			RefillTicks:   6,
		},
		Scoring: Match3Scoring{
			TilePoints: 10,
		},
		Gameplay: Match3Gameplay{
			Moves: 20,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "crush", "crush_moves":
		return defaultMatch3YAML
	default:
		return nil
	}
}
