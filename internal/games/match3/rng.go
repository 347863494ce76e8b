package match3

import "math/rand"

// TypeSource supplies new tile types for board seeding and refills.
// The game core never owns randomness directly; the platform injects it.
type TypeSource interface {
	// NextTileType returns a type id in [0, typeCount), uniform.
	NextTileType(typeCount int) int
}

// randSource is the default TypeSource backed by a seeded math/rand.
type randSource struct {
	rng *rand.Rand
}

// NewRandSource creates a deterministic TypeSource from a seed.
func NewRandSource(seed int64) TypeSource {
	return &randSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *randSource) NextTileType(typeCount int) int {
	return s.rng.Intn(typeCount)
}
