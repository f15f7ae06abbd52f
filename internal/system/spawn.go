package system

import (
	"time"

	"github.com/sheepfold/sheep/internal/brain"
	coresys "github.com/sheepfold/sheep/internal/core/system"
)

// SpawnSystem lets every spawn build one creep per tick. Phase 2 (PostUpdate).
type SpawnSystem struct {
	brain *brain.Context
}

func NewSpawnSystem(b *brain.Context) *SpawnSystem {
	return &SpawnSystem{brain: b}
}

func (s *SpawnSystem) Phase() coresys.Phase { return coresys.PhasePostUpdate }

func (s *SpawnSystem) Update(_ time.Duration) error {
	_, err := s.brain.RunSpawns()
	return err
}
