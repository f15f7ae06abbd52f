package system

import (
	"time"

	"github.com/sheepfold/sheep/internal/brain"
	coresys "github.com/sheepfold/sheep/internal/core/system"
	"go.uber.org/zap"
)

// CreepSystem runs task execution and selection for every live creep. Phase 1 (Update).
// A creep without a resolvable room aborts the tick.
type CreepSystem struct {
	brain *brain.Context
}

func NewCreepSystem(b *brain.Context) *CreepSystem {
	return &CreepSystem{brain: b}
}

func (s *CreepSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *CreepSystem) Update(_ time.Duration) error {
	game := s.brain.Game
	s.brain.Log.Debug("loop starting", zap.Uint32("tick", game.Time()), zap.Float64("cpu", game.CPUUsed()))

	for _, creep := range game.Creeps() {
		if err := s.brain.RunCreep(creep); err != nil {
			return err
		}
	}
	return nil
}
