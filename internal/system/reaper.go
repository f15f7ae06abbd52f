package system

import (
	"context"
	"time"

	"github.com/sheepfold/sheep/internal/brain"
	coresys "github.com/sheepfold/sheep/internal/core/system"
	"go.uber.org/zap"
)

// ReaperSystem deletes persisted memory of dead creeps every interval game ticks.
// Phase 3 (Persist). Store failures are logged and never abort the tick.
type ReaperSystem struct {
	brain    *brain.Context
	interval uint32
	timeout  time.Duration
}

func NewReaperSystem(b *brain.Context, interval uint32, timeout time.Duration) *ReaperSystem {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &ReaperSystem{brain: b, interval: interval, timeout: timeout}
}

func (s *ReaperSystem) Phase() coresys.Phase { return coresys.PhasePersist }

func (s *ReaperSystem) Update(_ time.Duration) error {
	if !brain.ShouldReap(s.brain.Game.Time(), s.interval) {
		return nil
	}
	s.brain.Log.Info("running memory cleanup", zap.Uint32("tick", s.brain.Game.Time()))

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	n, err := s.brain.Reap(ctx)
	if err != nil {
		s.brain.Log.Error("memory cleanup failed", zap.Error(err))
		return nil
	}
	if n > 0 {
		s.brain.Log.Info("memory cleanup done", zap.Int("deleted", n))
	}
	return nil
}
