package system

import (
	"time"

	"github.com/sheepfold/sheep/internal/core/event"
	coresys "github.com/sheepfold/sheep/internal/core/system"
	"github.com/sheepfold/sheep/internal/host"
	"go.uber.org/zap"
)

// Stats are running engine counters, fed from the event bus.
type Stats struct {
	Spawned  int
	Assigned map[string]int // by task kind
	Cleared  int
	Reaped   int
}

// StatsSystem closes every tick with a CPU line and logs the counters every interval
// ticks. Phase 4 (Cleanup), registered before the host step.
type StatsSystem struct {
	game     host.Game
	log      *zap.Logger
	interval int
	ticks    int
	stats    Stats
}

func NewStatsSystem(game host.Game, bus *event.Bus, log *zap.Logger, interval int) *StatsSystem {
	s := &StatsSystem{
		game:     game,
		log:      log,
		interval: interval,
		stats:    Stats{Assigned: make(map[string]int)},
	}
	event.Subscribe(bus, func(ev event.CreepSpawned) {
		s.stats.Spawned++
		log.Debug("creep spawned", zap.String("name", ev.Name), zap.String("role", ev.Role), zap.String("spawn", ev.Spawn))
	})
	event.Subscribe(bus, func(ev event.TaskAssigned) { s.stats.Assigned[ev.Kind]++ })
	event.Subscribe(bus, func(event.TaskCleared) { s.stats.Cleared++ })
	event.Subscribe(bus, func(event.MemoryReaped) { s.stats.Reaped++ })
	return s
}

func (s *StatsSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *StatsSystem) Update(_ time.Duration) error {
	s.ticks++
	if s.interval > 0 && s.ticks%s.interval == 0 {
		s.log.Info("engine stats",
			zap.Uint32("tick", s.game.Time()),
			zap.Int("spawned", s.stats.Spawned),
			zap.Any("assigned", s.stats.Assigned),
			zap.Int("cleared", s.stats.Cleared),
			zap.Int("reaped", s.stats.Reaped),
		)
	}
	s.log.Debug("tick done", zap.Uint32("tick", s.game.Time()), zap.Float64("cpu", s.game.CPUUsed()))
	return nil
}

// Snapshot returns a copy of the counters.
func (s *StatsSystem) Snapshot() Stats {
	out := s.stats
	out.Assigned = make(map[string]int, len(s.stats.Assigned))
	for k, v := range s.stats.Assigned {
		out.Assigned[k] = v
	}
	return out
}
