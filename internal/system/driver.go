package system

import (
	"time"

	"github.com/sheepfold/sheep/internal/brain"
	coresys "github.com/sheepfold/sheep/internal/core/system"
)

// DriverConfig wires the tick driver.
type DriverConfig struct {
	Brain         *brain.Context
	ReapInterval  uint32
	StoreTimeout  time.Duration
	StatsInterval int
	// Host is stepped at the end of every tick when set. A real game host advances
	// its own clock and leaves this nil.
	Host Stepper
}

// NewTickDriver registers the per-tick systems in order: event dispatch, creeps,
// spawns, memory cleanup, stats, host step. One Runner.Tick is one game tick.
func NewTickDriver(cfg DriverConfig) (*coresys.Runner, *StatsSystem) {
	b := cfg.Brain
	runner := coresys.NewRunner()
	stats := NewStatsSystem(b.Game, b.Bus, b.Log, cfg.StatsInterval)

	runner.Register(NewEventDispatchSystem(b.Bus))
	runner.Register(NewCreepSystem(b))
	runner.Register(NewSpawnSystem(b))
	runner.Register(NewReaperSystem(b, cfg.ReapInterval, cfg.StoreTimeout))
	runner.Register(stats)
	if cfg.Host != nil {
		runner.Register(NewHostStepSystem(cfg.Host))
	}
	return runner, stats
}
