package main

import (
	"context"
	"fmt"
	"time"

	"github.com/sheepfold/sheep/internal/brain"
	"github.com/sheepfold/sheep/internal/config"
	"github.com/sheepfold/sheep/internal/core/event"
	"github.com/sheepfold/sheep/internal/host"
	"github.com/sheepfold/sheep/internal/persist"
	"github.com/sheepfold/sheep/internal/scripting"
	"github.com/sheepfold/sheep/internal/sim"
	"github.com/sheepfold/sheep/internal/system"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRunCmd(opts *options) *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the tick loop against the simulated host",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := opts.setup()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			return runLoop(cmd.Context(), cfg, log, !quiet)
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "skip the startup banner")
	return cmd
}

// bodyPlanner builds the spawn body planner: the Lua script when one is configured,
// otherwise the fixed body. The returned func releases the script VM.
func bodyPlanner(cfg config.EngineConfig, log *zap.Logger) (brain.BodyPlanner, func(), error) {
	if cfg.BodyScript != "" {
		eng, err := scripting.NewEngine(cfg.BodyScript, log)
		if err != nil {
			return nil, nil, fmt.Errorf("body script: %w", err)
		}
		return eng, eng.Close, nil
	}
	body, err := host.ParseBody(cfg.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("engine.body: %w", err)
	}
	return brain.FixedBody(body), func() {}, nil
}

func runLoop(ctx context.Context, cfg *config.Config, log *zap.Logger, banner bool) error {
	if banner {
		printBanner(cfg.Sim.Scenario)
		printSection("storage")
	}

	openCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	mem, closeStore, err := persist.Open(openCtx, cfg.Storage, log)
	if err != nil {
		return err
	}
	defer closeStore()
	if banner {
		printOK(fmt.Sprintf("memory store ready (%s)", cfg.Storage.Driver))
		fmt.Println()
		printSection("world")
	}

	sc, err := sim.LoadScenario(cfg.Sim.Scenario)
	if err != nil {
		return err
	}
	state, err := sim.NewState(sc, mem, log)
	if err != nil {
		return fmt.Errorf("build world: %w", err)
	}
	state.SetMemoryTimeout(cfg.Storage.Timeout)
	if banner {
		printStat("rooms", len(sc.Rooms))
		printStat("creeps", len(state.Creeps()))
		printStat("spawns", len(state.Spawns()))
		fmt.Println()
	}

	planner, closePlanner, err := bodyPlanner(cfg.Engine, log)
	if err != nil {
		return err
	}
	defer closePlanner()

	b := brain.NewContext(state, mem, event.NewBus(), log)
	b.Planner = planner

	runner, _ := system.NewTickDriver(system.DriverConfig{
		Brain:         b,
		ReapInterval:  cfg.Engine.ReapInterval,
		StoreTimeout:  cfg.Storage.Timeout,
		StatsInterval: cfg.Engine.StatsInterval,
		Host:          state,
	})

	if banner {
		printSection("ready")
		printReady(fmt.Sprintf("tick loop started (tick: %s)", cfg.Engine.TickRate))
		fmt.Println()
	}

	var tickC <-chan time.Time
	if cfg.Engine.TickRate > 0 {
		ticker := time.NewTicker(cfg.Engine.TickRate)
		defer ticker.Stop()
		tickC = ticker.C
	} else {
		// tick_rate 0 runs flat out
		ch := make(chan time.Time)
		close(ch)
		tickC = ch
	}

	for {
		select {
		case <-tickC:
			if err := runner.Tick(cfg.Engine.TickRate); err != nil {
				log.Error("tick failed", zap.Uint32("tick", state.Time()), zap.Error(err))
				return err
			}
			if cfg.Sim.MaxTicks > 0 && runner.Ticks() >= uint64(cfg.Sim.MaxTicks) {
				logSummary(log, state)
				return nil
			}
		case <-ctx.Done():
			log.Info("shutdown signal received")
			logSummary(log, state)
			return nil
		}
	}
}

func logSummary(log *zap.Logger, state *sim.State) {
	sum := state.Summary()
	log.Info("simulation stopped",
		zap.Uint32("tick", sum.Tick),
		zap.Int("creeps", sum.Creeps),
		zap.Int("sites", sum.Sites),
		zap.Int("controller_level", sum.ControllerLevel),
		zap.Int("progress", sum.Progress),
	)
}
