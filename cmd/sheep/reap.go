package main

import (
	"context"
	"fmt"

	"github.com/sheepfold/sheep/internal/brain"
	"github.com/sheepfold/sheep/internal/persist"
	"github.com/sheepfold/sheep/internal/sim"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newReapCmd runs one memory cleanup pass outside the tick loop. The scenario's creeps
// are the live set; every other persisted entry is deleted.
func newReapCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "reap",
		Short: "Delete persisted memory of creeps not alive in the scenario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := opts.setup()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Storage.Timeout)
			defer cancel()

			mem, closeStore, err := persist.Open(ctx, cfg.Storage, log)
			if err != nil {
				return err
			}
			defer closeStore()

			sc, err := sim.LoadScenario(cfg.Sim.Scenario)
			if err != nil {
				return err
			}
			// no store: building the live set must not write memory
			state, err := sim.NewState(sc, nil, log)
			if err != nil {
				return fmt.Errorf("build world: %w", err)
			}

			n, err := brain.NewContext(state, mem, nil, log).Reap(ctx)
			if err != nil {
				return err
			}
			log.Info("memory cleanup done", zap.Int("deleted", n))
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d\n", n)
			return nil
		},
	}
}
