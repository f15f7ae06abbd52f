package main

import (
	"context"
	"fmt"

	"github.com/sheepfold/sheep/internal/persist"
	"github.com/spf13/cobra"
)

func newMigrateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply memory store migrations for the configured driver",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := opts.setup()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			if cfg.Storage.Driver == "memory" {
				fmt.Fprintln(cmd.OutOrStdout(), "memory driver: nothing to migrate")
				return nil
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Storage.Timeout)
			defer cancel()

			// opening a database store applies pending migrations
			_, closeStore, err := persist.Open(ctx, cfg.Storage, log)
			if err != nil {
				return err
			}
			closeStore()
			fmt.Fprintf(cmd.OutOrStdout(), "%s: migrations applied\n", cfg.Storage.Driver)
			return nil
		},
	}
}
