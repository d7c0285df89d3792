package cli

import (
	"context"

	"github.com/spf13/cobra"
)

func (a *app) newSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Create or update the bookstore and HR tables",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withRuntime(cmd, "schema", func(ctx context.Context, rt *Runtime) error {
				if err := rt.Schema.CreateTables(ctx); err != nil {
					return err
				}
				a.printer.Success("Schema is up to date")

				return nil
			})
		},
	}
}

func (a *app) newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show row counts of the bookstore tables",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withRuntime(cmd, "stats", func(ctx context.Context, rt *Runtime) error {
				counts, err := rt.Schema.Stats(ctx)
				if err != nil {
					return err
				}
				a.printer.Counts(counts)

				return nil
			})
		},
	}
}
