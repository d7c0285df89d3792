package cli

import (
	"context"

	domainerrors "bookseed/internal/domain/errors"
	"bookseed/internal/util"

	"github.com/spf13/cobra"
)

func (a *app) newUsersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "users [count]",
		Short: "Create random users",
		Args:  countArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.generate(cmd, "users", args, func(ctx context.Context, rt *Runtime, n int) error {
				_, err := rt.Users.Generate(ctx, n)

				return err
			})
		},
	}
}

func (a *app) newAuthorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "authors [count]",
		Short: "Create random authors with recommenders and followers",
		Args:  countArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.generate(cmd, "authors", args, func(ctx context.Context, rt *Runtime, n int) error {
				_, err := rt.Authors.Generate(ctx, n)

				return err
			})
		},
	}
}

func (a *app) newPublishersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "publishers [count]",
		Short: "Create random publishers",
		Args:  countArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.generate(cmd, "publishers", args, func(ctx context.Context, rt *Runtime, n int) error {
				_, err := rt.Publishers.Generate(ctx, n)

				return err
			})
		},
	}
}

func (a *app) newBooksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "books [count]",
		Short: "Create random books for existing authors and publishers",
		Args:  countArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.generate(cmd, "books", args, func(ctx context.Context, rt *Runtime, n int) error {
				_, err := rt.Books.Generate(ctx, n)

				return err
			})
		},
	}
}

func (a *app) newAllCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "all [count]",
		Short: "Create count rows of every kind in dependency order",
		Args:  countArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.generate(cmd, "all", args, func(ctx context.Context, rt *Runtime, n int) error {
				summary, err := rt.Seeder.SeedAll(ctx, n)
				if err != nil {
					return err
				}

				a.printer.Success("Seeded %d %s, %d %s, %d %s and %d %s",
					summary.Users, util.Plural(summary.Users, "user"),
					summary.Authors, util.Plural(summary.Authors, "author"),
					summary.Publishers, util.Plural(summary.Publishers, "publisher"),
					summary.Books, util.Plural(summary.Books, "book"),
				)

				return nil
			})
		},
	}
}

// generate parses the count before touching the store.
func (a *app) generate(cmd *cobra.Command, name string, args []string, fn func(ctx context.Context, rt *Runtime, n int) error) error {
	n, err := parseCount(args)
	if err != nil {
		return domainerrors.NewCommandError(name, err)
	}

	return a.withRuntime(cmd, name, func(ctx context.Context, rt *Runtime) error {
		return fn(ctx, rt, n)
	})
}
