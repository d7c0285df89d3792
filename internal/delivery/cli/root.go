package cli

import (
	"context"
	"io"

	"bookseed/config"
	deliverycontext "bookseed/internal/delivery/context"
	domainerrors "bookseed/internal/domain/errors"
	"bookseed/internal/errors"
	"bookseed/internal/infra/console"

	"github.com/spf13/cobra"
)

type app struct {
	bootstrap Bootstrap
	configDir string
	seed      uint64
	noColor   bool
	printer   *console.Printer
}

// NewRootCommand builds the command tree. Output goes to the command's
// configured writers so callers can capture it.
func NewRootCommand(bootstrap Bootstrap) *cobra.Command {
	a := &app{bootstrap: bootstrap}

	root := &cobra.Command{
		Use:   "bookseed",
		Short: "Populate a bookstore database with random rows",
		Long: `bookseed fills a relational store with plausible random users, authors,
publishers and books. Rows are always created in dependency order: books need
at least one author and one publisher.

Supported stores: PostgreSQL, MySQL and SQLite.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.printer = console.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), a.noColor)
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return domainerrors.ErrInvalidArguments.WithDetails(err.Error())
	})

	flags := root.PersistentFlags()
	flags.StringVar(&a.configDir, "config", "", "directory holding config.yaml")
	flags.Uint64Var(&a.seed, "seed", 0, "seed for the random data, for reproducible runs")
	flags.BoolVar(&a.noColor, "no-color", false, "disable coloured output")

	root.AddCommand(
		a.newUsersCommand(),
		a.newAuthorsCommand(),
		a.newPublishersCommand(),
		a.newBooksCommand(),
		a.newAllCommand(),
		a.newSchemaCommand(),
		a.newStatsCommand(),
		newHelloCommand(a),
	)

	return root
}

// Run executes the command tree with args and returns the process exit code.
func Run(ctx context.Context, args []string, bootstrap Bootstrap, stdout, stderr io.Writer) int {
	root := NewRootCommand(bootstrap)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return domainerrors.ExitOK
	}

	console.NewPrinter(stdout, stderr, noColorRequested(root)).Error(err)

	return ExitCode(err)
}

// ExitCode maps err onto a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return domainerrors.ExitOK
	}

	var coded interface{ ExitCode() int }
	if errors.As(err, &coded) {
		return coded.ExitCode()
	}

	return domainerrors.ExitError
}

func noColorRequested(root *cobra.Command) bool {
	noColor, err := root.PersistentFlags().GetBool("no-color")

	return err == nil && noColor
}

func (a *app) options(cmd *cobra.Command) config.Options {
	return config.Options{
		Dir:     a.configDir,
		Seed:    a.seed,
		SeedSet: cmd.Flags().Changed("seed"),
	}
}

// withRuntime boots the store-backed runtime for one command and tears it down afterwards.
func (a *app) withRuntime(cmd *cobra.Command, name string, fn func(ctx context.Context, rt *Runtime) error) error {
	rt, stop, err := a.bootstrap(cmd.Context(), Env{
		Options:   a.options(cmd),
		Printer:   a.printer,
		LogOutput: cmd.ErrOrStderr(),
	})
	if err != nil {
		return domainerrors.NewCommandError(name, errors.Wrap(err, "failed to start"))
	}
	defer func() {
		if stopErr := stop(context.WithoutCancel(cmd.Context())); stopErr != nil && rt.Logger != nil {
			rt.Logger.Warn("failed to release resources", "error", stopErr)
		}
	}()

	ctx := deliverycontext.NewRun(cmd.Context(), rt.Logger)

	return domainerrors.NewCommandError(name, fn(ctx, rt))
}
