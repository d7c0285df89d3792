package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"bookseed/config"
	"bookseed/internal/delivery/cli"
	"bookseed/internal/domain/service"
	"bookseed/internal/infra/fake"
	logs "bookseed/internal/infra/log"
	"bookseed/internal/infra/persistence/rdb"
	"bookseed/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Run(ctx, os.Args[1:], bootstrap, os.Stdout, os.Stderr)
	stop()

	os.Exit(code)
}

// bootstrap builds and starts the fx graph for one command.
func bootstrap(ctx context.Context, env cli.Env) (*cli.Runtime, cli.StopFunc, error) {
	var runtime *cli.Runtime

	app := fx.New(
		injectEnv(env),
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		fx.Provide(cli.NewRuntime),
		fx.Populate(&runtime),
		fx.NopLogger,
	)
	if err := app.Err(); err != nil {
		return nil, nil, err
	}
	if err := app.Start(ctx); err != nil {
		return nil, nil, err
	}

	return runtime, app.Stop, nil
}

func injectEnv(env cli.Env) fx.Option {
	return fx.Options(
		fx.Supply(env.Options),
		fx.Provide(
			func() service.RowReporter {
				return env.Printer
			},
			fx.Annotate(
				func() io.Writer {
					return env.LogOutput
				},
				fx.ResultTags(`name:"logOutput"`),
			),
		),
	)
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		rdb.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			rdb.NewUserRepository,
			rdb.NewAuthorRepository,
			rdb.NewPublisherRepository,
			rdb.NewBookRepository,
			rdb.NewSchemaRepository,
			rdb.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			fake.NewProvider,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserGenerator,
			impl.NewAuthorGenerator,
			impl.NewPublisherGenerator,
			impl.NewBookGenerator,
			impl.NewSeedService,
			impl.NewSchemaService,
		),
	)
}
