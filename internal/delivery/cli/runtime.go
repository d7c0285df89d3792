// Package cli is the cobra command tree of the bookseed binary.
package cli

import (
	"context"
	"io"
	"log/slog"

	"bookseed/config"
	"bookseed/internal/infra/console"
	"bookseed/internal/usecase"

	"go.uber.org/fx"
)

// Runtime is everything a store-backed command needs.
type Runtime struct {
	Logger     *slog.Logger
	Users      usecase.UserGenerator
	Authors    usecase.AuthorGenerator
	Publishers usecase.PublisherGenerator
	Books      usecase.BookGenerator
	Seeder     usecase.SeedUsecase
	Schema     usecase.SchemaUsecase
}

// RuntimeParams collects the Runtime members from the fx graph.
type RuntimeParams struct {
	fx.In

	Logger     *slog.Logger
	Users      usecase.UserGenerator
	Authors    usecase.AuthorGenerator
	Publishers usecase.PublisherGenerator
	Books      usecase.BookGenerator
	Seeder     usecase.SeedUsecase
	Schema     usecase.SchemaUsecase
}

// NewRuntime is the fx constructor for Runtime.
func NewRuntime(params RuntimeParams) *Runtime {
	return &Runtime{
		Logger:     params.Logger,
		Users:      params.Users,
		Authors:    params.Authors,
		Publishers: params.Publishers,
		Books:      params.Books,
		Seeder:     params.Seeder,
		Schema:     params.Schema,
	}
}

// Env is what the command tree hands to Bootstrap.
type Env struct {
	Options   config.Options
	Printer   *console.Printer
	LogOutput io.Writer
}

// StopFunc releases whatever Bootstrap acquired.
type StopFunc func(ctx context.Context) error

// Bootstrap builds a started Runtime. The binary wires it with fx; tests substitute their own.
type Bootstrap func(ctx context.Context, env Env) (*Runtime, StopFunc, error)
