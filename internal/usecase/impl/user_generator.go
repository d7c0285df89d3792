package impl

import (
	"context"
	"log/slog"

	"bookseed/internal/domain/entity"
	"bookseed/internal/domain/repository"
	"bookseed/internal/domain/service"
	"bookseed/internal/errors"
	"bookseed/internal/usecase"
)

type userGenerator struct {
	userRepo repository.UserRepository
	faker    service.FakeDataProvider
	reporter service.RowReporter
	logger   *slog.Logger
}

// NewUserGenerator creates a new user generator instance
func NewUserGenerator(
	userRepo repository.UserRepository,
	faker service.FakeDataProvider,
	reporter service.RowReporter,
	logger *slog.Logger,
) usecase.UserGenerator {
	if reporter == nil {
		reporter = nopReporter()
	}

	return &userGenerator{
		userRepo: userRepo,
		faker:    faker,
		reporter: reporter,
		logger:   logger,
	}
}

// Generate creates count users. The first store error stops the batch; users
// created before it stay and are returned alongside the error.
func (g *userGenerator) Generate(ctx context.Context, count int) ([]*entity.User, error) {
	if err := validateCount(count); err != nil {
		return nil, err
	}

	b := startBatch(ctx, g.logger, entity.KindUser, count)
	created := make([]*entity.User, 0, count)

	for range count {
		user := &entity.User{
			Username: g.faker.Username(),
			Email:    g.faker.Email(),
		}

		if err := g.userRepo.Create(ctx, user); err != nil {
			err = errors.Wrap(err, "failed to create user")
			b.fail(ctx, len(created), err)

			return created, err
		}

		created = append(created, user)
		g.reporter.RowCreated(entity.KindUser, user)
	}

	b.done(ctx, len(created))

	return created, nil
}
