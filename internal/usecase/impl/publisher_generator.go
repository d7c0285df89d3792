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

const publisherJoinYears = 5

type publisherGenerator struct {
	publisherRepo repository.PublisherRepository
	faker         service.FakeDataProvider
	reporter      service.RowReporter
	logger        *slog.Logger
}

// NewPublisherGenerator creates a new publisher generator instance
func NewPublisherGenerator(
	publisherRepo repository.PublisherRepository,
	faker service.FakeDataProvider,
	reporter service.RowReporter,
	logger *slog.Logger,
) usecase.PublisherGenerator {
	if reporter == nil {
		reporter = nopReporter()
	}

	return &publisherGenerator{
		publisherRepo: publisherRepo,
		faker:         faker,
		reporter:      reporter,
		logger:        logger,
	}
}

// Generate creates count publishers, each recommended by an earlier publisher when one exists.
func (g *publisherGenerator) Generate(ctx context.Context, count int) ([]*entity.Publisher, error) {
	if err := validateCount(count); err != nil {
		return nil, err
	}

	b := startBatch(ctx, g.logger, entity.KindPublisher, count)
	created := make([]*entity.Publisher, 0, count)

	for range count {
		publishers, err := g.publisherRepo.List(ctx)
		if err != nil {
			err = errors.Wrap(err, "failed to list publishers")
			b.fail(ctx, len(created), err)

			return created, err
		}

		publisher := &entity.Publisher{
			FirstName:       g.faker.FirstName(),
			LastName:        g.faker.LastName(),
			JoinDate:        g.faker.DateWithinYears(publisherJoinYears),
			PopularityScore: g.faker.IntBetween(minPopularityScore, maxPopularityScore),
		}
		if len(publishers) > 0 {
			recommenderID := pickOne(g.faker, publishers).ID
			publisher.RecommendedByID = &recommenderID
		}

		if err := g.publisherRepo.Create(ctx, publisher); err != nil {
			err = errors.Wrap(err, "failed to create publisher")
			b.fail(ctx, len(created), err)

			return created, err
		}

		created = append(created, publisher)
		g.reporter.RowCreated(entity.KindPublisher, publisher)
	}

	b.done(ctx, len(created))

	return created, nil
}
