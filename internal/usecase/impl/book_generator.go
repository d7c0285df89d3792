package impl

import (
	"context"
	"fmt"
	"log/slog"

	"bookseed/internal/domain/entity"
	domainerrors "bookseed/internal/domain/errors"
	"bookseed/internal/domain/repository"
	"bookseed/internal/domain/service"
	"bookseed/internal/errors"
	"bookseed/internal/usecase"
)

const (
	bookTitleWords     = 5
	minBookPrice       = 100
	maxBookPrice       = 1000
	bookPublishedYears = 10
)

type bookGenerator struct {
	bookRepo      repository.BookRepository
	authorRepo    repository.AuthorRepository
	publisherRepo repository.PublisherRepository
	faker         service.FakeDataProvider
	reporter      service.RowReporter
	logger        *slog.Logger
}

// NewBookGenerator creates a new book generator instance
func NewBookGenerator(
	bookRepo repository.BookRepository,
	authorRepo repository.AuthorRepository,
	publisherRepo repository.PublisherRepository,
	faker service.FakeDataProvider,
	reporter service.RowReporter,
	logger *slog.Logger,
) usecase.BookGenerator {
	if reporter == nil {
		reporter = nopReporter()
	}

	return &bookGenerator{
		bookRepo:      bookRepo,
		authorRepo:    authorRepo,
		publisherRepo: publisherRepo,
		faker:         faker,
		reporter:      reporter,
		logger:        logger,
	}
}

// Generate creates count books. When no author or no publisher exists the whole
// batch is refused with ErrMissingDependencies before anything is written.
func (g *bookGenerator) Generate(ctx context.Context, count int) ([]*entity.Book, error) {
	if err := validateCount(count); err != nil {
		return nil, err
	}

	authors, publishers, err := g.loadDependencies(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireDependencies(authors, publishers); err != nil {
		return nil, err
	}

	b := startBatch(ctx, g.logger, entity.KindBook, count)
	created := make([]*entity.Book, 0, count)

	for range count {
		authors, publishers, err = g.loadDependencies(ctx)
		if err == nil {
			// a concurrent batch may have removed the last parent since the check above
			err = requireDependencies(authors, publishers)
		}
		if err != nil {
			b.fail(ctx, len(created), err)

			return created, err
		}

		book := &entity.Book{
			Title:         g.faker.Words(bookTitleWords),
			Genre:         g.faker.Genre(),
			Price:         g.faker.IntBetween(minBookPrice, maxBookPrice),
			PublishedDate: g.faker.DateWithinYears(bookPublishedYears),
			AuthorID:      pickOne(g.faker, authors).ID,
			PublisherID:   pickOne(g.faker, publishers).ID,
		}

		if err := g.bookRepo.Create(ctx, book); err != nil {
			err = errors.Wrap(err, "failed to create book")
			b.fail(ctx, len(created), err)

			return created, err
		}

		created = append(created, book)
		g.reporter.RowCreated(entity.KindBook, book)
	}

	b.done(ctx, len(created))

	return created, nil
}

func (g *bookGenerator) loadDependencies(ctx context.Context) ([]*entity.Author, []*entity.Publisher, error) {
	authors, err := g.authorRepo.List(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to list authors")
	}
	publishers, err := g.publisherRepo.List(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to list publishers")
	}

	return authors, publishers, nil
}

func requireDependencies(authors []*entity.Author, publishers []*entity.Publisher) error {
	if len(authors) == 0 || len(publishers) == 0 {
		return domainerrors.ErrMissingDependencies.WithDetails(
			fmt.Sprintf("found %d authors and %d publishers", len(authors), len(publishers)),
		)
	}

	return nil
}
