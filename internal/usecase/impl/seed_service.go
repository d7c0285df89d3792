package impl

import (
	"context"

	"bookseed/internal/errors"
	"bookseed/internal/usecase"
)

type seedService struct {
	users      usecase.UserGenerator
	authors    usecase.AuthorGenerator
	publishers usecase.PublisherGenerator
	books      usecase.BookGenerator
}

// NewSeedService creates a service that runs every generator in dependency order.
func NewSeedService(
	users usecase.UserGenerator,
	authors usecase.AuthorGenerator,
	publishers usecase.PublisherGenerator,
	books usecase.BookGenerator,
) usecase.SeedUsecase {
	return &seedService{
		users:      users,
		authors:    authors,
		publishers: publishers,
		books:      books,
	}
}

// SeedAll creates count rows of each kind: users, authors, publishers, then books.
// The summary reflects what was created even when a later step fails.
func (s *seedService) SeedAll(ctx context.Context, count int) (*usecase.SeedSummary, error) {
	if err := validateCount(count); err != nil {
		return nil, err
	}

	summary := &usecase.SeedSummary{}

	users, err := s.users.Generate(ctx, count)
	summary.Users = len(users)
	if err != nil {
		return summary, errors.Wrap(err, "seed users")
	}

	authors, err := s.authors.Generate(ctx, count)
	summary.Authors = len(authors)
	if err != nil {
		return summary, errors.Wrap(err, "seed authors")
	}

	publishers, err := s.publishers.Generate(ctx, count)
	summary.Publishers = len(publishers)
	if err != nil {
		return summary, errors.Wrap(err, "seed publishers")
	}

	// Zero books requested: skip, so an empty store is not reported as missing dependencies.
	if count == 0 {
		return summary, nil
	}

	books, err := s.books.Generate(ctx, count)
	summary.Books = len(books)
	if err != nil {
		return summary, errors.Wrap(err, "seed books")
	}

	return summary, nil
}
