// Package usecase declares the seed operations exposed to the command line.
package usecase

import (
	"context"

	"bookseed/internal/domain/entity"
)

// UserGenerator creates fake users.
type UserGenerator interface {
	// Generate creates count users and returns them in creation order.
	Generate(ctx context.Context, count int) ([]*entity.User, error)
}

// AuthorGenerator creates fake authors with recommenders and followers.
type AuthorGenerator interface {
	// Generate creates count authors. Each may be recommended by any author created before it,
	// including authors created earlier in the same batch.
	Generate(ctx context.Context, count int) ([]*entity.Author, error)
}

// PublisherGenerator creates fake publishers with recommenders.
type PublisherGenerator interface {
	Generate(ctx context.Context, count int) ([]*entity.Publisher, error)
}

// BookGenerator creates fake books. It refuses to start without authors and publishers.
type BookGenerator interface {
	Generate(ctx context.Context, count int) ([]*entity.Book, error)
}

// SeedSummary reports how many rows a full seeding pass created per kind.
type SeedSummary struct {
	Users      int
	Authors    int
	Publishers int
	Books      int
}

// SeedUsecase runs every generator in dependency order.
type SeedUsecase interface {
	SeedAll(ctx context.Context, count int) (*SeedSummary, error)
}
