package repository

import (
	"context"

	"bookseed/internal/domain/entity"
)

// AuthorRepository defines the operations the generators need on authors.
type AuthorRepository interface {
	// List returns every author ordered by id. Follower ids are not loaded.
	List(ctx context.Context) ([]*entity.Author, error)

	// Create persists a new author row without followers.
	Create(ctx context.Context, author *entity.Author) error

	// SetFollowers replaces the follower set of an author.
	SetFollowers(ctx context.Context, authorID uint, userIDs []uint) error

	// ListFollowerIDs returns the user ids following an author, ascending.
	ListFollowerIDs(ctx context.Context, authorID uint) ([]uint, error)
}
