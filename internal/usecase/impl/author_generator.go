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

const (
	maxFollowers       = 5
	authorJoinYears    = 5
	minPopularityScore = 1
	maxPopularityScore = 100
)

type authorGenerator struct {
	authorRepo repository.AuthorRepository
	userRepo   repository.UserRepository
	txManager  repository.TransactionManager
	faker      service.FakeDataProvider
	reporter   service.RowReporter
	logger     *slog.Logger
}

// NewAuthorGenerator creates a new author generator instance
func NewAuthorGenerator(
	authorRepo repository.AuthorRepository,
	userRepo repository.UserRepository,
	txManager repository.TransactionManager,
	faker service.FakeDataProvider,
	reporter service.RowReporter,
	logger *slog.Logger,
) usecase.AuthorGenerator {
	if reporter == nil {
		reporter = nopReporter()
	}

	return &authorGenerator{
		authorRepo: authorRepo,
		userRepo:   userRepo,
		txManager:  txManager,
		faker:      faker,
		reporter:   reporter,
		logger:     logger,
	}
}

// Generate creates count authors, each with a random earlier author as
// recommender and up to five distinct users as followers.
func (g *authorGenerator) Generate(ctx context.Context, count int) ([]*entity.Author, error) {
	if err := validateCount(count); err != nil {
		return nil, err
	}

	b := startBatch(ctx, g.logger, entity.KindAuthor, count)
	created := make([]*entity.Author, 0, count)

	for range count {
		author, err := g.createOne(ctx)
		if err != nil {
			b.fail(ctx, len(created), err)

			return created, err
		}

		created = append(created, author)
		g.reporter.RowCreated(entity.KindAuthor, author)
	}

	b.done(ctx, len(created))

	return created, nil
}

func (g *authorGenerator) createOne(ctx context.Context) (*entity.Author, error) {
	// Re-read every iteration so authors from earlier in this batch can recommend.
	authors, err := g.authorRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list authors")
	}
	users, err := g.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	author := &entity.Author{
		FirstName:       g.faker.FirstName(),
		LastName:        g.faker.LastName(),
		Address:         g.faker.StreetAddress(),
		ZipCode:         g.faker.ZipCode(),
		Phone:           g.faker.Phone(),
		JoinDate:        g.faker.DateWithinYears(authorJoinYears),
		PopularityScore: g.faker.IntBetween(minPopularityScore, maxPopularityScore),
	}
	if len(authors) > 0 {
		recommenderID := pickOne(g.faker, authors).ID
		author.RecommendedByID = &recommenderID
	}

	followerCount := g.faker.IntBetween(0, min(maxFollowers, len(users)))
	followers := sample(g.faker, users, followerCount)
	followerIDs := make([]uint, 0, len(followers))
	for _, user := range followers {
		followerIDs = append(followerIDs, user.ID)
	}

	err = g.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewAuthorRepository()
		if err := repo.Create(ctx, author); err != nil {
			return errors.Wrap(err, "failed to create author")
		}
		if err := repo.SetFollowers(ctx, author.ID, followerIDs); err != nil {
			return errors.Wrap(err, "failed to set author followers")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	author.FollowerIDs = followerIDs

	return author, nil
}
