package impl

import (
	"context"
	"testing"

	"bookseed/internal/domain/entity"
	"bookseed/internal/domain/repository"
	mockRepo "bookseed/internal/mocks/repository"
	"bookseed/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authorGeneratorFixtures holds all test dependencies for author generator tests.
type authorGeneratorFixtures struct {
	generator  usecase.AuthorGenerator
	authorRepo *mockRepo.MockAuthorRepository
	userRepo   *mockRepo.MockUserRepository
	txManager  *mockRepo.MockTransactionManager
	factory    *mockRepo.MockRepositoryFactory
	recorder   *rowRecorder
}

func createTestAuthorGenerator(t *testing.T) authorGeneratorFixtures {
	authorRepo := mockRepo.NewMockAuthorRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	recorder := &rowRecorder{}

	return authorGeneratorFixtures{
		generator:  NewAuthorGenerator(authorRepo, userRepo, txManager, newTestFaker(), recorder, newTestLogger()),
		authorRepo: authorRepo,
		userRepo:   userRepo,
		txManager:  txManager,
		factory:    factory,
		recorder:   recorder,
	}
}

// fakeAuthorStore backs the author mock with an in-memory table.
type fakeAuthorStore struct {
	authors   []*entity.Author
	followers map[uint][]uint
}

func (fx authorGeneratorFixtures) wireStore(ctx context.Context, store *fakeAuthorStore, users []*entity.User) {
	fx.userRepo.EXPECT().List(ctx).Return(users, nil)
	fx.authorRepo.EXPECT().List(ctx).RunAndReturn(func(context.Context) ([]*entity.Author, error) {
		return append([]*entity.Author(nil), store.authors...), nil
	})
	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
	fx.factory.EXPECT().NewAuthorRepository().Return(fx.authorRepo)
	fx.authorRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Author")).
		RunAndReturn(func(_ context.Context, author *entity.Author) error {
			author.ID = uint(len(store.authors) + 1)
			store.authors = append(store.authors, author)

			return nil
		})
	fx.authorRepo.EXPECT().
		SetFollowers(ctx, mock.AnythingOfType("uint"), mock.AnythingOfType("[]uint")).
		RunAndReturn(func(_ context.Context, authorID uint, userIDs []uint) error {
			store.followers[authorID] = userIDs

			return nil
		})
}

func makeUsers(n int) []*entity.User {
	users := make([]*entity.User, 0, n)
	for i := range n {
		users = append(users, &entity.User{ID: uint(i + 1), Username: "reader"})
	}

	return users
}

func TestAuthorGenerator_Generate(t *testing.T) {
	fx := createTestAuthorGenerator(t)
	ctx := context.Background()
	store := &fakeAuthorStore{followers: map[uint][]uint{}}
	users := makeUsers(8)
	fx.wireStore(ctx, store, users)

	authors, err := fx.generator.Generate(ctx, 6)
	require.NoError(t, err)
	require.Len(t, authors, 6)

	assert.Nil(t, authors[0].RecommendedByID, "the first author has nobody to recommend it")
	for _, author := range authors {
		if author.RecommendedByID != nil {
			assert.Less(t, *author.RecommendedByID, author.ID)
		}

		followers := store.followers[author.ID]
		assert.Equal(t, followers, author.FollowerIDs)
		assert.LessOrEqual(t, len(followers), maxFollowers)

		seen := map[uint]bool{}
		for _, id := range followers {
			assert.False(t, seen[id], "duplicate follower %d", id)
			seen[id] = true
			assert.GreaterOrEqual(t, id, uint(1))
			assert.LessOrEqual(t, id, uint(len(users)))
		}

		assert.GreaterOrEqual(t, author.PopularityScore, minPopularityScore)
		assert.LessOrEqual(t, author.PopularityScore, maxPopularityScore)
		assert.NotEmpty(t, author.FirstName)
		assert.False(t, author.JoinDate.IsZero())
	}
	assert.Len(t, fx.recorder.labels, 6)
	assert.Equal(t, authors[2].FirstName+" "+authors[2].LastName, fx.recorder.labels[2])
}

func TestAuthorGenerator_FollowersBoundedByUsers(t *testing.T) {
	fx := createTestAuthorGenerator(t)
	ctx := context.Background()
	store := &fakeAuthorStore{followers: map[uint][]uint{}}
	fx.wireStore(ctx, store, makeUsers(2))

	authors, err := fx.generator.Generate(ctx, 10)
	require.NoError(t, err)

	for _, author := range authors {
		assert.LessOrEqual(t, len(author.FollowerIDs), 2)
	}
}

func TestAuthorGenerator_NoUsersMeansNoFollowers(t *testing.T) {
	fx := createTestAuthorGenerator(t)
	ctx := context.Background()
	store := &fakeAuthorStore{followers: map[uint][]uint{}}
	fx.wireStore(ctx, store, nil)

	authors, err := fx.generator.Generate(ctx, 3)
	require.NoError(t, err)

	for _, author := range authors {
		assert.Empty(t, author.FollowerIDs)
	}
}

func TestAuthorGenerator_RecommenderFromExistingRows(t *testing.T) {
	fx := createTestAuthorGenerator(t)
	ctx := context.Background()
	store := &fakeAuthorStore{
		authors:   []*entity.Author{{ID: 1, FirstName: "Existing", LastName: "Author"}},
		followers: map[uint][]uint{},
	}
	fx.wireStore(ctx, store, makeUsers(1))

	authors, err := fx.generator.Generate(ctx, 1)
	require.NoError(t, err)
	require.Len(t, authors, 1)
	assert.Equal(t, uintPtr(1), authors[0].RecommendedByID)
	assert.Equal(t, uint(2), authors[0].ID)
}

func TestAuthorGenerator_TransactionFailure(t *testing.T) {
	fx := createTestAuthorGenerator(t)
	ctx := context.Background()
	txErr := errors.New("deadlock detected")

	fx.userRepo.EXPECT().List(ctx).Return(makeUsers(3), nil)
	fx.authorRepo.EXPECT().List(ctx).Return([]*entity.Author{}, nil)
	fx.txManager.EXPECT().Execute(ctx, mock.Anything).Return(txErr).Once()

	authors, err := fx.generator.Generate(ctx, 4)
	require.Error(t, err)
	assert.ErrorIs(t, err, txErr)
	assert.Empty(t, authors)
	assert.Empty(t, fx.recorder.labels)
}

func TestAuthorGenerator_ListUsersFailure(t *testing.T) {
	fx := createTestAuthorGenerator(t)
	ctx := context.Background()

	fx.authorRepo.EXPECT().List(ctx).Return([]*entity.Author{}, nil)
	fx.userRepo.EXPECT().List(ctx).Return(nil, errors.New("timeout"))

	_, err := fx.generator.Generate(ctx, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list users")
}
