package impl

import (
	"context"
	"testing"

	"bookseed/internal/domain/entity"
	domainerrors "bookseed/internal/domain/errors"
	mockRepo "bookseed/internal/mocks/repository"
	"bookseed/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// bookGeneratorFixtures holds all test dependencies for book generator tests.
type bookGeneratorFixtures struct {
	generator     usecase.BookGenerator
	bookRepo      *mockRepo.MockBookRepository
	authorRepo    *mockRepo.MockAuthorRepository
	publisherRepo *mockRepo.MockPublisherRepository
	recorder      *rowRecorder
}

func createTestBookGenerator(t *testing.T) bookGeneratorFixtures {
	bookRepo := mockRepo.NewMockBookRepository(t)
	authorRepo := mockRepo.NewMockAuthorRepository(t)
	publisherRepo := mockRepo.NewMockPublisherRepository(t)
	recorder := &rowRecorder{}

	return bookGeneratorFixtures{
		generator:     NewBookGenerator(bookRepo, authorRepo, publisherRepo, newTestFaker(), recorder, newTestLogger()),
		bookRepo:      bookRepo,
		authorRepo:    authorRepo,
		publisherRepo: publisherRepo,
		recorder:      recorder,
	}
}

func TestBookGenerator_RequiresAuthorsAndPublishers(t *testing.T) {
	tests := []struct {
		name       string
		authors    []*entity.Author
		publishers []*entity.Publisher
	}{
		{name: "empty store"},
		{name: "no publishers", authors: []*entity.Author{{ID: 1}}},
		{name: "no authors", publishers: []*entity.Publisher{{ID: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestBookGenerator(t)
			ctx := context.Background()

			fx.authorRepo.EXPECT().List(ctx).Return(tt.authors, nil)
			fx.publisherRepo.EXPECT().List(ctx).Return(tt.publishers, nil)

			books, err := fx.generator.Generate(ctx, 5)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrMissingDependencies)
			assert.Empty(t, books)
			assert.Empty(t, fx.recorder.labels)
			fx.bookRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestBookGenerator_Generate(t *testing.T) {
	fx := createTestBookGenerator(t)
	ctx := context.Background()

	authors := []*entity.Author{{ID: 3}, {ID: 7}}
	publishers := []*entity.Publisher{{ID: 11}}
	fx.authorRepo.EXPECT().List(ctx).Return(authors, nil)
	fx.publisherRepo.EXPECT().List(ctx).Return(publishers, nil)

	var nextID uint
	fx.bookRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Book")).
		RunAndReturn(func(_ context.Context, book *entity.Book) error {
			nextID++
			book.ID = nextID

			return nil
		}).
		Times(5)

	books, err := fx.generator.Generate(ctx, 5)
	require.NoError(t, err)
	require.Len(t, books, 5)

	for i, book := range books {
		assert.Contains(t, []uint{3, 7}, book.AuthorID)
		assert.Equal(t, uint(11), book.PublisherID)
		assert.GreaterOrEqual(t, book.Price, minBookPrice)
		assert.LessOrEqual(t, book.Price, maxBookPrice)
		assert.NotEmpty(t, book.Title)
		assert.NotEmpty(t, book.Genre)
		assert.False(t, book.PublishedDate.IsZero())
		assert.Equal(t, book.Title, fx.recorder.labels[i])
	}
}

func TestBookGenerator_StoreErrorKeepsEarlierRows(t *testing.T) {
	fx := createTestBookGenerator(t)
	ctx := context.Background()
	storeErr := errors.New("foreign key violated")

	fx.authorRepo.EXPECT().List(ctx).Return([]*entity.Author{{ID: 1}}, nil)
	fx.publisherRepo.EXPECT().List(ctx).Return([]*entity.Publisher{{ID: 1}}, nil)
	fx.bookRepo.EXPECT().Create(ctx, mock.Anything).Return(nil).Times(2)
	fx.bookRepo.EXPECT().Create(ctx, mock.Anything).Return(storeErr).Once()

	books, err := fx.generator.Generate(ctx, 5)
	assert.ErrorIs(t, err, storeErr)
	assert.Len(t, books, 2)
	assert.Len(t, fx.recorder.labels, 2)
}

func TestBookGenerator_ZeroCountStillChecksDependencies(t *testing.T) {
	fx := createTestBookGenerator(t)
	ctx := context.Background()

	fx.authorRepo.EXPECT().List(ctx).Return([]*entity.Author{{ID: 1}}, nil)
	fx.publisherRepo.EXPECT().List(ctx).Return([]*entity.Publisher{{ID: 1}}, nil)

	books, err := fx.generator.Generate(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestBookGenerator_DependenciesRemovedMidBatch(t *testing.T) {
	fx := createTestBookGenerator(t)
	ctx := context.Background()

	publishers := []*entity.Publisher{{ID: 1}}
	fx.authorRepo.EXPECT().List(ctx).Return([]*entity.Author{{ID: 1}}, nil).Times(2)
	fx.authorRepo.EXPECT().List(ctx).Return([]*entity.Author{}, nil).Once()
	fx.publisherRepo.EXPECT().List(ctx).Return(publishers, nil)
	fx.bookRepo.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()

	var (
		books []*entity.Book
		err   error
	)
	require.NotPanics(t, func() {
		books, err = fx.generator.Generate(ctx, 3)
	})
	assert.ErrorIs(t, err, domainerrors.ErrMissingDependencies)
	assert.Len(t, books, 1)
	assert.Len(t, fx.recorder.labels, 1)
}
