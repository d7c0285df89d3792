package cli

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	domainerrors "bookseed/internal/domain/errors"
	"bookseed/internal/domain/repository"
	"bookseed/internal/errors"
	"bookseed/internal/infra/fake"
	"bookseed/internal/infra/persistence/rdb"
	"bookseed/internal/infra/persistence/rdbtest"
	"bookseed/internal/usecase/impl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// storeBootstrap wires the real generators over db, the way the binary does.
func storeBootstrap(db *gorm.DB, started *int) Bootstrap {
	return func(_ context.Context, env Env) (*Runtime, StopFunc, error) {
		*started++

		logger := slog.New(slog.NewTextHandler(env.LogOutput, &slog.HandlerOptions{Level: slog.LevelError}))
		faker := fake.NewSeeded(env.Options.Seed + 1)

		userRepo := rdb.NewUserRepository(db)
		authorRepo := rdb.NewAuthorRepository(db)
		publisherRepo := rdb.NewPublisherRepository(db)
		bookRepo := rdb.NewBookRepository(db)

		users := impl.NewUserGenerator(userRepo, faker, env.Printer, logger)
		authors := impl.NewAuthorGenerator(authorRepo, userRepo, rdb.NewTransactionManager(db), faker, env.Printer, logger)
		publishers := impl.NewPublisherGenerator(publisherRepo, faker, env.Printer, logger)
		books := impl.NewBookGenerator(bookRepo, authorRepo, publisherRepo, faker, env.Printer, logger)

		rt := &Runtime{
			Logger:     logger,
			Users:      users,
			Authors:    authors,
			Publishers: publishers,
			Books:      books,
			Seeder:     impl.NewSeedService(users, authors, publishers, books),
			Schema:     impl.NewSchemaService(rdb.NewSchemaRepository(db), logger),
		}

		return rt, func(context.Context) error { return nil }, nil
	}
}

func unusedBootstrap(t *testing.T) Bootstrap {
	return func(context.Context, Env) (*Runtime, StopFunc, error) {
		t.Fatal("bootstrap must not run")

		return nil, nil, nil
	}
}

type result struct {
	code   int
	stdout string
	stderr string
}

func run(bootstrap Bootstrap, args ...string) result {
	var stdout, stderr bytes.Buffer
	args = append(args, "--no-color")
	code := Run(context.Background(), args, bootstrap, &stdout, &stderr)

	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func linesWithPrefix(out, prefix string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, prefix) {
			lines = append(lines, line)
		}
	}

	return lines
}

func TestHello(t *testing.T) {
	t.Parallel()

	res := run(unusedBootstrap(t), "hello")

	assert.Equal(t, domainerrors.ExitOK, res.code)
	assert.Equal(t, "Hello, World..!\n", res.stdout)
}

func TestCountValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{name: "not a number", args: []string{"users", "many"}},
		{name: "negative", args: []string{"authors", "-3"}},
		{name: "too many args", args: []string{"books", "1", "2"}},
		{name: "unknown flag", args: []string{"publishers", "--fast"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := run(unusedBootstrap(t), tt.args...)

			assert.Equal(t, domainerrors.ExitUsage, res.code)
			assert.Empty(t, res.stdout)
			assert.Contains(t, res.stderr, "Error:")
		})
	}
}

func TestParseCount(t *testing.T) {
	t.Parallel()

	n, err := parseCount(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = parseCount([]string{"0"})
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = parseCount([]string{"25"})
	require.NoError(t, err)
	assert.Equal(t, 25, n)

	_, err = parseCount([]string{"2.5"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCount))
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, domainerrors.ExitOK, ExitCode(nil))
	assert.Equal(t, domainerrors.ExitError, ExitCode(errors.New("boom")))
	assert.Equal(t, domainerrors.ExitUsage, ExitCode(domainerrors.NewCommandError("users", domainerrors.ErrInvalidCount)))
	assert.Equal(t, domainerrors.ExitError, ExitCode(domainerrors.NewCommandError("books", domainerrors.ErrMissingDependencies)))
}

func TestBooks_FreshStoreRefuses(t *testing.T) {
	t.Parallel()

	db := rdbtest.OpenSQLite(t)
	started := 0

	res := run(storeBootstrap(db, &started), "books", "5")

	assert.Equal(t, domainerrors.ExitError, res.code)
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, "You must have Authors and Publishers in the database first.")

	counts, err := rdb.NewSchemaRepository(db).CountRows(context.Background(), []string{"books"})
	require.NoError(t, err)
	assert.Zero(t, counts[0].Rows)
}

func TestEndToEnd(t *testing.T) {
	t.Parallel()

	db := rdbtest.OpenSQLite(t)
	started := 0
	bootstrap := storeBootstrap(db, &started)

	res := run(bootstrap, "users", "3")
	require.Equal(t, domainerrors.ExitOK, res.code, res.stderr)
	assert.Len(t, linesWithPrefix(res.stdout, "Created User: "), 3)

	res = run(bootstrap, "authors", "2")
	require.Equal(t, domainerrors.ExitOK, res.code, res.stderr)
	assert.Len(t, linesWithPrefix(res.stdout, "Created Author: "), 2)

	res = run(bootstrap, "publishers")
	require.Equal(t, domainerrors.ExitOK, res.code, res.stderr)
	assert.Len(t, linesWithPrefix(res.stdout, "Created Publisher: "), 1)

	res = run(bootstrap, "books", "5", "--seed", "99")
	require.Equal(t, domainerrors.ExitOK, res.code, res.stderr)
	assert.Len(t, linesWithPrefix(res.stdout, "Created Book: "), 5)

	ctx := context.Background()
	authors, err := rdb.NewAuthorRepository(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, authors, 2)
	for _, author := range authors {
		followers, err := rdb.NewAuthorRepository(db).ListFollowerIDs(ctx, author.ID)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(followers), 3)
		if author.RecommendedByID != nil {
			assert.Less(t, *author.RecommendedByID, author.ID)
		}
	}

	publishers, err := rdb.NewPublisherRepository(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, publishers, 1)

	books, err := rdb.NewBookRepository(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, books, 5)
	for _, book := range books {
		assert.Contains(t, []uint{authors[0].ID, authors[1].ID}, book.AuthorID)
		assert.Equal(t, publishers[0].ID, book.PublisherID)
		assert.GreaterOrEqual(t, book.Price, 100)
		assert.LessOrEqual(t, book.Price, 1000)
	}

	res = run(bootstrap, "stats")
	require.Equal(t, domainerrors.ExitOK, res.code, res.stderr)
	assert.Contains(t, res.stdout, "users")
	assert.Regexp(t, `books\s+5`, res.stdout)

	assert.Equal(t, 5, started)
}

func TestAllAndSchema(t *testing.T) {
	t.Parallel()

	db := rdbtest.OpenSQLite(t)
	started := 0
	bootstrap := storeBootstrap(db, &started)

	res := run(bootstrap, "schema")
	require.Equal(t, domainerrors.ExitOK, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Schema is up to date")

	res = run(bootstrap, "all", "2")
	require.Equal(t, domainerrors.ExitOK, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Seeded 2 users, 2 authors, 2 publishers and 2 books")

	counts, err := rdb.NewSchemaRepository(db).CountRows(context.Background(), repository.BookstoreTables)
	require.NoError(t, err)
	byTable := map[string]int64{}
	for _, c := range counts {
		byTable[c.Table] = c.Rows
	}
	assert.Equal(t, int64(2), byTable["users"])
	assert.Equal(t, int64(2), byTable["books"])
}

func TestRerunCreatesDisjointRows(t *testing.T) {
	t.Parallel()

	db := rdbtest.OpenSQLite(t)
	started := 0
	bootstrap := storeBootstrap(db, &started)
	ctx := context.Background()
	userRepo := rdb.NewUserRepository(db)
	authorRepo := rdb.NewAuthorRepository(db)

	res := run(bootstrap, "users", "3")
	require.Equal(t, domainerrors.ExitOK, res.code, res.stderr)
	firstUsers, err := userRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, firstUsers, 3)

	// same seed, so the second run repeats every field value
	res = run(bootstrap, "users", "3")
	require.Equal(t, domainerrors.ExitOK, res.code, res.stderr)
	allUsers, err := userRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, allUsers, 6)

	firstUserIDs := map[uint]bool{}
	for _, u := range firstUsers {
		firstUserIDs[u.ID] = true
	}
	for i, u := range allUsers[3:] {
		assert.False(t, firstUserIDs[u.ID], "user %d reused id %d", i, u.ID)
		assert.Equal(t, firstUsers[i].Email, u.Email)
	}

	res = run(bootstrap, "authors", "2")
	require.Equal(t, domainerrors.ExitOK, res.code, res.stderr)
	firstAuthors, err := authorRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, firstAuthors, 2)

	res = run(bootstrap, "authors", "2")
	require.Equal(t, domainerrors.ExitOK, res.code, res.stderr)
	allAuthors, err := authorRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, allAuthors, 4)

	firstAuthorIDs := map[uint]bool{}
	for _, a := range firstAuthors {
		firstAuthorIDs[a.ID] = true
	}
	for _, a := range allAuthors[2:] {
		assert.False(t, firstAuthorIDs[a.ID], "author id %d reused", a.ID)
	}

	assert.Equal(t, 4, started)
}
