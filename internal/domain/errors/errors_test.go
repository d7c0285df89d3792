package errors

import (
	"testing"

	"bookseed/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetails(t *testing.T) {
	t.Parallel()

	err := ErrMissingDependencies.WithDetails("found 0 authors and 2 publishers")

	assert.Equal(t, "You must have Authors and Publishers in the database first. (found 0 authors and 2 publishers)", err.Error())
	assert.True(t, errors.Is(err, ErrMissingDependencies))
	assert.False(t, errors.Is(err, ErrInvalidCount))
	assert.Empty(t, ErrMissingDependencies.Details())
}

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	t.Parallel()

	err := ErrDuplicateRow.WrapMessage("failed to create user")

	assert.Equal(t, "failed to create user: row violates a unique constraint", err.Error())
	assert.True(t, errors.Is(err, ErrDuplicateRow))
}

func TestCommandError_ExitCode(t *testing.T) {
	t.Parallel()

	assert.Nil(t, NewCommandError("users", nil))

	usage := NewCommandError("users", ErrInvalidCount.WithDetails("-3"))
	var cmdErr *CommandError
	assert.True(t, errors.As(usage, &cmdErr))
	assert.Equal(t, ExitUsage, cmdErr.ExitCode())
	assert.Equal(t, "users: count must be a non-negative integer (-3)", usage.Error())

	wrapped := NewCommandError("books", errors.Wrap(ErrMissingDependencies, "precondition"))
	assert.True(t, errors.As(wrapped, &cmdErr))
	assert.Equal(t, ExitError, cmdErr.ExitCode())
	assert.True(t, errors.Is(wrapped, ErrMissingDependencies))

	plain := NewCommandError("authors", errors.New("disk full"))
	assert.True(t, errors.As(plain, &cmdErr))
	assert.Equal(t, ExitError, cmdErr.ExitCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := NewDatabaseExecuteError(cause, "failed to list users")

	assert.Equal(t, "failed to list users: connection refused", err.Error())
	assert.Equal(t, ExitError, err.ExitCode())
	assert.ErrorIs(t, err, cause)
}
