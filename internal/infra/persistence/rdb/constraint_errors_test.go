package rdb

import (
	"testing"

	domainerrors "bookseed/internal/domain/errors"
	"bookseed/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateWriteError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "translated duplicate", err: gorm.ErrDuplicatedKey, want: domainerrors.ErrDuplicateRow},
		{name: "translated foreign key", err: gorm.ErrForeignKeyViolated, want: domainerrors.ErrInvalidReference},
		{name: "sqlite foreign key text", err: errors.New("FOREIGN KEY constraint failed"), want: domainerrors.ErrInvalidReference},
		{name: "translated check", err: gorm.ErrCheckConstraintViolated, want: domainerrors.ErrCheckViolation},
		{name: "postgres not null", err: errors.New(`null value in column "title" violates not-null constraint`), want: domainerrors.ErrMissingField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := translateWriteError(tt.err, "failed to create row")
			assert.True(t, errors.Is(got, tt.want), "got %v", got)
			assert.Contains(t, got.Error(), "failed to create row")
		})
	}
}

func TestTranslateWriteError_FallsBackToDatabaseError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	got := translateWriteError(cause, "failed to create user")

	var appErr domainerrors.AppError
	assert.True(t, errors.As(got, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	assert.ErrorIs(t, got, cause)
}
