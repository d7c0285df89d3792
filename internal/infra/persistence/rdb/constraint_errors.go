package rdb

import (
	"strings"

	domainerrors "bookseed/internal/domain/errors"
	"bookseed/internal/errors"

	"gorm.io/gorm"
)

// translateWriteError maps a failed insert or delete onto the domain error catalogue.
func translateWriteError(err error, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return errors.Wrap(domainerrors.ErrDuplicateRow.WithDetails(err.Error()), details)
	case isForeignKeyConstraintViolation(err):
		return errors.Wrap(domainerrors.ErrInvalidReference.WithDetails(err.Error()), details)
	case isCheckConstraintViolation(err):
		return errors.Wrap(domainerrors.ErrCheckViolation.WithDetails(err.Error()), details)
	case isNotNullConstraintViolation(err):
		return errors.Wrap(domainerrors.ErrMissingField.WithDetails(err.Error()), details)
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || containsAny(err, "unique constraint", "duplicate entry")
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || containsAny(err, "foreign key constraint")
}

// Not every driver translates constraint failures, so the checks fall back to the driver text.
func isNotNullConstraintViolation(err error) bool {
	return containsAny(err, "null value", "not null", "cannot be null", "23502")
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated) || containsAny(err, "check constraint")
}

func containsAny(err error, fragments ...string) bool {
	errMsg := strings.ToLower(err.Error())
	for _, fragment := range fragments {
		if strings.Contains(errMsg, fragment) {
			return true
		}
	}

	return false
}
