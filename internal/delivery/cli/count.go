package cli

import (
	"strconv"

	domainerrors "bookseed/internal/domain/errors"

	"github.com/spf13/cobra"
)

const defaultCount = 1

// countArgs accepts zero or one positional argument.
func countArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.RangeArgs(0, 1)(cmd, args); err != nil {
		return domainerrors.ErrInvalidArguments.WithDetails(err.Error())
	}

	return nil
}

func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return domainerrors.ErrInvalidArguments.WithDetails(err.Error())
	}

	return nil
}

// parseCount reads the optional count argument. A missing argument means one row.
func parseCount(args []string) (int, error) {
	if len(args) == 0 {
		return defaultCount, nil
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return 0, domainerrors.ErrInvalidCount.WithDetails(strconv.Quote(args[0]))
	}

	return n, nil
}
