package context

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRun_TagsLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx := NewRun(context.Background(), base)
	runID := GetRunID(ctx)
	require.NotEmpty(t, runID)

	GetLoggerOrDefault(ctx, nil).Info("hello")
	assert.Contains(t, buf.String(), `"runId":"`+runID+`"`)
}

func TestGetLoggerOrDefault_FallsBack(t *testing.T) {
	t.Parallel()

	fallback := slog.New(slog.DiscardHandler)

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Empty(t, GetRunID(context.Background()))
}
