package context

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithTrigger(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, logger := WithTrigger(context.Background(), "req-1", fallback)

	assert.Equal(t, "req-1", GetRequestIDFromContext(ctx))
	assert.Same(t, logger, GetLoggerOrDefault(ctx, fallback))
	assert.NotSame(t, fallback, logger)
}

func TestGetLoggerOrDefault_Unset(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestDetach(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	parent, logger := WithTrigger(parent, "req-2", slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx := Detach(parent)
	cancel()

	assert.Error(t, parent.Err())
	assert.NoError(t, ctx.Err())
	assert.Equal(t, "req-2", GetRequestIDFromContext(ctx))
	assert.Same(t, logger, GetLoggerOrDefault(ctx, nil))
}
