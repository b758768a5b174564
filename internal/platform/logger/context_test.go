package logger_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/madr-io/madr-api/internal/platform/logger"
)

func TestLoggerContextRoundTrip(t *testing.T) {
	t.Parallel()

	attached := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := logger.WithLogger(context.Background(), attached)

	assert.Same(t, attached, logger.FromContext(ctx))
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	t.Parallel()

	got := logger.FromContext(context.Background())

	assert.Same(t, slog.Default(), got)
}
