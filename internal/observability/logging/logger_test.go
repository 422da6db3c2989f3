package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dimipash/portfolio-api/internal/handler/http/requestid"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{value: "debug", want: slog.LevelDebug},
		{value: "warn", want: slog.LevelWarn},
		{value: "error", want: slog.LevelError},
		{value: "info", want: slog.LevelInfo},
		{value: "", want: slog.LevelInfo},
		{value: "verbose", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run("level "+tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.value))
		})
	}
}

func TestWithRequestID(t *testing.T) {
	logger := slog.Default()

	t.Run("no request id returns same logger", func(t *testing.T) {
		got := WithRequestID(context.Background(), logger)
		assert.Same(t, logger, got)
	})

	t.Run("request id produces derived logger", func(t *testing.T) {
		ctx := requestid.WithRequestID(context.Background(), "req-123")
		got := WithRequestID(ctx, logger)
		assert.NotSame(t, logger, got)
	})
}

func TestLoggerContext(t *testing.T) {
	logger := NewTextLogger()
	ctx := WithLogger(context.Background(), logger)

	assert.Same(t, logger, FromContext(ctx))
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}
