package observability

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger(t *testing.T) {
	t.Run("json format", func(t *testing.T) {
		logger := InitLogger(LogConfig{Level: "info", Format: "json"})
		require.NotNil(t, logger)
	})

	t.Run("text is the fallback format", func(t *testing.T) {
		logger := InitLogger(LogConfig{Level: "info", Format: "whatever"})
		require.NotNil(t, logger)
	})

	t.Run("service attribute is optional", func(t *testing.T) {
		logger := InitLogger(LogConfig{Level: "info", Format: "json", Service: "screening-service"})
		require.NotNil(t, logger)
	})

	t.Run("becomes the default logger", func(t *testing.T) {
		logger := InitLogger(LogConfig{Level: "debug", Format: "json"})
		assert.Equal(t, logger, slog.Default())
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.in), "level %q", tt.in)
	}
}
