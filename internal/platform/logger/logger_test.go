package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/mlefebvre/tasktrack-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogLevels(t *testing.T) {
	cases := []struct {
		configured string
		want       slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo}, // invalid falls back to info
	}

	originalLogger := slog.Default()
	defer slog.SetDefault(originalLogger)

	for _, tc := range cases {
		t.Run(tc.configured, func(t *testing.T) {
			log, err := Setup(config.ServerConfig{Port: 8080, LogLevel: tc.configured})
			require.NoError(t, err)
			require.NotNil(t, log)

			assert.True(t, log.Enabled(context.Background(), tc.want))
			if tc.want != slog.LevelDebug {
				assert.False(t, log.Enabled(context.Background(), tc.want-1))
			}
		})
	}
}

func TestFromContext(t *testing.T) {
	ctx := context.Background()

	// Without a stored logger, the default is returned
	assert.Equal(t, slog.Default(), FromContext(ctx))

	stored := slog.Default().With(slog.String("component", "test"))
	ctx = WithLogger(ctx, stored)
	assert.Equal(t, stored, FromContext(ctx))
}

func TestFromContextOrDefault(t *testing.T) {
	def := slog.Default().With(slog.String("component", "store"))

	// Empty context falls back to the provided default
	assert.Equal(t, def, FromContextOrDefault(context.Background(), def))

	// Nil default falls back to the global logger
	assert.Equal(t, slog.Default(), FromContextOrDefault(context.Background(), nil))

	// A stored logger wins over the provided default
	stored := slog.Default().With(slog.String("trace_id", "abc"))
	ctx := WithLogger(context.Background(), stored)
	assert.Equal(t, stored, FromContextOrDefault(ctx, def))
}

func TestSetupTestLogger(t *testing.T) {
	buf, log, cleanup := SetupTestLogger(t, nil)
	defer cleanup()

	log.Info("hello", slog.String("key", "value"))

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "hello", entries[0]["msg"])
	assert.Equal(t, "value", entries[0]["key"])
}
