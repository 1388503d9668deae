package logging_test

import (
	"bytes"
	"log/slog"
	"testing"

	"giftexchange/internal/pkg/logging"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for in, want := range cases {
		assert.Equal(t, want, logging.ParseLevel(in), "level %q", in)
	}
}

func TestSetupWithWriter(t *testing.T) {
	t.Run("should drop records below the configured level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.SetupWithWriter(&buf, slog.LevelWarn)

		logger.Info("draw started")
		assert.Empty(t, buf.String())

		logger.Warn("draw retried", "attempt", 2)
		assert.Contains(t, buf.String(), "draw retried")
		assert.Contains(t, buf.String(), "attempt")
	})
}
