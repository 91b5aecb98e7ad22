package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"padnav/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextHandler(t *testing.T) {
	t.Run("adds attributes from context", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.New(&buf, slog.LevelDebug)

		ctx := logging.PackageCtx("nav")
		ctx = logging.AppendCtx(ctx, slog.String("session", "abc"))
		logger.InfoContext(ctx, "capture started")

		out := buf.String()
		assert.Contains(t, out, "package=nav")
		assert.Contains(t, out, "session=abc")
		assert.Contains(t, out, "capture started")
	})

	t.Run("sibling contexts do not leak attributes", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.New(&buf, slog.LevelDebug)

		base := logging.PackageCtx("nav")
		a := logging.AppendCtx(base, slog.String("a", "1"))
		_ = logging.AppendCtx(base, slog.String("b", "2"))
		logger.InfoContext(a, "only a")

		assert.Contains(t, buf.String(), "a=1")
		assert.NotContains(t, buf.String(), "b=2")
	})

	t.Run("plain context logs normally", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.New(&buf, slog.LevelInfo)
		logger.InfoContext(context.Background(), "hello")
		assert.Contains(t, buf.String(), "hello")
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logging.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, logging.ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, logging.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logging.ParseLevel("bogus"))
}

func TestSetupWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "padnav.log")
	logger, closer := logging.Setup(path, slog.LevelInfo)
	logger.Info("written")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written")
}
