package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// errorCloser is a closer that always fails.
type errorCloser struct {
	err error
}

func (c *errorCloser) Close() error {
	return c.err
}

func TestSafeClose(t *testing.T) {
	t.Run("logs error when close fails", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		SafeCloseWithLogging(&errorCloser{err: assert.AnError}, logger, "export_workbook")

		output := buf.String()
		assert.Contains(t, output, `"level":"ERROR"`)
		assert.Contains(t, output, `"msg":"failed to close resource"`)
		assert.Contains(t, output, `"operation":"export_workbook"`)
	})

	t.Run("ignores nil closer", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		SafeCloseWithLogging(nil, logger, "export_workbook")

		assert.Empty(t, buf.String())
	})
}

func TestHandleDeferredError(t *testing.T) {
	t.Run("promotes deferred failure when there is no original error", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		var err error
		HandleDeferredError(&err, func() error { return assert.AnError }, logger, "close export workbook")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "close export workbook failed")
		assert.Contains(t, buf.String(), `"msg":"deferred operation failed"`)
	})

	t.Run("keeps the original error", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		original := assert.AnError
		err := original
		HandleDeferredError(&err, func() error { return assert.AnError }, logger, "close export workbook")

		// Original failure takes precedence, deferred one is only logged.
		assert.Equal(t, original, err)
		assert.Contains(t, buf.String(), `"msg":"deferred operation failed"`)
	})

	t.Run("silent when the deferred operation succeeds", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		var err error
		HandleDeferredError(&err, func() error { return nil }, logger, "close export workbook")

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})

	t.Run("ignores nil operation", func(t *testing.T) {
		var err error
		HandleDeferredError(&err, nil, nil, "close export workbook")
		require.NoError(t, err)
	})
}

func TestReplaceLogFatal(t *testing.T) {
	t.Run("logs and wraps the error", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		err := ReplaceLogFatal(logger, "server stopped", assert.AnError)

		require.Error(t, err)
		assert.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, err.Error(), "server stopped")
		assert.Contains(t, buf.String(), `"msg":"server stopped"`)
	})

	t.Run("tolerates nil logger", func(t *testing.T) {
		err := ReplaceLogFatal(nil, "server stopped", assert.AnError)
		require.Error(t, err)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
