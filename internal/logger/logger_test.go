package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T, f func()) string {
	t.Helper()

	var buf bytes.Buffer
	RedirectTo(&buf)
	t.Cleanup(func() { RedirectTo(os.Stderr) })

	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)

	f()

	return buf.String()
}

func TestSetLevel(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		expectLevel LogLevel
		expectError bool
	}{
		{"trace", "trace", LevelTrace, false},
		{"debug", "debug", LevelDebug, false},
		{"info", "info", LevelInfo, false},
		{"warn", "warn", LevelWarn, false},
		{"warning", "warning", LevelWarn, false},
		{"error", "error", LevelError, false},
		{"fatal", "fatal", LevelFatal, false},
		{"uppercase", "INFO", LevelInfo, false},
		{"padded", "  debug ", LevelDebug, false},
		{"invalid", "verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, SetLevel("info"))

			err := SetLevel(tt.level)
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid log level")
				assert.Equal(t, LevelInfo, Log.Level(), "failed parse must not change the level")

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectLevel, Log.Level())
		})
	}
}

func TestLogLevelString(t *testing.T) {
	for _, level := range []LogLevel{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal} {
		parsed, err := ParseLevel(level.String())
		require.NoError(t, err)
		assert.Equal(t, level, parsed)
	}

	assert.Equal(t, "unknown", LogLevel(42).String())
}

func TestLoggerFiltersByLevel(t *testing.T) {
	t.Cleanup(func() { _ = SetLevel("info") })

	t.Run("debug_level_emits_debug", func(t *testing.T) {
		require.NoError(t, SetLevel("debug"))

		out := captureOutput(t, func() {
			Log.Debugf("solving %s", "quiz")
		})
		assert.Contains(t, out, "solving quiz")
	})

	t.Run("info_level_hides_debug", func(t *testing.T) {
		require.NoError(t, SetLevel("info"))

		out := captureOutput(t, func() {
			Log.Debug("hidden")
			Log.Info("shown")
		})
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "shown")
	})

	t.Run("error_level_blocks_warnings", func(t *testing.T) {
		require.NoError(t, SetLevel("error"))

		out := captureOutput(t, func() {
			Log.Warnf("clipboard %s", "unavailable")
			Log.Errorf("server %d", 500)
		})
		assert.NotContains(t, out, "clipboard unavailable")
		assert.Contains(t, out, "server 500")
	})
}

func TestOpenFileRedirectsAndRestores(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordsmith.log")

	restore, err := OpenFile(path)
	require.NoError(t, err)

	Log.Error("written to file")
	restore()

	assert.Equal(t, os.Stderr, pterm.Error.Writer)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestInitPterm(t *testing.T) {
	InitPterm()

	assert.Equal(t, os.Stderr, pterm.Info.Writer)
	assert.Equal(t, os.Stderr, pterm.Success.Writer)
	assert.Equal(t, os.Stderr, pterm.Warning.Writer)
	assert.Equal(t, os.Stderr, pterm.Error.Writer)
	assert.Equal(t, os.Stderr, pterm.Debug.Writer)
}
