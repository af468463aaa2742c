package commands

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clams-bin/clams/internal/errors"
	"github.com/clams-bin/clams/internal/logging"
)

func TestSetupLogging_VerbosityFlags(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel slog.Level
	}{
		{"default (0)", 0, slog.LevelWarn},
		{"verbose (1)", 1, slog.LevelInfo},
		{"debug (2)", 2, slog.LevelDebug},
		{"trace (3)", 3, logging.LevelTrace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetState(t)
			verbosity = tt.verbosity
			require.NoError(t, setupLogging(rootCmd))

			logger := slog.Default()
			assert.True(t, logger.Enabled(t.Context(), tt.wantLevel))
			if tt.wantLevel > logging.LevelTrace {
				assert.False(t, logger.Enabled(t.Context(), tt.wantLevel-4))
			}
		})
	}
}

func TestSetupLogging_EnvVar(t *testing.T) {
	tests := []struct {
		envVal    string
		wantLevel slog.Level
	}{
		{"1", slog.LevelDebug},
		{"true", slog.LevelDebug},
		{"2", logging.LevelTrace},
		{"0", slog.LevelWarn},
		{"foo", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run("CLAMS_DEBUG="+tt.envVal, func(t *testing.T) {
			resetState(t)
			t.Setenv("CLAMS_DEBUG", tt.envVal)
			require.NoError(t, setupLogging(rootCmd))

			logger := slog.Default()
			assert.True(t, logger.Enabled(t.Context(), tt.wantLevel))
			assert.False(t, logger.Enabled(t.Context(), tt.wantLevel-1))
		})
	}
}

func TestSetupLogging_FlagPrecedence(t *testing.T) {
	resetState(t)
	t.Setenv("CLAMS_DEBUG", "2")
	verbosity = 1

	require.NoError(t, setupLogging(rootCmd))
	assert.True(t, slog.Default().Enabled(t.Context(), slog.LevelInfo))
	assert.False(t, slog.Default().Enabled(t.Context(), slog.LevelDebug))
}

func TestSetupLogging_Quiet(t *testing.T) {
	resetState(t)
	quiet = true

	require.NoError(t, setupLogging(rootCmd))
	assert.False(t, slog.Default().Enabled(t.Context(), slog.LevelWarn))
	assert.True(t, slog.Default().Enabled(t.Context(), slog.LevelError))

	verbosity = 1
	err := setupLogging(rootCmd)
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
}

func TestSetupLogging_InvalidFormat(t *testing.T) {
	resetState(t)
	logFormat = "xml"

	err := setupLogging(rootCmd)
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
}

func TestSetupLogging_LogFile(t *testing.T) {
	resetState(t)
	logFile = filepath.Join(t.TempDir(), "clams.log")
	verbosity = 1

	require.NoError(t, setupLogging(rootCmd))
	logging.FromContext(rootCmd.Context()).Info("hello file")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello file"`)

	handle := logFileHandle
	require.NotNil(t, handle)
	require.NoError(t, closeLogFile())
	assert.Nil(t, logFileHandle)
	assert.Error(t, handle.Close(), "log file should already be closed")
}

func TestRootCommand_ClosesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clams.log")

	_, _, err := executeCommand(t, "version", "--log-file", path)
	require.NoError(t, err)
	assert.Nil(t, logFileHandle)
	assert.FileExists(t, path)
}

func TestRootCommand_Help(t *testing.T) {
	out, _, err := executeCommand(t)
	require.NoError(t, err)
	assert.Contains(t, out, "adapt-frontmatter")
	assert.Contains(t, out, "mv-files")
	assert.Contains(t, out, "new-note")
}

func TestRootCommand_BadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mv_files:\n  size: huge\n"), 0o600))

	_, _, err := executeCommand(t, "mv-files", "--config", path, dir, dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidConfig))

	var exitErr *errors.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, errors.ExitUser, exitErr.Code)
	assert.NotEmpty(t, exitErr.Suggestion)
}

func TestRootCommand_BadConfigIgnoredByVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")
	out, _, err := executeCommand(t, "version", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "clams version")
}

func TestRootCommand_HelpIgnoresBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	out, _, err := executeCommand(t, "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "new-note")
}
