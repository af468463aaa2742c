package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clams-bin/clams/internal/errors"
)

// isolate resets viper and moves the working directory and XDG config home
// into temp dirs so no real config is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestInit(t *testing.T) {
	isolate(t)
	Init()

	assert.Equal(t, 1, viper.GetInt("version"))
	assert.Equal(t, DefaultExtensions, viper.GetString("mv_files.extensions"))
	assert.Equal(t, DefaultSize, viper.GetString("mv_files.size"))
	assert.Equal(t, DefaultAdaptExtension, viper.GetString("adapt.extension"))
}

func TestLoad_NoConfigFile(t *testing.T) {
	isolate(t)
	Init()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, DefaultSize, cfg.MvFiles.Size)
	assert.Equal(t, DefaultAdaptFormat, cfg.Adapt.Format)
	assert.Empty(t, cfg.NotesDirectory)
}

func TestLoad_WithConfigFile(t *testing.T) {
	dir := isolate(t)
	configPath := filepath.Join(dir, "custom.yaml")
	content := []byte("notes_directory: /srv/notes\nmv_files:\n  size: 1G\n")
	require.NoError(t, os.WriteFile(configPath, content, 0o600))

	Init()
	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "/srv/notes", cfg.NotesDirectory)
	assert.Equal(t, "1G", cfg.MvFiles.Size)
	assert.Equal(t, DefaultExtensions, cfg.MvFiles.Extensions)
	assert.Equal(t, configPath, Used())
}

func TestLoad_ConfigInWorkingDirectory(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("adapt:\n  extension: markdown\n"), 0o600))

	Init()
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.Adapt.Extension)
}

func TestLoad_LegacyTOMLConf(t *testing.T) {
	dir := isolate(t)
	configPath := filepath.Join(dir, "new_note.conf")
	content := []byte("notes_directory = \"/srv/notes\"\nnotes_template = \"# {{.Title}}\"\n")
	require.NoError(t, os.WriteFile(configPath, content, 0o600))

	Init()
	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "/srv/notes", cfg.NotesDirectory)
	assert.Equal(t, "# {{.Title}}", cfg.NotesTemplate)
}

func TestLoad_EnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("CLAMS_MV_FILES_SIZE", "5G")
	t.Setenv("CLAMS_NOTES_DIRECTORY", "/env/notes")

	Init()
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "5G", cfg.MvFiles.Size)
	assert.Equal(t, "/env/notes", cfg.NotesDirectory)
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	dir := isolate(t)
	Init()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNotFound)
}

func TestLoad_InvalidConfig(t *testing.T) {
	dir := isolate(t)
	configPath := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("mv_files:\n  size: lots\nadapt:\n  format: json\n"), 0o600))

	Init()
	_, err := Load(configPath)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Contains(t, err.Error(), "mv_files.size")
	assert.Contains(t, err.Error(), "adapt.format")
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := isolate(t)
	configPath := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("mv_files: [unclosed\n"), 0o600))

	Init()
	_, err := Load(configPath)
	require.Error(t, err)
	assert.NotErrorIs(t, err, errors.ErrNotFound)
}
