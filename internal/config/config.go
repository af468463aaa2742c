// Package config provides configuration management for clams using Viper.
package config

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/clams-bin/clams/internal/errors"
	"github.com/clams-bin/clams/internal/paths"
)

// Config represents the top-level configuration structure.
type Config struct {
	Version int `mapstructure:"version" yaml:"version"`

	// NotesDirectory is the root below which new-note creates notes.
	NotesDirectory string `mapstructure:"notes_directory" yaml:"notes_directory"`
	// NotesTemplate is either an inline template or the path of a template file.
	NotesTemplate string `mapstructure:"notes_template" yaml:"notes_template"`

	MvFiles MvFilesConfig `mapstructure:"mv_files" yaml:"mv_files"`
	Adapt   AdaptConfig   `mapstructure:"adapt" yaml:"adapt"`
}

// MvFilesConfig holds defaults for the mv-files command.
type MvFilesConfig struct {
	Extensions string `mapstructure:"extensions" yaml:"extensions"`
	Size       string `mapstructure:"size" yaml:"size"`
}

// AdaptConfig holds defaults for the adapt-frontmatter command.
type AdaptConfig struct {
	Extension string `mapstructure:"extension" yaml:"extension"`
	Format    string `mapstructure:"format" yaml:"format"`
}

// Default values used when neither a config file nor a flag sets them.
const (
	DefaultExtensions      = "avi,mkv,mp4"
	DefaultSize            = "100M"
	DefaultAdaptExtension  = "md"
	DefaultAdaptFormat     = "yaml"
	legacyConfigExtension  = "conf"
	legacyConfigFormatName = "toml"
)

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	// CLAMS_NOTES_DIRECTORY, CLAMS_MV_FILES_SIZE, ...
	viper.SetEnvPrefix("CLAMS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("version", 1)
	viper.SetDefault("notes_directory", "")
	viper.SetDefault("notes_template", "")
	viper.SetDefault("mv_files.extensions", DefaultExtensions)
	viper.SetDefault("mv_files.size", DefaultSize)
	viper.SetDefault("adapt.extension", DefaultAdaptExtension)
	viper.SetDefault("adapt.format", DefaultAdaptFormat)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file. Its type follows the
// file extension; ".conf" files are read as TOML.
// If path is empty, it searches in the default locations and falls back to
// defaults when no file is found.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
		viper.SetConfigType(configType(path))
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// Implicit load without a config file uses defaults.
		case errors.As(err, &notFound):
			return nil, errors.Wrapf(errors.ErrNotFound, "config file %s", path)
		case path != "" && !paths.IsFile(path):
			return nil, errors.Wrapf(errors.ErrNotFound, "config file %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Mark(errors.Wrap(errors.Join(errs...), "validating config"), errors.ErrInvalidConfig)
	}

	return &cfg, nil
}

// Used returns the config file viper read, or "" when defaults are in use.
func Used() string {
	return viper.ConfigFileUsed()
}

func configType(path string) string {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	switch {
	case ext == legacyConfigExtension:
		return legacyConfigFormatName
	case slices.Contains(viper.SupportedExts, ext):
		return ext
	default:
		return "yaml"
	}
}
