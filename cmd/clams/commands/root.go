// Package commands implements the CLI commands for clams.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/clams-bin/clams/cmd"
	"github.com/clams-bin/clams/internal/config"
	"github.com/clams-bin/clams/internal/errors"
	"github.com/clams-bin/clams/internal/logging"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// logFileHandle is the open --log-file, closed after the command ran.
var logFileHandle *os.File

// configFile holds the value of the -c/--config flag.
var configFile string

// noColor holds the value of the --no-color flag.
var noColor bool

// cfg is the loaded configuration, valid after initConfig.
var cfg *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv, -vvv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "",
		"config file (default: ./config.yaml or $XDG_CONFIG_HOME/clams/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"do not use colored output")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("clams version {{.Version}}\n")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	cfg, configLoadErr = config.Load(configFile)
}

var rootCmd = &cobra.Command{
	Use:   "clams",
	Short: "Small tools for moving and rewriting content files",
	Long: `clams bundles a few one-shot utilities for managing blog content and
media files:

  adapt-frontmatter  rewrite Pelican frontmatter into Jekyll/Gatsby YAML
  mv-files           move large video files into one flat directory
  new-note           scaffold a new note from a template

Settings can be provided in a config.yaml in the working directory or in
$XDG_CONFIG_HOME/clams, or through CLAMS_* environment variables.`,
	Example: `  # Convert an exported Pelican site
  clams adapt-frontmatter -s export/ -d content/posts/

  # Preview which videos would be moved
  clams mv-files --dry ~/Downloads ~/Videos

  # Start a new note and open it in $EDITOR
  clams new-note -t "Weekly review" -e`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		if noColor {
			logging.DisableColor()
			disableColor()
		}
		return checkConfig(cmd)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLogFile()
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"), "")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence over the environment.
		if v == 0 {
			if val, ok := os.LookupEnv("CLAMS_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2
				case "2":
					v = 3
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	format := logging.Format(logFormat)
	if format != logging.FormatText && format != logging.FormatJSON {
		return errors.NewUserError(errors.Newf("unknown log format %q", logFormat),
			"Use --log-format text or --log-format json")
	}
	handlers := []slog.Handler{
		logging.New(logging.Config{Level: level, Format: format, Output: cmd.ErrOrStderr()}).Handler(),
	}

	if err := closeLogFile(); err != nil {
		return err
	}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening log file"), "")
		}
		logFileHandle = f
		handlers = append(handlers, logging.New(logging.Config{
			Level: level, Format: logging.FormatJSON, Output: f,
		}).Handler())
	}

	handler := handlers[0]
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))
	return nil
}

// closeLogFile closes the --log-file opened by setupLogging, if any.
func closeLogFile() error {
	if logFileHandle == nil {
		return nil
	}
	f := logFileHandle
	logFileHandle = nil
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "closing log file")
	}
	return nil
}

// checkConfig surfaces config load errors for commands that use the config.
func checkConfig(cmd *cobra.Command) error {
	if !cmd.HasParent() {
		return nil
	}
	switch cmd.Name() {
	case "help", "version", "gen-doc":
		return nil
	}
	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}
	if used := config.Used(); used != "" {
		logging.FromContext(cmd.Context()).Debug("loaded config", "path", used)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}
