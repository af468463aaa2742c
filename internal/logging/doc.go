// Package logging provides structured logging for the clams CLI using slog.
//
// Text output goes through [Handler], which colorizes levels and keys when
// writing to a terminal. JSON output uses the standard slog JSON handler.
// [MultiHandler] fans records out to several handlers, which the CLI uses
// to mirror logs into a --log-file.
//
//	logger := logging.New(logging.Config{
//		Level:  logging.LevelFromVerbosity(2),
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	ctx = logging.NewContext(ctx, logger)
//	logging.FromContext(ctx).Debug("adapting", "file", path)
//
// Tests can route log output through the testing framework with [ForTest].
package logging
