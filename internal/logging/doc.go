// Package logging provides structured logging for the aliasman CLI using slog.
//
// Logs always go to stderr (or a --log-file) so they never interleave with
// alias output on stdout. The text handler colorizes levels and keys when
// stderr is a terminal.
//
//	logger := logging.New(logging.Config{
//		Level:  logging.LevelFromVerbosity(2),
//		Format: logging.FormatText,
//	})
//	ctx = logging.NewContext(ctx, logger)
//	logging.FromContext(ctx).Debug("loading alias file", "path", path)
//
// For tests, use [ForTest] to route log output through the testing framework.
package logging
