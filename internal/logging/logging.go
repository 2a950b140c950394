package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/thoreinstein/aliasman/internal/errors"
)

// Format selects the console handler.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// DebugEnv raises the level when no -v flag was given: "1"/"true" means
// debug, "2" means trace.
const DebugEnv = "ALIASMAN_DEBUG"

// LevelTrace sits below slog.LevelDebug and is enabled with -vvv.
const LevelTrace = slog.LevelDebug - 4

// Config describes a logger built by New.
type Config struct {
	Level  slog.Level
	Format Format
	// Output defaults to os.Stderr.
	Output io.Writer
}

// ParseFormat validates a --log-format value. The empty string is text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", errors.Newf("unknown log format %q", s)
	}
}

// NewFormatHandler returns the handler for f writing to w.
// Anything other than FormatJSON gets the colorized text handler.
func NewFormatHandler(f Format, w io.Writer, opts *slog.HandlerOptions) slog.Handler {
	if f == FormatJSON {
		return slog.NewJSONHandler(w, opts)
	}
	return NewHandler(w, opts)
}

// New builds a logger from cfg.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	return slog.New(NewFormatHandler(cfg.Format, out, &slog.HandlerOptions{Level: cfg.Level}))
}

// Default logs warnings and above to stderr, keeping alias output on
// stdout clean unless -v is given.
func Default() *slog.Logger {
	return New(Config{Level: slog.LevelWarn, Format: FormatText})
}

func NewDiscard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// LevelFromVerbosity maps a -v count to a level: 0 warn, 1 info,
// 2 debug, 3 or more trace.
func LevelFromVerbosity(v int) slog.Level {
	switch {
	case v <= 0:
		return slog.LevelWarn
	case v == 1:
		return slog.LevelInfo
	case v == 2:
		return slog.LevelDebug
	default:
		return LevelTrace
	}
}

// ResolveLevel combines -q, -v and ALIASMAN_DEBUG. Quiet wins, then an
// explicit -v count, then the environment.
func ResolveLevel(verbosity int, quiet bool) slog.Level {
	return resolveLevel(verbosity, quiet, os.LookupEnv)
}

func resolveLevel(verbosity int, quiet bool, lookup func(string) (string, bool)) slog.Level {
	if quiet {
		return slog.LevelError
	}
	if verbosity == 0 {
		switch v, _ := lookup(DebugEnv); strings.ToLower(v) {
		case "1", "true":
			verbosity = 2
		case "2":
			verbosity = 3
		}
	}
	return LevelFromVerbosity(verbosity)
}

type ctxKey struct{}

func NewContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && logger != nil {
			return logger
		}
	}
	return slog.Default()
}

type testWriter struct {
	t testing.TB
}

func (w *testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}

// ForTest logs at trace level through t.Log, so output shows up only for
// failing tests or under go test -v.
func ForTest(t testing.TB) *slog.Logger {
	t.Helper()
	return New(Config{Level: LevelTrace, Format: FormatText, Output: &testWriter{t: t}})
}
