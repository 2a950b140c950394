// Package errors provides error handling conventions for the aliasman CLI.
//
// This package defines sentinel errors, an ExitError type for CLI exit code
// handling, exit code constants, and thin wrappers over
// github.com/cockroachdb/errors so callers import a single errors package.
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (bad flags, missing alias file, etc.)
//   - ExitSystem (2): System-related error (write failure, shell spawn, etc.)
//
// Informational outcomes such as "Alias not found" are not errors and
// exit with ExitSuccess.
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion:
//
//	err := errors.NewConfigError(errors.Wrap(err, "loading alias file"))
//	os.Exit(errors.ExitCode(err))
package errors
