package store

import "github.com/thoreinstein/aliasman/internal/errors"

// Lookup outcomes. Callers usually report these to the user instead of
// failing.
var (
	// ErrAliasNotFound indicates the alias is not defined in the target scope.
	ErrAliasNotFound = errors.New("alias not found")

	// ErrGroupNotFound indicates the named group does not exist.
	ErrGroupNotFound = errors.New("group not found")

	// ErrNoAliases indicates the target scope exists but is empty.
	ErrNoAliases = errors.New("no aliases found")

	// ErrInvalidFile indicates the alias file could not be parsed.
	ErrInvalidFile = errors.New("invalid alias file")
)
