// Package store holds the alias configuration in memory and persists it as TOML.
//
// The configuration is a two-level mapping: a general scope that always
// exists, and optional named groups. Every operation takes a group name; the
// empty string selects the general scope.
//
// On disk the file looks like:
//
//	[alias.general]
//	ls = "ls -l"
//
//	[alias.group.aws]
//	whoami = "aws sts get-caller-identity"
//
// Lookups that miss return [ErrAliasNotFound], [ErrGroupNotFound] or
// [ErrNoAliases]. These are informational for the CLI, not failures.
package store
