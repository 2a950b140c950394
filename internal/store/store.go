package store

import (
	"context"
	"maps"
	"slices"
	"sort"
)

// Runner executes a command string. See internal/runner.
type Runner interface {
	Run(ctx context.Context, command string) error
}

// Store is the in-memory alias configuration.
// It is not safe for concurrent use.
type Store struct {
	cfg *AliasConfig
}

// New wraps cfg in a Store. A nil cfg, General mapping or group mapping is
// replaced with an empty one, so a bare [alias.group.x] header stays an
// existing, empty group.
func New(cfg *AliasConfig) *Store {
	if cfg == nil {
		cfg = &AliasConfig{}
	}
	if cfg.General == nil {
		cfg.General = map[string]string{}
	}
	for name, aliases := range cfg.Group {
		if aliases == nil {
			cfg.Group[name] = map[string]string{}
		}
	}
	return &Store{cfg: cfg}
}

// Config returns the underlying configuration.
func (s *Store) Config() *AliasConfig {
	return s.cfg
}

// target resolves the mapping for group without creating it.
// The empty group always resolves to the general scope.
func (s *Store) target(group string) (map[string]string, bool) {
	if group == "" {
		return s.cfg.General, true
	}
	if s.cfg.Group == nil {
		return nil, false
	}
	aliases, ok := s.cfg.Group[group]
	return aliases, ok
}

// Add binds alias to command in group, creating the group if needed.
// An existing alias is overwritten.
func (s *Store) Add(alias, command, group string) {
	aliases, ok := s.target(group)
	if !ok || aliases == nil {
		if s.cfg.Group == nil {
			s.cfg.Group = map[string]map[string]string{}
		}
		aliases = map[string]string{}
		s.cfg.Group[group] = aliases
	}
	aliases[alias] = command
}

// Remove deletes alias from group. An emptied group is kept.
func (s *Store) Remove(alias, group string) error {
	aliases, ok := s.target(group)
	if !ok {
		return ErrGroupNotFound
	}
	if _, ok := aliases[alias]; !ok {
		return ErrAliasNotFound
	}
	delete(aliases, alias)
	return nil
}

// List returns the aliases in group sorted by name.
func (s *Store) List(group string) ([]Entry, error) {
	aliases, ok := s.target(group)
	if !ok {
		return nil, ErrGroupNotFound
	}
	if len(aliases) == 0 {
		return nil, ErrNoAliases
	}
	return entries(group, aliases), nil
}

// Show returns the entry for alias in group.
func (s *Store) Show(alias, group string) (Entry, error) {
	aliases, ok := s.target(group)
	if !ok {
		return Entry{}, ErrGroupNotFound
	}
	command, ok := aliases[alias]
	if !ok {
		return Entry{}, ErrAliasNotFound
	}
	return Entry{Group: group, Name: alias, Command: command}, nil
}

// Execute runs the command bound to alias in group through r.
// Errors from r are returned unchanged.
func (s *Store) Execute(ctx context.Context, alias, group string, r Runner) error {
	entry, err := s.Show(alias, group)
	if err != nil {
		return err
	}
	return r.Run(ctx, entry.Command)
}

// Contains reports whether alias is defined in group.
func (s *Store) Contains(alias, group string) bool {
	_, err := s.Show(alias, group)
	return err == nil
}

// Groups returns the names of all groups, sorted.
func (s *Store) Groups() []string {
	return slices.Sorted(maps.Keys(s.cfg.Group))
}

// Entries returns every alias in every scope: general first, then groups
// in name order.
func (s *Store) Entries() []Entry {
	all := entries("", s.cfg.General)
	for _, group := range s.Groups() {
		all = append(all, entries(group, s.cfg.Group[group])...)
	}
	return all
}

// PruneEmptyGroups deletes groups without aliases and returns their names.
// When no groups remain the group table itself is dropped.
func (s *Store) PruneEmptyGroups() []string {
	var pruned []string
	for _, group := range s.Groups() {
		if len(s.cfg.Group[group]) == 0 {
			delete(s.cfg.Group, group)
			pruned = append(pruned, group)
		}
	}
	if len(pruned) > 0 && len(s.cfg.Group) == 0 {
		s.cfg.Group = nil
	}
	return pruned
}

func entries(group string, aliases map[string]string) []Entry {
	out := make([]Entry, 0, len(aliases))
	for name, command := range aliases {
		out = append(out, Entry{Group: group, Name: name, Command: command})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
