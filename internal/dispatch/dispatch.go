package dispatch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/thoreinstein/aliasman/internal/errors"
	"github.com/thoreinstein/aliasman/internal/fileaccess"
	"github.com/thoreinstein/aliasman/internal/logging"
	"github.com/thoreinstein/aliasman/internal/store"
)

// Informational messages printed for lookup misses.
const (
	MsgAliasNotFound = "Alias not found"
	MsgGroupNotFound = "Group not found"
	MsgNoAliases     = "No aliases found"
)

// Snapshotter copies the alias file aside before it is overwritten.
type Snapshotter interface {
	Snapshot(path string) error
}

// Dispatcher executes requests against one alias file.
type Dispatcher struct {
	path        string
	files       fileaccess.FileAccess
	runner      store.Runner
	out         io.Writer
	writeOnRead bool
	prune       bool
	snapshots   Snapshotter
	logger      *slog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithOutput sets where results and informational lines are written.
func WithOutput(w io.Writer) Option {
	return func(d *Dispatcher) { d.out = w }
}

// WithWriteOnRead saves the alias file after every request, including
// read-only ones and lookup misses.
func WithWriteOnRead(enabled bool) Option {
	return func(d *Dispatcher) { d.writeOnRead = enabled }
}

// WithPruneEmptyGroups deletes groups emptied by a remove.
func WithPruneEmptyGroups(enabled bool) Option {
	return func(d *Dispatcher) { d.prune = enabled }
}

// WithSnapshotter sets the backup hook called before each save.
func WithSnapshotter(s Snapshotter) Option {
	return func(d *Dispatcher) { d.snapshots = s }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) { d.logger = l }
}

// New creates a Dispatcher for the alias file at path.
func New(path string, files fileaccess.FileAccess, runner store.Runner, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		path:   path,
		files:  files,
		runner: runner,
		out:    os.Stdout,
		logger: logging.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Path returns the alias file path.
func (d *Dispatcher) Path() string {
	return d.path
}

// Load reads the alias file. Failures are user errors suggesting init.
func (d *Dispatcher) Load() (*store.Store, error) {
	s, err := store.Load(d.files, d.path)
	if err != nil {
		return nil, errors.NewConfigError(err)
	}
	d.logger.Debug("alias file loaded", "path", d.path, "groups", len(s.Groups()))
	return s, nil
}

// Dispatch runs req: load, apply, then save if anything changed.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) error {
	if err := req.Validate(); err != nil {
		return err
	}

	s, err := d.Load()
	if err != nil {
		return err
	}

	changed, err := d.apply(ctx, s, req)
	if err != nil {
		return err
	}

	if changed || d.writeOnRead {
		return d.save(s)
	}
	return nil
}

func (d *Dispatcher) apply(ctx context.Context, s *store.Store, req Request) (bool, error) {
	logger := d.logger.With("op", string(req.Op), "alias", req.Alias, "group", req.Group)

	switch req.Op {
	case OpAdd:
		s.Add(req.Alias, req.Command, req.Group)
		logger.Info("alias added")
		return true, nil

	case OpRemove:
		if err := s.Remove(req.Alias, req.Group); err != nil {
			return false, d.notice(err)
		}
		if d.prune {
			if pruned := s.PruneEmptyGroups(); len(pruned) > 0 {
				logger.Info("pruned empty groups", "groups", pruned)
			}
		}
		logger.Info("alias removed")
		return true, nil

	case OpList:
		entries, err := s.List(req.Group)
		if err != nil {
			return false, d.notice(err)
		}
		format := req.Format
		if format == "" {
			format = FormatText
		}
		return false, RenderEntries(d.out, entries, format)

	case OpShow:
		entry, err := s.Show(req.Alias, req.Group)
		if err != nil {
			return false, d.notice(err)
		}
		return false, RenderEntry(d.out, entry)

	case OpExec:
		if _, err := s.Show(req.Alias, req.Group); err != nil {
			return false, d.notice(err)
		}
		if err := s.Execute(ctx, req.Alias, req.Group, d.runner); err != nil {
			return false, errors.NewSystemError(errors.Wrapf(err, "executing alias %s", req.Alias), "")
		}
		return false, nil
	}
	return false, errors.Newf("unknown operation %q", req.Op)
}

// notice prints the informational line for a store lookup miss.
// Any other error is returned unchanged.
func (d *Dispatcher) notice(err error) error {
	var msg string
	switch {
	case errors.Is(err, store.ErrAliasNotFound):
		msg = MsgAliasNotFound
	case errors.Is(err, store.ErrGroupNotFound):
		msg = MsgGroupNotFound
	case errors.Is(err, store.ErrNoAliases):
		msg = MsgNoAliases
	default:
		return err
	}
	d.logger.Debug("lookup miss", "error", err)
	return Notify(d.out, msg)
}

// Notify writes one informational line such as MsgNoAliases to w.
func Notify(w io.Writer, msg string) error {
	if _, err := fmt.Fprintln(w, msg); err != nil {
		return errors.Wrap(err, "writing output")
	}
	return nil
}

func (d *Dispatcher) save(s *store.Store) error {
	if d.snapshots != nil {
		if err := d.snapshots.Snapshot(d.path); err != nil {
			return errors.NewSystemError(errors.Wrap(err, "backing up alias file"),
				"Disable backups with backup.enabled: false")
		}
	}
	if err := store.Save(d.files, d.path, s); err != nil {
		return errors.NewSystemError(err, "Check permissions on "+d.path)
	}
	d.logger.Debug("alias file saved", "path", d.path)
	return nil
}
