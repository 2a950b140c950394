// Package runner executes alias commands through the platform shell and
// reports their outcome.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"

	"github.com/thoreinstein/aliasman/internal/errors"
	"github.com/thoreinstein/aliasman/internal/logging"
)

// Result is the captured outcome of one command.
type Result struct {
	Command  string
	ExitCode int
	Status   string
	Stdout   []byte
	Stderr   []byte
}

// Runner runs command strings with "sh -c" (or "cmd /C" on Windows) and
// writes a status, stdout and stderr report to its output.
type Runner struct {
	shell  string
	goos   string
	out    io.Writer
	logger *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithShell overrides the Unix shell used to interpret commands.
// Empty means "sh". Ignored on Windows.
func WithShell(shell string) Option {
	return func(r *Runner) {
		r.shell = shell
	}
}

// WithOutput sets where the report is written. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.out = w
	}
}

// WithLogger sets the logger for spawn diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = l
	}
}

// New creates a Runner for the current platform.
func New(opts ...Option) *Runner {
	r := &Runner{
		goos:   runtime.GOOS,
		out:    os.Stdout,
		logger: logging.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ShellCommand returns the argv that interprets command on goos.
func ShellCommand(goos, shell, command string) []string {
	if goos == "windows" {
		return []string{"cmd", "/C", command}
	}
	if shell == "" {
		shell = "sh"
	}
	return []string{shell, "-c", command}
}

// Capture runs command and collects its output without printing anything.
// A non-zero exit is reported in the Result, not as an error. Failing to
// start the shell is an error.
func (r *Runner) Capture(ctx context.Context, command string) (*Result, error) {
	argv := ShellCommand(r.goos, r.shell, command)
	r.logger.Debug("running command", "argv", argv)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		r.logger.Debug("spawn failed", "argv", argv, "error", err)
		return nil, errors.Wrapf(err, "spawning %s", argv[0])
	}

	res := &Result{
		Command: command,
		Stdout:  stdout.Bytes(),
		Stderr:  stderr.Bytes(),
	}
	if cmd.ProcessState != nil {
		res.ExitCode = cmd.ProcessState.ExitCode()
		res.Status = cmd.ProcessState.String()
	}
	r.logger.Info("command finished", "command", command, "exit_code", res.ExitCode)
	return res, nil
}

// Run executes command and writes its report.
func (r *Runner) Run(ctx context.Context, command string) error {
	res, err := r.Capture(ctx, command)
	if err != nil {
		return err
	}
	return Report(r.out, res)
}

// Report writes res in the three-line status/stdout/stderr layout.
// Captured output is printed as text, lossily for invalid UTF-8.
func Report(w io.Writer, res *Result) error {
	if _, err := fmt.Fprintf(w, "status: %s\n", res.Status); err != nil {
		return errors.Wrap(err, "writing report")
	}
	if _, err := fmt.Fprintf(w, "stdout: %s\n", bytes.ToValidUTF8(res.Stdout, []byte("�"))); err != nil {
		return errors.Wrap(err, "writing report")
	}
	if _, err := fmt.Fprintf(w, "stderr: %s\n", bytes.ToValidUTF8(res.Stderr, []byte("�"))); err != nil {
		return errors.Wrap(err, "writing report")
	}
	return nil
}
