package alias

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/aliasman/cmd/aliasman/commands/flags"
	"github.com/thoreinstein/aliasman/internal/backup"
	"github.com/thoreinstein/aliasman/internal/config"
	"github.com/thoreinstein/aliasman/internal/dispatch"
	"github.com/thoreinstein/aliasman/internal/errors"
	"github.com/thoreinstein/aliasman/internal/fileaccess"
	"github.com/thoreinstein/aliasman/internal/logging"
	"github.com/thoreinstein/aliasman/internal/store"
)

const aliasPath = "config.toml"

const seeded = `
[alias.general]
ls = "ls -l"

[alias.group.aws]
whoami = "aws sts get-caller-identity"
`

type recordingRunner struct {
	commands []string
}

func (r *recordingRunner) Run(_ context.Context, command string) error {
	r.commands = append(r.commands, command)
	return nil
}

// useMemory routes every subcommand to an in-memory alias file.
func useMemory(t *testing.T, content string) (*fileaccess.Memory, *recordingRunner) {
	t.Helper()
	files := fileaccess.NewMemory(map[string]string{aliasPath: content})
	r := &recordingRunner{}

	orig := newDispatcher
	newDispatcher = func(_ *cobra.Command, w io.Writer) (*dispatch.Dispatcher, error) {
		return dispatch.New(aliasPath, files, r,
			dispatch.WithOutput(w),
			dispatch.WithLogger(logging.ForTest(t)),
		), nil
	}
	t.Cleanup(func() { newDispatcher = orig })
	return files, r
}

func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(Cmd)

	var out bytes.Buffer
	Cmd.SetOut(&out)
	Cmd.SetErr(&out)
	Cmd.SetArgs(args)
	err := Cmd.ExecuteContext(t.Context())
	return out.String(), err
}

func reload(t *testing.T, files *fileaccess.Memory) *store.Store {
	t.Helper()
	s, err := store.Load(files, aliasPath)
	require.NoError(t, err)
	return s
}

func TestShowThenRemove(t *testing.T) {
	files, _ := useMemory(t, "[alias]\n[alias.general]\nls = \"ls -l\"\n")

	out, err := run(t, "show", "--alias", "ls")
	require.NoError(t, err)
	assert.Equal(t, "ls: ls -l\n", out)

	out, err = run(t, "remove", "--alias", "ls")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.False(t, reload(t, files).Contains("ls", ""))

	out, err = run(t, "show", "-a", "ls")
	require.NoError(t, err)
	assert.Equal(t, "Alias not found\n", out)
}

func TestAdd(t *testing.T) {
	files, _ := useMemory(t, seeded)

	_, err := run(t, "add", "-a", "pods", "-c", "kubectl get pods -A", "-g", "k8s")
	require.NoError(t, err)

	got, err := reload(t, files).Show("pods", "k8s")
	require.NoError(t, err)
	assert.Equal(t, "kubectl get pods -A", got.Command)
}

func TestAdd_RequiresFlags(t *testing.T) {
	files, _ := useMemory(t, seeded)

	_, err := run(t, "add", "-a", "pods")
	assert.Error(t, err)

	_, err = run(t, "add", "-c", "echo")
	assert.Error(t, err)
	assert.Equal(t, 0, files.Writes())
}

func TestAdd_EmptyValuesAreStored(t *testing.T) {
	files, _ := useMemory(t, seeded)

	_, err := run(t, "add", "-a", "noop", "-c", "")
	require.NoError(t, err)

	got, err := reload(t, files).Show("noop", "")
	require.NoError(t, err)
	assert.Empty(t, got.Command)
}

func TestAdd_IntoEmptiedGroup(t *testing.T) {
	files, _ := useMemory(t, seeded)

	_, err := run(t, "remove", "-a", "whoami", "-g", "aws")
	require.NoError(t, err)
	assert.Equal(t, []string{"aws"}, reload(t, files).Groups())

	_, err = run(t, "add", "-a", "ll", "-c", "ls -al")
	require.NoError(t, err)
	assert.Equal(t, []string{"aws"}, reload(t, files).Groups(), "emptied group kept across saves")

	_, err = run(t, "add", "-a", "x", "-c", "echo x", "-g", "aws")
	require.NoError(t, err)
	assert.True(t, reload(t, files).Contains("x", "aws"))
}

func TestList(t *testing.T) {
	useMemory(t, seeded)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"general", []string{"list"}, "ls: ls -l\n"},
		{"group", []string{"ls", "-g", "aws"}, "whoami: aws sts get-caller-identity\n"},
		{"empty group flag is general", []string{"list", "--group", ""}, "ls: ls -l\n"},
		{"missing group", []string{"list", "-g", "gcp"}, "Group not found\n"},
		{"yaml", []string{"list", "--format", "yaml"}, "- name: ls\n  command: ls -l\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestList_BadFormat(t *testing.T) {
	useMemory(t, seeded)

	_, err := run(t, "list", "--format", "xml")
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
}

func TestExec(t *testing.T) {
	_, r := useMemory(t, seeded)

	_, err := run(t, "exec", "-a", "whoami", "-g", "aws")
	require.NoError(t, err)
	assert.Equal(t, []string{"aws sts get-caller-identity"}, r.commands)

	out, err := run(t, "run", "-a", "whoami")
	require.NoError(t, err)
	assert.Equal(t, "Alias not found\n", out)
	assert.Len(t, r.commands, 1)
}

func TestLoadFailureIsConfigError(t *testing.T) {
	useMemory(t, "not toml [")

	_, err := run(t, "show", "-a", "ls")
	require.Error(t, err)

	var exitErr *errors.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, "Run: aliasman init", exitErr.Suggestion)
}

func TestPick(t *testing.T) {
	_, r := useMemory(t, seeded)

	var offered []store.Entry
	orig := findEntry
	findEntry = func(entries []store.Entry) (int, error) {
		offered = entries
		return 1, nil
	}
	t.Cleanup(func() { findEntry = orig })

	_, err := run(t, "pick")
	require.NoError(t, err)
	require.Len(t, offered, 2)
	assert.Equal(t, "aws", offered[1].Group)
	assert.Equal(t, []string{"aws sts get-caller-identity"}, r.commands)
}

func TestPick_Abort(t *testing.T) {
	_, r := useMemory(t, seeded)

	orig := findEntry
	findEntry = func([]store.Entry) (int, error) { return 0, fuzzyfinder.ErrAbort }
	t.Cleanup(func() { findEntry = orig })

	out, err := run(t, "pick", "-g", "aws")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Empty(t, r.commands)
}

func TestPick_NothingToPick(t *testing.T) {
	useMemory(t, "[alias]\n[alias.group.empty]\n")

	orig := findEntry
	findEntry = func([]store.Entry) (int, error) {
		t.Fatal("finder should not open")
		return 0, nil
	}
	t.Cleanup(func() { findEntry = orig })

	out, err := run(t, "pick")
	require.NoError(t, err)
	assert.Equal(t, "No aliases found\n", out)

	out, err = run(t, "pick", "-g", "empty")
	require.NoError(t, err)
	assert.Equal(t, "No aliases found\n", out)

	out, err = run(t, "pick", "-g", "missing")
	require.NoError(t, err)
	assert.Equal(t, "Group not found\n", out)
}

// useAliasFile points --file at a real file and isolates settings.
func useAliasFile(t *testing.T, content string, settings *config.Config) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aliases.toml")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	origFile, origSettings := flags.GetFileFlag(), flags.Settings()
	flags.SetFileFlag(path)
	flags.SetSettings(settings)
	t.Cleanup(func() {
		flags.SetFileFlag(origFile)
		flags.SetSettings(origSettings)
	})
	return path
}

func TestDefaultDispatcher_WritesAndBacksUp(t *testing.T) {
	backupDir := t.TempDir()
	settings := flags.DefaultSettings()
	settings.Backup.Dir = backupDir
	path := useAliasFile(t, seeded, settings)

	_, err := run(t, "add", "-a", "gs", "-c", "git status")
	require.NoError(t, err)

	s, err := store.Load(fileaccess.NewOS(), path)
	require.NoError(t, err)
	assert.True(t, s.Contains("gs", ""))

	manifests, err := backup.NewManager(backup.WithBackupDir(backupDir)).List()
	require.NoError(t, err)
	require.Len(t, manifests, 1)
	assert.Equal(t, path, manifests[0].File.OriginalPath)
}

func TestDefaultDispatcher_BackupsDisabled(t *testing.T) {
	backupDir := filepath.Join(t.TempDir(), "backups")
	settings := flags.DefaultSettings()
	settings.Backup = config.BackupConfig{Enabled: false, Dir: backupDir}
	useAliasFile(t, seeded, settings)

	_, err := run(t, "remove", "-a", "ls")
	require.NoError(t, err)

	_, err = os.Stat(backupDir)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestEdit(t *testing.T) {
	path := useAliasFile(t, seeded, flags.DefaultSettings())

	var opened string
	orig := openEditor
	openEditor = func(_ context.Context, p string) error {
		opened = p
		return os.WriteFile(p, []byte("broken ["), 0o644)
	}
	t.Cleanup(func() { openEditor = orig })

	out, err := run(t, "edit")
	require.NoError(t, err)
	assert.Equal(t, path, opened)
	assert.Contains(t, out, "Warning:")
}

func TestEdit_MissingFile(t *testing.T) {
	useAliasFile(t, "", flags.DefaultSettings())

	orig := openEditor
	openEditor = func(context.Context, string) error {
		t.Fatal("editor should not open")
		return nil
	}
	t.Cleanup(func() { openEditor = orig })

	_, err := run(t, "edit")
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("stdout closed")
}

func TestPick_ReportsWriteFailure(t *testing.T) {
	useMemory(t, "[alias]\n")
	resetFlags(Cmd)
	pickCmd.SetContext(t.Context())

	err := runPickWithWriter(pickCmd, brokenWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing output")
}

func TestHelp_EmptyGroupMeansGeneral(t *testing.T) {
	useMemory(t, seeded)

	out, err := run(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, `--group "" also means the general scope`)
	assert.Contains(t, out, `named "" in the alias file cannot be addressed`)
}
