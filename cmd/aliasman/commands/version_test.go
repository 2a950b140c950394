package commands

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thoreinstein/aliasman/cmd"
)

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	printVersion(&buf)
	output := buf.String()

	assert.Contains(t, output, "aliasman version "+cmd.Version)
	assert.Contains(t, output, "commit: "+cmd.Commit)
	assert.Contains(t, output, "built:  "+cmd.Date)
	assert.Contains(t, output, runtime.Version())
	assert.Len(t, strings.Split(strings.TrimSpace(output), "\n"), 4)
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	t.Cleanup(func() { rootCmd.SetOut(nil) })

	rootCmd.SetArgs([]string{"version"})
	assert.NoError(t, rootCmd.Execute())
	assert.True(t, strings.HasPrefix(buf.String(), "aliasman version "))
}

func TestVersionCommand_CommandMetadata(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
	assert.NotEmpty(t, versionCmd.Short)
	assert.NotEmpty(t, versionCmd.Long)
}
