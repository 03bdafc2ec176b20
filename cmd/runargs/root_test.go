package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "runargs version ")
}

func TestRunsCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "userdev.yaml")
	require.NoError(t, os.WriteFile(path, []byte("runs:\n  client:\n    main: Main\n"), 0644))

	out, err := execute(t, "runs", "--descriptor", path)
	require.NoError(t, err)
	assert.Contains(t, out, "- `client` (Main)")
}

func TestArgfileCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "args.txt")
	require.NoError(t, os.WriteFile(path, []byte("# Main Class\nMain\n\n\"a b\"\n"), 0644))

	out, err := execute(t, "argfile", path)
	require.NoError(t, err)
	assert.Equal(t, "Main\na b\n", out)
}

func TestShowCommandRequiresRunType(t *testing.T) {
	_, err := execute(t, "show")
	require.Error(t, err)
}
