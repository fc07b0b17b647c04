package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afuentesan/awpak-builder"
	"github.com/afuentesan/awpak-builder/internal/testutils"
	"github.com/afuentesan/awpak-builder/pkg/codec"
)

// run executes the CLI with args against a file store rooted at dir.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--backend", "file", "--dir", dir}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func writeSample(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := codec.Marshal(testutils.SampleGraph())
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeSample(t, dir, "sample.json")

	out, err := run(t, dir, "validate", path)
	require.NoError(t, err, out)
	assert.Contains(t, out, "ok")

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{"first":{"Node":{"id":"a","executor":{"ContextMut":[]},
		"destination":[{"next":{"Node":"ghost"}}]}}}`), 0o600))
	out, err = run(t, dir, "validate", broken)
	assert.ErrorIs(t, err, errInvalid)
	assert.Contains(t, out, "ghost")
}

func TestFmtCommandWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "legacy.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"first":{"Node":{"id":"a","executor":{"ContextMut":[]}}}}`), 0o600))

	_, err := run(t, dir, "fmt", "-w", path)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"")

	// Formatting is idempotent.
	out, err := run(t, dir, "fmt", path)
	require.NoError(t, err)
	assert.Equal(t, string(data), out)
}

func TestStoredDocumentEdits(t *testing.T) {
	dir := t.TempDir()
	writeSample(t, dir, "sample.json")

	out, err := run(t, dir, "list")
	require.NoError(t, err)
	assert.Equal(t, "sample\n", out)

	out, err = run(t, dir, "rename", "sample", "agent", "assistant")
	require.NoError(t, err)
	assert.Contains(t, out, "5 references")

	_, err = run(t, dir, "remove", "sample", "web")
	require.ErrorIs(t, err, awpak.ErrInvalidEdit)

	out, err = run(t, dir, "remove", "sample", "web", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "1 references")

	_, err = run(t, dir, "retag", "sample", "ctx", "--executor", "Command")
	require.NoError(t, err)
	_, err = run(t, dir, "retag", "sample", "ctx")
	assert.Error(t, err)

	out, err = run(t, dir, "graph", "sample", "--format", "dot")
	require.NoError(t, err)
	assert.Contains(t, out, "assistant")
}

func TestDescribeAndVersion(t *testing.T) {
	dir := t.TempDir()
	path := writeSample(t, dir, "sample.json")

	out, err := run(t, dir, "describe", path)
	require.NoError(t, err)
	assert.Contains(t, out, "sample")
	assert.Contains(t, out, "agent")

	out, err = run(t, dir, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "awpak version")
}
