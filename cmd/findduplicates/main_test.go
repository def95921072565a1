package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/dicttools/internal/cli"
	"codeberg.org/snonux/dicttools/internal/dictionary"
	"codeberg.org/snonux/dicttools/internal/testutil"
)

func newTestCommand(t *testing.T, dictDir string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	flags := cli.NewFlags()
	cmd := cli.CreateScanCommand(flags)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd.OutOrStdout(), args, flags)
	}

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--dir", dictDir})
	return cmd, &out
}

func TestRunCommand(t *testing.T) {
	tmpDir := t.TempDir()
	testutil.CreateTestDictionary(t, tmpDir, "en",
		"Cat,Katze", "dog,Hund", "broken", "cat,Katzen", "CAT,Kater")

	cmd, out := newTestCommand(t, tmpDir)
	cmd.SetArgs([]string{"--dir", tmpDir, "en"})
	require.NoError(t, cmd.Execute())

	expected := "duplicate #1:\n" +
		"      1: Cat,Katze\n" +
		"      4: cat,Katzen\n" +
		"duplicate #2:\n" +
		"      4: cat,Katzen\n" +
		"      5: CAT,Kater\n" +
		"5 words, 2 duplicates\n"
	assert.Equal(t, expected, out.String())
}

func TestRunCommand_NoDuplicates(t *testing.T) {
	tmpDir := t.TempDir()
	testutil.CreateTestDictionary(t, tmpDir, "de", "hund,dog", "katze,cat")

	cmd, out := newTestCommand(t, tmpDir)
	cmd.SetArgs([]string{"--dir", tmpDir, "de"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "2 words, 0 duplicates\n", out.String())
}

func TestRunCommand_MissingDictionary(t *testing.T) {
	tmpDir := t.TempDir()

	cmd, out := newTestCommand(t, tmpDir)
	cmd.SetArgs([]string{"--dir", tmpDir, "xx"})
	err := cmd.Execute()

	assert.ErrorIs(t, err, dictionary.ErrNotFound)
	assert.Contains(t, err.Error(), filepath.Join(tmpDir, "xx.txt"))
	assert.Empty(t, out.String())
	assert.Equal(t, 1, cli.ExitCode(err))
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRunCommand_WriteError(t *testing.T) {
	tmpDir := t.TempDir()
	testutil.CreateTestDictionary(t, tmpDir, "en", "a,1", "a,2", "a,3")

	viper.Reset()
	t.Cleanup(viper.Reset)
	flags := cli.NewFlags()
	flags.DictDir = tmpDir

	err := runCommand(failingWriter{}, []string{"en"}, flags)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write duplicate")
	assert.Contains(t, err.Error(), "disk full")
}
