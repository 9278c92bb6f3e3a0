package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes a fresh root command with the given stdin and args.
func runCommand(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func touch(t *testing.T, path string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, nil, 0644))
	return path
}

func TestRootCmdSetup(t *testing.T) {
	cmd := newRootCommand()

	assert.Equal(t, "fixnames", cmd.Name())
	assert.NotEmpty(t, cmd.Version)
	for _, name := range []string{"dirs", "nodots", "nolower", "dry-run", "verbose", "debug", "config", "max-stdin", "summary", "no-color"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag %s", name)
	}
	assert.Empty(t, cmd.Commands(), "file names must never be mistaken for subcommands")
}

func TestDryRunReportsWithoutRenaming(t *testing.T) {
	dir := t.TempDir()
	file := touch(t, filepath.Join(dir, "Bad Name!.TXT"))

	stdout, stderr, err := runCommand(t, "", "--dryrun", file)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	target := filepath.Join(dir, "bad_name_.txt")
	assert.Equal(t, ">Dry Run: Rename File "+file+" --> "+target+"\n", stdout)
	assert.FileExists(t, file)
	assert.NoFileExists(t, target)
}

func TestRenameFromStdin(t *testing.T) {
	dir := t.TempDir()
	one := touch(t, filepath.Join(dir, "One File.txt"))
	two := touch(t, filepath.Join(dir, "Two File.txt"))

	stdout, _, err := runCommand(t, one+"\n\n"+two+"\n", "-v", "-")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "one_file.txt"))
	assert.FileExists(t, filepath.Join(dir, "two_file.txt"))
	assert.Contains(t, stdout, ">Renaming "+two+" --> "+filepath.Join(dir, "two_file.txt"))
	assert.Less(t, strings.Index(stdout, "Two File"), strings.Index(stdout, "One File"), "descending path order")
}

func TestStdinLimitWarns(t *testing.T) {
	dir := t.TempDir()
	first := touch(t, filepath.Join(dir, "A.txt"))
	second := touch(t, filepath.Join(dir, "B.txt"))

	_, stderr, err := runCommand(t, first+"\n"+second+"\n", "--max-stdin", "1")
	require.NoError(t, err)

	assert.Contains(t, stderr, "maximum number of stdin entries reached (1)")
	assert.FileExists(t, filepath.Join(dir, "a.txt"))
	assert.FileExists(t, second)
}

func TestDirectoriesNeedFlag(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "Sub Dir")
	require.NoError(t, os.Mkdir(sub, 0755))

	stdout, _, err := runCommand(t, "", "--verbose", sub)
	require.NoError(t, err)
	assert.Equal(t, ">Not renaming directory "+sub+"\n", stdout)
	assert.DirExists(t, sub)

	_, _, err = runCommand(t, "", "-D", sub)
	require.NoError(t, err)
	assert.DirExists(t, filepath.Join(dir, "sub_dir"))
}

func TestFailedRenameIsNotFatal(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}
	dir := t.TempDir()
	locked := filepath.Join(dir, "Locked Dir")
	file := touch(t, filepath.Join(locked, "Some File.txt"))
	require.NoError(t, os.Chmod(locked, 0555))
	t.Cleanup(func() { _ = os.Chmod(locked, 0755) })

	_, stderr, err := runCommand(t, "", file)
	require.NoError(t, err)
	assert.Contains(t, stderr, ">>Error: failed to rename "+file)
	assert.FileExists(t, file)
}

func TestSymlinkWarning(t *testing.T) {
	dir := t.TempDir()
	target := touch(t, filepath.Join(dir, "target.txt"))
	link := filepath.Join(dir, "My Link")
	require.NoError(t, os.Symlink(target, link))

	_, stderr, err := runCommand(t, "", link)
	require.NoError(t, err)
	assert.Equal(t, "Warning: "+link+" is a symbolic link, not renaming links\n", stderr)
}

func TestConfigFileAndFlagPrecedence(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "fixnames.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("lowercase = false\n"), 0644))
	file := touch(t, filepath.Join(dir, "Mixed Case.txt"))

	stdout, _, err := runCommand(t, "", "--config", cfgPath, "-n", file)
	require.NoError(t, err)
	assert.Contains(t, stdout, filepath.Join(dir, "Mixed_Case.txt"))

	stdout, _, err = runCommand(t, "", "--config", cfgPath, "--nolower=false", "-n", file)
	require.NoError(t, err)
	assert.Contains(t, stdout, filepath.Join(dir, "mixed_case.txt"))
}

func TestSummaryTable(t *testing.T) {
	dir := t.TempDir()
	file := touch(t, filepath.Join(dir, "Summary Me.txt"))

	stdout, _, err := runCommand(t, "", "--summary", file)
	require.NoError(t, err)
	assert.Contains(t, stdout, "renamed")
	assert.Contains(t, strings.ToUpper(stdout), "TOTAL")
}

func TestInvalidInvocation(t *testing.T) {
	_, _, err := runCommand(t, "", "--no-such-flag")
	assert.Error(t, err)

	_, _, err = runCommand(t, "", "--max-stdin", "-3", "-")
	assert.ErrorContains(t, err, "must not be negative")

	_, _, err = runCommand(t, "", "--config", filepath.Join(t.TempDir(), "missing.toml"), "x")
	assert.ErrorContains(t, err, "failed to read config file")
}
