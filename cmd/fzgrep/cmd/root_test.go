package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// Keep the developer's real configuration out of the test.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRoot_RanksMatchesBestFirst(t *testing.T) {
	path := writeFile(t, t.TempDir(), "input.txt", "a test\nnothing here\ntest task\n")

	out, err := execute(t, "test", path)
	require.NoError(t, err)
	assert.Equal(t, "test task\na test\n", out)
	assert.True(t, matched)
}

func TestRoot_LineNumbers(t *testing.T) {
	path := writeFile(t, t.TempDir(), "input.txt", "a test\nnothing here\ntest task\n")

	out, err := execute(t, "-n", "test", path)
	require.NoError(t, err)
	assert.Equal(t, "3:test task\n1:a test\n", out)
}

func TestRoot_NoMatchIsNotAnError(t *testing.T) {
	path := writeFile(t, t.TempDir(), "input.txt", "nothing here\n")

	out, err := execute(t, "zzz", path)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.False(t, matched)
}

func TestRoot_MultipleFilesShowNamesByDefault(t *testing.T) {
	dir := t.TempDir()
	one := writeFile(t, dir, "one.txt", "a test\n")
	two := writeFile(t, dir, "two.txt", "test task\n")

	out, err := execute(t, "test", one, two)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%s:test task\n%s:a test\n", two, one), out)
}

func TestRoot_NoFilenameSuppressesNames(t *testing.T) {
	dir := t.TempDir()
	one := writeFile(t, dir, "one.txt", "a test\n")
	two := writeFile(t, dir, "two.txt", "test task\n")

	out, err := execute(t, "-F", "test", one, two)
	require.NoError(t, err)
	assert.Equal(t, "test task\na test\n", out)
}

func TestRoot_WithFilenameForcesNameOnSingleFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "one.txt", "a test\n")

	out, err := execute(t, "-f", "test", path)
	require.NoError(t, err)
	assert.Equal(t, path+":a test\n", out)
}

func TestRoot_FilenameFlagsConflict(t *testing.T) {
	path := writeFile(t, t.TempDir(), "one.txt", "a test\n")

	_, err := execute(t, "-f", "-F", "test", path)
	assert.ErrorContains(t, err, "mutually exclusive")
}

func TestRoot_ContextFlag(t *testing.T) {
	path := writeFile(t, t.TempDir(), "input.txt", "alpha\na test\nbeta\n")

	out, err := execute(t, "-C", "1", "test", path)
	require.NoError(t, err)
	assert.Equal(t, "alpha\na test\nbeta\n", out)
}

func TestRoot_BeforeAndAfterContext(t *testing.T) {
	path := writeFile(t, t.TempDir(), "input.txt", "alpha\nbravo\na test\ncharlie\ndelta\n")

	out, err := execute(t, "-B", "1", "-A", "2", "test", path)
	require.NoError(t, err)
	assert.Equal(t, "bravo\na test\ncharlie\ndelta\n", out)
}

func TestRoot_Top(t *testing.T) {
	path := writeFile(t, t.TempDir(), "input.txt", "a test\ntest task\nnothing\n")

	out, err := execute(t, "--top", "1", "test", path)
	require.NoError(t, err)
	assert.Equal(t, "test task\n", out)
}

func TestRoot_Quiet(t *testing.T) {
	path := writeFile(t, t.TempDir(), "input.txt", "a test\n")

	out, err := execute(t, "-q", "test", path)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.True(t, matched)
}

func TestRoot_Recursive(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	writeFile(t, dir, "a.txt", "a test\n")
	writeFile(t, sub, "b.txt", "test task\n")

	out, err := execute(t, "-r", "-F", "test", dir)
	require.NoError(t, err)
	assert.Equal(t, "test task\na test\n", out)
}

func TestRoot_RecursiveWithInclude(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "keep.txt", "a test\n")
	writeFile(t, dir, "skip.log", "test task\n")

	out, err := execute(t, "-r", "-F", "--include", "*.txt", "test", dir)
	require.NoError(t, err)
	assert.Equal(t, "a test\n", out)
}

func TestRoot_DirectoryWithoutRecursive(t *testing.T) {
	_, err := execute(t, "test", t.TempDir())
	assert.ErrorContains(t, err, "is a directory")
}

func TestRoot_MissingFile(t *testing.T) {
	_, err := execute(t, "test", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestRoot_InvalidColorMode(t *testing.T) {
	path := writeFile(t, t.TempDir(), "input.txt", "a test\n")

	_, err := execute(t, "--color", "rainbow", "test", path)
	assert.ErrorContains(t, err, "invalid color mode")
}

func TestRoot_NegativeTop(t *testing.T) {
	path := writeFile(t, t.TempDir(), "input.txt", "a test\n")

	_, err := execute(t, "--top", "-3", "test", path)
	assert.ErrorContains(t, err, "--top")
}

func TestRoot_RequiresPattern(t *testing.T) {
	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(nil)
	assert.Error(t, root.Execute())
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "fzgrep")
}

func TestVersionCommand_JSON(t *testing.T) {
	out, err := execute(t, "version", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"version"`)
	assert.Contains(t, out, `"go_version"`)
}
