package git_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/fwojciec/textdiff/git"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRepo creates a temporary git repository with two commits of
// expected.txt.
func setupTestRepo(t *testing.T) string {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	dir := t.TempDir()

	runGit(t, dir, "init", "-b", "main")
	runGit(t, dir, "config", "user.email", "test@example.com")
	runGit(t, dir, "config", "user.name", "Test User")

	writeFile(t, dir, "expected.txt", "Hello\nWorld\n")
	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", "Initial output")

	writeFile(t, dir, "expected.txt", "Hello\nthere\n")
	runGit(t, dir, "commit", "-am", "Change output")

	return dir
}

// runGit executes a git command in the given directory.
func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command git %v failed: %s", args, string(output))
	return string(output)
}

// writeFile creates a file with the given content.
func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)
}

func TestRunner_ShowFile(t *testing.T) {
	t.Parallel()

	t.Run("returns file at HEAD by default", func(t *testing.T) {
		t.Parallel()
		dir := setupTestRepo(t)

		got, err := git.NewRunner().ShowFile(context.Background(), dir, "", "expected.txt")

		require.NoError(t, err)
		assert.Equal(t, "Hello\nthere\n", got)
	})

	t.Run("returns file at earlier revision", func(t *testing.T) {
		t.Parallel()
		dir := setupTestRepo(t)

		got, err := git.NewRunner().ShowFile(context.Background(), dir, "HEAD~1", "./expected.txt")

		require.NoError(t, err)
		assert.Equal(t, "Hello\nWorld\n", got)
	})

	t.Run("reports missing path", func(t *testing.T) {
		t.Parallel()
		dir := setupTestRepo(t)

		_, err := git.NewRunner().ShowFile(context.Background(), dir, "HEAD", "missing.txt")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "git show HEAD:missing.txt failed")
	})

	t.Run("honors cancelled context", func(t *testing.T) {
		t.Parallel()
		dir := setupTestRepo(t)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := git.NewRunner().ShowFile(ctx, dir, "HEAD", "expected.txt")

		assert.Error(t, err)
	})
}
