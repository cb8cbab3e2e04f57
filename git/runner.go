// Package git provides access to git operations via shell commands.
package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/fwojciec/textdiff"
	"github.com/fwojciec/textdiff/log"
)

// Compile-time interface verification.
var _ textdiff.GitRunner = (*Runner)(nil)

// Runner executes git commands via shell.
type Runner struct{}

// NewRunner creates a new git runner.
func NewRunner() *Runner {
	return &Runner{}
}

// ShowFile returns the content of path at revision rev in the repository at
// repoPath. An empty rev means HEAD. The path is relative to the repository
// root.
func (r *Runner) ShowFile(ctx context.Context, repoPath, rev, path string) (string, error) {
	if rev == "" {
		rev = "HEAD"
	}
	object := rev + ":" + strings.TrimPrefix(path, "./")
	args := []string{"-C", repoPath, "show", object}
	log.Debugf("git %s", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, "git", args...)
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("git show %s failed: %s", object, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("git show %s failed: %w", object, err)
	}
	return string(output), nil
}
