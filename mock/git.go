package mock

import (
	"context"

	"github.com/fwojciec/textdiff"
)

// Compile-time interface verification.
var _ textdiff.GitRunner = (*GitRunner)(nil)

// GitRunner is a mock implementation of textdiff.GitRunner.
type GitRunner struct {
	ShowFileFn func(ctx context.Context, repoPath, rev, path string) (string, error)
}

func (g *GitRunner) ShowFile(ctx context.Context, repoPath, rev, path string) (string, error) {
	return g.ShowFileFn(ctx, repoPath, rev, path)
}
