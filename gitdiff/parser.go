// Package gitdiff builds and reads unified patches using bluekeyes/go-gitdiff.
package gitdiff

import (
	"errors"
	"fmt"
	"io"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
	"github.com/fwojciec/textdiff"
)

// Compile-time interface verification.
var _ textdiff.PatchParser = (*Parser)(nil)

// ErrMultipleFiles is returned when a patch touches more than one file.
var ErrMultipleFiles = errors.New("patch contains more than one file")

// Parser reads unified diff content back into hunks.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads a single-file unified diff and returns its changes as hunks
// with 0-based ranges. Each run of deleted and added lines between context
// lines becomes one hunk. Empty input yields no hunks.
func (p *Parser) Parse(r io.Reader) ([]textdiff.Hunk, error) {
	files, _, err := gitdiff.Parse(r)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}
	if len(files) > 1 {
		return nil, fmt.Errorf("%w: %d files", ErrMultipleFiles, len(files))
	}

	var hunks []textdiff.Hunk
	for _, frag := range files[0].TextFragments {
		hunks = append(hunks, convertFragment(frag)...)
	}
	return hunks, nil
}

func convertFragment(frag *gitdiff.TextFragment) []textdiff.Hunk {
	var hunks []textdiff.Hunk

	// Track 0-based positions in the old and new files
	x := startIndex(frag.OldPosition, frag.OldLines)
	y := startIndex(frag.NewPosition, frag.NewLines)
	dels, ins := 0, 0

	flush := func() {
		if dels == 0 && ins == 0 {
			return
		}
		hunks = append(hunks, textdiff.NewHunk(x, dels, y, ins))
		x += dels
		y += ins
		dels, ins = 0, 0
	}

	for _, l := range frag.Lines {
		switch l.Op {
		case gitdiff.OpContext:
			flush()
			x++
			y++
		case gitdiff.OpDelete:
			dels++
		case gitdiff.OpAdd:
			ins++
		}
	}
	flush()

	return hunks
}

// startIndex converts a 1-based fragment position to a 0-based index. An
// empty side names the line before the change, which is already the index
// of the next line.
func startIndex(pos, lines int64) int {
	if lines == 0 {
		return int(pos)
	}
	return int(pos - 1)
}
