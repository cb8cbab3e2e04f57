package gitdiff

import (
	"fmt"
	"strings"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
	"github.com/fwojciec/textdiff"
)

// Compile-time interface verification.
var _ textdiff.PatchFormatter = (*Formatter)(nil)

// DefaultContext is the number of context lines around each change.
const DefaultContext = 3

// Formatter writes hunks as a unified patch.
type Formatter struct {
	Context int
}

// NewFormatter creates a Formatter with DefaultContext lines of context.
func NewFormatter() *Formatter {
	return &Formatter{Context: DefaultContext}
}

// Format renders hunks against the display lines of cmp. Hunks separated by
// at most twice the context share a fragment. Each fragment is validated
// before it is written. No hunks yields an empty string.
func (f *Formatter) Format(cmp *textdiff.Comparison, hunks []textdiff.Hunk, oldName, newName string) (string, error) {
	if len(hunks) == 0 {
		return "", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n+++ b/%s\n", oldName, newName)

	for g := 0; g < len(hunks); {
		end := g
		for end+1 < len(hunks) && f.mergeable(hunks[end], hunks[end+1]) {
			end++
		}
		frag := f.fragment(cmp, hunks[g:end+1])
		if err := frag.Validate(); err != nil {
			return "", fmt.Errorf("hunk %d: %w", g, err)
		}
		b.WriteString(frag.String())
		g = end + 1
	}

	return b.String(), nil
}

// mergeable reports whether b follows a closely enough to share its fragment.
// The unchanged gap must be the same length on both sides.
func (f *Formatter) mergeable(a, b textdiff.Hunk) bool {
	gapOld := b.ExpectedAt - (a.ExpectedAt + a.ExpectedLen())
	gapNew := b.ActualAt - (a.ActualAt + a.ActualLen())
	return gapOld == gapNew && gapOld <= 2*f.Context
}

func (f *Formatter) fragment(cmp *textdiff.Comparison, hunks []textdiff.Hunk) *gitdiff.TextFragment {
	n, m := len(cmp.Expected.Lines), len(cmp.Actual.Lines)
	first := hunks[0]
	lead := min(f.Context, first.ExpectedAt, first.ActualAt)
	x, y := first.ExpectedAt-lead, first.ActualAt-lead
	oldStart, newStart := x, y

	frag := &gitdiff.TextFragment{}
	add := func(op gitdiff.LineOp, text string) {
		frag.Lines = append(frag.Lines, gitdiff.Line{Op: op, Line: text + "\n"})
	}
	context := func() {
		add(gitdiff.OpContext, cmp.Expected.DisplayLine(x))
		x++
		y++
	}

	for _, h := range hunks {
		for x < h.ExpectedAt {
			context()
		}
		for k := 0; k < h.ExpectedLen(); k++ {
			add(gitdiff.OpDelete, cmp.Expected.DisplayLine(x))
			x++
		}
		for k := 0; k < h.ActualLen(); k++ {
			add(gitdiff.OpAdd, cmp.Actual.DisplayLine(y))
			y++
		}
	}
	for trail := min(f.Context, n-x, m-y); trail > 0; trail-- {
		context()
	}

	count(frag)
	frag.OldPosition = position(oldStart, frag.OldLines)
	frag.NewPosition = position(newStart, frag.NewLines)
	return frag
}

// count fills in the line totals of frag from its lines.
func count(frag *gitdiff.TextFragment) {
	for _, l := range frag.Lines {
		switch l.Op {
		case gitdiff.OpContext:
			frag.OldLines++
			frag.NewLines++
			if frag.LinesAdded == 0 && frag.LinesDeleted == 0 {
				frag.LeadingContext++
			} else {
				frag.TrailingContext++
			}
		case gitdiff.OpAdd:
			frag.NewLines++
			frag.LinesAdded++
			frag.TrailingContext = 0
		case gitdiff.OpDelete:
			frag.OldLines++
			frag.LinesDeleted++
			frag.TrailingContext = 0
		}
	}
}

// position converts a 0-based start index to a 1-based fragment position.
func position(start int, lines int64) int64 {
	if lines == 0 {
		return int64(start)
	}
	return int64(start + 1)
}
