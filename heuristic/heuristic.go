// Package heuristic aligns two line sequences with a greedy nearest-match
// search and classifies the result into hunks.
package heuristic

import (
	"sort"

	"github.com/fwojciec/textdiff"
)

// Compile-time interface verification.
var _ textdiff.Matcher = (*Matcher)(nil)

// action tags one line of the walk.
type action byte

const (
	actionCopy action = iota
	actionDelete
	actionInsert
)

// reverseIndex maps line content to the ascending positions where it occurs.
// Blank lines are never indexed so they cannot serve as realignment anchors.
type reverseIndex map[string][]int

func newReverseIndex(lines []string) reverseIndex {
	idx := make(reverseIndex)
	for i, line := range lines {
		if len(line) > 0 {
			idx[line] = append(idx[line], i)
		}
	}
	return idx
}

// next returns the first position of line at or after from.
func (r reverseIndex) next(line string, from int) (int, bool) {
	pos := r[line]
	k := sort.SearchInts(pos, from)
	if k == len(pos) {
		return 0, false
	}
	return pos[k], true
}

// walker holds the cursor pair of the greedy walk.
type walker struct {
	left, right []string
	revLeft     reverseIndex
	revRight    reverseIndex
	i, j        int
	actions     []action
}

func newWalker(left, right []string) *walker {
	return &walker{
		left:     left,
		right:    right,
		revLeft:  newReverseIndex(left),
		revRight: newReverseIndex(right),
		actions:  make([]action, 0, max(len(left), len(right))),
	}
}

// walk produces the action stream. Trailing right lines are emitted only
// when IgnoreTrailing is set.
func (w *walker) walk(flags textdiff.Flags) []action {
	for w.i < len(w.left) && w.j < len(w.right) {
		if w.left[w.i] == w.right[w.j] {
			w.emit(actionCopy)
			w.i++
			w.j++
			continue
		}
		best1, best2 := w.realign()
		for w.i < best1 {
			w.emit(actionDelete)
			w.i++
		}
		for w.j < best2 {
			w.emit(actionInsert)
			w.j++
		}
	}
	for w.i < len(w.left) {
		w.emit(actionDelete)
		w.i++
	}
	if flags.Has(textdiff.IgnoreTrailing) {
		for w.j < len(w.right) {
			w.emit(actionInsert)
			w.j++
		}
	}
	return w.actions
}

func (w *walker) emit(a action) {
	w.actions = append(w.actions, a)
}

// realign expands a diagonal frontier from the cursors and returns the
// nearest pair of positions where the sequences line up again. At equal
// distance a right line found in left wins over a left line found in right.
// With no anchor in reach it returns the ends of both sequences.
func (w *walker) realign() (best1, best2 int) {
	best1, best2 = len(w.left), len(w.right)
	for sub1, sub2 := w.i, w.j; sub1+sub2 < best1+best2; sub1, sub2 = sub1+1, sub2+1 {
		if sub2 < len(w.right) {
			if d, ok := w.revLeft.next(w.right[sub2], sub1); ok && d+sub2 < best1+best2 {
				best1, best2 = d, sub2
			}
		}
		if sub1 < len(w.left) {
			if d, ok := w.revRight.next(w.left[sub1], sub2); ok && sub1+d < best1+best2 {
				best1, best2 = sub1, d
			}
		}
	}
	return best1, best2
}

// coalesce merges each run of deletes and inserts between copies into one
// hunk. With IgnoreLeading an Add hunk before any expected line is dropped.
func coalesce(actions []action, flags textdiff.Flags) []textdiff.Hunk {
	var hunks []textdiff.Hunk
	x, y := 0, 0
	dels, ins := 0, 0

	flush := func() {
		if dels == 0 && ins == 0 {
			return
		}
		h := textdiff.NewHunk(x, dels, y, ins)
		if !(flags.Has(textdiff.IgnoreLeading) && h.Kind == textdiff.KindAdd && x == 0) {
			hunks = append(hunks, h)
		}
		x += dels
		y += ins
		dels, ins = 0, 0
	}

	for _, a := range actions {
		switch a {
		case actionDelete:
			dels++
		case actionInsert:
			ins++
		case actionCopy:
			flush()
			x++
			y++
		}
	}
	flush()

	return hunks
}

// Matcher implements textdiff.Matcher. It holds no state and is safe for
// concurrent use.
type Matcher struct{}

// NewMatcher creates a new Matcher.
func NewMatcher() *Matcher {
	return &Matcher{}
}

// Match aligns expected against actual and returns the hunks in document
// order.
func (m *Matcher) Match(expected, actual []string, flags textdiff.Flags) []textdiff.Hunk {
	return coalesce(newWalker(expected, actual).walk(flags), flags)
}
