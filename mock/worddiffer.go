package mock

import "github.com/fwojciec/textdiff"

// Compile-time interface verification.
var _ textdiff.WordDiffer = (*WordDiffer)(nil)

// WordDiffer is a mock implementation of textdiff.WordDiffer.
type WordDiffer struct {
	DiffFn func(old, new string) (oldSegs, newSegs []textdiff.Segment)
}

func (w *WordDiffer) Diff(old, new string) (oldSegs, newSegs []textdiff.Segment) {
	return w.DiffFn(old, new)
}
