package heuristic

import "github.com/fwojciec/textdiff"

// Actions returns the walk as a string of 'C', 'D' and 'I' tags.
func Actions(left, right []string, flags textdiff.Flags) string {
	acts := newWalker(left, right).walk(flags)
	b := make([]byte, len(acts))
	for k, a := range acts {
		b[k] = "CDI"[a]
	}
	return string(b)
}
