package mock

import "github.com/fwojciec/textdiff"

// Compile-time interface verification.
var _ textdiff.Aligner = (*Aligner)(nil)

// Aligner is a mock implementation of textdiff.Aligner.
type Aligner struct {
	AlignFn func(expected, actual []string) textdiff.Correspondence
}

func (a *Aligner) Align(expected, actual []string) textdiff.Correspondence {
	return a.AlignFn(expected, actual)
}
