package mock

import "github.com/fwojciec/textdiff"

// Compile-time interface verification.
var _ textdiff.TextSource = (*TextSource)(nil)

// TextSource is a mock implementation of textdiff.TextSource.
type TextSource struct {
	ReadTextFn func(path string) (string, error)
}

func (s *TextSource) ReadText(path string) (string, error) {
	return s.ReadTextFn(path)
}
