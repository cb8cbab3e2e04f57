package mock

import "github.com/fwojciec/textdiff"

// Compile-time interface verification.
var _ textdiff.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of textdiff.Clipboard.
type Clipboard struct {
	CopyFn func(content string) error
}

func (c *Clipboard) Copy(content string) error {
	return c.CopyFn(content)
}
