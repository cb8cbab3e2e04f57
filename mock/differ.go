// Package mock provides test doubles for textdiff interfaces.
package mock

import (
	"io"

	"github.com/fwojciec/textdiff"
)

// Compile-time interface verification.
var (
	_ textdiff.Differ         = (*Differ)(nil)
	_ textdiff.PatchFormatter = (*PatchFormatter)(nil)
	_ textdiff.PatchParser    = (*PatchParser)(nil)
)

// Differ is a mock implementation of textdiff.Differ.
type Differ struct {
	DiffAsListFn func(expected, actual string, flags textdiff.Flags) []textdiff.Hunk
	DiffFn       func(expected, actual string, flags textdiff.Flags) string
	SideBySideFn func(expected, actual string, width int) string
	PassFn       func(expected, actual string, flags textdiff.Flags) bool
	CompareFn    func(expected, actual string, flags textdiff.Flags) (*textdiff.Comparison, []textdiff.Hunk)
}

func (d *Differ) DiffAsList(expected, actual string, flags textdiff.Flags) []textdiff.Hunk {
	return d.DiffAsListFn(expected, actual, flags)
}

func (d *Differ) Diff(expected, actual string, flags textdiff.Flags) string {
	return d.DiffFn(expected, actual, flags)
}

func (d *Differ) SideBySide(expected, actual string, width int) string {
	return d.SideBySideFn(expected, actual, width)
}

func (d *Differ) Pass(expected, actual string, flags textdiff.Flags) bool {
	return d.PassFn(expected, actual, flags)
}

func (d *Differ) Compare(expected, actual string, flags textdiff.Flags) (*textdiff.Comparison, []textdiff.Hunk) {
	return d.CompareFn(expected, actual, flags)
}

// PatchFormatter is a mock implementation of textdiff.PatchFormatter.
type PatchFormatter struct {
	FormatFn func(cmp *textdiff.Comparison, hunks []textdiff.Hunk, oldName, newName string) (string, error)
}

func (p *PatchFormatter) Format(cmp *textdiff.Comparison, hunks []textdiff.Hunk, oldName, newName string) (string, error) {
	return p.FormatFn(cmp, hunks, oldName, newName)
}

// PatchParser is a mock implementation of textdiff.PatchParser.
type PatchParser struct {
	ParseFn func(r io.Reader) ([]textdiff.Hunk, error)
}

func (p *PatchParser) Parse(r io.Reader) ([]textdiff.Hunk, error) {
	return p.ParseFn(r)
}
