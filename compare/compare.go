// Package compare wires normalization, alignment and rendering into the
// textdiff.Differ operations.
package compare

import (
	"fmt"

	"github.com/fwojciec/textdiff"
	"github.com/fwojciec/textdiff/heuristic"
	"github.com/fwojciec/textdiff/lcs"
	"github.com/fwojciec/textdiff/normalize"
	"github.com/fwojciec/textdiff/render"
)

// Compile-time interface verification.
var _ textdiff.Differ = (*Differ)(nil)

// Differ implements textdiff.Differ. It is safe for concurrent use as long
// as its collaborators are.
type Differ struct {
	Normalizer textdiff.Normalizer
	Matcher    textdiff.Matcher
	Aligner    textdiff.Aligner
}

// NewDiffer creates a Differ using the default engines.
func NewDiffer() *Differ {
	return &Differ{
		Normalizer: normalize.NewNormalizer(),
		Matcher:    heuristic.NewMatcher(),
		Aligner:    lcs.NewEngine(),
	}
}

// Compare normalizes both texts and, unless they compare equal, aligns
// them. Hunks are nil when the texts are equal under flags.
func (d *Differ) Compare(expected, actual string, flags textdiff.Flags) (*textdiff.Comparison, []textdiff.Hunk) {
	cmp := d.Normalizer.Normalize(expected, actual, flags)
	if cmp.Equal() {
		return cmp, nil
	}
	return cmp, d.Matcher.Match(cmp.Expected.Lines, cmp.Actual.Lines, flags)
}

// DiffAsList returns the hunks between expected and actual.
func (d *Differ) DiffAsList(expected, actual string, flags textdiff.Flags) []textdiff.Hunk {
	_, hunks := d.Compare(expected, actual, flags)
	return hunks
}

// Diff returns the report for expected against actual.
func (d *Differ) Diff(expected, actual string, flags textdiff.Flags) string {
	return render.Report(d.Compare(expected, actual, flags))
}

// Pass reports whether Diff finds no differences.
func (d *Differ) Pass(expected, actual string, flags textdiff.Flags) bool {
	return textdiff.IsMatch(d.Diff(expected, actual, flags))
}

// SideBySide aligns the raw lines of both texts and renders them in two
// columns. A width of zero or less uses the widest expected line. Any
// failure, including a panic in the aligner, is returned as text.
func (d *Differ) SideBySide(expected, actual string, width int) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = describe(r)
		}
	}()

	exp := textdiff.SplitLines(expected)
	act := textdiff.SplitLines(actual)
	if width <= 0 {
		width = render.Width(exp)
	}

	out, err := render.SideBySide(exp, act, d.Aligner.Align(exp, act), width)
	if err != nil {
		return describe(err)
	}
	return out
}

// describe converts a failure into the text returned by SideBySide.
func describe(v any) string {
	if err, ok := v.(error); ok {
		return "Exception thrown: " + err.Error()
	}
	return fmt.Sprintf("Error thrown: %v", v)
}
