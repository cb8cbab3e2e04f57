// Package normalize applies flag-selected text transforms to both sides of a
// comparison before alignment.
package normalize

import (
	"regexp"
	"slices"
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/fwojciec/textdiff"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Compile-time interface verification.
var _ textdiff.Normalizer = (*Normalizer)(nil)

// NumberPlaceholder replaces every digit run under IgnoreNumbers.
const NumberPlaceholder = "###"

var (
	digitsRE       = regexp.MustCompile(`[0-9]+`)
	nonDigitsRE    = regexp.MustCompile(`[^0-9\n]+`)
	punctuationRE  = regexp.MustCompile(`[.,?!'"()/#$%@^&*_\[\]{}|<>:;-]+`)
	afterDecimalRE = regexp.MustCompile(`\.[0-9]+`)
	whitespaceRE   = regexp.MustCompile(`[ \r\n\t\f]+`)
)

// blobTransform rewrites a whole text blob. The blob is re-split into lines
// after each one runs.
type blobTransform struct {
	flag  textdiff.Flags
	apply func(string) string
}

// Order matters: later transforms see the output of earlier ones.
var blobTransforms = []blobTransform{
	{textdiff.IgnoreNumbers, func(s string) string { return digitsRE.ReplaceAllLiteralString(s, NumberPlaceholder) }},
	{textdiff.IgnoreNonNumbers, func(s string) string { return nonDigitsRE.ReplaceAllLiteralString(s, " ") }},
	{textdiff.IgnorePunctuation, func(s string) string { return punctuationRE.ReplaceAllLiteralString(s, "") }},
	{textdiff.IgnoreAfterDecimal, func(s string) string { return afterDecimalRE.ReplaceAllLiteralString(s, ".#") }},
	{textdiff.IgnoreCase, lower},
}

// Normalizer implements textdiff.Normalizer. It holds no state and is safe
// for concurrent use.
type Normalizer struct{}

// NewNormalizer creates a new Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize builds the display and comparison sequences for both inputs.
func (n *Normalizer) Normalize(expected, actual string, flags textdiff.Flags) *textdiff.Comparison {
	return &textdiff.Comparison{
		Expected: Sequence(expected, flags),
		Actual:   Sequence(actual, flags),
		Flags:    flags,
	}
}

// Sequence normalizes a single text blob.
func Sequence(text string, flags textdiff.Flags) textdiff.Sequence {
	display := textdiff.SplitLines(text)
	blob := text
	lines := display

	for _, t := range blobTransforms {
		if flags.Has(t.flag) {
			blob = t.apply(blob)
			lines = textdiff.SplitLines(blob)
		}
	}

	if flags.Has(textdiff.IgnoreCharOrder) {
		sorted := make([]string, len(lines))
		for i, line := range lines {
			sorted[i] = SortGraphemes(line)
		}
		lines = sorted
		blob = textdiff.JoinLines(lines)
	}

	if flags.Has(textdiff.IgnoreLineOrder) {
		lines = slices.Clone(lines)
		slices.Sort(lines)
		blob = textdiff.JoinLines(lines)
	}

	// Per line only; the blob keeps its whitespace.
	if flags.Has(textdiff.IgnoreWhitespace) {
		stripped := make([]string, len(lines))
		for i, line := range lines {
			stripped[i] = whitespaceRE.ReplaceAllLiteralString(line, "")
		}
		lines = stripped
	}

	return textdiff.Sequence{Text: blob, Lines: lines, Display: display}
}

// SortGraphemes returns line with its grapheme clusters in ascending order.
func SortGraphemes(line string) string {
	var clusters []string
	iter := graphemes.FromString(line)
	for iter.Next() {
		clusters = append(clusters, iter.Value())
	}
	slices.Sort(clusters)
	return strings.Join(clusters, "")
}

// A Caser is stateful, so each call gets its own.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
