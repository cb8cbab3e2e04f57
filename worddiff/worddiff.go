// Package worddiff computes intraline differences with sergi/go-diff.
package worddiff

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fwojciec/textdiff"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Compile-time interface verification.
var _ textdiff.WordDiffer = (*Differ)(nil)

// similarityThreshold is the minimum ratio for word-level diffing.
// Below this threshold, lines are treated as complete replacements.
const similarityThreshold = 0.4

// Differ tokenizes strings and computes word-level diffs.
type Differ struct{}

// NewDiffer creates a new Differ instance.
func NewDiffer() *Differ {
	return &Differ{}
}

// Tokenize splits a string into word runs (letters, digits and underscore),
// whitespace runs, and single other characters.
func (d *Differ) Tokenize(s string) []string {
	if len(s) == 0 {
		return nil
	}

	tokens := make([]string, 0, len(s)/3+1)
	for i := 0; i < len(s); {
		start := i
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size

		var class func(rune) bool
		switch {
		case isWord(r):
			class = isWord
		case unicode.IsSpace(r):
			class = unicode.IsSpace
		}
		for class != nil && i < len(s) {
			next, size := utf8.DecodeRuneInString(s[i:])
			if !class(next) {
				break
			}
			i += size
		}
		tokens = append(tokens, s[start:i])
	}

	return tokens
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Diff returns segments for both the old and new strings,
// marking which portions changed between them.
func (d *Differ) Diff(old, new string) (oldSegs, newSegs []textdiff.Segment) {
	if old == "" && new == "" {
		return nil, nil
	}
	if old == "" {
		return nil, []textdiff.Segment{{Text: new, Changed: true}}
	}
	if new == "" {
		return []textdiff.Segment{{Text: old, Changed: true}}, nil
	}
	if old == new {
		seg := textdiff.Segment{Text: old, Changed: false}
		return []textdiff.Segment{seg}, []textdiff.Segment{seg}
	}

	oldTokens := d.Tokenize(old)
	newTokens := d.Tokenize(new)

	if !hasSufficientSimilarity(oldTokens, newTokens) {
		return []textdiff.Segment{{Text: old, Changed: true}},
			[]textdiff.Segment{{Text: new, Changed: true}}
	}

	// Each distinct token maps to one rune so diffmatchpatch works per token.
	enc := newEncoder()
	a, b := enc.encode(oldTokens), enc.encode(newTokens)
	diffs := diffmatchpatch.New().DiffMainRunes(a, b, false)

	var oldB, newB segmentBuilder
	for _, diff := range diffs {
		text := enc.decode(diff.Text)
		switch diff.Type {
		case diffmatchpatch.DiffEqual:
			oldB.add(text, false)
			newB.add(text, false)
		case diffmatchpatch.DiffDelete:
			oldB.add(text, true)
		case diffmatchpatch.DiffInsert:
			newB.add(text, true)
		}
	}

	return oldB.finish(), newB.finish()
}

// hasSufficientSimilarity checks if tokens have enough overlap to warrant word-level diff.
// Uses a simple count of common tokens as an upper bound estimate.
func hasSufficientSimilarity(oldTokens, newTokens []string) bool {
	oldLen, newLen := len(oldTokens), len(newTokens)
	if oldLen == 0 || newLen == 0 {
		return false
	}

	counts := make(map[string]int, oldLen)
	for _, t := range oldTokens {
		counts[t]++
	}

	common := 0
	for _, t := range newTokens {
		if counts[t] > 0 {
			counts[t]--
			common++
		}
	}

	// Ratio = 2.0 * common / (len(old) + len(new))
	total := oldLen + newLen
	return float64(2*common)/float64(total) >= similarityThreshold
}

// encoder assigns a rune to each distinct token, skipping the surrogate
// range so the runes survive conversion to string.
type encoder struct {
	ids    map[string]rune
	tokens map[rune]string
}

func newEncoder() *encoder {
	return &encoder{ids: make(map[string]rune), tokens: make(map[rune]string)}
}

func (e *encoder) encode(tokens []string) []rune {
	runes := make([]rune, len(tokens))
	for i, t := range tokens {
		id, ok := e.ids[t]
		if !ok {
			id = rune(len(e.ids) + 1)
			if id >= 0xD800 {
				id += 0x800
			}
			e.ids[t] = id
			e.tokens[id] = t
		}
		runes[i] = id
	}
	return runes
}

func (e *encoder) decode(s string) string {
	var b strings.Builder
	for _, r := range s {
		b.WriteString(e.tokens[r])
	}
	return b.String()
}

// segmentBuilder merges adjacent text of the same status into one segment.
type segmentBuilder struct {
	segs []textdiff.Segment
}

func (sb *segmentBuilder) add(text string, changed bool) {
	if text == "" {
		return
	}
	if n := len(sb.segs); n > 0 && sb.segs[n-1].Changed == changed {
		sb.segs[n-1].Text += text
		return
	}
	sb.segs = append(sb.segs, textdiff.Segment{Text: text, Changed: changed})
}

func (sb *segmentBuilder) finish() []textdiff.Segment {
	return sb.segs
}
