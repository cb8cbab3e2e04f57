// Package textdiff provides domain types for comparing expected and actual
// text under a configurable normalization pipeline.
package textdiff

import (
	"context"
	"fmt"
	"io"
)

// NoDifferencesMessage is the report returned when two texts compare equal.
const NoDifferencesMessage = "No differences found"

// Kind classifies a Hunk.
type Kind int

// Hunk kinds.
const (
	KindDelete Kind = iota
	KindAdd
	KindModify
)

// String returns the upper-case name used in hunk descriptions.
func (k Kind) String() string {
	switch k {
	case KindDelete:
		return "DELETE"
	case KindAdd:
		return "ADD"
	case KindModify:
		return "MODIFY"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case KindDelete, KindAdd, KindModify:
		return []byte(k.String()), nil
	}
	return nil, fmt.Errorf("invalid hunk kind %d", int(k))
}

// UnmarshalText decodes a kind name as written by MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	for _, kind := range []Kind{KindDelete, KindAdd, KindModify} {
		if string(text) == kind.String() {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown hunk kind %q", text)
}

// Range is an inclusive, 0-based pair of line indexes.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of lines covered by the range.
func (r Range) Len() int {
	return r.End - r.Start + 1
}

// Hunk is a contiguous region of difference between two line sequences.
type Hunk struct {
	Kind     Kind   `json:"kind"`
	Expected *Range `json:"expected"` // nil for a pure Add
	Actual   *Range `json:"actual"`   // nil for a pure Delete

	// ExpectedAt and ActualAt are the 0-based positions where the hunk
	// begins in each sequence. For an absent side they mark the insertion
	// point.
	ExpectedAt int `json:"expected_at"`
	ActualAt   int `json:"actual_at"`
}

// NewHunk builds a hunk from the number of expected and actual lines it
// spans, starting at the given positions. The kind follows from the counts.
func NewHunk(expectedAt, expectedCount, actualAt, actualCount int) Hunk {
	h := Hunk{ExpectedAt: expectedAt, ActualAt: actualAt}
	if expectedCount > 0 {
		h.Expected = &Range{Start: expectedAt, End: expectedAt + expectedCount - 1}
	}
	if actualCount > 0 {
		h.Actual = &Range{Start: actualAt, End: actualAt + actualCount - 1}
	}
	switch {
	case h.Expected != nil && h.Actual != nil:
		h.Kind = KindModify
	case h.Expected != nil:
		h.Kind = KindDelete
	default:
		h.Kind = KindAdd
	}
	return h
}

// ExpectedLen returns the number of expected lines in the hunk.
func (h Hunk) ExpectedLen() int {
	if h.Expected == nil {
		return 0
	}
	return h.Expected.Len()
}

// ActualLen returns the number of actual lines in the hunk.
func (h Hunk) ActualLen() int {
	if h.Actual == nil {
		return 0
	}
	return h.Actual.Len()
}

// String describes the hunk as "type=MODIFY exp=1 act=1".
func (h Hunk) String() string {
	return "type=" + h.Kind.String() + " exp=" + rangeString(h.Expected, h.ExpectedAt) + " act=" + rangeString(h.Actual, h.ActualAt)
}

// rangeString prints an absent range as its anchor position.
func rangeString(r *Range, at int) string {
	if r == nil {
		return fmt.Sprint(at)
	}
	if r.End > r.Start {
		return fmt.Sprintf("%d-%d", r.Start, r.End)
	}
	return fmt.Sprint(r.Start)
}

// Sequence holds one side of a comparison: the untouched lines used for
// display, and the normalized lines used for matching.
type Sequence struct {
	Text    string   // normalized blob, before per-line whitespace removal
	Lines   []string // comparison copy
	Display []string // original lines
}

// DisplayLine returns the original line at i, or "" when i is out of range.
// Normalization can change the number of lines, so callers quoting display
// text by comparison index go through here.
func (s Sequence) DisplayLine(i int) string {
	if i < 0 || i >= len(s.Display) {
		return ""
	}
	return s.Display[i]
}

// Comparison is the output of normalization: both sides plus the flags used.
type Comparison struct {
	Expected Sequence
	Actual   Sequence
	Flags    Flags
}

// Equal reports whether the normalized blobs match once trailing whitespace
// is ignored. When true no alignment is needed.
func (c *Comparison) Equal() bool {
	return TrimRight(c.Expected.Text) == TrimRight(c.Actual.Text)
}

// Normalizer applies the flag-selected transforms to both inputs.
type Normalizer interface {
	Normalize(expected, actual string, flags Flags) *Comparison
}

// Matcher aligns normalized line sequences into hunks.
type Matcher interface {
	Match(expected, actual []string, flags Flags) []Hunk
}

// Aligner computes a line correspondence for side-by-side rendering.
type Aligner interface {
	Align(expected, actual []string) Correspondence
}

// Differ compares expected and actual text.
type Differ interface {
	// DiffAsList returns the hunks in document order, or none when the
	// texts compare equal under flags.
	DiffAsList(expected, actual string, flags Flags) []Hunk
	// Diff returns a human-readable report, or NoDifferencesMessage.
	Diff(expected, actual string, flags Flags) string
	// SideBySide renders both texts in two columns separated by "\t|\t".
	SideBySide(expected, actual string, width int) string
	// Pass reports whether Diff would find no differences.
	Pass(expected, actual string, flags Flags) bool
	// Compare returns the normalized comparison along with its hunks.
	Compare(expected, actual string, flags Flags) (*Comparison, []Hunk)
}

// PatchFormatter renders hunks as a unified patch.
type PatchFormatter interface {
	Format(cmp *Comparison, hunks []Hunk, oldName, newName string) (string, error)
}

// PatchParser reads hunks back from a unified patch.
type PatchParser interface {
	Parse(r io.Reader) ([]Hunk, error)
}

// Segment represents a portion of text within a line for word-level diffing.
type Segment struct {
	Text    string // The text content of this segment
	Changed bool   // True if this segment differs between old/new versions
}

// WordDiffer computes word-level differences between two strings.
type WordDiffer interface {
	// Diff returns segments for both the old and new strings,
	// marking which portions changed between them.
	Diff(old, new string) (oldSegs, newSegs []Segment)
}

// GitRunner reads file contents from a git repository.
type GitRunner interface {
	// ShowFile returns the content of path at revision rev.
	ShowFile(ctx context.Context, repoPath, rev, path string) (string, error)
}

// TextSource reads the texts to compare.
type TextSource interface {
	// ReadText returns the content named by path; "-" names stdin.
	ReadText(path string) (string, error)
}

// Clipboard provides copy-to-clipboard functionality.
type Clipboard interface {
	Copy(content string) error
}
