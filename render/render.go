// Package render formats hunks and correspondences as text.
package render

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fwojciec/textdiff"
	"github.com/mattn/go-runewidth"
)

// Report body prefixes.
const (
	ExpectedPrefix = "EXPECTED < "
	ActualPrefix   = "STUDENT  > "
)

// SideBySideSeparator divides the two columns of a side-by-side row.
const SideBySideSeparator = "\t|\t"

// ErrMalformedCorrespondence is returned when a correspondence does not fit
// the sequences it is rendered against.
var ErrMalformedCorrespondence = errors.New("malformed correspondence")

// Report renders hunks as a human-readable report quoting the display lines
// of cmp. Line numbers in headers are 1-based. With IgnoreBlankLines, blank
// quoted lines are skipped and a hunk left with no quoted lines is omitted.
// Returns textdiff.NoDifferencesMessage when nothing is reported.
func Report(cmp *textdiff.Comparison, hunks []textdiff.Hunk) string {
	skipBlank := cmp.Flags.Has(textdiff.IgnoreBlankLines)
	var out []string

	for _, h := range hunks {
		var body []string
		for i := h.ExpectedAt; i < h.ExpectedAt+h.ExpectedLen(); i++ {
			line := cmp.Expected.DisplayLine(i)
			if skipBlank && strings.TrimSpace(line) == "" {
				continue
			}
			body = append(body, ExpectedPrefix+line)
		}
		for j := h.ActualAt; j < h.ActualAt+h.ActualLen(); j++ {
			line := cmp.Actual.DisplayLine(j)
			if skipBlank && strings.TrimSpace(line) == "" {
				continue
			}
			body = append(body, ActualPrefix+line)
		}
		if len(body) == 0 {
			continue
		}
		out = append(out, Header(h))
		out = append(out, body...)
	}

	if len(out) == 0 {
		return textdiff.NoDifferencesMessage
	}
	return strings.TrimFunc(strings.Join(out, "\n"), isControlOrSpace)
}

// Header returns the report header for h, including its leading newline.
func Header(h textdiff.Hunk) string {
	dels, ins := h.ExpectedLen(), h.ActualLen()
	x0, y0 := h.ExpectedAt, h.ActualAt
	x1, y1 := x0+dels, y0+ins

	multiple := dels != 1
	xstr := strconv.Itoa(x1)
	if multiple {
		xstr = fmt.Sprintf("%d-%d", x0+1, x1)
	}
	ystr := strconv.Itoa(y1)
	if ins != 1 {
		ystr = fmt.Sprintf("%d-%d", y0+1, y1)
	}
	lines, do := "\nLine ", "does"
	if multiple {
		lines, do = "\nLines ", "do"
	}

	switch h.Kind {
	case textdiff.KindDelete:
		return lines + xstr + " deleted near student line " + strconv.Itoa(y1)
	case textdiff.KindModify:
		if xstr == ystr {
			return lines + xstr + " " + do + " not match"
		}
		return lines + xstr + " changed to student line " + ystr
	default:
		return lines + " added near student line " + ystr
	}
}

// isControlOrSpace matches the characters trimmed from a finished report.
func isControlOrSpace(r rune) bool {
	return r <= ' '
}

// SideBySide renders expected and actual in two columns aligned by corr.
// Each hunk is introduced by a SideBySideHeader line. Every line gets a row
// with the expected column padded to width display cells, and matched lines
// share a row.
func SideBySide(expected, actual []string, corr textdiff.Correspondence, width int) (string, error) {
	if len(corr) != len(actual) {
		return "", fmt.Errorf("%w: %d entries for %d actual lines", ErrMalformedCorrespondence, len(corr), len(actual))
	}
	last := -1
	for j, i := range corr {
		if i == textdiff.Unmatched {
			continue
		}
		if i <= last || i >= len(expected) {
			return "", fmt.Errorf("%w: actual line %d maps to expected line %d", ErrMalformedCorrespondence, j, i)
		}
		last = i
	}

	var b strings.Builder
	row := func(left, right string) {
		b.WriteString(runewidth.FillRight(left, width))
		b.WriteString(SideBySideSeparator)
		b.WriteString(right)
		b.WriteByte('\n')
	}

	i, j := 0, 0
	for _, h := range corr.Hunks(len(expected)) {
		for i < h.ExpectedAt && j < h.ActualAt {
			row(expected[i], actual[j])
			i++
			j++
		}
		b.WriteString(SideBySideHeader(h))
		b.WriteByte('\n')
		dels, ins := h.ExpectedLen(), h.ActualLen()
		for k := 0; k < max(dels, ins); k++ {
			var left, right string
			if k < dels {
				left = expected[i+k]
			}
			if k < ins {
				right = actual[j+k]
			}
			row(left, right)
		}
		i += dels
		j += ins
	}
	for i < len(expected) && j < len(actual) {
		row(expected[i], actual[j])
		i++
		j++
	}

	return b.String(), nil
}

// SideBySideHeader returns "<from> <added|deleted|changed> <to>". A present
// range prints 1-based bounds and an absent one prints its 0-based anchor.
func SideBySideHeader(h textdiff.Hunk) string {
	from := indexString(h.Expected, h.ExpectedAt)
	to := indexString(h.Actual, h.ActualAt)
	switch h.Kind {
	case textdiff.KindModify:
		return from + " changed " + to
	case textdiff.KindAdd:
		return from + " added " + to
	default:
		return from + " deleted " + to
	}
}

func indexString(r *textdiff.Range, at int) string {
	if r == nil {
		return strconv.Itoa(at)
	}
	if r.Start == r.End {
		return strconv.Itoa(r.Start + 1)
	}
	return fmt.Sprintf("%d-%d", r.Start+1, r.End+1)
}

// TabWidth is the column interval of tab stops when measuring lines.
const TabWidth = 4

// Width returns the display width of the widest line, with tabs expanded.
func Width(lines []string) int {
	w := 0
	for _, line := range lines {
		w = max(w, runewidth.StringWidth(ExpandTabs(line)))
	}
	return w
}

// ExpandTabs replaces each tab with spaces up to the next tab stop.
func ExpandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}

	var sb strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			next := (col/TabWidth + 1) * TabWidth
			sb.WriteString(strings.Repeat(" ", next-col))
			col = next
			continue
		}
		sb.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return sb.String()
}
