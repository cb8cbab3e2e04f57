package textdiff

import (
	"regexp"
	"strings"
	"unicode"
)

var lineBreak = regexp.MustCompile(`\r?\n`)

// SplitLines splits s on "\n" or "\r\n". Trailing empty lines are dropped,
// except that the empty string yields a single empty line.
func SplitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	lines := lineBreak.Split(s, -1)
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// JoinLines joins lines with "\n".
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// OrNull dereferences p, substituting the literal text "null" for nil.
func OrNull(p *string) string {
	if p == nil {
		return "null"
	}
	return *p
}

// TrimRight removes trailing whitespace.
func TrimRight(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

// IsMatch reports whether report is the no-differences message.
func IsMatch(report string) bool {
	return strings.TrimSpace(report) == NoDifferencesMessage
}
