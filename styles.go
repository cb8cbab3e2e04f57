package textdiff

// ColorPair represents a foreground and background color combination.
// Colors should be hex strings in "#RRGGBB" format (e.g., "#ff0000" for red).
// Empty strings are valid and indicate no color override (use terminal default).
type ColorPair struct {
	Foreground string
	Background string
}

// Styles contains color pairs for all visual elements of a rendered comparison.
type Styles struct {
	Expected          ColorPair // "EXPECTED <" report lines and "-" patch lines
	Actual            ColorPair // "STUDENT  >" report lines and "+" patch lines
	Context           ColorPair // unchanged patch lines
	HunkHeader        ColorPair // report hunk headers and @@ lines
	FileHeader        ColorPair // --- and +++ lines
	Prefix            ColorPair // the "EXPECTED <" / "STUDENT  >" markers
	ExpectedHighlight ColorPair // changed text within expected lines
	ActualHighlight   ColorPair // changed text within actual lines
}

// Theme provides styles for rendering comparisons.
// Different implementations can provide light/dark variants.
type Theme interface {
	Styles() Styles
}
