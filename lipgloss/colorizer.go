package lipgloss

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/textdiff"
	"github.com/fwojciec/textdiff/render"
)

// lineKind classifies a line of rendered output.
type lineKind int

const (
	linePlain lineKind = iota
	lineHeader
	lineFileHeader
	lineExpected
	lineActual
	lineContext
)

// ColorizerOption configures a Colorizer.
type ColorizerOption func(*Colorizer)

// WithRenderer sets the lipgloss renderer used to build styles.
func WithRenderer(r *lipgloss.Renderer) ColorizerOption {
	return func(c *Colorizer) {
		c.renderer = r
	}
}

// WithWordDiffer enables highlighting of changed words within paired lines.
func WithWordDiffer(d textdiff.WordDiffer) ColorizerOption {
	return func(c *Colorizer) {
		c.wordDiffer = d
	}
}

// Colorizer adds terminal colors to reports and unified patches.
type Colorizer struct {
	styles     textdiff.Styles
	renderer   *lipgloss.Renderer
	wordDiffer textdiff.WordDiffer
}

// NewColorizer creates a Colorizer using the styles of theme.
func NewColorizer(theme textdiff.Theme, opts ...ColorizerOption) *Colorizer {
	c := &Colorizer{styles: theme.Styles()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Report colors a report produced by textdiff.Differ.Diff. Hunk headers,
// expected lines and student lines each get their own style. When a word
// differ is set, a run of expected lines followed by a run of student lines
// is paired 1:1 and the changed words are highlighted.
func (c *Colorizer) Report(report string) string {
	lines := strings.Split(report, "\n")
	kinds := make([]lineKind, len(lines))
	bodies := make([]string, len(lines))
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, render.ExpectedPrefix), line == strings.TrimSpace(render.ExpectedPrefix):
			kinds[i] = lineExpected
			bodies[i] = strings.TrimPrefix(line, strings.TrimSpace(render.ExpectedPrefix))
		case strings.HasPrefix(line, render.ActualPrefix), line == strings.TrimSpace(render.ActualPrefix):
			kinds[i] = lineActual
			bodies[i] = strings.TrimPrefix(line, strings.TrimSpace(render.ActualPrefix))
		case strings.HasPrefix(line, "Line ") || strings.HasPrefix(line, "Lines "):
			kinds[i] = lineHeader
		}
	}
	return c.colorLines(lines, kinds, bodies)
}

// Unified colors a unified patch: file headers, @@ headers, removed and
// added lines, and context lines. File headers are only recognized before
// the first @@ header of each file.
func (c *Colorizer) Unified(patch string) string {
	lines := strings.Split(patch, "\n")
	kinds := make([]lineKind, len(lines))
	bodies := make([]string, len(lines))
	inHunk := false
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "diff "):
			inHunk = false
		case !inHunk && (strings.HasPrefix(line, "--- ") || strings.HasPrefix(line, "+++ ")):
			kinds[i] = lineFileHeader
		case strings.HasPrefix(line, "@@"):
			inHunk = true
			kinds[i] = lineHeader
		case strings.HasPrefix(line, "-"):
			kinds[i] = lineExpected
			bodies[i] = line[1:]
		case strings.HasPrefix(line, "+"):
			kinds[i] = lineActual
			bodies[i] = line[1:]
		case strings.HasPrefix(line, " "):
			kinds[i] = lineContext
		}
	}
	return c.colorLines(lines, kinds, bodies)
}

func (c *Colorizer) colorLines(lines []string, kinds []lineKind, bodies []string) string {
	segments := c.pairSegments(kinds, bodies)

	out := make([]string, len(lines))
	for i, line := range lines {
		switch kinds[i] {
		case lineHeader:
			out[i] = c.style(c.styles.HunkHeader).Render(line)
		case lineFileHeader:
			out[i] = c.style(c.styles.FileHeader).Render(line)
		case lineContext:
			out[i] = c.style(c.styles.Context).Render(line)
		case lineExpected:
			out[i] = c.changed(line, bodies[i], segments[i], c.styles.Expected, c.styles.ExpectedHighlight)
		case lineActual:
			out[i] = c.changed(line, bodies[i], segments[i], c.styles.Actual, c.styles.ActualHighlight)
		default:
			out[i] = line
		}
	}
	return strings.Join(out, "\n")
}

// changed renders a removed or added line. The marker before body is drawn
// in the prefix style; with segments, changed words use the highlight style.
func (c *Colorizer) changed(line, body string, segs []textdiff.Segment, base, highlight textdiff.ColorPair) string {
	marker := strings.TrimSuffix(line, body)
	var sb strings.Builder
	sb.WriteString(c.style(c.styles.Prefix).Render(marker))
	if segs == nil {
		sb.WriteString(c.style(base).Render(body))
		return sb.String()
	}
	baseStyle := c.style(base)
	highlightStyle := c.style(highlight)
	for _, seg := range segs {
		if seg.Changed {
			sb.WriteString(highlightStyle.Render(seg.Text))
		} else {
			sb.WriteString(baseStyle.Render(seg.Text))
		}
	}
	return sb.String()
}

// pairSegments finds runs of removed lines immediately followed by runs of
// added lines and computes word-level segments for each 1:1 pair. Lines
// without shared content are left out of the result.
func (c *Colorizer) pairSegments(kinds []lineKind, bodies []string) map[int][]textdiff.Segment {
	result := make(map[int][]textdiff.Segment)
	if c.wordDiffer == nil {
		return result
	}

	for i := 0; i < len(kinds); i++ {
		if kinds[i] != lineExpected {
			continue
		}

		delStart, delEnd := i, i
		for delEnd < len(kinds) && kinds[delEnd] == lineExpected {
			delEnd++
		}
		addStart, addEnd := delEnd, delEnd
		for addEnd < len(kinds) && kinds[addEnd] == lineActual {
			addEnd++
		}

		pairs := min(delEnd-delStart, addEnd-addStart)
		for k := 0; k < pairs; k++ {
			del, add := delStart+k, addStart+k
			oldSegs, newSegs := c.wordDiffer.Diff(bodies[del], bodies[add])
			if hasSignificantUnchangedContent(oldSegs) && hasSignificantUnchangedContent(newSegs) {
				result[del] = oldSegs
				result[add] = newSegs
			}
		}

		i = addEnd - 1
	}

	return result
}

// hasSignificantUnchangedContent checks if segments have enough unchanged content
// to make word-level highlighting useful (at least 30% unchanged).
func hasSignificantUnchangedContent(segments []textdiff.Segment) bool {
	var unchangedLen, totalLen int
	for _, seg := range segments {
		totalLen += len(seg.Text)
		if !seg.Changed {
			unchangedLen += len(seg.Text)
		}
	}
	if totalLen == 0 {
		return false
	}
	return float64(unchangedLen)/float64(totalLen) >= 0.30
}

// style creates a lipgloss style from a ColorPair.
// If no renderer is set, the default lipgloss renderer is used.
func (c *Colorizer) style(cp textdiff.ColorPair) lipgloss.Style {
	var style lipgloss.Style
	if c.renderer != nil {
		style = c.renderer.NewStyle()
	} else {
		style = lipgloss.NewStyle()
	}
	style = style.TabWidth(lipgloss.NoTabConversion)
	if cp.Foreground != "" {
		style = style.Foreground(lipgloss.Color(cp.Foreground))
	}
	if cp.Background != "" {
		style = style.Background(lipgloss.Color(cp.Background))
	}
	return style
}
