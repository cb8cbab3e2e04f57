// Package lipgloss provides themes and terminal coloring using the Lipgloss styling library.
package lipgloss

import "github.com/fwojciec/textdiff"

// Compile-time interface verification.
var _ textdiff.Theme = (*Theme)(nil)

// Theme implements textdiff.Theme with Lipgloss-compatible colors.
type Theme struct {
	styles textdiff.Styles
}

// Styles returns the color styles for this theme.
func (t *Theme) Styles() textdiff.Styles {
	return t.styles
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// ThemeByName returns LightTheme for "light" and DarkTheme otherwise.
func ThemeByName(name string) *Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}

// DarkTheme returns a theme optimized for dark terminal backgrounds.
func DarkTheme() *Theme {
	return &Theme{
		styles: textdiff.Styles{
			Expected: textdiff.ColorPair{
				Foreground: "#f38ba8", // Red
			},
			Actual: textdiff.ColorPair{
				Foreground: "#a6e3a1", // Green
			},
			Context: textdiff.ColorPair{
				Foreground: "#6c7086", // Muted gray
			},
			HunkHeader: textdiff.ColorPair{
				Foreground: "#89b4fa", // Blue
			},
			FileHeader: textdiff.ColorPair{
				Foreground: "#f9e2af", // Yellow
				Background: "#313244", // Dark surface
			},
			Prefix: textdiff.ColorPair{
				Foreground: "#9399b2",
			},
			ExpectedHighlight: textdiff.ColorPair{
				Foreground: "#1e1e2e", // Dark text on bright background
				Background: "#f38ba8",
			},
			ActualHighlight: textdiff.ColorPair{
				Foreground: "#1e1e2e",
				Background: "#a6e3a1",
			},
		},
	}
}

// LightTheme returns a theme optimized for light terminal backgrounds.
func LightTheme() *Theme {
	return &Theme{
		styles: textdiff.Styles{
			Expected: textdiff.ColorPair{
				Foreground: "#d20f39", // Red
			},
			Actual: textdiff.ColorPair{
				Foreground: "#40a02b", // Green
			},
			Context: textdiff.ColorPair{
				Foreground: "#9ca0b0",
			},
			HunkHeader: textdiff.ColorPair{
				Foreground: "#1e66f5", // Blue
			},
			FileHeader: textdiff.ColorPair{
				Foreground: "#df8e1d", // Yellow
				Background: "#e6e9ef", // Light surface
			},
			Prefix: textdiff.ColorPair{
				Foreground: "#6c6f85",
			},
			ExpectedHighlight: textdiff.ColorPair{
				Foreground: "#ffffff", // White text on dark background
				Background: "#d20f39",
			},
			ActualHighlight: textdiff.ColorPair{
				Foreground: "#ffffff",
				Background: "#40a02b",
			},
		},
	}
}
