// Package ui provides the terminal styling and interactive models of the
// typers CLI.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Light Mode Colors (Default)
	LightForeground = lipgloss.Color("#101F38") // Dark Blue
	LightPrimary    = lipgloss.Color("#101F38")
	LightAccent     = lipgloss.Color("#8BC34A") // Lime Green
	LightMuted      = lipgloss.Color("#8a94a6")

	// Dark Mode Colors
	DarkForeground = lipgloss.Color("#f2f2f2")
	DarkPrimary    = lipgloss.Color("#8BC34A") // Lime Green (flipped)
	DarkAccent     = lipgloss.Color("#4db6ac") // Teal
	DarkMuted      = lipgloss.Color("#5c6b84")

	// Semantic Colors (same in both modes)
	Destructive = lipgloss.Color("#e53935")
	Success     = lipgloss.Color("#8BC34A")
	Warning     = lipgloss.Color("#FFC107")
)

// Theme holds the current color scheme
type Theme struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		IsDark:     true,
	}
}

// DetectTheme picks the dark theme when COLORFGBG reports a dark background
// or TYPERS_DARK_MODE=1, and the light theme otherwise.
func DetectTheme() Theme {
	// Format is usually "foreground;background"
	if parts := strings.Split(os.Getenv("COLORFGBG"), ";"); len(parts) == 2 {
		if bg, err := strconv.Atoi(parts[1]); err == nil && ((bg >= 0 && bg <= 6) || bg == 8) {
			return DarkTheme()
		}
	}
	if os.Getenv("TYPERS_DARK_MODE") == "1" {
		return DarkTheme()
	}
	return LightTheme()
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme
	Plain bool

	// Text
	Title lipgloss.Style
	Body  lipgloss.Style
	Muted lipgloss.Style
	Bold  lipgloss.Style

	// Digits
	One  lipgloss.Style
	Zero lipgloss.Style

	// Interactive
	Prompt lipgloss.Style
	Result lipgloss.Style

	// Status
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),
		Body:  lipgloss.NewStyle().Foreground(theme.Foreground),
		Muted: lipgloss.NewStyle().Foreground(theme.Muted),
		Bold:  lipgloss.NewStyle().Foreground(theme.Foreground).Bold(true),

		One:  lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
		Zero: lipgloss.NewStyle().Foreground(theme.Muted),

		Prompt: lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
		Result: lipgloss.NewStyle().Foreground(theme.Primary),

		Success: lipgloss.NewStyle().Foreground(Success).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(Destructive).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(Warning),
	}
}

// PlainStyles renders everything without color or attributes.
func PlainStyles() Styles {
	s := lipgloss.NewStyle()
	return Styles{
		Theme: LightTheme(), Plain: true,
		Title: s, Body: s, Muted: s, Bold: s,
		One: s, Zero: s,
		Prompt: s, Result: s,
		Success: s, Error: s, Warning: s,
	}
}

// DefaultStyles returns styles with auto-detected theme
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// ForColorMode maps the output.color setting (auto, always, never) to styles.
func ForColorMode(mode string) Styles {
	if strings.EqualFold(mode, "never") || os.Getenv("NO_COLOR") != "" {
		return PlainStyles()
	}
	return DefaultStyles()
}

// Digits renders a digit string with ones and zeros styled apart.
func (s Styles) Digits(digits string) string {
	if s.Plain {
		return digits
	}
	var sb strings.Builder
	for _, r := range digits {
		switch r {
		case '1':
			sb.WriteString(s.One.Render("1"))
		case '0':
			sb.WriteString(s.Zero.Render("0"))
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
