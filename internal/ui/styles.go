// Package ui provides the Bubbletea TUI for chaptui.
package ui

import "github.com/charmbracelet/lipgloss"

// Colors used throughout the UI.
var (
	// Primary colors
	ColorPrimary   = lipgloss.Color("#7571F9")
	ColorSecondary = lipgloss.Color("#EE6FF8")
	ColorMuted     = lipgloss.Color("#606060")
	ColorSubtle    = lipgloss.Color("#383838")

	// State colors
	ColorPlaying = lipgloss.Color("#04B575")
	ColorPaused  = lipgloss.Color("#FFA500")

	// Text colors
	ColorText      = lipgloss.Color("#FAFAFA")
	ColorTextMuted = lipgloss.Color("#A0A0A0")
)

// Styles contains all the styles used in the UI.
type Styles struct {
	// Title bar
	Title      lipgloss.Style
	TitleMuted lipgloss.Style

	// Text styles
	Text      lipgloss.Style
	TextMuted lipgloss.Style
	TextBold  lipgloss.Style

	// Status styles
	StatusPlaying lipgloss.Style
	StatusPaused  lipgloss.Style

	// Chapter list
	ChapterActive lipgloss.Style
	ChapterIdle   lipgloss.Style

	// Seek bar styles
	BarFilled   lipgloss.Style
	BarBuffered lipgloss.Style
	BarEmpty    lipgloss.Style
	BarGap      lipgloss.Style
	BarMarker   lipgloss.Style
	Tooltip     lipgloss.Style
}

// DefaultStyles returns the default styles for the UI.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true),

		TitleMuted: lipgloss.NewStyle().
			Foreground(ColorTextMuted),

		Text: lipgloss.NewStyle().
			Foreground(ColorText),

		TextMuted: lipgloss.NewStyle().
			Foreground(ColorTextMuted),

		TextBold: lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true),

		StatusPlaying: lipgloss.NewStyle().
			Foreground(ColorPlaying).
			Bold(true),

		StatusPaused: lipgloss.NewStyle().
			Foreground(ColorPaused).
			Bold(true),

		ChapterActive: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true),

		ChapterIdle: lipgloss.NewStyle().
			Foreground(ColorTextMuted),

		BarFilled: lipgloss.NewStyle().
			Foreground(ColorPrimary),

		BarBuffered: lipgloss.NewStyle().
			Foreground(ColorMuted),

		BarEmpty: lipgloss.NewStyle().
			Foreground(ColorSubtle),

		BarGap: lipgloss.NewStyle().
			Foreground(ColorTextMuted),

		BarMarker: lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true),

		Tooltip: lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorSubtle),
	}
}
