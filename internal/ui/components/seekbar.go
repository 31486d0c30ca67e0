// Package components provides UI components for chaptui.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"chaptui/internal/session"
	"chaptui/internal/timeline"
)

// cellClass classifies one bar cell for styling.
type cellClass int

const (
	cellEmpty cellClass = iota
	cellBuffered
	cellFilled
	cellGap
	cellMarker
)

// SeekBar renders a chapter-ruled seek bar: progress fill over the
// buffered range, chapter boundaries as ruled gaps, and a hover marker
// with a time/chapter tooltip.
type SeekBar struct {
	width int

	FilledChar   rune
	BufferedChar rune
	EmptyChar    rune
	GapChar      rune
	MarkerChar   rune

	FilledStyle   lipgloss.Style
	BufferedStyle lipgloss.Style
	EmptyStyle    lipgloss.Style
	GapStyle      lipgloss.Style
	MarkerStyle   lipgloss.Style
	TooltipStyle  lipgloss.Style
}

// NewSeekBar creates a seek bar with default styling.
func NewSeekBar() SeekBar {
	return SeekBar{
		width:        40,
		FilledChar:   '█', // Full block
		BufferedChar: '▒', // Medium shade
		EmptyChar:    '░', // Light shade
		GapChar:      '|',
		MarkerChar:   '┃', // Heavy vertical

		FilledStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#7571F9")),
		BufferedStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#606060")),
		EmptyStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#383838")),
		GapStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color("#A0A0A0")),
		MarkerStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#EE6FF8")).Bold(true),
		TooltipStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Background(lipgloss.Color("#383838")),
	}
}

// SetWidth sets the bar width in cells.
func (b *SeekBar) SetWidth(width int) {
	if width < 10 {
		width = 10
	}
	b.width = width
}

// Width returns the bar width in cells.
func (b SeekBar) Width() int {
	return b.width
}

// percentToCell maps a [0,100] percentage to a cell index in [0,width).
func (b SeekBar) percentToCell(percent float64) int {
	idx := int(percent / 100 * float64(b.width))
	if idx < 0 {
		idx = 0
	}
	if idx > b.width-1 {
		idx = b.width - 1
	}
	return idx
}

// View renders the bar line for one snapshot.
func (b SeekBar) View(snap session.Snapshot) string {
	cells := make([]cellClass, b.width)

	buffered := int(snap.BufferedPercent / 100 * float64(b.width))
	filled := int(snap.ProgressPercent / 100 * float64(b.width))
	for i := range cells {
		switch {
		case i < filled:
			cells[i] = cellFilled
		case i < buffered:
			cells[i] = cellBuffered
		default:
			cells[i] = cellEmpty
		}
	}

	// Rule the chapter boundaries. The first segment starts the bar, so
	// only interior boundaries get a gap cell.
	for i, seg := range snap.Segments {
		if i == 0 {
			continue
		}
		if idx := b.percentToCell(seg.Left); idx > 0 {
			cells[idx] = cellGap
		}
	}

	if snap.Hover != nil {
		cells[b.percentToCell(snap.Hover.Percent)] = cellMarker
	}

	// Render runs of equal class in one style call each.
	var out strings.Builder
	runStart := 0
	for i := 1; i <= len(cells); i++ {
		if i < len(cells) && cells[i] == cells[runStart] {
			continue
		}
		out.WriteString(b.renderRun(cells[runStart], i-runStart))
		runStart = i
	}
	return out.String()
}

func (b SeekBar) renderRun(class cellClass, n int) string {
	var ch rune
	var style lipgloss.Style
	switch class {
	case cellFilled:
		ch, style = b.FilledChar, b.FilledStyle
	case cellBuffered:
		ch, style = b.BufferedChar, b.BufferedStyle
	case cellGap:
		ch, style = b.GapChar, b.GapStyle
	case cellMarker:
		ch, style = b.MarkerChar, b.MarkerStyle
	default:
		ch, style = b.EmptyChar, b.EmptyStyle
	}
	return style.Render(strings.Repeat(string(ch), n))
}

// TooltipView renders the hover tooltip line positioned over the hover
// point, or an empty string when nothing is hovered.
func (b SeekBar) TooltipView(snap session.Snapshot) string {
	if snap.Hover == nil {
		return ""
	}

	label := timeline.FormatTime(snap.Hover.Time)
	if snap.Hover.ChapterIndex >= 0 && snap.Hover.Chapter.Title != "" {
		label += " " + snap.Hover.Chapter.Title
	}
	label = " " + label + " "

	pos := b.percentToCell(snap.Hover.Percent) - lipgloss.Width(label)/2
	if pos < 0 {
		pos = 0
	}
	if pos > b.width-lipgloss.Width(label) {
		pos = b.width - lipgloss.Width(label)
		if pos < 0 {
			pos = 0
		}
	}

	return strings.Repeat(" ", pos) + b.TooltipStyle.Render(label)
}
