package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"chaptui/internal/session"
	"chaptui/internal/timeline"
)

const (
	minWidth  = 40
	minHeight = 8
)

// View renders the entire UI from one snapshot per update cycle.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width < minWidth || m.height < minHeight {
		return m.styles.TextMuted.Render(fmt.Sprintf(
			"Terminal too small\nNeed at least %dx%d", minWidth, minHeight))
	}

	snap := m.session.Compose(m.controller.State())

	header := m.renderHeader(snap)
	bodyHeight := m.height - 1 - controlsHeight
	body := m.renderBody(snap, bodyHeight)
	controls := m.renderControls(snap)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, controls)
}

// renderHeader renders the title row with the active chapter.
func (m Model) renderHeader(snap session.Snapshot) string {
	title := m.title
	if title == "" {
		title = "(untitled stream)"
	}
	out := m.styles.Title.Render(title)
	if snap.ActiveChapterIndex >= 0 {
		out += m.styles.TitleMuted.Render(" · " + snap.ActiveChapter.Title)
	}
	return out
}

// renderBody renders the chapter list, active chapter highlighted, with
// the poster reference as inert metadata.
func (m Model) renderBody(snap session.Snapshot, height int) string {
	var b strings.Builder

	avail := height
	if m.thumbnail != "" {
		b.WriteString(m.styles.TextMuted.Render("poster: " + m.thumbnail))
		b.WriteString("\n\n")
		avail -= 2
	}

	chs := m.session.Index().Chapters()
	if len(chs) == 0 {
		b.WriteString(m.styles.TextMuted.Render("No chapters"))
	}
	for i, ch := range chs {
		if i >= avail {
			break
		}
		line := fmt.Sprintf("%8s  %s", timeline.FormatTime(ch.Start), ch.Title)
		if i == snap.ActiveChapterIndex {
			line = m.styles.ChapterActive.Render("▸" + line[1:])
		} else {
			line = m.styles.ChapterIdle.Render(line)
		}
		b.WriteString(line)
		if i < len(chs)-1 {
			b.WriteString("\n")
		}
	}

	return lipgloss.NewStyle().Height(height).Render(b.String())
}

// renderControls renders the bottom overlay: tooltip, seek bar, status,
// and help. Hidden controls render as blank rows so the bar row keeps a
// stable position for mouse hit testing.
func (m Model) renderControls(snap session.Snapshot) string {
	if !snap.ControlsVisible {
		return strings.Repeat("\n", controlsHeight-1)
	}

	margin := strings.Repeat(" ", barMarginX)
	tooltip := margin + m.seekbar.TooltipView(snap)
	bar := margin + m.seekbar.View(snap)
	status := margin + m.renderStatus(snap)
	helpLine := margin + m.help.View(m.keyMap)

	return lipgloss.JoinVertical(lipgloss.Left, tooltip, bar, status, helpLine)
}

// renderStatus renders the state icon, times, and volume readout.
func (m Model) renderStatus(snap session.Snapshot) string {
	var state string
	if snap.Playing {
		state = m.styles.StatusPlaying.Render("▶ Playing")
	} else {
		state = m.styles.StatusPaused.Render("⏸ Paused")
	}

	var times string
	if snap.Duration > 0 {
		times = fmt.Sprintf("%s / %s",
			timeline.FormatTime(snap.CurrentTime),
			timeline.FormatTime(snap.Duration))
	} else {
		times = "--:-- / --:--"
	}

	var vol string
	if snap.Muted {
		vol = "muted"
	} else {
		vol = fmt.Sprintf("vol %d%%", int(snap.Volume*100+0.5))
	}

	return fmt.Sprintf("%s  %s  %s",
		state,
		m.styles.Text.Render(times),
		m.styles.TextMuted.Render(vol))
}
