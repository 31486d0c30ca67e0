package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"chaptui/internal/player"
	"chaptui/internal/session"
	"chaptui/internal/timeline"
)

// seekStep is the keyboard seek increment.
const seekStep = 5 * time.Second

// volumeStep is the keyboard volume increment.
const volumeStep = 0.05

// Message types for the TUI.
type (
	// playerEventMsg wraps one event from the player's event stream.
	playerEventMsg player.Event

	// hideControlsMsg fires when the auto-hide countdown elapses. The
	// payload is the countdown's generation token; stale tokens are
	// ignored by the session.
	hideControlsMsg int
)

// waitForEvent reads the next player event into the update loop,
// keeping all state mutation on the single Bubbletea goroutine.
func waitForEvent(ch <-chan player.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return playerEventMsg(ev)
	}
}

// hideTimerCmd schedules the auto-hide countdown for one token.
func hideTimerCmd(token int) tea.Cmd {
	return tea.Tick(session.HideDelay, func(time.Time) tea.Msg {
		return hideControlsMsg(token)
	})
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.seekbar.SetWidth(m.barWidth())
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case playerEventMsg:
		ev := player.Event(msg)
		m.controller.HandleEvent(ev)
		if ev.Kind == player.EventStateChange {
			m.session.SetPlaying(ev.Playing)
		}
		return m, waitForEvent(m.events)

	case hideControlsMsg:
		m.session.HideTimerFired(int(msg))
		return m, nil
	}

	return m, nil
}

// handleKeyMsg processes keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(msg, m.keyMap.PlayPause):
		m.controller.TogglePlayback()
		return m, nil

	case key.Matches(msg, m.keyMap.SeekForward):
		m.controller.SeekBy(seekStep)
		return m, nil

	case key.Matches(msg, m.keyMap.SeekBackward):
		m.controller.SeekBy(-seekStep)
		return m, nil

	case key.Matches(msg, m.keyMap.Mute):
		m.controller.ToggleMute()
		return m, nil

	case key.Matches(msg, m.keyMap.VolumeUp):
		m.controller.SetVolume(m.controller.State().Volume + volumeStep)
		return m, nil

	case key.Matches(msg, m.keyMap.VolumeDown):
		m.controller.SetVolume(m.controller.State().Volume - volumeStep)
		return m, nil
	}

	return m, nil
}

// handleMouseMsg tracks pointer enter/leave over the controls region,
// hover over the seek bar, and click-to-seek.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	inControls := m.height > 0 && msg.Y >= m.height-controlsHeight
	if inControls && !m.mouseInControls {
		m.session.PointerEnterControls()
	} else if !inControls && m.mouseInControls {
		if token, armed := m.session.PointerLeaveControls(); armed {
			cmds = append(cmds, hideTimerCmd(token))
		}
	}
	m.mouseInControls = inControls

	onBar := msg.Y == m.barY() && msg.X >= barMarginX && msg.X < barMarginX+m.barWidth()
	if onBar {
		x := msg.X - barMarginX
		duration := m.controller.State().Duration
		m.session.PointerMoveTimeline(x, m.barWidth(), duration)
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.controller.Seek(timeline.PointerXToTime(x, m.barWidth(), duration))
		}
	} else if m.session.Hovering() {
		m.session.PointerLeaveTimeline()
	}

	return m, tea.Batch(cmds...)
}
