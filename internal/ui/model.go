package ui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"chaptui/internal/player"
	"chaptui/internal/session"
	"chaptui/internal/ui/components"
)

const (
	// controlsHeight is how many bottom rows the controls overlay
	// occupies: tooltip, seek bar, status, help. The mouse region for
	// enter/leave tracking matches it.
	controlsHeight = 4

	// barMarginX is the horizontal margin around the seek bar.
	barMarginX = 2
)

// Config carries the collaborators the model is built over.
type Config struct {
	Title      string
	Thumbnail  string
	Controller *player.Controller
	Session    *session.Interaction
	Events     <-chan player.Event
}

// Model is the main Bubbletea model for chaptui.
type Model struct {
	// Window dimensions
	width  int
	height int

	// Stream metadata
	title     string
	thumbnail string

	// Core collaborators
	controller *player.Controller
	session    *session.Interaction
	events     <-chan player.Event

	// UI components
	seekbar components.SeekBar
	help    help.Model

	// Key bindings
	keyMap KeyMap

	// Mouse tracking for controls enter/leave
	mouseInControls bool

	// UI state
	showHelp bool
	quitting bool

	// Styles
	styles Styles
}

// New creates a new Model over the given collaborators.
func New(cfg Config) Model {
	return Model{
		title:      cfg.Title,
		thumbnail:  cfg.Thumbnail,
		controller: cfg.Controller,
		session:    cfg.Session,
		events:     cfg.Events,
		seekbar:    components.NewSeekBar(),
		help:       help.New(),
		keyMap:     DefaultKeyMap(),
		styles:     DefaultStyles(),
	}
}

// Init starts pumping player events into the update loop.
func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

// barWidth returns the seek bar width for the current window.
func (m Model) barWidth() int {
	w := m.width - 2*barMarginX
	if w < 10 {
		w = 10
	}
	return w
}

// barY returns the row the seek bar is rendered on.
func (m Model) barY() int {
	return m.height - controlsHeight + 1
}
