package ui

import tea "github.com/charmbracelet/bubbletea"

// ProgramOptions returns the tea options the player runs with: the
// alternate screen, and all-motion mouse tracking. Cell-motion tracking
// only reports motion while a button is held, which would starve the
// hover preview and the controls enter/leave tracking.
func ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}
}
