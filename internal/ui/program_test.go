package ui

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// optionPointers maps each option to its underlying function pointer,
// which is stable across calls to the tea.With* constructors.
func optionPointers(opts []tea.ProgramOption) map[uintptr]bool {
	ptrs := make(map[uintptr]bool, len(opts))
	for _, opt := range opts {
		ptrs[reflect.ValueOf(opt).Pointer()] = true
	}
	return ptrs
}

func TestProgramOptionsTrackAllMouseMotion(t *testing.T) {
	ptrs := optionPointers(ProgramOptions())

	if !ptrs[reflect.ValueOf(tea.WithMouseAllMotion()).Pointer()] {
		t.Error("program must enable all-motion mouse tracking; hover and " +
			"controls enter/leave depend on motion without a button held")
	}
	if ptrs[reflect.ValueOf(tea.WithMouseCellMotion()).Pointer()] {
		t.Error("cell-motion tracking reports motion only during drags and " +
			"must not be used")
	}
	if !ptrs[reflect.ValueOf(tea.WithAltScreen()).Pointer()] {
		t.Error("program should run on the alternate screen")
	}
}
