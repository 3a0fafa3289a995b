package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/guttosm/nutrition-lookup/internal/ui"
)

// commandsMsg carries widget commands from the worker to the program.
type commandsMsg []ui.Command

// Sender delivers messages to a running program. *tea.Program implements it.
type Sender interface {
	Send(msg tea.Msg)
}

// ProgramDisplay forwards widget commands to a bubbletea program.
// Apply is safe to call from any goroutine; it blocks until the program started.
type ProgramDisplay struct {
	sender Sender
}

// NewProgramDisplay creates a display sending to s.
func NewProgramDisplay(s Sender) *ProgramDisplay {
	return &ProgramDisplay{sender: s}
}

// Apply implements ui.Display.
func (d *ProgramDisplay) Apply(cmds ...ui.Command) {
	if len(cmds) == 0 {
		return
	}
	msg := make(commandsMsg, len(cmds))
	copy(msg, cmds)
	d.sender.Send(msg)
}
