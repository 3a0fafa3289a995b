package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guttosm/nutrition-lookup/internal/ui"
)

// NewProgram builds the terminal program around a controller calling client.
// Intents run on dispatcher, which the caller stops after the program exits.
func NewProgram(client ui.RemoteClient, dispatcher *Dispatcher, locale string, opts ...tea.ProgramOption) *tea.Program {
	display := &ProgramDisplay{}
	ctrl := ui.NewController(client, display, ui.WithLocale(locale))
	program := tea.NewProgram(NewModel(ctrl, dispatcher, locale), opts...)
	display.sender = program

	// Init is the first intent, so its commands reach the program before any user input.
	dispatcher.Submit(func(context.Context) { ctrl.Init() })
	return program
}
