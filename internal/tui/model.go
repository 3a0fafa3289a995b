package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guttosm/nutrition-lookup/internal/i18n"
	"github.com/guttosm/nutrition-lookup/internal/ui"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type focus int

const (
	focusQuery focus = iota
	focusResults
	focusWeight
)

// Model is the bubbletea model of the lookup tool.
// It renders a ui.Screen and turns key presses into controller intents.
type Model struct {
	ctrl    *ui.Controller
	submit  Submitter
	screen  *ui.Screen
	text    func(key string) string
	log     zerolog.Logger
	query   textinput.Model
	weight  textinput.Model
	spinner spinner.Model
	focus   focus
	cursor  int
	width   int
}

// NewModel creates a model driving ctrl through submit, labelled in locale.
func NewModel(ctrl *ui.Controller, submit Submitter, locale string) *Model {
	translator := i18n.GetTranslator()
	locale = i18n.NormalizeLocale(locale)
	text := func(key string) string { return translator.Translate(key, locale) }

	query := textinput.New()
	query.Placeholder = text(i18n.LabelKeyQueryPlaceholder)
	query.CharLimit = 120
	query.Width = 40
	query.Focus()

	weight := textinput.New()
	weight.CharLimit = 10
	weight.Width = 10

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return &Model{
		ctrl:    ctrl,
		submit:  submit,
		screen:  ui.NewScreen(),
		text:    text,
		log:     log.With().Str("component", "tui").Logger(),
		query:   query,
		weight:  weight,
		spinner: spin,
		width:   80,
	}
}

// Screen returns the widget state the model renders.
func (m *Model) Screen() *ui.Screen {
	return m.screen
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case commandsMsg:
		m.apply(msg)
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	}
	return m.updateInput(msg)
}

// apply writes controller commands to the screen and mirrors them into the inputs.
func (m *Model) apply(cmds []ui.Command) {
	m.screen.Apply(cmds...)
	for _, c := range cmds {
		switch {
		case c.Op == ui.OpSetValue && c.Widget == ui.WeightInput:
			m.weight.SetValue(c.Text)
			m.weight.CursorEnd()
		case c.Op == ui.OpSetValue && c.Widget == ui.FoodInput:
			m.query.SetValue(c.Text)
		case c.Op == ui.OpClearChildren && c.Widget == ui.ResultsList:
			m.cursor = 0
		case c.Op == ui.OpSetVisible && c.Widget == ui.ModalOverlay:
			if c.Visible {
				m.setFocus(focusWeight)
			} else if m.focus == focusWeight {
				m.setFocus(focusResults)
			}
		}
	}
	if m.focus == focusResults && len(m.results()) == 0 {
		m.setFocus(focusQuery)
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// A pending notice blocks every other input until dismissed.
	if len(m.screen.Notices()) > 0 {
		if msg.Type == tea.KeyEnter || msg.Type == tea.KeyEsc {
			m.screen.DismissNotice()
		}
		return m, nil
	}

	switch m.focus {
	case focusWeight:
		switch msg.Type {
		case tea.KeyEsc:
			m.click(ui.CloseModalButton)
			return m, nil
		case tea.KeyEnter:
			weight := m.weight.Value()
			m.screen.SetValue(ui.WeightInput, weight)
			m.dispatch(func(ctx context.Context) {
				m.ignore(m.ctrl.Modal.Recompute(ctx, weight))
			})
			return m, nil
		}
	case focusResults:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.results())-1 {
				m.cursor++
			}
		case "enter":
			index := m.cursor
			m.dispatch(func(ctx context.Context) {
				m.ignore(m.ctrl.Search.Activate(ctx, index))
			})
		case "tab", "esc":
			m.setFocus(focusQuery)
		}
		return m, nil
	case focusQuery:
		switch msg.Type {
		case tea.KeyEnter:
			query := m.query.Value()
			m.screen.SetValue(ui.FoodInput, query)
			m.dispatch(func(ctx context.Context) {
				_, err := m.ctrl.Search.Search(ctx, query)
				m.ignore(err)
			})
			return m, nil
		case tea.KeyTab, tea.KeyDown:
			if len(m.results()) > 0 {
				m.setFocus(focusResults)
			}
			return m, nil
		}
	}

	return m.updateInput(msg)
}

// handleMouse turns a left click on the open modal into a click on its content or on the scrim.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	if len(m.screen.Notices()) > 0 || !m.screen.Visible(ui.ModalOverlay) {
		return
	}
	m.click(m.modalHit(msg.X, msg.Y))
}

// modalHit reports which modal widget the cell at x, y belongs to.
func (m *Model) modalHit(x, y int) ui.WidgetID {
	top := lipgloss.Height(m.viewTitle())
	box := m.viewModal()
	if y >= top && y < top+lipgloss.Height(box) && x >= 0 && x < lipgloss.Width(box) {
		return ui.ModalContent
	}
	return ui.ModalOverlay
}

func (m *Model) click(target ui.WidgetID) {
	m.dispatch(func(context.Context) { m.ctrl.Modal.HandleClick(target) })
}

// updateInput forwards msg to the focused text input.
func (m *Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusQuery:
		m.query, cmd = m.query.Update(msg)
	case focusWeight:
		m.weight, cmd = m.weight.Update(msg)
	}
	return m, cmd
}

func (m *Model) setFocus(f focus) {
	m.focus = f
	m.query.Blur()
	m.weight.Blur()
	switch f {
	case focusQuery:
		m.query.Focus()
	case focusWeight:
		m.weight.Focus()
	}
}

func (m *Model) results() []ui.Item {
	if !m.screen.Visible(ui.ResultsSection) {
		return nil
	}
	return m.screen.Children(ui.ResultsList)
}

func (m *Model) dispatch(intent Intent) {
	if !m.submit.Submit(intent) {
		m.log.Warn().Msg("Input dropped, previous request still running")
	}
}

// ignore logs controller errors the screen already reports.
func (m *Model) ignore(err error) {
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	m.log.Debug().Err(err).Msg("Intent finished with error")
}
