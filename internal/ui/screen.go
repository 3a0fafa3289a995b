package ui

// Screen is an in-memory widget tree that applies Commands.
// It is the state the terminal view renders from, and what tests inspect.
type Screen struct {
	texts    map[WidgetID]string
	values   map[WidgetID]string
	visible  map[WidgetID]bool
	widths   map[WidgetID]float64
	busy     map[WidgetID]bool
	children map[WidgetID][]Item
	notices  []string
}

// NewScreen returns a screen with the panels that start hidden already hidden.
func NewScreen() *Screen {
	s := &Screen{
		texts:    make(map[WidgetID]string),
		values:   make(map[WidgetID]string),
		visible:  make(map[WidgetID]bool),
		widths:   make(map[WidgetID]float64),
		busy:     make(map[WidgetID]bool),
		children: make(map[WidgetID][]Item),
	}
	for _, id := range []WidgetID{ResultsSection, ModalOverlay, NutritionResults} {
		s.visible[id] = false
	}
	return s
}

// Apply implements Display.
func (s *Screen) Apply(cmds ...Command) {
	for _, c := range cmds {
		switch c.Op {
		case OpSetText:
			s.texts[c.Widget] = c.Text
		case OpSetValue:
			s.values[c.Widget] = c.Text
		case OpSetVisible:
			s.visible[c.Widget] = c.Visible
		case OpSetWidth:
			s.widths[c.Widget] = c.Width
		case OpSetBusy:
			s.busy[c.Widget] = c.Busy
			if !c.Busy {
				s.texts[c.Widget] = c.Text
			}
		case OpClearChildren:
			delete(s.children, c.Widget)
		case OpAppendChild:
			s.children[c.Widget] = append(s.children[c.Widget], c.Item)
		case OpNotice:
			s.notices = append(s.notices, c.Text)
		}
	}
}

// Text returns the text content of a widget.
func (s *Screen) Text(id WidgetID) string { return s.texts[id] }

// Value returns the value of an input widget.
func (s *Screen) Value(id WidgetID) string { return s.values[id] }

// SetValue records user input into an input widget.
func (s *Screen) SetValue(id WidgetID, v string) { s.values[id] = v }

// Visible reports whether a widget is shown. Widgets never hidden count as visible.
func (s *Screen) Visible(id WidgetID) bool {
	v, ok := s.visible[id]
	return !ok || v
}

// Width returns a bar segment's width and whether it was ever set.
func (s *Screen) Width(id WidgetID) (float64, bool) {
	w, ok := s.widths[id]
	return w, ok
}

// IsBusy reports whether a control is in its in-flight state.
func (s *Screen) IsBusy(id WidgetID) bool { return s.busy[id] }

// Children returns the items of a list widget.
func (s *Screen) Children(id WidgetID) []Item { return s.children[id] }

// Notices returns the notices not yet dismissed, oldest first.
func (s *Screen) Notices() []string { return s.notices }

// DismissNotice drops the oldest pending notice.
func (s *Screen) DismissNotice() {
	if len(s.notices) > 0 {
		s.notices = s.notices[1:]
	}
}
