// Package ui implements the client-side interaction state machine of the lookup tool:
// searching foods, selecting one in a modal, and presenting its nutrient breakdown.
//
// Components never touch real widgets. They emit Commands to a Display, and a binding
// (the in-memory Screen, the terminal view) turns those commands into visible state.
// Components are not safe for concurrent use; drive them from one goroutine.
package ui

// WidgetID addresses one widget of the display.
type WidgetID string

// Widgets written by the controller.
const (
	FoodInput      WidgetID = "foodInput"
	SearchButton   WidgetID = "searchBtn"
	ResultsSection WidgetID = "resultsSection"
	ResultsList    WidgetID = "resultsList"

	ModalOverlay     WidgetID = "modalOverlay"
	ModalContent     WidgetID = "modalContent"
	CloseModalButton WidgetID = "closeModal"
	ModalFoodName    WidgetID = "modalFoodName"
	ModalBrand       WidgetID = "modalBrand"
	WeightInput      WidgetID = "weightInput"
	CalculateButton  WidgetID = "calculateBtn"
	NutritionResults WidgetID = "nutritionResults"

	ValCalories WidgetID = "valCalories"
	ValProtein  WidgetID = "valProtein"
	ValFat      WidgetID = "valFat"
	ValCarbs    WidgetID = "valCarbs"
	PctProtein  WidgetID = "pctProtein"
	PctFat      WidgetID = "pctFat"
	PctCarbs    WidgetID = "pctCarbs"
	BarProtein  WidgetID = "barProtein"
	BarFat      WidgetID = "barFat"
	BarCarbs    WidgetID = "barCarbs"

	DetailedList WidgetID = "detailedList"
)

// Op is the kind of a widget update.
type Op int

const (
	OpSetText Op = iota
	OpSetValue
	OpSetVisible
	OpSetWidth
	OpSetBusy
	OpClearChildren
	OpAppendChild
	OpNotice
)

// Item is one child of a list widget: a result card or a nutrient row.
type Item struct {
	Primary   string
	Secondary string
}

// Command is a single widget update.
type Command struct {
	Op      Op
	Widget  WidgetID
	Text    string
	Visible bool
	Width   float64
	Busy    bool
	Item    Item
}

// Display receives widget updates in order.
type Display interface {
	Apply(cmds ...Command)
}

// DisplayFunc adapts a function to Display.
type DisplayFunc func(cmds ...Command)

// Apply calls f.
func (f DisplayFunc) Apply(cmds ...Command) { f(cmds...) }

// Text sets the text content of a widget.
func Text(id WidgetID, s string) Command {
	return Command{Op: OpSetText, Widget: id, Text: s}
}

// Value sets the value of an input widget.
func Value(id WidgetID, s string) Command {
	return Command{Op: OpSetValue, Widget: id, Text: s}
}

// Show makes a widget visible.
func Show(id WidgetID) Command {
	return Command{Op: OpSetVisible, Widget: id, Visible: true}
}

// Hide makes a widget invisible.
func Hide(id WidgetID) Command {
	return Command{Op: OpSetVisible, Widget: id}
}

// Width sets a bar segment's width as a percentage of the bar.
func Width(id WidgetID, percent float64) Command {
	return Command{Op: OpSetWidth, Widget: id, Width: percent}
}

// Busy puts a control into its in-flight state.
func Busy(id WidgetID) Command {
	return Command{Op: OpSetBusy, Widget: id, Busy: true}
}

// Idle restores a control to its ready state with the given label.
func Idle(id WidgetID, label string) Command {
	return Command{Op: OpSetBusy, Widget: id, Text: label}
}

// Clear removes every child of a list widget.
func Clear(id WidgetID) Command {
	return Command{Op: OpClearChildren, Widget: id}
}

// Append adds a child to a list widget.
func Append(id WidgetID, item Item) Command {
	return Command{Op: OpAppendChild, Widget: id, Item: item}
}

// Notice shows a blocking message to the user.
func Notice(message string) Command {
	return Command{Op: OpNotice, Text: message}
}
