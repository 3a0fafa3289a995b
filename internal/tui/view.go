package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guttosm/nutrition-lookup/internal/domain/model"
	"github.com/guttosm/nutrition-lookup/internal/i18n"
	"github.com/guttosm/nutrition-lookup/internal/ui"
)

// barWidth is the macro bar length in cells at 100%.
const barWidth = 40

// View implements tea.Model.
func (m *Model) View() string {
	sections := []string{m.viewTitle()}

	switch {
	case len(m.screen.Notices()) > 0:
		sections = append(sections, m.viewNotice())
	case m.screen.Visible(ui.ModalOverlay):
		sections = append(sections, m.viewModal())
	default:
		sections = append(sections, m.viewSearch())
		if m.screen.Visible(ui.ResultsSection) {
			sections = append(sections, m.viewResults())
		}
	}

	sections = append(sections, helpStyle.Render(m.text(i18n.LabelKeyHelp)))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) viewTitle() string {
	return titleStyle.Render(m.text(i18n.LabelKeyTitle))
}

func (m *Model) viewSearch() string {
	return lipgloss.JoinHorizontal(lipgloss.Center,
		m.query.View(), "  ", m.button(ui.SearchButton))
}

func (m *Model) viewResults() string {
	items := m.screen.Children(ui.ResultsList)
	rows := make([]string, 0, len(items))
	for i, item := range items {
		line := item.Primary + "  " + brandStyle.Render(item.Secondary)
		if m.focus == focusResults && i == m.cursor {
			rows = append(rows, cursorStyle.Render("> ")+line)
			continue
		}
		rows = append(rows, resultStyle.Render(line))
	}
	return "\n" + strings.Join(rows, "\n")
}

func (m *Model) viewModal() string {
	lines := []string{
		foodNameStyle.Render(m.screen.Text(ui.ModalFoodName)),
		brandStyle.Render(m.screen.Text(ui.ModalBrand)),
		"",
		m.text(i18n.LabelKeyWeight) + " " + m.weight.View() + "  " + m.button(ui.CalculateButton),
	}

	if m.screen.Visible(ui.NutritionResults) {
		lines = append(lines, "", m.viewMacros(), "", m.viewBar(), "", m.text(i18n.LabelKeyDetails))
		for _, item := range m.screen.Children(ui.DetailedList) {
			lines = append(lines, detailNameStyle.Render(item.Primary)+item.Secondary)
		}
	}

	width := m.width - 4
	if width > 72 {
		width = 72
	}
	return modalStyle.Width(width).Render(strings.Join(lines, "\n"))
}

func (m *Model) viewMacros() string {
	labels := []string{model.NutrientCalories, model.NutrientProtein, model.NutrientFat, model.NutrientCarbs}
	values := []ui.WidgetID{ui.ValCalories, ui.ValProtein, ui.ValFat, ui.ValCarbs}
	percents := []ui.WidgetID{"", ui.PctProtein, ui.PctFat, ui.PctCarbs}

	var top, mid, bottom strings.Builder
	for i := range labels {
		top.WriteString(macroValueStyle.Render(m.screen.Text(values[i])))
		mid.WriteString(macroLabelStyle.Render(labels[i]))
		if percents[i] != "" {
			bottom.WriteString(macroLabelStyle.Render(m.screen.Text(percents[i])))
		} else {
			bottom.WriteString(macroLabelStyle.Render(""))
		}
	}
	return top.String() + "\n" + mid.String() + "\n" + bottom.String()
}

// viewBar draws the calorie split; segments never set draw nothing.
func (m *Model) viewBar() string {
	var b strings.Builder
	for _, seg := range []struct {
		id    ui.WidgetID
		style lipgloss.Style
	}{
		{ui.BarProtein, proteinBarStyle},
		{ui.BarFat, fatBarStyle},
		{ui.BarCarbs, carbsBarStyle},
	} {
		b.WriteString(seg.style.Render(strings.Repeat(" ", m.barCells(seg.id))))
	}
	return b.String()
}

func (m *Model) barCells(id ui.WidgetID) int {
	pct, ok := m.screen.Width(id)
	if !ok || pct <= 0 {
		return 0
	}
	return int(math.Round(math.Min(pct, 100) / 100 * barWidth))
}

func (m *Model) viewNotice() string {
	notice := m.screen.Notices()[0]
	return noticeStyle.Render(notice + "\n\n" + brandStyle.Render(m.text(i18n.LabelKeyDismiss)))
}

// button renders a control, with the spinner while it is busy.
func (m *Model) button(id ui.WidgetID) string {
	if m.screen.IsBusy(id) {
		return busyButtonStyle.Render(m.spinner.View())
	}
	return buttonStyle.Render(m.screen.Text(id))
}
