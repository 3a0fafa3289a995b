package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10b981")).
			MarginBottom(1)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#059669")).
			Padding(0, 2)

	busyButtonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d1d5db")).
			Background(lipgloss.Color("#4b5563")).
			Padding(0, 2)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10b981")).
			Bold(true)

	resultStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	brandStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6b7280"))

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#10b981")).
			Padding(1, 2)

	foodNameStyle = lipgloss.NewStyle().
			Bold(true)

	macroValueStyle = lipgloss.NewStyle().
			Bold(true).
			Width(10)

	macroLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6b7280")).
			Width(10)

	proteinBarStyle = lipgloss.NewStyle().Background(lipgloss.Color("#3b82f6"))
	fatBarStyle     = lipgloss.NewStyle().Background(lipgloss.Color("#f59e0b"))
	carbsBarStyle   = lipgloss.NewStyle().Background(lipgloss.Color("#10b981"))

	detailNameStyle = lipgloss.NewStyle().
			Width(22)

	noticeStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#ef4444")).
			Padding(0, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6b7280")).
			MarginTop(1)
)
