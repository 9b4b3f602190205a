package widgets

import "github.com/charmbracelet/lipgloss"

var (
	colorText     lipgloss.Color = "#cdd6f4"
	colorMuted    lipgloss.Color = "#a6adc8"
	colorBorder   lipgloss.Color = "#585b70"
	colorAccent   lipgloss.Color = "#89b4fa"
	colorSuccess  lipgloss.Color = "#a6e3a1"
	colorError    lipgloss.Color = "#f38ba8"
	colorWarn     lipgloss.Color = "#f9e2af"
	colorMantle   lipgloss.Color = "#181825"
	colorSurface0 lipgloss.Color = "#313244"
)

var (
	textStyle    = lipgloss.NewStyle().Foreground(colorText)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	headingStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	brandStyle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	barStyle     = lipgloss.NewStyle().Background(colorMantle).Foreground(colorText)

	buttonStyle        = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface0).Padding(0, 1)
	primaryButtonStyle = lipgloss.NewStyle().Foreground(colorMantle).Background(colorAccent).Bold(true).Padding(0, 1)
	focusedButtonStyle = lipgloss.NewStyle().Foreground(colorMantle).Background(colorSuccess).Bold(true).Padding(0, 1)
	linkStyle          = lipgloss.NewStyle().Foreground(colorAccent).Underline(true)
	focusedLinkStyle   = lipgloss.NewStyle().Foreground(colorSuccess).Underline(true).Bold(true)

	labelStyle        = lipgloss.NewStyle().Foreground(colorMuted)
	focusedLabelStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	requiredStyle     = lipgloss.NewStyle().Foreground(colorError)

	cardStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Padding(0, 1)

	toastStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSuccess).Foreground(colorText).Padding(0, 1)
	toastErrStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorError).Foreground(colorError).Padding(0, 1)
	alertStyle    = lipgloss.NewStyle().Foreground(colorWarn).Bold(true)
)
