package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	statusBarStyle    = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().Foreground(colorError).Background(colorSurface0).Bold(true)
	footerStyle       = lipgloss.NewStyle().Background(colorMantle)
)

// Help is one key hint in the footer.
type Help struct {
	Key  string
	Desc string
}

// HelpBar renders key hints on one line.
func HelpBar(items []Help, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(colorMantle)
	descStyle := lipgloss.NewStyle().Foreground(colorMuted).Background(colorMantle)
	space := lipgloss.NewStyle().Background(colorMantle).Render(" ")
	sep := lipgloss.NewStyle().Background(colorMantle).Render("  ")
	parts := make([]string, 0, len(items))
	for _, h := range items {
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(h.Key)+space+descStyle.Render(h.Desc))
	}
	line := strings.Join(parts, sep)
	if line == "" {
		line = descStyle.Render("No shortcuts")
	}
	return renderBar(footerStyle, max(1, width), line)
}

// StatusBar renders a one-line status message.
func StatusBar(text string, width int, isErr bool) string {
	if isErr {
		return renderBar(statusErrBarStyle, max(1, width), text)
	}
	return renderBar(statusBarStyle, max(1, width), text)
}

func renderBar(style lipgloss.Style, width int, text string) string {
	line := ansi.Truncate(strings.ReplaceAll(text, "\n", " "), width, "")
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}
