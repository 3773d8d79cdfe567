package cmd

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sumwatshade/offcalc/cmd/calculate"
)

// Centralized styles for consistent UX across views.
var (
	appTitle       = "offcalc"
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")).Background(lipgloss.Color("57")).Padding(0, 1)
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("247"))
	activeTabStyle = tabStyle.Bold(true).Foreground(lipgloss.Color("51")).Background(lipgloss.Color("236"))
	contentStyle   = lipgloss.NewStyle().Padding(1, 2)
	focusStyle     = contentStyle.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("51"))
	blurStyle      = contentStyle.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238"))
	dividerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

func tabs(current calculate.Kind, width int) string {
	var rendered []string
	for _, k := range calculate.Kinds {
		if k == current {
			rendered = append(rendered, activeTabStyle.Render(string(k)))
		} else {
			rendered = append(rendered, tabStyle.Render(string(k)))
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	if width > 0 {
		// Ensure line doesn't overflow; truncate softly.
		line = lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return line
}
