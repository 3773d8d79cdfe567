package scaling

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45")).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	numericStyle = cellStyle.Align(lipgloss.Right)
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

var headers = []string{"#", "Name", "Unit", "Max", "Min", "Std", "Mean"}

// Render draws the scaled statistics as a bordered table.
func Render(rows []ScaledChannel) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row < 0 {
				return headerStyle
			}
			if col >= 3 {
				return numericStyle
			}
			return cellStyle
		})
	for _, r := range rows {
		t.Row(
			strconv.Itoa(r.Number),
			r.Name,
			r.Unit,
			fmt.Sprintf("%.2f", r.Max),
			fmt.Sprintf("%.2f", r.Min),
			fmt.Sprintf("%.2f", r.Std),
			fmt.Sprintf("%.2f", r.Mean),
		)
	}
	return t.Render()
}

// RenderPlain writes the same report as fixed width text columns.
func RenderPlain(rows []ScaledChannel) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "%-1s %-24s %-5s %9s %9s %9s %9s\n", "#", "Name", "Unit", "Max", "Min", "Std", "Mean")
	for _, r := range rows {
		fmt.Fprintf(b, "%-1d %-24s %-5s %9.2f %9.2f %9.2f %9.2f\n", r.Number, r.Name, r.Unit, r.Max, r.Min, r.Std, r.Mean)
	}
	return b.String()
}
