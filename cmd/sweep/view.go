package sweep

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/charmbracelet/lipgloss"
)

var sweepTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
var sweepInfoStyle = lipgloss.NewStyle().Faint(true)
var lineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))

// View renders pts as a braille line chart followed by a min/max legend.
// xLabel names the swept dimension.
func View(pts []Point, xLabel string, width, height int) string {
	b := &strings.Builder{}
	b.WriteString(sweepTitleStyle.Render("Heave natural period vs " + xLabel))
	b.WriteString("\n")
	if len(pts) < 2 {
		b.WriteString(sweepInfoStyle.Render("Insufficient sweep points"))
		return b.String()
	}

	minX, maxX := pts[0].X, pts[len(pts)-1].X
	minY, maxY := pts[0].Period, pts[0].Period
	for _, p := range pts[1:] {
		if p.Period < minY {
			minY = p.Period
		}
		if p.Period > maxY {
			maxY = p.Period
		}
	}
	lowY, highY := minY, maxY
	if lowY == highY { // flat sweep: pad the chart, not the legend
		lowY -= 0.1
		highY += 0.1
	}

	lc := linechart.New(width, height, minX, maxX, lowY, highY)
	lc.XLabelFormatter = func(i int, v float64) string {
		return fmt.Sprintf("%.0f", v)
	}
	lc.DrawXYAxisAndLabel()
	for i := 1; i < len(pts); i++ {
		lc.DrawBrailleLine(
			canvas.Float64Point{X: pts[i-1].X, Y: pts[i-1].Period},
			canvas.Float64Point{X: pts[i].X, Y: pts[i].Period},
		)
	}
	b.WriteString(lc.View())
	b.WriteString("\n")
	b.WriteString(lineStyle.Render("─"))
	b.WriteString(" ")
	b.WriteString(sweepInfoStyle.Render(fmt.Sprintf("Tn (s) over %s %.1f-%.1f m | min %.1f s / max %.1f s",
		xLabel, minX, maxX, minY, maxY)))
	return b.String()
}
