package chain

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var chainTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
var chainInfoStyle = lipgloss.NewStyle().Faint(true)
var chainErrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

// View renders breaking strength and dry weight of c at diameter d (m).
func View(c MooringChain, d float64) string {
	b := &strings.Builder{}
	b.WriteString(chainTitleStyle.Render("Mooring chain " + c.String()))
	b.WriteString("\n")
	mbl, err := c.BreakingStrength(d)
	if err != nil {
		b.WriteString(chainErrStyle.Render(err.Error()))
		return b.String()
	}
	w, _ := c.DryWeight(d) // same diameter check as above
	fmt.Fprintf(b, "Diameter:          %10.0f mm\n", d*1000)
	fmt.Fprintf(b, "Breaking strength: %10.0f kN\n", mbl/1000)
	fmt.Fprintf(b, "Dry weight:        %10.1f N/m\n", w)
	b.WriteString(chainInfoStyle.Render("DNVGL-OS-E302"))
	return b.String()
}
