package calculate

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sumwatshade/offcalc/cmd/calcerr"
)

var formTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("219"))
var faint = lipgloss.NewStyle().Faint(true)
var errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

var titles = map[Kind]string{
	KindCylinder: "Cylinder heave period",
	KindBarge:    "Barge heave period",
	KindChain:    "Mooring chain",
	KindHex:      "Hex codec",
}

// View renders the huh form, or the result once the form is complete.
func View(m *Model) string {
	if m == nil {
		return formTitleStyle.Render("Calculator") + "\n" + faint.Render("(initializing)")
	}
	b := &strings.Builder{}
	fmt.Fprintln(b, formTitleStyle.Render(titles[m.kind]))

	if !m.completed {
		if m.form != nil {
			fmt.Fprintln(b, m.form.View())
		}
		return b.String()
	}
	if m.err != nil {
		fmt.Fprintln(b, errStyle.Render("error: "+calcerr.UserMessage(m.err)))
	} else {
		fmt.Fprintln(b)
		fmt.Fprintln(b, m.entry.Detail)
	}
	fmt.Fprintln(b)
	fmt.Fprintln(b, faint.Render("Press 'r' or enter for a new calculation."))
	return b.String()
}
