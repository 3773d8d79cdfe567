package floater

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var floaterTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
var floaterInfoStyle = lipgloss.NewStyle().Faint(true)
var periodStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
var floaterErrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")) // red

// View renders the properties of f and its heave natural period.
func View(f Floater) string {
	b := &strings.Builder{}
	if f == nil {
		b.WriteString(floaterInfoStyle.Render("No floater defined"))
		return b.String()
	}
	b.WriteString(floaterTitleStyle.Render("Heave natural period: " + f.Geometry().String()))
	b.WriteString("\n")
	switch v := f.(type) {
	case Cylinder:
		fmt.Fprintf(b, "Diameter:          %10.2f m\n", v.Diameter())
	case Barge:
		fmt.Fprintf(b, "Width:             %10.2f m\n", v.Width())
		fmt.Fprintf(b, "Draft:             %10.2f m\n", v.Draft())
		fmt.Fprintf(b, "Length:            %10.2f m\n", v.Length())
		fmt.Fprintf(b, "Cm (Lewis fit):    %10.4f\n", v.AddedMassCoefficient())
	}
	fmt.Fprintf(b, "Mass:              %10.1f t\n", f.Mass())
	fmt.Fprintf(b, "Added mass A33:    %10.1f t%s\n", f.AddedMass(), estimatedNote(f))
	fmt.Fprintf(b, "Waterplane area:   %10.2f m²\n", f.WaterplaneArea())

	t, err := f.NaturalPeriodHeave()
	if err != nil {
		b.WriteString(floaterErrStyle.Render("period error: " + err.Error()))
		return b.String()
	}
	b.WriteString(periodStyle.Render(fmt.Sprintf("Tn heave:          %10.1f s", t)))
	b.WriteString("\n")
	b.WriteString(floaterInfoStyle.Render(fmt.Sprintf("rho = %.3f t/m³, g = %.2f m/s²", Rho, Grav)))
	return b.String()
}

func estimatedNote(f Floater) string {
	type estimator interface{ AddedMassEstimated() bool }
	if e, ok := f.(estimator); ok && e.AddedMassEstimated() {
		switch f.Geometry() {
		case GeometryCylinder:
			return floaterInfoStyle.Render(" (Lamb)")
		case GeometryBarge:
			return floaterInfoStyle.Render(" (Lewis)")
		}
	}
	return ""
}
