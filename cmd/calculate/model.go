// Package calculate drives one calculator at a time through a huh form and
// turns the completed form into a history entry.
package calculate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/sumwatshade/offcalc/cmd/calcerr"
	"github.com/sumwatshade/offcalc/cmd/chain"
	"github.com/sumwatshade/offcalc/cmd/floater"
	"github.com/sumwatshade/offcalc/cmd/history"
	"github.com/sumwatshade/offcalc/cmd/hexcodec"
)

// Kind names a calculator.
type Kind string

const (
	KindCylinder Kind = "cylinder"
	KindBarge    Kind = "barge"
	KindChain    Kind = "chain"
	KindHex      Kind = "hex"
)

// Kinds lists the calculators in tab order.
var Kinds = []Kind{KindCylinder, KindBarge, KindChain, KindHex}

// HexModes lists the hex conversion directions; the first is the default.
var HexModes = []string{"encode", "decode"}

// Model using huh form
type Model struct {
	kind Kind
	form *huh.Form

	mass, addedMass        string
	diameter               string
	width, draft, length   string
	quality, chainDiameter string
	stud                   bool
	hexMode, hexText       string
	defaultQuality         string
	defaultStud            bool
	opts                   []Option

	entry     history.Entry
	err       error
	completed bool // form has been completed
	recorded  bool // entry handed to history
}

// Option adjusts the initial field values of a Model.
type Option func(*Model)

// WithChainDefaults preselects the chain quality and stud type.
func WithChainDefaults(quality string, stud bool) Option {
	return func(m *Model) {
		if q, err := chain.ParseQuality(quality); err == nil {
			m.defaultQuality = string(q)
		}
		m.defaultStud = stud
	}
}

// NewModel returns a fresh form for kind.
func NewModel(kind Kind, opts ...Option) *Model {
	m := &Model{kind: kind, defaultQuality: string(chain.R3), opts: opts}
	for _, o := range opts {
		o(m)
	}
	m.quality = m.defaultQuality
	m.stud = m.defaultStud
	m.hexMode = HexModes[0]
	m.buildForm()
	return m
}

// Kind reports which calculator the model drives.
func (m *Model) Kind() Kind { return m.kind }

func (m *Model) buildForm() {
	var fields []huh.Field
	switch m.kind {
	case KindCylinder:
		fields = []huh.Field{
			huh.NewInput().Title("Mass (t)").Value(&m.mass).Validate(requiredFloat),
			huh.NewInput().Title("Diameter (m)").Value(&m.diameter).Validate(requiredFloat),
			huh.NewInput().Title("Added mass (t)").Description("leave blank to estimate (Lamb)").Value(&m.addedMass).Validate(optionalFloat),
		}
	case KindBarge:
		fields = []huh.Field{
			huh.NewInput().Title("Mass (t)").Value(&m.mass).Validate(requiredFloat),
			huh.NewInput().Title("Width (m)").Value(&m.width).Validate(requiredFloat),
			huh.NewInput().Title("Draft (m)").Value(&m.draft).Validate(requiredFloat),
			huh.NewInput().Title("Length (m)").Value(&m.length).Validate(requiredFloat),
			huh.NewInput().Title("Added mass (t)").Description("leave blank to estimate (Lewis)").Value(&m.addedMass).Validate(optionalFloat),
		}
	case KindChain:
		qualities := make([]string, len(chain.Qualities))
		for i, q := range chain.Qualities {
			qualities[i] = string(q)
		}
		fields = []huh.Field{
			huh.NewSelect[string]().Title("Quality").Options(selectOptions(qualities)...).Value(&m.quality),
			huh.NewConfirm().Title("Studded chain?").Value(&m.stud),
			huh.NewInput().Title("Diameter (mm)").Value(&m.chainDiameter).Validate(requiredFloat),
		}
	case KindHex:
		fields = []huh.Field{
			huh.NewSelect[string]().Title("Direction").Options(selectOptions(HexModes)...).Value(&m.hexMode),
			huh.NewText().Title("Text").Value(&m.hexText),
		}
	}
	m.form = huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(false)
}

func selectOptions(vals []string) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(vals))
	for _, v := range vals {
		opts = append(opts, huh.NewOption(v, v))
	}
	return opts
}

func requiredFloat(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("required")
	}
	return optionalFloat(s)
}

func optionalFloat(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
		return errors.New("not a number")
	}
	return nil
}

func parseFloat(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, calcerr.Wrap(calcerr.ErrCodeInvalidArgument, err, "%s is not a number: %q", name, s)
	}
	return v, nil
}

// Init focuses the first field of the form.
func (m *Model) Init() tea.Cmd {
	if m == nil || m.form == nil {
		return nil
	}
	return m.form.Init()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m == nil {
		return nil
	}
	if m.form == nil {
		m.buildForm()
	}
	var cmd tea.Cmd
	updated, ucmd := m.form.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		m.form = f
	}
	cmd = ucmd
	if m.form.State == huh.StateCompleted && !m.completed {
		m.completed = true
		m.entry, m.err = m.compute()
	}
	return cmd
}

// compute evaluates the completed form.
func (m *Model) compute() (history.Entry, error) {
	switch m.kind {
	case KindCylinder, KindBarge:
		f, err := m.buildFloater()
		if err != nil {
			return history.Entry{}, err
		}
		t, err := f.NaturalPeriodHeave()
		if err != nil {
			return history.Entry{}, err
		}
		return history.NewEntry(string(m.kind), fmt.Sprintf("%s Tn = %.1f s", m.kind, t), floater.View(f)), nil
	case KindChain:
		c, err := chain.New(m.quality, m.stud)
		if err != nil {
			return history.Entry{}, err
		}
		mm, err := parseFloat("diameter", m.chainDiameter)
		if err != nil {
			return history.Entry{}, err
		}
		mbl, err := c.BreakingStrength(mm / 1000)
		if err != nil {
			return history.Entry{}, err
		}
		return history.NewEntry(string(m.kind), fmt.Sprintf("%s %.0fmm MBL = %.0f kN", c, mm, mbl/1000), chain.View(c, mm/1000)), nil
	case KindHex:
		if m.hexMode == "decode" {
			s, err := hexcodec.Decode(m.hexText)
			if err != nil {
				return history.Entry{}, err
			}
			return history.NewEntry(string(m.kind), "decoded "+truncate(s, 32), s), nil
		}
		h := hexcodec.Encode(m.hexText)
		return history.NewEntry(string(m.kind), "encoded "+truncate(h, 32), h), nil
	}
	return history.Entry{}, calcerr.Invalid("unknown calculator %q", m.kind)
}

func (m *Model) buildFloater() (floater.Floater, error) {
	mass, err := parseFloat("mass", m.mass)
	if err != nil {
		return nil, err
	}
	explicit := strings.TrimSpace(m.addedMass) != ""
	var am float64
	if explicit {
		if am, err = parseFloat("added mass", m.addedMass); err != nil {
			return nil, err
		}
	}

	if m.kind == KindCylinder {
		d, err := parseFloat("diameter", m.diameter)
		if err != nil {
			return nil, err
		}
		if explicit {
			return floater.NewCylinderWithAddedMass(mass, d, am)
		}
		return floater.NewCylinder(mass, d)
	}

	var dims [3]float64
	for i, f := range []struct{ name, v string }{{"width", m.width}, {"draft", m.draft}, {"length", m.length}} {
		if dims[i], err = parseFloat(f.name, f.v); err != nil {
			return nil, err
		}
	}
	if explicit {
		return floater.NewBargeWithAddedMass(mass, dims[0], dims[1], dims[2], am)
	}
	return floater.NewBarge(mass, dims[0], dims[1], dims[2])
}

func truncate(s string, n int) string {
	r := []rune(strings.ReplaceAll(s, "\n", " "))
	if len(r) <= n {
		return string(r)
	}
	return string(r[:n-1]) + "…"
}

// IsDoneAndUnrecorded returns true once the form produced a result that has
// not been handed to the history yet.
func (m *Model) IsDoneAndUnrecorded() bool {
	return m != nil && m.completed && m.err == nil && !m.recorded
}

// Entry returns the computed result.
func (m *Model) Entry() history.Entry { return m.entry }

// Err returns the error of the last computation, if any.
func (m *Model) Err() error { return m.err }

func (m *Model) MarkRecorded() {
	if m != nil {
		m.recorded = true
	}
}
