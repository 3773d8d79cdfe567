package cmd

import (
	"strings"

	bhelp "github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sumwatshade/offcalc/cmd/calculate"
	"github.com/sumwatshade/offcalc/cmd/history"
)

type model struct {
	tab          int // index into calculate.Kinds
	form         *calculate.Model
	history      *history.History
	historyFocus bool
	formOpts     []calculate.Option
	width        int
	height       int
	// help / key bindings
	keys keyMap
	help bhelp.Model
}

func initialModel(a *app) model {
	opts := []calculate.Option{
		calculate.WithChainDefaults(a.cfg.GetString(keyChainQuality), a.cfg.GetBool(keyChainStud)),
	}
	return model{
		form:     calculate.NewModel(calculate.Kinds[0], opts...),
		history:  history.New(),
		formOpts: opts,
		keys:     keys,
		help:     bhelp.New(),
	}
}

func (m model) Init() tea.Cmd {
	return m.form.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.History):
			m.historyFocus = !m.historyFocus
			return m, nil
		case key.Matches(msg, m.keys.Next):
			return m.switchTab(1)
		case key.Matches(msg, m.keys.Prev):
			return m.switchTab(-1)
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd

	// key presses go to the focused pane only; everything else reaches both
	_, isKey := msg.(tea.KeyMsg)
	if !isKey || !m.historyFocus {
		m.form, cmd = calculate.UpdateModel(m.form, msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		if m.form.IsDoneAndUnrecorded() {
			m.history.Add(m.form.Entry())
			m.form.MarkRecorded()
		}
	}
	if !isKey || m.historyFocus {
		cmd = m.history.Update(msg, rightPaneWidth(m.width), m.height)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

func (m model) switchTab(delta int) (tea.Model, tea.Cmd) {
	n := len(calculate.Kinds)
	m.tab = ((m.tab+delta)%n + n) % n
	m.form = calculate.NewModel(calculate.Kinds[m.tab], m.formOpts...)
	m.historyFocus = false
	return m, m.form.Init()
}

func (m model) View() string {
	left := calculate.View(m.form)
	right := m.history.View()

	// determine split sizes (45% left min width 36)
	leftW := leftPaneWidth(m.width)
	rightW := rightPaneWidth(m.width)
	leftPane, rightPane := focusStyle, blurStyle
	if m.historyFocus {
		leftPane, rightPane = blurStyle, focusStyle
	}
	leftRendered := lipgloss.NewStyle().Width(leftW).Render(leftPane.Render(left))
	rightRendered := lipgloss.NewStyle().Width(rightW).Render(rightPane.Render(right))
	columns := lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, " ", rightRendered)

	header := headerStyle.Render(appTitle) + " " + tabs(calculate.Kinds[m.tab], max(0, m.width-10))
	sep := dividerStyle.Render(strings.Repeat("─", max(0, m.width)))
	foot := m.help.View(m.keys)
	layout := lipgloss.JoinVertical(lipgloss.Left, header, sep, columns, sep, foot)
	if m.width > 0 {
		layout = lipgloss.NewStyle().Width(m.width).Render(layout)
	}
	return layout
}

func leftPaneWidth(total int) int {
	return max(36, int(float64(total)*0.45))
}

// helper to compute right pane width for updates
func rightPaneWidth(total int) int {
	return max(24, total-leftPaneWidth(total)-1)
}
