package calculate

import (
	tea "github.com/charmbracelet/bubbletea"
)

// UpdateModel updates the form model and returns potential command.
func UpdateModel(m *Model, msg tea.Msg) (*Model, tea.Cmd) {
	if m == nil {
		m = NewModel(KindCylinder)
		return m, m.Init()
	}

	// Once the form is done, any of these keys starts the same calculator over.
	if m.completed {
		if km, ok := msg.(tea.KeyMsg); ok {
			switch km.String() {
			case "enter", "r":
				fresh := NewModel(m.kind, m.opts...)
				return fresh, fresh.Init()
			}
		}
		return m, nil
	}
	cmd := m.Update(msg)
	return m, cmd
}
