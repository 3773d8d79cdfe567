package history

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	itemTitleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("111")).Bold(true)
	itemDescStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	selectedTitleStyle = itemTitleStyle.Foreground(lipgloss.Color("51"))
	selectedDescStyle  = itemDescStyle.Foreground(lipgloss.Color("245"))
)

type historyItem struct{ Entry }

func (i historyItem) Title() string { return i.Summary }
func (i historyItem) Description() string {
	return i.Kind + " | " + i.CreatedAt.Format("15:04:05")
}
func (i historyItem) FilterValue() string {
	return strings.ToLower(i.Kind + " " + i.Summary)
}

type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 2 }
func (d itemDelegate) Spacing() int                              { return 1 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	it, ok := listItem.(historyItem)
	if !ok {
		io.WriteString(w, "?")
		return
	}
	title := itemTitleStyle.Render(it.Title())
	desc := itemDescStyle.Render(it.Description())
	if index == m.Index() {
		title = selectedTitleStyle.Render(it.Title())
		desc = selectedDescStyle.Render(it.Description())
	}
	if f := strings.TrimSpace(m.FilterValue()); f != "" {
		raw := it.Title()
		if start, end, ok := matchFold(raw, f); ok {
			title = itemTitleStyle.Render(raw[:start]) + filterMatchStyle.Render(raw[start:end]) + itemTitleStyle.Render(raw[end:])
		}
	}
	io.WriteString(w, lipgloss.JoinVertical(lipgloss.Left, title, desc))
}

// matchFold returns the byte range of the first case-insensitive match of sub
// in s. Offsets index s itself; case mapping may change a rune's byte length.
func matchFold(s, sub string) (start, end int, ok bool) {
	n := utf8.RuneCountInString(sub)
	if n == 0 {
		return 0, 0, false
	}
	for i := range s {
		j, count := i, 0
		for count < n && j < len(s) {
			_, size := utf8.DecodeRuneInString(s[j:])
			j += size
			count++
		}
		if count < n {
			break
		}
		if strings.EqualFold(s[i:j], sub) {
			return i, j, true
		}
	}
	return 0, 0, false
}
