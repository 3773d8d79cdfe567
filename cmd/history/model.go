// Package history keeps the results computed during one TUI session and
// renders them as a filterable list.
package history

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// Entry is a single calculator result.
type Entry struct {
	ID        string
	Kind      string // calculator that produced the entry, e.g. "cylinder"
	Summary   string // one line result
	Detail    string // full rendered result
	CreatedAt time.Time
}

// NewEntry stamps a result with a fresh id and the current time.
func NewEntry(kind, summary, detail string) Entry {
	return Entry{
		ID:        uuid.NewString(),
		Kind:      kind,
		Summary:   summary,
		Detail:    detail,
		CreatedAt: time.Now(),
	}
}

// History holds underlying entries plus the interactive list model.
type History struct {
	Entries []Entry
	list    list.Model
	ready   bool
	width   int
	height  int
	detail  bool // whether we're showing a single entry
}

var (
	statusBarStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 1)
	filterMatchStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("219")).Bold(true)
	historyTitleBarStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	detailMetaStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	faintStyle           = lipgloss.NewStyle().Faint(true)
)

// New returns an empty history.
func New() *History {
	return &History{}
}

// Add appends to underlying slice and (if list initialized) inserts item.
func (h *History) Add(e Entry) {
	h.Entries = append(h.Entries, e)
	if h.ready {
		h.list.InsertItem(0, historyItem{e}) // newest first
	}
}

// Get returns the entry with the given id.
func (h *History) Get(id string) (Entry, bool) {
	for _, e := range h.Entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// selected looks up the entry under the list cursor.
func (h *History) selected() (Entry, bool) {
	it, ok := h.list.SelectedItem().(historyItem)
	if !ok {
		return Entry{}, false
	}
	return h.Get(it.ID)
}

// ensureList creates or resizes the list model based on dimensions.
func (h *History) ensureList(width, height int) {
	if width == 0 || height == 0 {
		return
	}
	h.width = width
	h.height = height
	listHeight := max(5, height-6) // leave space for header/footer around view
	if !h.ready {
		items := make([]list.Item, 0, len(h.Entries))
		for i := len(h.Entries) - 1; i >= 0; i-- {
			items = append(items, historyItem{h.Entries[i]})
		}
		l := list.New(items, itemDelegate{}, max(10, width-4), listHeight)
		l.Title = "History"
		l.SetShowStatusBar(true)
		l.SetShowPagination(true)
		l.SetFilteringEnabled(true)
		l.Styles.Title = historyTitleBarStyle
		l.Styles.StatusBar = statusBarStyle
		l.Styles.PaginationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
		l.Styles.HelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
		h.list = l
		h.ready = true
		return
	}
	h.list.SetSize(max(10, width-4), listHeight)
}

// Update handles messages specific to the history list.
func (h *History) Update(msg tea.Msg, width, height int) tea.Cmd {
	h.ensureList(width, height)
	if !h.ready {
		return nil
	}
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "esc":
			if h.detail {
				h.detail = false
				return nil
			}
			if h.list.FilterState() == list.Filtering {
				h.list.ResetFilter()
				return nil
			}
		case "enter":
			if h.list.FilterState() != list.Filtering {
				h.detail = true
				return nil
			}
		}
	}
	var cmd tea.Cmd
	h.list, cmd = h.list.Update(msg)
	return cmd
}

// View renders the history list or the selected entry.
func (h *History) View() string {
	if len(h.Entries) == 0 {
		return historyTitleBarStyle.Render("History") + "\n" + faintStyle.Render("No results yet. Complete a form to add one.")
	}
	if !h.ready {
		return historyTitleBarStyle.Render("History") + "\n" + "Loading..."
	}
	if h.detail {
		sel, ok := h.selected()
		if !ok {
			h.detail = false
			return h.list.View()
		}
		b := &strings.Builder{}
		fmt.Fprintln(b, historyTitleBarStyle.Render("Result"))
		fmt.Fprintln(b, detailMetaStyle.Render(fmt.Sprintf("%s | %s | %s", sel.Kind, sel.CreatedAt.Format("15:04:05"), sel.ID[:8])))
		fmt.Fprintln(b)
		fmt.Fprintln(b, sel.Detail)
		fmt.Fprintln(b)
		fmt.Fprintln(b, faintStyle.Render("(esc to go back)"))
		return lipgloss.NewStyle().Width(max(10, h.width-4)).Render(b.String())
	}
	return h.list.View()
}
