package history

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	historydto "innerwork/internal/modules/history/dto"
	"innerwork/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type HistoryPort interface {
	List(ctx context.Context, filter string) ([]historydto.Item, error)
	Delete(ctx context.Context, id, category string) error
}

// ─── messages ────────────────────────────────────────────────────────────────

type ItemsLoadedMsg struct {
	Items []historydto.Item
	Err   error
}

type itemDeletedMsg struct{ err error }

// ─── list item ───────────────────────────────────────────────────────────────

type historyItem struct {
	item historydto.Item
}

func (i historyItem) Title() string {
	badge := "[journal]"
	if i.item.Category == historydto.CategoryRitual {
		badge = "[ritual] "
	}
	return badge + " " + i.item.Date.Format("Mon Jan 2 15:04")
}

func (i historyItem) Description() string {
	desc := i.item.Title
	if i.item.Detail != "" {
		desc += " — " + i.item.Detail
	}
	if idx := strings.IndexByte(desc, '\n'); idx >= 0 {
		desc = desc[:idx]
	}
	return desc
}

func (i historyItem) FilterValue() string { return i.item.Title + " " + i.item.Detail }

// ─── model ───────────────────────────────────────────────────────────────────

var filters = []string{historydto.FilterAll, historydto.FilterJournal, historydto.FilterRitual}

type Model struct {
	port      HistoryPort
	list      list.Model
	filterIdx int
	note      string
	width     int
	height    int
}

func New(port HistoryPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "History — all"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return Model{port: port, list: l}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.width, m.height-2)

	case ItemsLoadedMsg:
		if msg.Err != nil {
			m.note = "load history: " + msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Items))
		for i, item := range msg.Items {
			items[i] = historyItem{item: item}
		}
		cmds = append(cmds, m.list.SetItems(items))

	case itemDeletedMsg:
		if msg.err != nil {
			m.note = "delete: " + msg.err.Error()
		} else {
			m.note = "record deleted"
			cmds = append(cmds, m.loadCmd())
		}

	case tea.KeyMsg:
		if m.list.SettingFilter() {
			break
		}
		switch msg.String() {
		case "f":
			m.filterIdx = (m.filterIdx + 1) % len(filters)
			m.list.Title = "History — " + filters[m.filterIdx]
			return m, m.loadCmd()
		case "x":
			if item, ok := m.list.SelectedItem().(historyItem); ok {
				return m, m.deleteCmd(item.item.ID, item.item.Category)
			}
		}
	}

	var lCmd tea.Cmd
	m.list, lCmd = m.list.Update(msg)
	cmds = append(cmds, lCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	hint := theme.Muted.Render("f: cycle filter  x: delete  /: search")
	return lipgloss.NewStyle().Width(m.width).Height(m.height).Render(m.list.View() + "\n" + hint)
}

// SetFilter jumps directly to a named filter, used by the palette.
func (m *Model) SetFilter(filter string) tea.Cmd {
	for i, f := range filters {
		if f == filter {
			m.filterIdx = i
			m.list.Title = "History — " + f
			return m.loadCmd()
		}
	}
	m.note = "unknown filter: " + filter
	return nil
}

// Reload refreshes the list with the active filter.
func (m Model) Reload() tea.Cmd { return m.loadCmd() }

func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Status() string { return m.note }

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) loadCmd() tea.Cmd {
	filter := filters[m.filterIdx]
	return func() tea.Msg {
		items, err := m.port.List(context.Background(), filter)
		return ItemsLoadedMsg{Items: items, Err: err}
	}
}

func (m Model) deleteCmd(id, category string) tea.Cmd {
	return func() tea.Msg {
		return itemDeletedMsg{err: m.port.Delete(context.Background(), id, category)}
	}
}
