package app

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	historydto "innerwork/internal/modules/history/dto"
	journaldto "innerwork/internal/modules/journal/dto"
	ritualdto "innerwork/internal/modules/ritual/dto"
	"innerwork/internal/ui/components"
	"innerwork/internal/ui/theme"
	historyview "innerwork/internal/ui/views/history"
	insightsview "innerwork/internal/ui/views/insights"
	journalview "innerwork/internal/ui/views/journal"
	ritualview "innerwork/internal/ui/views/ritual"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// The app-level ports extend the view ports with the operations only the
// palette reaches (reindex).

type JournalPort interface {
	journalview.JournalPort
	Reindex(ctx context.Context) error
}

type RitualPort interface {
	ritualview.RitualPort
	Reindex(ctx context.Context) error
}

type HistoryPort = historyview.HistoryPort

type InsightsPort = insightsview.InsightsPort

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabJournal tabID = iota
	tabRitual
	tabHistory
	tabInsights
	tabCount
)

var tabLabels = [tabCount]string{
	"Journal", "Ritual", "History", "Insights",
}

// ─── async messages ───────────────────────────────────────────────────────────

type reindexDoneMsg struct{ err error }

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Add     key.Binding
	Goal    key.Binding
	Delete  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add reflection")),
		Goal:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "set goal")),
		Delete:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete record")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Add, k.Goal},
		{k.Delete},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the help
// overlay, and the command palette. All business logic is delegated to
// port interfaces; all rendering is delegated to sub-views.
type Model struct {
	journalPath string

	journal JournalPort
	ritual  RitualPort
	history HistoryPort

	journalView  journalview.Model
	ritualView   ritualview.Model
	historyView  historyview.Model
	insightsView insightsview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	status    string
	width     int
	height    int
}

func NewModel(
	journalPath string,
	journal JournalPort,
	ritual RitualPort,
	history HistoryPort,
	insights InsightsPort,
) Model {
	return Model{
		journalPath:  journalPath,
		journal:      journal,
		ritual:       ritual,
		history:      history,
		journalView:  journalview.New(journal),
		ritualView:   ritualview.New(ritual),
		historyView:  historyview.New(history),
		insightsView: insightsview.New(insights),
		activeTab:    tabJournal,
		keys:         defaultKeys(),
		help:         help.New(),
		palette:      components.NewPalette(),
		status:       "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.journalView.Init(),
		m.ritualView.Init(),
		m.historyView.Init(),
		m.insightsView.Init(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()

	// Record changes invalidate the derived views, so these bubble up
	// here instead of staying inside their tab.
	case journalview.EntryAddedMsg:
		var cmd tea.Cmd
		m.journalView, cmd = m.journalView.Update(msg)
		cmds = append(cmds, cmd)
		if msg.Err == nil {
			m.status = "reflection saved"
			cmds = append(cmds, m.historyView.Reload(), m.insightsView.Reload())
		}
		return m, tea.Batch(cmds...)

	case ritualview.SessionCompletedMsg:
		var cmd tea.Cmd
		m.ritualView, cmd = m.ritualView.Update(msg)
		cmds = append(cmds, cmd)
		if msg.Err == nil {
			m.status = msg.Session.Kind + " session recorded"
			cmds = append(cmds, m.historyView.Reload(), m.insightsView.Reload())
		}
		return m, tea.Batch(cmds...)

	case reindexDoneMsg:
		if msg.err != nil {
			m.status = "reindex: " + msg.err.Error()
		} else {
			m.status = "projections rebuilt"
			cmds = append(cmds, m.historyView.Reload(), m.insightsView.Reload())
		}
		return m, tea.Batch(cmds...)

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to sub-view when it owns the keyboard.
		if m.subViewCapturing() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		case "?":
			m.showHelp = !m.showHelp
		case ":":
			cmds = append(cmds, m.palette.Open())
			return m, tea.Batch(cmds...)
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabJournal:
		m.journalView, tabCmd = m.journalView.Update(msg)
	case tabRitual:
		m.ritualView, tabCmd = m.ritualView.Update(msg)
	case tabHistory:
		m.historyView, tabCmd = m.historyView.Update(msg)
	case tabInsights:
		m.insightsView, tabCmd = m.insightsView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabJournal:
		return m.journalView.View()
	case tabRitual:
		return m.ritualView.View()
	case tabHistory:
		return m.historyView.View()
	case tabInsights:
		return m.insightsView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "innerwork  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if note := m.activeViewStatus(); note != "" {
		left = note
	}
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

func (m Model) activeViewStatus() string {
	switch m.activeTab {
	case tabJournal:
		return m.journalView.Status()
	case tabRitual:
		return m.ritualView.Status()
	case tabHistory:
		return m.historyView.Status()
	case tabInsights:
		return m.insightsView.Status()
	}
	return ""
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "journal:add":
		text := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))
		if text == "" {
			m.status = "usage: journal:add <text>"
			return m, nil
		}
		m.activeTab = tabJournal
		return m, m.addEntryCmd(text)

	case "journal:prompt":
		m.activeTab = tabJournal
		m.status = "switched to Journal tab"
		return m, nil

	case "ritual:goal":
		goal := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))
		if goal == "" {
			m.status = "usage: ritual:goal <goal>"
			return m, nil
		}
		m.activeTab = tabRitual
		return m, m.setGoalCmd(goal)

	case "ritual:complete":
		if len(parts) < 3 {
			m.status = "usage: ritual:complete <kind> <rep;rep;...>"
			return m, nil
		}
		raw := strings.TrimSpace(strings.TrimPrefix(input, parts[0]+" "+parts[1]))
		var reps []string
		for _, rep := range strings.Split(raw, ";") {
			if trimmed := strings.TrimSpace(rep); trimmed != "" {
				reps = append(reps, trimmed)
			}
		}
		m.activeTab = tabRitual
		return m, m.completeSessionCmd(parts[1], reps)

	case "history:filter":
		if len(parts) < 2 {
			m.status = "usage: history:filter <all|journal|ritual>"
			return m, nil
		}
		m.activeTab = tabHistory
		return m, m.historyView.SetFilter(parts[1])

	case "history:delete":
		if len(parts) < 3 {
			m.status = "usage: history:delete <id> <journal|ritual>"
			return m, nil
		}
		m.activeTab = tabHistory
		return m, m.deleteRecordCmd(parts[1], parts[2])

	case "insights:refresh":
		m.activeTab = tabInsights
		return m, m.insightsView.Reload()

	case "reindex":
		m.status = "rebuilding projections…"
		return m, m.reindexCmd()

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// subViewCapturing reports whether the active tab owns the keyboard
// (text entry or list filtering), in which case global bindings yield.
func (m Model) subViewCapturing() bool {
	switch m.activeTab {
	case tabJournal:
		return m.journalView.Composing() || m.journalView.Filtering()
	case tabRitual:
		return m.ritualView.Composing() || m.ritualView.Filtering()
	case tabHistory:
		return m.historyView.Filtering()
	}
	return false
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.journalView, _ = m.journalView.Update(sz)
	m.ritualView, _ = m.ritualView.Update(sz)
	m.historyView, _ = m.historyView.Update(sz)
	m.insightsView, _ = m.insightsView.Update(sz)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) addEntryCmd(text string) tea.Cmd {
	return func() tea.Msg {
		entry, err := m.journal.AddEntry(context.Background(), journaldto.AddEntryInput{Text: text})
		return journalview.EntryAddedMsg{Entry: entry, Err: err}
	}
}

func (m Model) setGoalCmd(goal string) tea.Cmd {
	return func() tea.Msg {
		status, err := m.ritual.SetGoal(context.Background(), ritualdto.SetGoalInput{Goal: goal})
		return ritualview.StatusLoadedMsg{Status: status, Err: err}
	}
}

func (m Model) completeSessionCmd(kind string, reps []string) tea.Cmd {
	return func() tea.Msg {
		session, err := m.ritual.CompleteSession(context.Background(), ritualdto.CompleteSessionInput{
			Kind:        kind,
			Repetitions: reps,
		})
		return ritualview.SessionCompletedMsg{Session: session, Err: err}
	}
}

func (m Model) deleteRecordCmd(id, category string) tea.Cmd {
	return func() tea.Msg {
		if err := m.history.Delete(context.Background(), id, category); err != nil {
			return historyview.ItemsLoadedMsg{Err: err}
		}
		items, err := m.history.List(context.Background(), historydto.FilterAll)
		return historyview.ItemsLoadedMsg{Items: items, Err: err}
	}
}

func (m Model) reindexCmd() tea.Cmd {
	return func() tea.Msg {
		if err := m.journal.Reindex(context.Background()); err != nil {
			return reindexDoneMsg{err: err}
		}
		return reindexDoneMsg{err: m.ritual.Reindex(context.Background())}
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
