package journal

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	journaldto "innerwork/internal/modules/journal/dto"
	"innerwork/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type JournalPort interface {
	PromptToday(ctx context.Context) (journaldto.PromptOutput, error)
	AddEntry(ctx context.Context, input journaldto.AddEntryInput) (journaldto.EntryOutput, error)
	ListEntries(ctx context.Context) ([]journaldto.EntryOutput, error)
	DeleteEntry(ctx context.Context, id string) error
}

// ─── messages ────────────────────────────────────────────────────────────────

type PromptLoadedMsg struct {
	Prompt journaldto.PromptOutput
	Err    error
}

type EntriesLoadedMsg struct {
	Entries []journaldto.EntryOutput
	Err     error
}

// EntryAddedMsg bubbles to the app model so it can refresh insights.
type EntryAddedMsg struct {
	Entry journaldto.EntryOutput
	Err   error
}

type entryDeletedMsg struct{ err error }

// ─── list item ───────────────────────────────────────────────────────────────

var moodIcons = map[string]string{"happy": "☺", "neutral": "−", "sad": "☹"}

type entryItem struct {
	entry journaldto.EntryOutput
}

func (i entryItem) Title() string {
	icon := moodIcons[i.entry.Mood]
	if icon == "" {
		icon = "·"
	}
	return icon + " " + i.entry.Date.Format("Mon Jan 2 15:04")
}

func (i entryItem) Description() string {
	text := i.entry.Text
	if strings.TrimSpace(text) == "" {
		text = "(" + i.entry.MediaKind + " recording)"
	}
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		text = text[:idx]
	}
	return text
}

func (i entryItem) FilterValue() string { return i.entry.Prompt + " " + i.entry.Text }

// ─── model ───────────────────────────────────────────────────────────────────

var moods = []string{"neutral", "happy", "sad"}

type Model struct {
	port      JournalPort
	prompt    journaldto.PromptOutput
	list      list.Model
	editor    textarea.Model
	moodIdx   int
	composing bool
	spinner   spinner.Model
	loading   bool
	status    string
	width     int
	height    int
}

func New(port JournalPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Reflections"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	ta := textarea.New()
	ta.Placeholder = "write your reflection…"
	ta.CharLimit = 0

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		list:    l,
		editor:  ta,
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadPromptCmd(), m.loadEntriesCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case PromptLoadedMsg:
		if msg.Err != nil {
			m.status = "prompt: " + msg.Err.Error()
		} else {
			m.prompt = msg.Prompt
		}

	case EntriesLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.status = "load entries: " + msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Entries))
		for i, e := range msg.Entries {
			items[len(msg.Entries)-1-i] = entryItem{entry: e}
		}
		cmds = append(cmds, m.list.SetItems(items))

	case EntryAddedMsg:
		if msg.Err != nil {
			m.status = "save: " + msg.Err.Error()
		} else {
			m.status = "entry saved"
			m.composing = false
			m.editor.Reset()
			m.editor.Blur()
			cmds = append(cmds, m.loadEntriesCmd())
		}

	case entryDeletedMsg:
		if msg.err != nil {
			m.status = "delete: " + msg.err.Error()
		} else {
			m.status = "entry deleted"
			cmds = append(cmds, m.loadEntriesCmd())
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if m.composing {
			switch msg.String() {
			case "esc":
				m.composing = false
				m.editor.Blur()
				m.status = "discarded"
				return m, nil
			case "ctrl+t":
				m.moodIdx = (m.moodIdx + 1) % len(moods)
				return m, nil
			case "ctrl+s":
				text := strings.TrimSpace(m.editor.Value())
				if text == "" {
					m.status = "nothing to save"
					return m, nil
				}
				return m, m.addEntryCmd(text, moods[m.moodIdx])
			}
			var cmd tea.Cmd
			m.editor, cmd = m.editor.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "a":
			if !m.list.SettingFilter() {
				m.composing = true
				m.moodIdx = 0
				return m, m.editor.Focus()
			}
		case "x":
			if item, ok := m.list.SelectedItem().(entryItem); ok && !m.list.SettingFilter() {
				return m, m.deleteEntryCmd(item.entry.ID)
			}
		}
	}

	if !m.loading && !m.composing {
		var lCmd tea.Cmd
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading journal…")
	}

	header := theme.Pane.Width(m.width - 2).Render(
		theme.Title.Render("Today's prompt") + "\n" + m.prompt.Prompt)
	headerH := lipgloss.Height(header)
	bodyH := m.height - headerH
	if bodyH < 1 {
		bodyH = 1
	}

	var body string
	if m.composing {
		mood := moods[m.moodIdx]
		footer := theme.MoodStyle(mood).Render("mood: "+mood) +
			theme.Muted.Render("   ctrl+t: mood  ctrl+s: save  esc: cancel")
		body = lipgloss.NewStyle().Width(m.width).Height(bodyH).Render(
			m.editor.View() + "\n" + footer)
	} else {
		hint := theme.Muted.Render("a: add reflection  x: delete  /: filter")
		body = lipgloss.NewStyle().Width(m.width).Height(bodyH).Render(
			m.list.View() + "\n" + hint)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

// Composing reports whether the editor owns the keyboard, so global
// bindings must yield.
func (m Model) Composing() bool { return m.composing }

// Filtering reports whether the list's search filter is active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Status() string { return m.status }

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	m.list.SetSize(m.width, m.height-6)
	m.editor.SetWidth(m.width - 4)
	m.editor.SetHeight(m.height - 8)
}

func (m Model) loadPromptCmd() tea.Cmd {
	return func() tea.Msg {
		prompt, err := m.port.PromptToday(context.Background())
		return PromptLoadedMsg{Prompt: prompt, Err: err}
	}
}

func (m Model) loadEntriesCmd() tea.Cmd {
	return func() tea.Msg {
		entries, err := m.port.ListEntries(context.Background())
		return EntriesLoadedMsg{Entries: entries, Err: err}
	}
}

func (m Model) addEntryCmd(text, mood string) tea.Cmd {
	return func() tea.Msg {
		entry, err := m.port.AddEntry(context.Background(), journaldto.AddEntryInput{Text: text, Mood: mood})
		return EntryAddedMsg{Entry: entry, Err: err}
	}
}

func (m Model) deleteEntryCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return entryDeletedMsg{err: m.port.DeleteEntry(context.Background(), id)}
	}
}
