package ritual

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	ritualdto "innerwork/internal/modules/ritual/dto"
	"innerwork/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type RitualPort interface {
	Status(ctx context.Context) (ritualdto.StatusOutput, error)
	SetGoal(ctx context.Context, input ritualdto.SetGoalInput) (ritualdto.StatusOutput, error)
	CompleteSession(ctx context.Context, input ritualdto.CompleteSessionInput) (ritualdto.SessionOutput, error)
	ListSessions(ctx context.Context) ([]ritualdto.SessionOutput, error)
	DeleteSession(ctx context.Context, id string) error
}

// ─── messages ────────────────────────────────────────────────────────────────

type StatusLoadedMsg struct {
	Status ritualdto.StatusOutput
	Err    error
}

type SessionsLoadedMsg struct {
	Sessions []ritualdto.SessionOutput
	Err      error
}

// SessionCompletedMsg bubbles to the app model so it can refresh insights.
type SessionCompletedMsg struct {
	Session ritualdto.SessionOutput
	Err     error
}

type goalSetMsg struct {
	status ritualdto.StatusOutput
	err    error
}

type sessionDeletedMsg struct{ err error }

// ─── list item ───────────────────────────────────────────────────────────────

type sessionItem struct {
	session ritualdto.SessionOutput
}

func (i sessionItem) Title() string {
	return fmt.Sprintf("%s %s ×%d", i.session.Date.Format("Mon Jan 2"), i.session.Kind, len(i.session.Repetitions))
}

func (i sessionItem) Description() string { return i.session.Goal }
func (i sessionItem) FilterValue() string { return i.session.Goal }

// ─── model ───────────────────────────────────────────────────────────────────

type mode int

const (
	modeBrowse mode = iota
	modeGoal
	modeReps
)

var kindCounts = map[string]int{"morning": 3, "afternoon": 6, "night": 9}

type Model struct {
	port      RitualPort
	status    ritualdto.StatusOutput
	list      list.Model
	goalInput textinput.Model
	repsArea  textarea.Model
	mode      mode
	kind      string
	note      string
	width     int
	height    int
}

func New(port RitualPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Sessions"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	ti := textinput.New()
	ti.Placeholder = "what are you manifesting?"
	ti.CharLimit = 256

	ta := textarea.New()
	ta.Placeholder = "one repetition per line"
	ta.CharLimit = 0

	return Model{port: port, list: l, goalInput: ti, repsArea: ta}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadStatusCmd(), m.loadSessionsCmd())
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case StatusLoadedMsg:
		if msg.Err != nil {
			m.note = "status: " + msg.Err.Error()
		} else {
			m.status = msg.Status
		}

	case SessionsLoadedMsg:
		if msg.Err != nil {
			m.note = "load sessions: " + msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Sessions))
		for i, s := range msg.Sessions {
			items[len(msg.Sessions)-1-i] = sessionItem{session: s}
		}
		cmds = append(cmds, m.list.SetItems(items))

	case goalSetMsg:
		if msg.err != nil {
			m.note = "goal: " + msg.err.Error()
		} else {
			m.status = msg.status
			m.note = "goal set"
			m.mode = modeBrowse
			m.goalInput.Blur()
		}

	case SessionCompletedMsg:
		if msg.Err != nil {
			m.note = "session: " + msg.Err.Error()
		} else {
			m.note = fmt.Sprintf("%s session done", msg.Session.Kind)
			m.mode = modeBrowse
			m.repsArea.Reset()
			m.repsArea.Blur()
			cmds = append(cmds, m.loadStatusCmd(), m.loadSessionsCmd())
		}

	case sessionDeletedMsg:
		if msg.err != nil {
			m.note = "delete: " + msg.err.Error()
		} else {
			m.note = "session deleted"
			cmds = append(cmds, m.loadSessionsCmd())
		}

	case tea.KeyMsg:
		switch m.mode {
		case modeGoal:
			switch msg.String() {
			case "esc":
				m.mode = modeBrowse
				m.goalInput.Blur()
				return m, nil
			case "enter":
				return m, m.setGoalCmd(m.goalInput.Value())
			}
			var cmd tea.Cmd
			m.goalInput, cmd = m.goalInput.Update(msg)
			return m, cmd

		case modeReps:
			switch msg.String() {
			case "esc":
				m.mode = modeBrowse
				m.repsArea.Blur()
				return m, nil
			case "ctrl+s":
				return m, m.completeCmd(m.kind, splitReps(m.repsArea.Value()))
			}
			var cmd tea.Cmd
			m.repsArea, cmd = m.repsArea.Update(msg)
			return m, cmd

		case modeBrowse:
			if m.list.SettingFilter() {
				break
			}
			switch msg.String() {
			case "g":
				m.mode = modeGoal
				m.goalInput.SetValue(m.status.Goal)
				return m, m.goalInput.Focus()
			case "1", "2", "3":
				kinds := map[string]string{"1": "morning", "2": "afternoon", "3": "night"}
				m.kind = kinds[msg.String()]
				m.mode = modeReps
				m.repsArea.Reset()
				return m, m.repsArea.Focus()
			case "x":
				if item, ok := m.list.SelectedItem().(sessionItem); ok {
					return m, m.deleteCmd(item.session.ID)
				}
			}
		}
	}

	if m.mode == modeBrowse {
		var lCmd tea.Cmd
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	card := m.renderStatusCard()
	cardH := lipgloss.Height(card)
	bodyH := m.height - cardH
	if bodyH < 1 {
		bodyH = 1
	}

	var body string
	switch m.mode {
	case modeGoal:
		body = theme.PaneActive.Width(m.width - 2).Render(
			theme.Title.Render("Set today's goal") + "\n" + m.goalInput.View() +
				"\n" + theme.Muted.Render("enter: save  esc: cancel"))
	case modeReps:
		need := kindCounts[m.kind]
		body = theme.PaneActive.Width(m.width - 2).Render(
			theme.Title.Render(fmt.Sprintf("%s session — write the goal %d times", m.kind, need)) +
				"\n" + m.repsArea.View() +
				"\n" + theme.Muted.Render("ctrl+s: complete  esc: cancel"))
	default:
		hint := theme.Muted.Render("g: goal  1/2/3: morning/afternoon/night  x: delete  /: filter")
		body = lipgloss.NewStyle().Width(m.width).Height(bodyH).Render(m.list.View() + "\n" + hint)
	}
	return lipgloss.JoinVertical(lipgloss.Left, card, body)
}

// Composing reports whether an input owns the keyboard.
func (m Model) Composing() bool { return m.mode != modeBrowse }

func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Status() string { return m.note }

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	m.list.SetSize(m.width, m.height-8)
	m.repsArea.SetWidth(m.width - 6)
	m.repsArea.SetHeight(m.height - 10)
	m.goalInput.Width = m.width - 10
}

func (m Model) renderStatusCard() string {
	goal := m.status.Goal
	if goal == "" {
		goal = theme.Muted.Render("no goal set — press g")
	}
	slot := func(label string, done bool, count int) string {
		mark := "○"
		style := theme.Muted
		if done {
			mark = "●"
			style = theme.Good
		}
		return style.Render(fmt.Sprintf("%s %s ×%d", mark, label, count))
	}
	slots := strings.Join([]string{
		slot("morning", m.status.Morning, 3),
		slot("afternoon", m.status.Afternoon, 6),
		slot("night", m.status.Night, 9),
	}, "   ")
	return theme.Pane.Width(m.width - 2).Render(
		theme.Title.Render("369 — "+m.status.Day) + "\n" + goal + "\n" + slots)
}

// splitReps turns editor lines into repetition strings, dropping blanks
// so trailing newlines do not count as repetitions.
func splitReps(raw string) []string {
	var reps []string
	for _, line := range strings.Split(raw, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			reps = append(reps, trimmed)
		}
	}
	return reps
}

func (m Model) loadStatusCmd() tea.Cmd {
	return func() tea.Msg {
		status, err := m.port.Status(context.Background())
		return StatusLoadedMsg{Status: status, Err: err}
	}
}

func (m Model) loadSessionsCmd() tea.Cmd {
	return func() tea.Msg {
		sessions, err := m.port.ListSessions(context.Background())
		return SessionsLoadedMsg{Sessions: sessions, Err: err}
	}
}

func (m Model) setGoalCmd(goal string) tea.Cmd {
	return func() tea.Msg {
		status, err := m.port.SetGoal(context.Background(), ritualdto.SetGoalInput{Goal: goal})
		return goalSetMsg{status: status, err: err}
	}
}

func (m Model) completeCmd(kind string, reps []string) tea.Cmd {
	return func() tea.Msg {
		session, err := m.port.CompleteSession(context.Background(), ritualdto.CompleteSessionInput{
			Kind:        kind,
			Repetitions: reps,
		})
		return SessionCompletedMsg{Session: session, Err: err}
	}
}

func (m Model) deleteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return sessionDeletedMsg{err: m.port.DeleteSession(context.Background(), id)}
	}
}
