package insights

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	insightsdto "innerwork/internal/modules/insights/dto"
	"innerwork/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type InsightsPort interface {
	Summary(ctx context.Context) (insightsdto.Summary, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type SummaryLoadedMsg struct {
	Summary insightsdto.Summary
	Err     error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port     InsightsPort
	summary  insightsdto.Summary
	viewport viewport.Model
	loaded   bool
	note     string
	width    int
	height   int
}

func New(port InsightsPort) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)
	return Model{port: port, viewport: vp}
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
		m.viewport.Width = m.width - 2
		m.viewport.Height = m.height - 2
		if m.loaded {
			m.viewport.SetContent(m.render())
		}

	case SummaryLoadedMsg:
		if msg.Err != nil {
			m.note = "insights: " + msg.Err.Error()
			return m, nil
		}
		m.summary = msg.Summary
		m.loaded = true
		m.viewport.SetContent(m.render())

	case tea.KeyMsg:
		if msg.String() == "r" {
			return m, m.loadCmd()
		}
	}

	var vCmd tea.Cmd
	m.viewport, vCmd = m.viewport.Update(msg)
	cmds = append(cmds, vCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if !m.loaded {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, "Computing insights…")
	}
	return m.viewport.View()
}

// Reload refreshes the summary, used after records change elsewhere.
func (m Model) Reload() tea.Cmd { return m.loadCmd() }

func (m Model) Status() string { return m.note }

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		summary, err := m.port.Summary(context.Background())
		return SummaryLoadedMsg{Summary: summary, Err: err}
	}
}

const barWidth = 24

func (m Model) render() string {
	s := m.summary
	var sb strings.Builder

	sb.WriteString(theme.Title.Render("Insights") + "\n\n")
	sb.WriteString(fmt.Sprintf("reflections: %d    sessions: %d\n", s.TotalEntries, s.TotalSessions))
	sb.WriteString(fmt.Sprintf("journal streak: %s    ritual streak: %s\n\n",
		theme.Hot.Render(fmt.Sprintf("%d day(s)", s.EntryStreak)),
		theme.Hot.Render(fmt.Sprintf("%d day(s)", s.SessionStreak))))

	sb.WriteString(theme.Title.Render("Mood") + "\n")
	total := s.Moods.Happy + s.Moods.Neutral + s.Moods.Sad
	sb.WriteString(moodBar("happy", s.Moods.Happy, total, theme.Good))
	sb.WriteString(moodBar("neutral", s.Moods.Neutral, total, theme.Muted))
	sb.WriteString(moodBar("sad", s.Moods.Sad, total, theme.Bad))

	sb.WriteString("\n" + theme.Title.Render("Last 7 days") + "\n")
	max := 0
	for _, day := range s.WeeklyActivity {
		if day.Count > max {
			max = day.Count
		}
	}
	for _, day := range s.WeeklyActivity {
		sb.WriteString(activityBar(day.Label, day.Count, max))
	}
	sb.WriteString("\n" + theme.Muted.Render("r: refresh"))
	return sb.String()
}

func moodBar(label string, count, total int, style lipgloss.Style) string {
	width := 0
	if total > 0 {
		width = count * barWidth / total
	}
	return fmt.Sprintf("%-8s %s %d\n", label, style.Render(strings.Repeat("█", width)), count)
}

func activityBar(label string, count, max int) string {
	width := 0
	if max > 0 {
		width = count * barWidth / max
	}
	return fmt.Sprintf("%-10s %s %d\n", label, theme.Good.Render(strings.Repeat("▇", width)), count)
}
