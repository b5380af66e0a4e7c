package plan

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/enduro/internal/models"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	weekStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(5)

	phaseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true).
			Width(7)

	kmStyle = lipgloss.NewStyle().
			Width(8).
			Align(lipgloss.Right)

	notesStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	skippedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	currentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
)

// Model shows the upcoming event's weekly plan in a scrollable viewport.
type Model struct {
	viewport viewport.Model
	Event    *models.Event
	width    int
	height   int
}

func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height)}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.Event == nil || m.Event.TrainingPlan == nil {
		return "No upcoming event. Promote one with 'enduro event promote'."
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

func (m *Model) SetEvent(e *models.Event) {
	m.Event = e
	m.Render()
}

func statusMark(s models.WeekStatus) string {
	switch s {
	case models.WeekDone:
		return doneStyle.Render("✓ done")
	case models.WeekSkipped:
		return skippedStyle.Render("✗ skipped")
	default:
		return pendingStyle.Render("· pending")
	}
}

func (m *Model) Render() {
	if m.Event == nil || m.Event.TrainingPlan == nil {
		m.viewport.SetContent("No plan loaded.")
		return
	}
	e := m.Event
	p := e.TrainingPlan

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s: %d-week plan, %d%% complete", e.Name, p.TotalWeeks, e.Progress)))
	b.WriteString("\n")
	if e.Date != "" {
		b.WriteString(notesStyle.Render("Race day " + e.Day()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, w := range p.WeeklyPlan {
		var status models.WeekStatus
		if w.Week-1 < len(e.TrainingWeeks) {
			status = e.TrainingWeeks[w.Week-1]
		}
		week := weekStyle.Render(fmt.Sprintf("W%02d", w.Week))
		if w.Week == e.Week {
			week = currentStyle.Width(5).Render(fmt.Sprintf("W%02d", w.Week))
		}
		fmt.Fprintf(&b, "%s %s %s  %s  %s\n",
			week,
			phaseStyle.Render(string(w.Phase)),
			kmStyle.Render(fmt.Sprintf("%d km", w.TargetKm)),
			w.Focus,
			statusMark(status),
		)
		if w.Notes != "" {
			fmt.Fprintf(&b, "      %s\n", notesStyle.Render(w.Notes))
		}
	}
	m.viewport.SetContent(b.String())
}
