package eventlist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/enduro/internal/analytics"
	"github.com/julianstephens/enduro/internal/models"
)

type Item struct {
	Event models.Event
}

func (i Item) Title() string {
	switch i.Event.Status {
	case models.EventStatusCompleted:
		if n := i.Event.CompletionCount(); n > 1 {
			return fmt.Sprintf("✓ %s (x%d)", i.Event.Name, n)
		}
		return "✓ " + i.Event.Name
	case models.EventStatusUpcoming:
		return "▶ " + i.Event.Name
	default:
		return "☆ " + i.Event.Name
	}
}

func (i Item) Description() string {
	parts := []string{string(i.Event.Type), string(i.Event.Status)}
	if i.Event.Distance != nil {
		parts = append(parts, fmt.Sprintf("%.1f km", *i.Event.Distance))
	}
	if i.Event.Elevation != nil {
		parts = append(parts, fmt.Sprintf("%.0f m", *i.Event.Elevation))
	}
	parts = append(parts, strings.Repeat("★", i.Event.DifficultyLevel()))
	if i.Event.Date != "" {
		parts = append(parts, i.Event.Day())
	}
	if pace := analytics.CalcPace(i.Event.Time, i.Event.DistanceKm()); pace != nil {
		parts = append(parts, analytics.FormatPace(pace))
	}
	return strings.Join(parts, " | ")
}

func (i Item) FilterValue() string {
	return i.Event.Name + " " + i.Event.Location
}

type Model struct {
	list list.Model
}

func New(events []models.Event, width, height int) Model {
	l := list.New(items(events), list.NewDefaultDelegate(), width, height)
	l.Title = "Events"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // help is rendered by the dashboard

	return Model{list: l}
}

func items(events []models.Event) []list.Item {
	out := make([]list.Item, len(events))
	for i, e := range events {
		out[i] = Item{Event: e}
	}
	return out
}

func (m *Model) SetEvents(events []models.Event) {
	m.list.SetItems(items(events))
}

// Filtering reports whether the filter input has focus, so global keys can stand aside.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Selected returns the highlighted event.
func (m Model) Selected() (models.Event, bool) {
	if i, ok := m.list.SelectedItem().(Item); ok {
		return i.Event, true
	}
	return models.Event{}, false
}

// ShortHelp exposes the list's own navigation keys.
func (m Model) ShortHelp() []key.Binding {
	return m.list.ShortHelp()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && !m.Filtering() {
		return "\n  No events yet.\n  Add one with 'enduro event add'."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
