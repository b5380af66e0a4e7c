package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/enduro/internal/analytics"
	"github.com/julianstephens/enduro/internal/models"
	"github.com/julianstephens/enduro/internal/tui/components/eventlist"
	"github.com/julianstephens/enduro/internal/tui/components/plan"
	"github.com/julianstephens/enduro/internal/validation"
)

type SessionState int

const (
	StateOverview SessionState = iota
	StateEvents
	StatePlan
)

var tabTitles = []string{"Overview", "Events", "Plan"}

// Model is a read-only dashboard over one loaded AppState.
type Model struct {
	state     *models.AppState
	now       time.Time
	stats     models.StatsSnapshot
	streaks   models.Streaks
	recovery  models.RecoveryResult
	upcoming  *models.Event
	session   SessionState
	keys      KeyMap
	help      help.Model
	overview  viewport.Model
	eventList eventlist.Model
	planModel plan.Model
	quitting  bool
	width     int
	height    int

	validationWarning string
}

// NewModel computes every metric up front; the dashboard never writes.
func NewModel(state *models.AppState, now time.Time) Model {
	if state == nil {
		state = &models.AppState{}
	}

	m := Model{
		state:     state,
		now:       now,
		stats:     analytics.ComputeStats(state.Events, state.Preferences, now),
		streaks:   analytics.ComputeStreaks(state.Checkins, now),
		recovery:  analytics.ComputeRecovery(state.Events, now),
		session:   StateOverview,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		overview:  viewport.New(0, 0),
		eventList: eventlist.New(state.Events, 0, 0),
		planModel: plan.New(0, 0),
	}

	if e, ok := state.Upcoming(); ok {
		m.upcoming = &e
	}
	m.planModel.SetEvent(m.upcoming)
	m.overview.SetContent(m.renderOverview())

	if result := validation.New().ValidateState(state); result.HasConflicts() {
		m.validationWarning = fmt.Sprintf("⚠ %d validation warning(s), run 'enduro validate'", len(result.Conflicts))
	}

	return m
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Tab, m.keys.Up, m.keys.Down, m.keys.Quit, m.keys.Help}
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Left, m.keys.Right, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down}
	if m.session == StateEvents {
		navigation = m.eventList.ShortHelp()
	}
	return [][]key.Binding{global, navigation}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Session reports the active tab.
func (m Model) Session() SessionState {
	return m.session
}
