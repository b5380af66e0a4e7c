package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		w, h := msg.Width-4, msg.Height-chrome-2
		if h < 1 {
			h = 1
		}
		m.overview.Width = w
		m.overview.Height = h
		m.eventList.SetSize(w, h)
		m.planModel.SetSize(w, h)
		return m, nil

	case tea.KeyMsg:
		// Typing into the event filter must not switch tabs or quit.
		if m.session == StateEvents && m.eventList.Filtering() {
			m.eventList, cmd = m.eventList.Update(msg)
			return m, cmd
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.Right):
			m.session = (m.session + 1) % SessionState(len(tabTitles))
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab), key.Matches(msg, m.keys.Left):
			m.session = (m.session - 1 + SessionState(len(tabTitles))) % SessionState(len(tabTitles))
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	switch m.session {
	case StateOverview:
		m.overview, cmd = m.overview.Update(msg)
	case StateEvents:
		m.eventList, cmd = m.eventList.Update(msg)
	case StatePlan:
		m.planModel, cmd = m.planModel.Update(msg)
	}
	return m, cmd
}
