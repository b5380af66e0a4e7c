package tui

import "github.com/charmbracelet/lipgloss"

var (
	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	docStyle = lipgloss.NewStyle().Padding(1, 2, 0, 2)

	sectionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(20)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	recoveryStyles = map[string]lipgloss.Style{
		"fresh":    lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		"moderate": lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		"fatigued": lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
)

// chrome is the height taken by the tab bar, padding and help line.
const chrome = 4
