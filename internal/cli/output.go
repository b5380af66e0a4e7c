package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/enduro/internal/analytics"
	"github.com/julianstephens/enduro/internal/export"
	"github.com/julianstephens/enduro/internal/models"
)

var (
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	LabelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	MutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	DangerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// Placeholder stands in for metrics that are not defined.
const Placeholder = "—"

// OutputFlags adds --format to read commands.
type OutputFlags struct {
	Format string `short:"f" help:"Output format (text|json|yaml)." enum:"text,json,yaml" default:"text"`
}

// Emit writes v in the requested structured format. It reports false for
// text output, leaving rendering to the caller.
func (c *Context) Emit(flags OutputFlags, v any) (bool, error) {
	if flags.Format == "" || flags.Format == "text" {
		return false, nil
	}
	format, err := export.ParseFormat(flags.Format)
	if err != nil {
		return true, err
	}
	return true, export.Write(c.Out, format, v)
}

// Field prints an aligned label/value line.
func (c *Context) Field(label string, value any) {
	c.Printf("  %s %v\n", LabelStyle.Render(fmt.Sprintf("%-14s", label+":")), value)
}

func FormatKm(v *float64) string {
	if v == nil {
		return Placeholder
	}
	return fmt.Sprintf("%.1f km", *v)
}

func FormatMeters(v *float64) string {
	if v == nil {
		return Placeholder
	}
	return fmt.Sprintf("%.0f m", *v)
}

func FormatPct(v *float64) string {
	if v == nil {
		return Placeholder
	}
	return fmt.Sprintf("%+.1f%%", *v)
}

func OrPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return Placeholder
	}
	return s
}

// StatusBadge colours an event status.
func StatusBadge(s models.EventStatus) string {
	switch s {
	case models.EventStatusCompleted:
		return SuccessStyle.Render(string(s))
	case models.EventStatusUpcoming:
		return WarningStyle.Render(string(s))
	default:
		return MutedStyle.Render(string(s))
	}
}

// WeekBadge renders a plan week's status.
func WeekBadge(s models.WeekStatus) string {
	switch s {
	case models.WeekDone:
		return SuccessStyle.Render("done")
	case models.WeekSkipped:
		return DangerStyle.Render("skipped")
	default:
		return MutedStyle.Render("pending")
	}
}

// EventPace is the event's pace, or the placeholder.
func EventPace(e models.Event) string {
	return analytics.FormatPace(analytics.CalcPace(e.Time, e.DistanceKm()))
}
