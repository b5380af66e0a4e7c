package planner

import (
	"fmt"
	"math"

	"github.com/julianstephens/enduro/internal/models"
)

// AttachPlan returns a copy of e promoted to upcoming with plan attached and
// every week pending.
func AttachPlan(e models.Event, plan models.Plan) models.Event {
	e.Status = models.EventStatusUpcoming
	e.TrainingPlan = &plan
	e.TrainingWeeks = make([]models.WeekStatus, plan.TotalWeeks)
	refreshProgress(&e)
	return e
}

// ReplacePlan swaps in a regenerated plan, keeping the recorded week
// statuses that still fit.
func ReplacePlan(e models.Event, plan models.Plan) models.Event {
	e.TrainingPlan = &plan
	e.TrainingWeeks = NormalizeWeeks(e.TrainingWeeks, plan.TotalWeeks)
	refreshProgress(&e)
	return e
}

// DetachPlan returns a copy of e with all plan state cleared.
func DetachPlan(e models.Event) models.Event {
	e.TrainingPlan = nil
	e.TrainingWeeks = nil
	e.Phase = ""
	e.Week = 0
	e.Progress = 0
	return e
}

// SetWeekStatus records the outcome of a 1-based plan week and refreshes the
// event's phase, current week and progress.
func SetWeekStatus(e models.Event, week int, status models.WeekStatus) (models.Event, error) {
	if e.TrainingPlan == nil {
		return e, fmt.Errorf("event %s has no training plan", e.ID)
	}
	if week < 1 || week > e.TrainingPlan.TotalWeeks {
		return e, fmt.Errorf("week %d out of range (1-%d)", week, e.TrainingPlan.TotalWeeks)
	}

	weeks := NormalizeWeeks(e.TrainingWeeks, e.TrainingPlan.TotalWeeks)
	weeks[week-1] = status
	e.TrainingWeeks = weeks
	refreshProgress(&e)
	return e, nil
}

// NormalizeWeeks returns a fresh week-status slice of exactly total entries,
// keeping existing statuses and padding with pending weeks.
func NormalizeWeeks(weeks []models.WeekStatus, total int) []models.WeekStatus {
	out := make([]models.WeekStatus, total)
	copy(out, weeks)
	return out
}

func refreshProgress(e *models.Event) {
	plan := e.TrainingPlan
	if plan == nil || plan.TotalWeeks == 0 {
		e.Phase, e.Week, e.Progress = "", 0, 0
		return
	}

	resolved := 0
	current := 0
	for i, s := range e.TrainingWeeks {
		if s != models.WeekPending {
			resolved++
		} else if current == 0 {
			current = i + 1
		}
	}
	if current == 0 {
		current = plan.TotalWeeks
	}

	phase, _ := plan.PhaseForWeek(current)
	e.Week = current
	e.Phase = string(phase)
	e.Progress = int(math.Round(float64(resolved) / float64(plan.TotalWeeks) * 100))
}
