package models

import (
	"encoding/json"
	"fmt"
)

type PhaseName string

const (
	PhaseBase  PhaseName = "Base"
	PhaseBuild PhaseName = "Build"
	PhasePeak  PhaseName = "Peak"
	PhaseTaper PhaseName = "Taper"
)

// PhaseOrder is the fixed order phases appear in every plan.
var PhaseOrder = []PhaseName{PhaseBase, PhaseBuild, PhasePeak, PhaseTaper}

type Phase struct {
	Name        PhaseName `json:"name"`
	Description string    `json:"description"`
	Weeks       int       `json:"weeks"`
}

type WeekEntry struct {
	Week     int       `json:"week"` // 1-based
	Phase    PhaseName `json:"phase"`
	Focus    string    `json:"focus"`
	TargetKm int       `json:"targetKm"`
	Notes    string    `json:"notes"`
}

// Plan is a periodised training plan. Phase weeks always sum to TotalWeeks.
type Plan struct {
	TotalWeeks int         `json:"totalWeeks"`
	Phases     []Phase     `json:"phases"`
	WeeklyPlan []WeekEntry `json:"weeklyPlan"`
}

// PhaseForWeek returns the phase a 1-based week falls in.
func (p Plan) PhaseForWeek(week int) (PhaseName, bool) {
	if week < 1 || week > p.TotalWeeks {
		return "", false
	}
	end := 0
	for _, ph := range p.Phases {
		end += ph.Weeks
		if week <= end {
			return ph.Name, true
		}
	}
	return "", false
}

// WeekStatus records how a planned week went. The zero value is a pending week
// and is serialized as JSON null.
type WeekStatus string

const (
	WeekPending WeekStatus = ""
	WeekDone    WeekStatus = "done"
	WeekSkipped WeekStatus = "skipped"
)

func (s WeekStatus) MarshalJSON() ([]byte, error) {
	if s == WeekPending {
		return []byte("null"), nil
	}
	return json.Marshal(string(s))
}

func (s *WeekStatus) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = WeekPending
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseWeekStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseWeekStatus accepts "done", "skipped" and "", "pending" or "null" for a pending week.
func ParseWeekStatus(raw string) (WeekStatus, error) {
	switch raw {
	case "", "null", "pending":
		return WeekPending, nil
	case string(WeekDone):
		return WeekDone, nil
	case string(WeekSkipped):
		return WeekSkipped, nil
	default:
		return WeekPending, fmt.Errorf("invalid week status: %q", raw)
	}
}
