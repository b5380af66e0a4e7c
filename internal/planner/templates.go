package planner

import (
	"fmt"
	"strings"

	"github.com/julianstephens/enduro/internal/models"
)

// terrain groups event types for training notes. Ultra and anything
// unrecognised share the general notes.
type terrain int

const (
	terrainGeneral terrain = iota
	terrainMountain
	terrainUrban
)

func terrainFor(t models.EventType) terrain {
	switch t {
	case models.EventTypeMountain:
		return terrainMountain
	case models.EventTypeUrban:
		return terrainUrban
	default:
		return terrainGeneral
	}
}

var phaseDescriptions = map[models.PhaseName]string{
	models.PhaseBase:  "Aerobic foundation: easy volume, consistency and durability.",
	models.PhaseBuild: "Progressive load with longer sessions and event-specific work.",
	models.PhasePeak:  "Highest volume and race-specific rehearsal.",
	models.PhaseTaper: "Shed fatigue while keeping sharpness before race day.",
}

type focusCopy struct {
	first string
	rest  string
}

var phaseFocus = map[models.PhaseName]focusCopy{
	models.PhaseBase: {
		first: "Establish routine",
		rest:  "Aerobic base",
	},
	models.PhaseBuild: {
		first: "Introduce sustained efforts",
		rest:  "Progressive volume",
	},
	models.PhasePeak: {
		first: "Race-specific long efforts",
		rest:  "Race simulation",
	},
	models.PhaseTaper: {
		first: "Cut volume, keep intensity",
		rest:  "Rest and race prep",
	},
}

const deloadFocus = "Deload"

// terrainNotes holds one training note per phase and terrain.
var terrainNotes = map[models.PhaseName]map[terrain]string{
	models.PhaseBase: {
		terrainMountain: "Hike steep trails with poles to build climbing legs.",
		terrainUrban:    "Keep runs conversational on flat routes.",
		terrainGeneral:  "Mix easy runs with long walks on varied ground.",
	},
	models.PhaseBuild: {
		terrainMountain: "Add hill repeats and practise technical descents.",
		terrainUrban:    "Add tempo runs and strides on the road.",
		terrainGeneral:  "Extend the long run and practise fuelling.",
	},
	models.PhasePeak: {
		terrainMountain: "Long days on race-like terrain with full kit.",
		terrainUrban:    "Rehearse goal pace on a course-like route.",
		terrainGeneral:  "Back-to-back long runs on tired legs.",
	},
	models.PhaseTaper: {
		terrainMountain: "Short easy climbs to stay sharp; check mandatory gear.",
		terrainUrban:    "Short race-pace pickups; plan race-morning logistics.",
		terrainGeneral:  "Easy miles, extra sleep and a final gear check.",
	},
}

const deloadNote = "Recovery week: shorten sessions and keep efforts easy."

func weekFocus(phase models.PhaseName, i int, deload bool) string {
	if deload {
		return deloadFocus
	}
	fc := phaseFocus[phase]
	if i == 0 {
		return fc.first
	}
	return fc.rest
}

func weekNotes(phase models.PhaseName, t terrain, progress float64, deload bool, elevation *float64) string {
	var parts []string
	if deload {
		parts = append(parts, deloadNote)
	}
	parts = append(parts, terrainNotes[phase][t])
	if phase != models.PhaseTaper && elevation != nil && *elevation > 0 {
		parts = append(parts, fmt.Sprintf("Aim for ~%dm of climbing this week.", ElevationTarget(*elevation, progress)))
	}
	return strings.Join(parts, " ")
}
