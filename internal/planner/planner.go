package planner

import (
	"math"

	"github.com/julianstephens/enduro/internal/constants"
	"github.com/julianstephens/enduro/internal/models"
)

type Generator struct{}

func New() *Generator {
	return &Generator{}
}

// Input carries the event characteristics a plan is derived from.
// Nil Distance or Elevation means the value was never recorded.
type Input struct {
	Distance   *float64
	Difficulty int
	Type       models.EventType
	Elevation  *float64
}

// InputFromEvent extracts the plan inputs from a stored event.
func InputFromEvent(e models.Event) Input {
	return Input{
		Distance:   e.Distance,
		Difficulty: e.Difficulty,
		Type:       e.Type,
		Elevation:  e.Elevation,
	}
}

// distanceTier maps a distance onto the five plan tiers (0 = shortest).
func distanceTier(distance float64) int {
	switch {
	case distance <= 20:
		return 0
	case distance <= 50:
		return 1
	case distance <= 100:
		return 2
	case distance <= 200:
		return 3
	default:
		return 4
	}
}

var (
	tierBaseWeeks = [5]int{8, 10, 12, 14, 16}
	tierPeakKm    = [5]float64{25, 40, 60, 80, 100}
)

func difficultyAdjustment(difficulty int) int {
	switch {
	case difficulty <= 2:
		return -1
	case difficulty >= 5:
		return 2
	case difficulty == 4:
		return 1
	default:
		return 0
	}
}

// TotalWeeks returns the plan length for a distance and difficulty, within [8,16].
func TotalWeeks(distance float64, difficulty int) int {
	total := tierBaseWeeks[distanceTier(distance)] + difficultyAdjustment(models.ClampDifficulty(difficulty))
	if total < constants.MinPlanWeeks {
		return constants.MinPlanWeeks
	}
	if total > constants.MaxPlanWeeks {
		return constants.MaxPlanWeeks
	}
	return total
}

// PeakWeeklyKm returns the weekly distance the peak phase works towards.
func PeakWeeklyKm(distance float64) float64 {
	return tierPeakKm[distanceTier(distance)]
}

// AllocatePhases splits totalWeeks into base, build, peak and taper.
// Base is derived by subtraction so the four counts always sum to totalWeeks.
func AllocatePhases(totalWeeks, difficulty int) (base, build, peak, taper int) {
	taper = 1
	if totalWeeks >= 12 {
		taper = 2
	}
	peak = 1
	if totalWeeks >= 10 {
		peak = 2
	}
	remaining := totalWeeks - taper - peak
	if remaining < 0 {
		remaining = 0
	}

	ratio := constants.BuildRatioDefault
	if models.ClampDifficulty(difficulty) >= 4 {
		ratio = constants.BuildRatioHard
	}
	build = int(math.Round(float64(remaining) * ratio))
	base = remaining - build
	return base, build, peak, taper
}

// GeneratePlan synthesizes a periodised plan. It never fails: missing or
// out-of-range inputs are coerced to their defaults.
func (g *Generator) GeneratePlan(in Input) models.Plan {
	distance := 0.0
	if in.Distance != nil && *in.Distance > 0 {
		distance = *in.Distance
	}
	difficulty := models.ClampDifficulty(in.Difficulty)
	eventType := in.Type
	if !eventType.Valid() {
		eventType = models.EventTypeUltra
	}

	totalWeeks := TotalWeeks(distance, difficulty)
	peakKm := PeakWeeklyKm(distance)
	base, build, peak, taper := AllocatePhases(totalWeeks, difficulty)

	plan := models.Plan{
		TotalWeeks: totalWeeks,
		Phases: []models.Phase{
			{Name: models.PhaseBase, Description: phaseDescriptions[models.PhaseBase], Weeks: base},
			{Name: models.PhaseBuild, Description: phaseDescriptions[models.PhaseBuild], Weeks: build},
			{Name: models.PhasePeak, Description: phaseDescriptions[models.PhasePeak], Weeks: peak},
			{Name: models.PhaseTaper, Description: phaseDescriptions[models.PhaseTaper], Weeks: taper},
		},
		WeeklyPlan: make([]models.WeekEntry, 0, totalWeeks),
	}

	terrain := terrainFor(eventType)
	week := 1
	for _, phase := range plan.Phases {
		for i := 0; i < phase.Weeks; i++ {
			progress := float64(i) / float64(phase.Weeks)
			deload := isDeloadWeek(phase.Name, i)

			plan.WeeklyPlan = append(plan.WeeklyPlan, models.WeekEntry{
				Week:     week,
				Phase:    phase.Name,
				Focus:    weekFocus(phase.Name, i, deload),
				TargetKm: int(math.Round(peakKm * rampFactor(phase.Name, progress, deload))),
				Notes:    weekNotes(phase.Name, terrain, progress, deload, in.Elevation),
			})
			week++
		}
	}

	return plan
}

// GeneratePlanForEvent is GeneratePlan over a stored event's fields.
func (g *Generator) GeneratePlanForEvent(e models.Event) models.Plan {
	return g.GeneratePlan(InputFromEvent(e))
}

func isDeloadWeek(phase models.PhaseName, i int) bool {
	return phase == models.PhaseBuild && (i+1)%constants.DeloadInterval == 0
}

// rampFactor is the share of peak weekly km for a week at the given intra-phase progress.
func rampFactor(phase models.PhaseName, progress float64, deload bool) float64 {
	switch phase {
	case models.PhaseBase:
		return 0.30 + 0.25*progress
	case models.PhaseBuild:
		f := 0.55 + 0.35*progress
		if deload {
			f *= constants.DeloadFactor
		}
		return f
	case models.PhasePeak:
		return 0.90 + 0.10*progress
	case models.PhaseTaper:
		return 0.60 - 0.30*progress
	default:
		return 0
	}
}

// ElevationTarget is the suggested weekly climbing in metres for non-taper weeks.
func ElevationTarget(elevation, progress float64) int {
	return int(math.Round(elevation * (0.2 + 0.2*progress)))
}
