package constants

const (
	// Plan length bounds in weeks
	MinPlanWeeks = 8
	MaxPlanWeeks = 16

	// Build share of the weeks left after peak and taper are placed
	BuildRatioHard    = 0.55 // difficulty >= 4
	BuildRatioDefault = 0.45

	// Every DeloadInterval-th build week runs at DeloadFactor of its ramp target
	DeloadInterval = 3
	DeloadFactor   = 0.7

	// Recovery classification thresholds
	RecoveryWindowDays      = 30
	FatiguedDays            = 3
	FatiguedLoadDays        = 7
	FatiguedLoadThreshold   = 3.0
	ModerateDays            = 14
	ModerateLoadThreshold   = 2.0
	StandardEventDistanceKm = 10.0
	StandardEventDifficulty = 3.0

	// Streak tolerance absorbs DST shifts between consecutive Mondays, in seconds
	StreakToleranceSeconds = 3600
)
