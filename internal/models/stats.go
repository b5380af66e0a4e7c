package models

// RecordCategory names a metric tracked for personal records.
type RecordCategory string

const (
	RecordLongestDistance   RecordCategory = "longestDistance"
	RecordMostElevation     RecordCategory = "mostElevation"
	RecordHighestDifficulty RecordCategory = "highestDifficulty"
	RecordMostCompletions   RecordCategory = "mostCompletions"
	RecordFastestPace       RecordCategory = "fastestPace"

	// Timeline categories
	RecordDistance   RecordCategory = "distance"
	RecordElevation  RecordCategory = "elevation"
	RecordDifficulty RecordCategory = "difficulty"
)

// Record is the event holding a personal record and the value it set.
type Record struct {
	EventID   string  `json:"eventId"`
	EventName string  `json:"eventName"`
	Date      string  `json:"date,omitempty"`
	Value     float64 `json:"value"`
}

// TimelineEntry is one record break, in chronological order.
type TimelineEntry struct {
	Category  RecordCategory `json:"category"`
	Value     float64        `json:"value"`
	EventID   string         `json:"eventId"`
	EventName string         `json:"eventName"`
	Date      string         `json:"date"`
}

type YearStats struct {
	Year         int     `json:"year"`
	Distance     float64 `json:"distance"`
	Elevation    float64 `json:"elevation"`
	Events       int     `json:"events"`
	HasYearDates bool    `json:"hasYearDates"`
}

// YearOverYear holds percentage changes; nil when the previous year was zero.
type YearOverYear struct {
	DistancePct  *float64 `json:"distancePct"`
	ElevationPct *float64 `json:"elevationPct"`
	EventsPct    *float64 `json:"eventsPct"`
}

type TypeStats struct {
	Type     EventType `json:"type"`
	Events   int       `json:"events"`
	Distance float64   `json:"distance"`
}

// StatsSnapshot is recomputed on every call and never mutated afterwards.
type StatsSnapshot struct {
	TotalDistance  float64                    `json:"totalDistance"`
	TotalEvents    int                        `json:"totalEvents"`
	TotalElevation float64                    `json:"totalElevation"`
	Records        map[RecordCategory]*Record `json:"records"`
	Timeline       []TimelineEntry            `json:"timeline"`
	CurrentYear    YearStats                  `json:"currentYear"`
	PreviousYear   YearStats                  `json:"previousYear"`
	YearOverYear   YearOverYear               `json:"yearOverYear"`
	Years          []YearStats                `json:"years"`
	ByType         []TypeStats                `json:"byType"`
	FunFacts       []string                   `json:"funFacts"`
}

// Streaks are counted in consecutive weekly check-ins.
type Streaks struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

type RecoveryScore string

const (
	RecoveryFresh    RecoveryScore = "fresh"
	RecoveryModerate RecoveryScore = "moderate"
	RecoveryFatigued RecoveryScore = "fatigued"
)

type RecoveryResult struct {
	Score         RecoveryScore `json:"score"`
	Message       string        `json:"message"`
	DaysSinceLast *int          `json:"daysSinceLast"`
	AvgGap        *float64      `json:"avgGap"`
	RecentLoad    float64       `json:"recentLoad"`
}
