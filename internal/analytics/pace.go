package analytics

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseTime converts a finish time ("HH:MM:SS" or "HH:MM") into seconds.
// Hours may exceed 24. It reports false for anything malformed.
func ParseTime(s string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, false
	}

	values := make([]int, len(parts))
	for i, p := range parts {
		if p == "" {
			return 0, false
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, false
		}
		if i > 0 && n >= 60 {
			return 0, false
		}
		values[i] = n
	}

	seconds := values[0]*3600 + values[1]*60
	if len(values) == 3 {
		seconds += values[2]
	}
	return seconds, true
}

// CalcPace returns seconds per km, or nil unless both the finish time and the
// distance are present and positive.
func CalcPace(finishTime string, distanceKm float64) *float64 {
	seconds, ok := ParseTime(finishTime)
	if !ok || seconds <= 0 || distanceKm <= 0 || math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) {
		return nil
	}
	pace := float64(seconds) / distanceKm
	return &pace
}

// FormatPace renders seconds per km as "M:SS /km".
func FormatPace(pace *float64) string {
	if pace == nil || *pace <= 0 || math.IsInf(*pace, 0) || math.IsNaN(*pace) {
		return "—"
	}
	total := int(math.Round(*pace))
	return fmt.Sprintf("%d:%02d /km", total/60, total%60)
}

// FormatDuration renders a finish time in canonical "H:MM:SS" form, or "—" when malformed.
func FormatDuration(finishTime string) string {
	seconds, ok := ParseTime(finishTime)
	if !ok {
		return "—"
	}
	return fmt.Sprintf("%d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}
