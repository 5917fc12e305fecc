package services

import (
	"strings"
	"time"

	"github.com/MiqayaMahmood/foodeez-0909/internal/models"
)

// IsOpenAt reports whether a business is open at the given instant, judged
// against its per-day hour-range strings (e.g. "09:00 - 12:00, 14:00 - 18:00").
// Today's entry is located by weekday name, case-insensitively, and only the
// first open/close pair is evaluated. A close time at or before the open time
// is an overnight range whose close falls on the next calendar day. With no
// entry for today, or no recognizable range, the business is closed.
func IsOpenAt(hours []models.OpeningHourDay, now time.Time) bool {
	today := now.Weekday().String()
	for _, entry := range hours {
		if !strings.EqualFold(entry.Day, today) {
			continue
		}
		openStr, closeStr, ok := firstTimeRange(entry.Hours)
		if !ok {
			return false
		}
		openMin, err := clockMinutes(openStr)
		if err != nil {
			return false
		}
		closeMin, err := clockMinutes(closeStr)
		if err != nil {
			return false
		}

		nowMin := now.Hour()*60 + now.Minute()
		if closeMin <= openMin { // overnight range
			closeMin += 24 * 60
			if nowMin < openMin {
				nowMin += 24 * 60
			}
		}
		return nowMin >= openMin && nowMin < closeMin
	}
	return false
}

// firstTimeRange extracts the first open/close pair from an hours string.
// Returns ok=false for entries like "Closed" that carry no range.
func firstTimeRange(hours string) (open, close string, ok bool) {
	first := strings.SplitN(hours, ",", 2)[0]
	first = strings.ReplaceAll(first, "–", "-") // en dash
	parts := strings.SplitN(first, "-", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	open = strings.TrimSpace(parts[0])
	close = strings.TrimSpace(parts[1])
	if open == "" || close == "" {
		return "", "", false
	}
	return open, close, true
}

// clockMinutes parses an "HH:MM" time of day into minutes since midnight.
func clockMinutes(value string) (int, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
