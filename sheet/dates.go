package sheet

import (
	"strconv"
	"strings"
	"time"
)

// Layouts tried before falling back to positional splitting.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"January 2, 2006",
	"Jan 2, 2006",
	"2006/01/02",
}

// ParseDate turns a free-text date string into a local-time instant.
//
// The first pass tries the common layouts above. Failing that, the string is
// split on "/", "." or "-" and, when exactly three parts result, read
// positionally as month, day, year. The month-first assumption matches the
// sheet this service was built against; do not swap it for locale parsing.
//
// ok is false when no attempt produced a valid date. Callers filtering by
// date must drop such records rather than fail.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}

	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '/' || r == '.' || r == '-'
	})
	if len(parts) == 3 {
		m, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
		d, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
		y, err3 := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err1 == nil && err2 == nil && err3 == nil && m >= 1 && m <= 12 && d >= 1 && d <= 31 {
			t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.Local)
			// time.Date normalizes overflow (e.g. Feb 30); reject those.
			if t.Day() == d && int(t.Month()) == m {
				return t, true
			}
		}
	}

	return time.Time{}, false
}

// DayRange returns the inclusive [start-of-day, end-of-day] instants for a
// YYYY-MM-DD calendar date in local time. ok is false for unparsable input.
func DayRange(date string) (time.Time, time.Time, bool) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	start := day
	end := day.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	return start, end, true
}
