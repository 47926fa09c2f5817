package mapview

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"usage-map-server/models"
)

// Aggregation is the derived view of a booking list: per-space groups plus a
// flat list sorted by start time. It is recomputed wholesale whenever the
// booking list is replaced, never mutated in place.
type Aggregation struct {
	// BySpace groups bookings by trimmed space name. Bookings with an
	// empty trimmed space name are excluded here (they still appear in
	// Flat). Order within a group matches input order.
	BySpace map[string][]models.Booking

	// Flat holds every input booking, ordered by normalized start time
	// ascending, with space name as the tie-break.
	Flat []models.Booking
}

// Aggregate derives the grouped and sorted views from a booking list.
// Pure: the input slice is not modified.
func Aggregate(bookings []models.Booking) Aggregation {
	bySpace := make(map[string][]models.Booking)
	for _, b := range bookings {
		key := b.Space()
		if key == "" {
			continue
		}
		bySpace[key] = append(bySpace[key], b)
	}

	flat := make([]models.Booking, len(bookings))
	copy(flat, bookings)
	sort.SliceStable(flat, func(i, j int) bool {
		ki, kj := startSortKey(flat[i].StartTime), startSortKey(flat[j].StartTime)
		if ki != kj {
			return ki < kj
		}
		return flat[i].Space() < flat[j].Space()
	})

	return Aggregation{BySpace: bySpace, Flat: flat}
}

// Count returns the number of bookings for a space, zero when unknown.
func (a Aggregation) Count(spaceID string) int {
	return len(a.BySpace[spaceID])
}

// matches "9:00 AM", "12 pm", "08:05AM": hour 1-12, optional minutes,
// case-insensitive meridiem.
var meridiemTime = regexp.MustCompile(`^(?i)(\d{1,2})(?::(\d{2}))?\s*(AM|PM)$`)

// startSortKey normalizes a 12-hour time label into a 24-hour "HH:MM" key.
// Labels that do not match the pattern sort by their raw text.
func startSortKey(s string) string {
	s = strings.TrimSpace(s)
	m := meridiemTime.FindStringSubmatch(s)
	if m == nil {
		return s
	}

	hour, _ := strconv.Atoi(m[1])
	if hour < 1 || hour > 12 {
		return s
	}
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}

	hour = hour % 12
	if strings.EqualFold(m[3], "PM") {
		hour += 12
	}
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
