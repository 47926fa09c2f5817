package models

import (
	"fmt"
	"strings"
)

// Booking represents one reservation row from the shared sheet. JSON keys
// mirror the sheet's header names so the payload matches the published CSV.
type Booking struct {
	Date      string `json:"Date"`
	StartTime string `json:"Start Time"`
	EndTime   string `json:"End Time"`
	EventName string `json:"Event Name"`
	SpaceName string `json:"Space Name"`
	Owner     string `json:"Owner,omitempty"`
	Notes     string `json:"Notes,omitempty"`
}

// Sheet header names, also used as record keys by the CSV parser.
const (
	HeaderDate      = "Date"
	HeaderStartTime = "Start Time"
	HeaderEndTime   = "End Time"
	HeaderEventName = "Event Name"
	HeaderSpaceName = "Space Name"
	HeaderOwner     = "Owner"
	HeaderNotes     = "Notes"
)

// BookingFromRecord builds a Booking from a header-keyed CSV record.
// Missing keys simply yield empty fields.
func BookingFromRecord(rec map[string]string) Booking {
	return Booking{
		Date:      rec[HeaderDate],
		StartTime: rec[HeaderStartTime],
		EndTime:   rec[HeaderEndTime],
		EventName: rec[HeaderEventName],
		SpaceName: rec[HeaderSpaceName],
		Owner:     rec[HeaderOwner],
		Notes:     rec[HeaderNotes],
	}
}

// Space returns the trimmed space name used as the grouping key. An empty
// result means the booking cannot be joined to a hotspot.
func (b *Booking) Space() string {
	return strings.TrimSpace(b.SpaceName)
}

func (b *Booking) ToString() string {
	return fmt.Sprintf("Booking(space=%s, event=%s, date=%s, start=%s, end=%s)",
		b.SpaceName, b.EventName, b.Date, b.StartTime, b.EndTime)
}
