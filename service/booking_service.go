package services

import (
	"log"

	"usage-map-server/api/sheets"
	"usage-map-server/config"
	"usage-map-server/models"
	"usage-map-server/sheet"
)

// DebugPayload is returned instead of parsed records when debug mode is
// requested: the head of the raw CSV, for checking what Google actually sent.
type DebugPayload struct {
	OK       bool   `json:"ok"`
	First200 string `json:"first200"`
}

// BookingService orchestrates the ingestion pipeline: fetch the sheet CSV,
// parse it into records, and filter by calendar date. It holds no state
// between calls.
type BookingService struct {
	sheetsAPI sheets.SheetsAPI
}

// NewBookingService constructs a new BookingService with its upstream source.
func NewBookingService(sheetsAPI sheets.SheetsAPI) *BookingService {
	return &BookingService{sheetsAPI: sheetsAPI}
}

// FetchBookings retrieves and parses the sheet, filtered to the given
// YYYY-MM-DD date when one is provided. With debug set, the pipeline
// short-circuits after retrieval and returns a DebugPayload instead.
//
// Error cases: transport/status failures come back as *models.UpstreamError,
// an export with fewer than two usable lines as models.ErrEmptyCSV.
func (s *BookingService) FetchBookings(date string, debug bool) ([]models.Booking, *DebugPayload, error) {
	csv, err := s.sheetsAPI.FetchCSV()
	if err != nil {
		return nil, nil, err
	}

	if debug {
		preview := csv
		if len(preview) > config.DEBUG_CSV_PREVIEW_CHARS {
			preview = preview[:config.DEBUG_CSV_PREVIEW_CHARS]
		}
		return nil, &DebugPayload{OK: true, First200: preview}, nil
	}

	lines := sheet.Lines(csv)
	if len(lines) < 2 {
		return nil, nil, models.ErrEmptyCSV
	}

	records := sheet.ParseRecords(lines)
	bookings := make([]models.Booking, 0, len(records))
	for _, rec := range records {
		bookings = append(bookings, models.BookingFromRecord(rec))
	}

	if date == "" {
		return bookings, nil, nil
	}
	return filterByDate(bookings, date), nil, nil
}

// filterByDate keeps bookings whose normalized date falls inside the
// inclusive [start-of-day, end-of-day] range. Records with unparsable dates
// are silently dropped; that matches the sheet this was built against and is
// intentional, not a bug to fix. An unparsable date parameter matches
// nothing.
func filterByDate(bookings []models.Booking, date string) []models.Booking {
	start, end, ok := sheet.DayRange(date)
	if !ok {
		log.Printf("[BookingService] Unparsable date filter %q, returning no rows", date)
		return []models.Booking{}
	}

	filtered := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		dt, ok := sheet.ParseDate(b.Date)
		if !ok {
			continue
		}
		if !dt.Before(start) && !dt.After(end) {
			filtered = append(filtered, b)
		}
	}
	return filtered
}
