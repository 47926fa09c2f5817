package sheets

// SheetsAPI defines the interface for fetching the published CSV export of
// the bookings spreadsheet.
type SheetsAPI interface {
	// FetchCSV returns the raw CSV text of the sheet. A non-success
	// upstream status yields a *models.UpstreamError.
	FetchCSV() (string, error)
}
