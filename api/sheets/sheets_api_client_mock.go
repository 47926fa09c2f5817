package sheets

// SheetsApiClientMock embeds mocked logic for the sheets api client. CSV and
// Err are returned as-is, so tests and dev mode can run without network
// access to Google.
type SheetsApiClientMock struct {
	CSV string
	Err error
}

// NewSheetsApiClientMock creates a new instance of SheetsApiClientMock
// serving the given canned CSV text.
func NewSheetsApiClientMock(csv string) *SheetsApiClientMock {
	return &SheetsApiClientMock{CSV: csv}
}

// FetchCSV returns the canned CSV text.
func (c *SheetsApiClientMock) FetchCSV() (string, error) {
	if c.Err != nil {
		return "", c.Err
	}
	return c.CSV, nil
}
