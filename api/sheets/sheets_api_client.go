package sheets

import (
	"fmt"

	"usage-map-server/api"
	"usage-map-server/config"
	"usage-map-server/models"
)

// SheetsApiClient embeds the common HTTPClient
type SheetsApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
	sheetID         string
}

// NewSheetsApiClient creates a new instance of SheetsApiClient for the
// given spreadsheet id.
func NewSheetsApiClient(httpClient *api.HTTPClient, sheetID string) *SheetsApiClient {
	return &SheetsApiClient{
		HTTPClient: httpClient,
		sheetID:    sheetID,
	}
}

// FetchCSV retrieves the sheet's CSV export. Every call observes the current
// upstream state: cache-bypass headers are sent so no intermediary may serve
// a stale copy.
func (c *SheetsApiClient) FetchCSV() (string, error) {
	endpoint := fmt.Sprintf(config.SHEETS_CSV_EXPORT_FORMAT, c.sheetID)
	headers := map[string]string{
		"Cache-Control": "no-cache",
		"Pragma":        "no-cache",
	}

	status, body, err := c.RequestText("GET", endpoint, headers)
	if err != nil {
		return "", err
	}

	// Google replies non-2xx when the id is wrong or the sheet is not
	// link-readable; surface status and body for diagnosis.
	if status < 200 || status >= 300 {
		return "", &models.UpstreamError{Status: status, Body: body}
	}

	return body, nil
}
