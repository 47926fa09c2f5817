package bookings

import (
	"net/url"

	"usage-map-server/api"
	"usage-map-server/models"
)

// BookingsApiClient embeds the common HTTPClient
type BookingsApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
}

// NewBookingsApiClient creates a new instance of BookingsApiClient
func NewBookingsApiClient(httpClient *api.HTTPClient) *BookingsApiClient {
	return &BookingsApiClient{
		HTTPClient: httpClient,
	}
}

// GetBookings retrieves bookings for a date and decodes the JSON array.
func (c *BookingsApiClient) GetBookings(date string) ([]models.Booking, error) {
	endpoint := "/v1/bookings"
	if date != "" {
		endpoint += "?date=" + url.QueryEscape(date)
	}

	var response []models.Booking
	err := c.Request("GET", endpoint, nil, nil, &response)
	if err != nil {
		return nil, err
	}
	return response, nil
}
