package bookings

import (
	"sync"

	"usage-map-server/models"
)

// BookingsApiClientMock embeds mocked logic for the bookings api client.
// Bookings and Err can be swapped between calls to script poll responses.
type BookingsApiClientMock struct {
	mu       sync.Mutex
	Bookings []models.Booking
	Err      error
	Calls    int
}

// NewBookingsApiClientMock creates a new instance of BookingsApiClientMock
func NewBookingsApiClientMock(bookings []models.Booking) *BookingsApiClientMock {
	return &BookingsApiClientMock{Bookings: bookings}
}

// GetBookings returns the canned booking list.
func (c *BookingsApiClientMock) GetBookings(date string) ([]models.Booking, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Calls++
	if c.Err != nil {
		return nil, c.Err
	}
	out := make([]models.Booking, len(c.Bookings))
	copy(out, c.Bookings)
	return out, nil
}

// SetBookings replaces the canned list for subsequent calls.
func (c *BookingsApiClientMock) SetBookings(bookings []models.Booking) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Bookings = bookings
}

// CallCount reports how many times GetBookings was invoked.
func (c *BookingsApiClientMock) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Calls
}
