package bookings

import (
	"usage-map-server/models"
)

// BookingsAPI defines the interface the map client uses to load bookings
// from the booking query endpoint.
type BookingsAPI interface {
	// GetBookings returns the bookings for a YYYY-MM-DD date. An empty date
	// returns the unfiltered list.
	GetBookings(date string) ([]models.Booking, error)
}
