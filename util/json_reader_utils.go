package util

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"usage-map-server/models"
)

// ReadHotspotsFromJSON loads the hotspot polygon set from JSON on disk.
func ReadHotspotsFromJSON(filePath string) ([]models.Hotspot, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var hotspots []models.Hotspot
	if err := json.Unmarshal(data, &hotspots); err != nil {
		return nil, fmt.Errorf("failed to unmarshal hotspots: %w", err)
	}
	return hotspots, nil
}

// ReadBookingsFromJSON loads a booking list from JSON on disk.
func ReadBookingsFromJSON(filePath string) ([]models.Booking, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var bookings []models.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bookings: %w", err)
	}
	return bookings, nil
}
