package models

// Point is one vertex of a hotspot polygon, in the overlay's normalized
// 0-100 coordinate space.
type Point [2]float64

// Hotspot is a named clickable region on the site image. SpaceID joins
// against a booking's trimmed space name by exact string equality.
type Hotspot struct {
	SpaceID string  `json:"spaceId"`
	Polygon []Point `json:"polygon"`
}
