package mapview

import (
	"fmt"

	"usage-map-server/config"
)

// Intensity is the overlay color for one space: hue runs 140 (green, idle)
// down to 0 (red, busy), opacity from faint to stronger. Zero bookings render
// fully transparent.
type Intensity struct {
	Hue     float64
	Opacity float64
}

// IntensityFor maps a booking count onto the heat scale. Counts at or above
// config.MAX_INTENSITY_COUNT clamp to the maximum.
func IntensityFor(count int) Intensity {
	t := float64(count) / float64(config.MAX_INTENSITY_COUNT)
	if t > 1 {
		t = 1
	}

	opacity := 0.0
	if count > 0 {
		opacity = 0.28 + 0.14*t
	}
	return Intensity{
		Hue:     140 - 140*t,
		Opacity: opacity,
	}
}

// HSL renders the intensity as a CSS color usable as an SVG fill.
func (i Intensity) HSL() string {
	return fmt.Sprintf("hsl(%.0f 70%% 45%% / %.2f)", i.Hue, i.Opacity)
}

// ColorForCount is the one-step helper: booking count to CSS color.
func ColorForCount(count int) string {
	return IntensityFor(count).HSL()
}
