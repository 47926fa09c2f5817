package handlers

import (
	"log"
	"net/http"
	"time"

	"usage-map-server/mapview"
	"usage-map-server/models"
	services "usage-map-server/service"
	"usage-map-server/util"
)

// HotspotHandler serves the static hotspot geometry and the per-space usage
// report chart.
type HotspotHandler struct {
	hotspots       []models.Hotspot
	bookingService *services.BookingService
}

// NewHotspotHandler loads the hotspot set once at startup. A missing or
// invalid file yields an empty set and the map renders with no overlay.
func NewHotspotHandler(hotspotsPath string, bookingService *services.BookingService) *HotspotHandler {
	hotspots, err := util.ReadHotspotsFromJSON(hotspotsPath)
	if err != nil {
		log.Printf("[HotspotHandler] Could not load hotspots from %s: %v", hotspotsPath, err)
		hotspots = []models.Hotspot{}
	}
	return &HotspotHandler{
		hotspots:       hotspots,
		bookingService: bookingService,
	}
}

// GetHotspots handles GET /v1/hotspots
func (h *HotspotHandler) GetHotspots(w http.ResponseWriter, r *http.Request) {
	hotspots := h.hotspots
	if hotspots == nil {
		hotspots = []models.Hotspot{}
	}
	writeJSON(w, http.StatusOK, hotspots)
}

// GetSpaceUsageReport handles GET /v1/spaces/report?date=YYYY-MM-DD,
// rendering an HTML bar chart of booking counts per space. Fetch failures
// produce an empty chart, mirroring the map's silent-fallback behavior.
func (h *HotspotHandler) GetSpaceUsageReport(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get(DATE_QUERY_ARG)
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	bookings, _, err := h.bookingService.FetchBookings(date, false)
	if err != nil {
		log.Printf("[HotspotHandler] Report fetch failed for %s: %v", date, err)
		bookings = nil
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := util.RenderSpaceUsageChart(w, date, mapview.Aggregate(bookings)); err != nil {
		log.Printf("[HotspotHandler] Error rendering usage chart: %v", err)
	}
}
