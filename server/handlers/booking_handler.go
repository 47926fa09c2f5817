package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"usage-map-server/config"
	"usage-map-server/models"
	services "usage-map-server/service"
)

const (
	DATE_QUERY_ARG  = "date"
	DEBUG_QUERY_ARG = "debug"

	sheetAccessHint = "Is the sheet shared as 'Anyone with the link can view'? Is SHEET_ID correct?"
)

// BookingHandler serves the booking query endpoint.
type BookingHandler struct {
	bookingService *services.BookingService
}

func NewBookingHandler(bookingService *services.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// GetBookings handles GET /v1/bookings?date=YYYY-MM-DD&debug=1.
//
// Responses are always JSON with caching disabled: a booking array on
// success, {error} with 200 for an empty sheet, {error, status, hint,
// bodySnippet} with 502 for upstream failures, and {error, message} with 500
// for anything unexpected. No fault escapes this handler.
func (h *BookingHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("[BookingHandler] Recovered from panic: %v", rec)
			writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
				"error":   "Server error",
				"message": fmt.Sprint(rec),
			})
		}
	}()

	// 1) Parse query args
	query := r.URL.Query()
	date := query.Get(DATE_QUERY_ARG)
	debug := query.Get(DEBUG_QUERY_ARG) == "1"

	// 2) Run the ingestion pipeline
	bookings, debugPayload, err := h.bookingService.FetchBookings(date, debug)

	// 3) Map outcomes onto the wire
	var upstream *models.UpstreamError
	switch {
	case errors.As(err, &upstream):
		writeJSON(w, http.StatusBadGateway, map[string]interface{}{
			"error":       "Failed to fetch sheet CSV",
			"status":      upstream.Status,
			"hint":        sheetAccessHint,
			"bodySnippet": upstream.BodySnippet(config.BODY_SNIPPET_MAX_CHARS),
		})
	case errors.Is(err, models.ErrEmptyCSV):
		// benign: the sheet just has nothing usable yet
		writeJSON(w, http.StatusOK, map[string]string{"error": models.ErrEmptyCSV.Error()})
	case err != nil:
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"error":   "Server error",
			"message": err.Error(),
		})
	case debugPayload != nil:
		writeJSON(w, http.StatusOK, debugPayload)
	default:
		if bookings == nil {
			bookings = []models.Booking{}
		}
		writeJSON(w, http.StatusOK, bookings)
	}
}

// Ping handles GET /ping
func (h *BookingHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Error encoding response:", err)
	}
}
