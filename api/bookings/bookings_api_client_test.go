package bookings

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"usage-map-server/api"
)

func TestBookingsApiClient_GetBookings(t *testing.T) {
	// Mock server setup
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/bookings" {
			t.Errorf("Expected /v1/bookings, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("date") != "2024-06-01" {
			t.Errorf("Expected date query param, got %q", r.URL.Query().Get("date"))
		}
		w.Write([]byte(`[{"Date":"2024-06-01","Start Time":"9:00 AM","End Time":"10:00 AM","Event Name":"Standup","Space Name":"Studio A"}]`))
	}))
	defer mockServer.Close()

	client := NewBookingsApiClient(api.NewHTTPClient(mockServer.URL))

	// Act
	bookings, err := client.GetBookings("2024-06-01")

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(bookings) != 1 {
		t.Fatalf("Expected 1 booking, got %d", len(bookings))
	}
	if bookings[0].SpaceName != "Studio A" {
		t.Errorf("Expected 'Studio A', got %q", bookings[0].SpaceName)
	}
}

func TestBookingsApiClient_GetBookings_NoDate(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			t.Errorf("Expected no query params, got %q", r.URL.RawQuery)
		}
		w.Write([]byte(`[]`))
	}))
	defer mockServer.Close()

	client := NewBookingsApiClient(api.NewHTTPClient(mockServer.URL))

	bookings, err := client.GetBookings("")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(bookings) != 0 {
		t.Errorf("Expected empty list, got %v", bookings)
	}
}

func TestBookingsApiClientMock_ScriptedResponses(t *testing.T) {
	mock := NewBookingsApiClientMock(nil)

	got, err := mock.GetBookings("2024-06-01")
	if err != nil || len(got) != 0 {
		t.Fatalf("Expected empty canned response, got %v (%v)", got, err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("Expected 1 call recorded, got %d", mock.CallCount())
	}
}
