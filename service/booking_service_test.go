package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"usage-map-server/api/sheets"
	"usage-map-server/models"
)

const sampleCSV = "Date,Start Time,End Time,Event Name,Space Name,Owner,Notes\n" +
	"2024-06-01,9:00 AM,10:00 AM,Standup,Studio A,Ana,\n" +
	"2024-06-01,1:30 PM,3:00 PM,\"Workshop, advanced\",Main Hall,,Bring laptops\n" +
	"2024-06-02,8:05 AM,9:00 AM,Yoga,Garden,,\n" +
	"6/1/2024,11:00 AM,12:00 PM,Lunch & Learn,Studio A,,\n" +
	"someday,10:00 AM,11:00 AM,Mystery,Main Hall,,\n"

func TestFetchBookings_Unfiltered(t *testing.T) {
	service := NewBookingService(sheets.NewSheetsApiClientMock(sampleCSV))

	bookings, dbg, err := service.FetchBookings("", false)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if dbg != nil {
		t.Fatal("Expected no debug payload")
	}
	// All rows pass through unfiltered, including the unparsable date.
	assert.Len(t, bookings, 5)
	assert.Equal(t, "Workshop, advanced", bookings[1].EventName, "quoted comma should not split the field")
}

func TestFetchBookings_DateFilterInclusive(t *testing.T) {
	service := NewBookingService(sheets.NewSheetsApiClientMock(sampleCSV))

	// 2024-06-01 matches the ISO row and the month-first 6/1/2024 row.
	bookings, _, err := service.FetchBookings("2024-06-01", false)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	assert.Len(t, bookings, 3)
	for _, b := range bookings {
		if b.EventName == "Yoga" {
			t.Error("Expected 2024-06-02 booking to be excluded")
		}
		if b.EventName == "Mystery" {
			t.Error("Expected unparsable-date booking to be silently dropped")
		}
	}

	// The day before and after both exclude the 2024-06-01 rows.
	for _, day := range []string{"2024-05-31", "2024-06-03"} {
		bookings, _, err = service.FetchBookings(day, false)
		if err != nil {
			t.Fatalf("Expected no error for %s, got %v", day, err)
		}
		for _, b := range bookings {
			if b.EventName == "Standup" {
				t.Errorf("Expected Standup excluded on %s", day)
			}
		}
	}
}

func TestFetchBookings_UnparsableDateParam(t *testing.T) {
	service := NewBookingService(sheets.NewSheetsApiClientMock(sampleCSV))

	bookings, _, err := service.FetchBookings("June 1st", false)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	assert.Empty(t, bookings)
}

func TestFetchBookings_EmptyCSV(t *testing.T) {
	for _, csv := range []string{"", "Date,Event Name\n", "\n\n  \n"} {
		service := NewBookingService(sheets.NewSheetsApiClientMock(csv))

		_, _, err := service.FetchBookings("", false)

		if !errors.Is(err, models.ErrEmptyCSV) {
			t.Errorf("CSV %q: expected ErrEmptyCSV, got %v", csv, err)
		}
	}
}

func TestFetchBookings_UpstreamFailure(t *testing.T) {
	mock := sheets.NewSheetsApiClientMock("")
	mock.Err = &models.UpstreamError{Status: 403, Body: "denied"}
	service := NewBookingService(mock)

	_, _, err := service.FetchBookings("", false)

	var upstream *models.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("Expected *models.UpstreamError, got %v", err)
	}
	assert.Equal(t, 403, upstream.Status)
}

func TestFetchBookings_DebugShortCircuit(t *testing.T) {
	service := NewBookingService(sheets.NewSheetsApiClientMock(sampleCSV))

	bookings, dbg, err := service.FetchBookings("2024-06-01", true)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if bookings != nil {
		t.Error("Expected no parsed bookings in debug mode")
	}
	if dbg == nil || !dbg.OK {
		t.Fatal("Expected ok debug payload")
	}
	assert.LessOrEqual(t, len(dbg.First200), 200)
	assert.Equal(t, sampleCSV[:200], dbg.First200)
}

func TestFetchBookings_MissingCellsDefaultEmpty(t *testing.T) {
	csv := "Date,Start Time,End Time,Event Name,Space Name,Owner,Notes\n" +
		"2024-06-01,9:00 AM,10:00 AM,Standup\n"
	service := NewBookingService(sheets.NewSheetsApiClientMock(csv))

	bookings, _, err := service.FetchBookings("", false)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	assert.Len(t, bookings, 1)
	assert.Equal(t, "", bookings[0].SpaceName)
	assert.Equal(t, "", bookings[0].Notes)
}
