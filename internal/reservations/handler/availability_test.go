package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"hostelbook/internal/reservations/service"
	apperrors "hostelbook/pkg/errors"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAvailabilityService struct {
	reportFn func(ctx context.Context, hostelID string, date time.Time) (*service.AvailabilityReport, error)
}

func (s *stubAvailabilityService) Report(ctx context.Context, hostelID string, date time.Time) (*service.AvailabilityReport, error) {
	return s.reportFn(ctx, hostelID, date)
}

func newAvailabilityRouter(stub *stubAvailabilityService) *httprouter.Router {
	router := httprouter.New()
	NewAvailabilityHandler(stub, testConfig()).RegisterRoutes(router)
	return router
}

func TestAvailabilityReport(t *testing.T) {
	var gotHostelID string
	var gotDate time.Time
	stub := &stubAvailabilityService{
		reportFn: func(_ context.Context, hostelID string, date time.Time) (*service.AvailabilityReport, error) {
			gotHostelID = hostelID
			gotDate = date
			return &service.AvailabilityReport{
				Date:           "2026-09-10",
				TotalFreeSeats: 6,
				FreeRooms:      []string{"room-2"},
				BookedRooms:    []string{"room-1"},
				BookedDetails:  []service.BookedDetail{},
			}, nil
		},
	}
	router := newAvailabilityRouter(stub)

	rec := doRequest(router, http.MethodGet, "/api/v1/hostels/hostel-1/availability?date=2026-09-10", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hostel-1", gotHostelID)
	assert.Equal(t, "2026-09-10", gotDate.Format("2006-01-02"))

	var report service.AvailabilityReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, 6, report.TotalFreeSeats)
	assert.Equal(t, []string{"room-1"}, report.BookedRooms)
}

func TestAvailabilityDefaultsToToday(t *testing.T) {
	var gotDate time.Time
	stub := &stubAvailabilityService{
		reportFn: func(_ context.Context, _ string, date time.Time) (*service.AvailabilityReport, error) {
			gotDate = date
			return &service.AvailabilityReport{}, nil
		},
	}
	router := newAvailabilityRouter(stub)

	rec := doRequest(router, http.MethodGet, "/api/v1/hostels/hostel-1/availability", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, gotDate.IsZero())
}

func TestAvailabilityMalformedDate(t *testing.T) {
	stub := &stubAvailabilityService{}
	router := newAvailabilityRouter(stub)

	rec := doRequest(router, http.MethodGet, "/api/v1/hostels/hostel-1/availability?date=tomorrow", "", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAvailabilityUnknownHostel(t *testing.T) {
	stub := &stubAvailabilityService{
		reportFn: func(_ context.Context, hostelID string, _ time.Time) (*service.AvailabilityReport, error) {
			return nil, apperrors.NotFoundWithID("Hostel", hostelID)
		},
	}
	router := newAvailabilityRouter(stub)

	rec := doRequest(router, http.MethodGet, "/api/v1/hostels/missing/availability?date=2026-09-10", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
