package service

import (
	"context"
	"io"
	"testing"
	"time"

	"hostelbook/pkg/booking"
	"hostelbook/pkg/config"
	apperrors "hostelbook/pkg/errors"
	"hostelbook/pkg/logger"
	"hostelbook/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type availabilityFixture struct {
	repo    *fakeReservationRepo
	catalog *fakeCatalogRepo
	service AvailabilityService
}

func newAvailabilityFixture(t *testing.T) *availabilityFixture {
	t.Helper()
	log := logger.New(logger.Config{Level: "error", Output: io.Discard})
	cfg := &config.Config{Log: log}

	f := &availabilityFixture{
		repo:    newFakeReservationRepo(),
		catalog: newFakeCatalogRepo(),
	}
	f.catalog.hostels["hostel-1"] = &model.Hostel{ID: "hostel-1", Name: "Riverside"}
	f.catalog.rooms["room-1"] = &model.Room{ID: "room-1", HostelID: "hostel-1", Number: 101, NightlyRate: 500, Beds: 4}
	f.catalog.rooms["room-2"] = &model.Room{ID: "room-2", HostelID: "hostel-1", Number: 102, NightlyRate: 300, Beds: 2}
	f.catalog.rooms["room-3"] = &model.Room{ID: "room-3", HostelID: "hostel-1", Number: 103, NightlyRate: 300, Beds: 6}

	f.service = NewAvailabilityService(f.repo, f.catalog, cfg)
	return f
}

func (f *availabilityFixture) seed(t *testing.T, id, roomID, status string, startDays, endDays int) {
	t.Helper()
	require.NoError(t, f.repo.Create(context.Background(), &model.Reservation{
		ID:        id,
		ClientID:  "client-1",
		RoomID:    roomID,
		StartDate: futureDate(startDays),
		EndDate:   futureDate(endDays),
		Status:    status,
	}))
}

func TestReportPartitionsRooms(t *testing.T) {
	f := newAvailabilityFixture(t)
	f.seed(t, "res-1", "room-1", model.StatusApproved, 5, 10)
	f.seed(t, "res-2", "room-2", model.StatusApproved, 20, 25)

	report, err := f.service.Report(context.Background(), "hostel-1", futureDate(7))
	require.NoError(t, err)

	assert.Equal(t, futureDate(7).Format(booking.DateLayout), report.Date)
	assert.Equal(t, []string{"room-1"}, report.BookedRooms)
	assert.ElementsMatch(t, []string{"room-2", "room-3"}, report.FreeRooms)
	assert.Equal(t, 4, report.TotalBookedSeats)
	assert.Equal(t, 8, report.TotalFreeSeats)

	require.Len(t, report.BookedDetails, 1)
	detail := report.BookedDetails[0]
	assert.Equal(t, "res-1", detail.ReservationID)
	assert.Equal(t, 101, detail.RoomNumber)
	assert.Equal(t, "client-1", detail.ClientID)
}

func TestReportCountsOnlyApproved(t *testing.T) {
	f := newAvailabilityFixture(t)
	f.seed(t, "res-1", "room-1", model.StatusPending, 5, 10)
	f.seed(t, "res-2", "room-2", model.StatusRejected, 5, 10)

	report, err := f.service.Report(context.Background(), "hostel-1", futureDate(7))
	require.NoError(t, err)

	assert.Empty(t, report.BookedRooms)
	assert.Equal(t, 12, report.TotalFreeSeats)
}

func TestReportIncludesCheckoutDay(t *testing.T) {
	f := newAvailabilityFixture(t)
	f.seed(t, "res-1", "room-1", model.StatusApproved, 5, 10)

	// occupancy reporting keeps the checkout day, unlike the overlap rule
	report, err := f.service.Report(context.Background(), "hostel-1", futureDate(10))
	require.NoError(t, err)
	assert.Equal(t, []string{"room-1"}, report.BookedRooms)

	report, err = f.service.Report(context.Background(), "hostel-1", futureDate(11))
	require.NoError(t, err)
	assert.Empty(t, report.BookedRooms)
}

func TestReportEmptyHostelDay(t *testing.T) {
	f := newAvailabilityFixture(t)

	report, err := f.service.Report(context.Background(), "hostel-1", futureDate(7))
	require.NoError(t, err)

	assert.Equal(t, 12, report.TotalFreeSeats)
	assert.Equal(t, 0, report.TotalBookedSeats)
	assert.NotNil(t, report.BookedRooms)
	assert.NotNil(t, report.BookedDetails)
}

func TestReportUnknownHostel(t *testing.T) {
	f := newAvailabilityFixture(t)

	_, err := f.service.Report(context.Background(), "missing", futureDate(7))
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.AsAppError(err).Code)
}

func TestReportTruncatesDate(t *testing.T) {
	f := newAvailabilityFixture(t)
	f.seed(t, "res-1", "room-1", model.StatusApproved, 5, 10)

	noon := futureDate(7).Add(12 * time.Hour)
	report, err := f.service.Report(context.Background(), "hostel-1", noon)
	require.NoError(t, err)
	assert.Equal(t, []string{"room-1"}, report.BookedRooms)
}
