package service

import (
	"context"
	"errors"
	"time"

	reservationserrors "hostelbook/internal/reservations/errors"
	"hostelbook/internal/reservations/repository"
	"hostelbook/pkg/booking"
	"hostelbook/pkg/config"
	apperrors "hostelbook/pkg/errors"
)

// AvailabilityReport is a hostel's occupancy snapshot for a single night.
// Only approved reservations count as occupancy; pending ones hold no beds.
type AvailabilityReport struct {
	Date             string         `json:"date"`
	TotalFreeSeats   int            `json:"total_free_seats"`
	TotalBookedSeats int            `json:"total_booked_seats"`
	FreeRooms        []string       `json:"free_rooms"`
	BookedRooms      []string       `json:"booked_rooms"`
	BookedDetails    []BookedDetail `json:"booked_details"`
}

type BookedDetail struct {
	RoomID        string `json:"room_id"`
	RoomNumber    int    `json:"room_number"`
	ReservationID string `json:"reservation_id"`
	ClientID      string `json:"client_id"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
}

type AvailabilityService interface {
	Report(ctx context.Context, hostelID string, date time.Time) (*AvailabilityReport, error)
}

type availabilityService struct {
	repo    repository.ReservationRepository
	catalog repository.CatalogRepository
	cfg     *config.Config
}

func NewAvailabilityService(
	repo repository.ReservationRepository,
	catalog repository.CatalogRepository,
	cfg *config.Config,
) AvailabilityService {
	return &availabilityService{repo: repo, catalog: catalog, cfg: cfg}
}

func (s *availabilityService) Report(ctx context.Context, hostelID string, date time.Time) (*AvailabilityReport, error) {
	if hostelID == "" {
		return nil, apperrors.InvalidInput("Hostel ID cannot be empty")
	}
	date = booking.Date(date)

	if _, err := s.catalog.FindHostel(ctx, hostelID); err != nil {
		if errors.Is(err, reservationserrors.ErrHostelNotFound) {
			return nil, apperrors.NotFoundWithID("Hostel", hostelID)
		}
		return nil, apperrors.Internal("Failed to look up hostel", err)
	}

	rooms, err := s.catalog.FindRoomsByHostel(ctx, hostelID)
	if err != nil {
		return nil, apperrors.Internal("Failed to list hostel rooms", err)
	}

	roomIDs := make([]string, 0, len(rooms))
	roomsByID := make(map[string]int, len(rooms))
	for i, room := range rooms {
		roomIDs = append(roomIDs, room.ID)
		roomsByID[room.ID] = i
	}

	occupied, err := s.repo.FindApprovedOnDate(ctx, roomIDs, date)
	if err != nil {
		return nil, apperrors.Internal("Failed to load reservations", err)
	}

	report := &AvailabilityReport{
		Date:          date.Format(booking.DateLayout),
		FreeRooms:     []string{},
		BookedRooms:   []string{},
		BookedDetails: []BookedDetail{},
	}

	bookedSet := make(map[string]bool, len(occupied))
	for _, r := range occupied {
		idx, known := roomsByID[r.RoomID]
		if !known || bookedSet[r.RoomID] {
			continue
		}
		bookedSet[r.RoomID] = true
		room := rooms[idx]
		report.BookedRooms = append(report.BookedRooms, r.RoomID)
		report.TotalBookedSeats += room.Beds
		report.BookedDetails = append(report.BookedDetails, BookedDetail{
			RoomID:        r.RoomID,
			RoomNumber:    room.Number,
			ReservationID: r.ID,
			ClientID:      r.ClientID,
			StartDate:     r.StartDate.Format(booking.DateLayout),
			EndDate:       r.EndDate.Format(booking.DateLayout),
		})
	}

	for _, room := range rooms {
		if !bookedSet[room.ID] {
			report.FreeRooms = append(report.FreeRooms, room.ID)
			report.TotalFreeSeats += room.Beds
		}
	}

	return report, nil
}
