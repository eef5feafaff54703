package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	reservationserrors "hostelbook/internal/reservations/errors"
	"hostelbook/internal/reservations/repository"
	"hostelbook/internal/reservations/validator"
	"hostelbook/pkg/booking"
	"hostelbook/pkg/config"
	apperrors "hostelbook/pkg/errors"
	"hostelbook/pkg/events"
	"hostelbook/pkg/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReservationService is the reservation ledger: it validates, prices and
// commits reservations while guaranteeing that no two pending-or-approved
// reservations ever overlap on one room, however many proposals race.
type ReservationService interface {
	Propose(ctx context.Context, actor model.Actor, reservation *model.Reservation) error
	GetByID(ctx context.Context, actor model.Actor, id string) (*model.Reservation, error)
	List(ctx context.Context, actor model.Actor, limit int, offset int64) ([]*model.Reservation, int64, error)
	Decide(ctx context.Context, actor model.Actor, id string, approve bool) (*model.Reservation, error)
	Cancel(ctx context.Context, actor model.Actor, id string) error
	Update(ctx context.Context, actor model.Actor, id string, newStart, newEnd time.Time) (*model.Reservation, error)
}

type reservationService struct {
	repo      repository.ReservationRepository
	catalog   repository.CatalogRepository
	lockRepo  repository.SlotLockRepository
	validator *validator.ReservationValidator
	publisher events.Publisher
	cfg       *config.Config
}

func NewReservationService(
	repo repository.ReservationRepository,
	catalog repository.CatalogRepository,
	lockRepo repository.SlotLockRepository,
	validator *validator.ReservationValidator,
	publisher events.Publisher,
	cfg *config.Config,
) ReservationService {
	return &reservationService{
		repo:      repo,
		catalog:   catalog,
		lockRepo:  lockRepo,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *reservationService) Propose(ctx context.Context, actor model.Actor, reservation *model.Reservation) error {
	// Non-privileged callers always book for themselves; a client-supplied
	// owner is overridden server-side.
	if !actor.IsOperator() {
		reservation.ClientID = actor.ClientID
	}
	reservation.StartDate = booking.Date(reservation.StartDate)
	reservation.EndDate = booking.Date(reservation.EndDate)
	reservation.Status = model.StatusPending

	if err := s.validate(reservation); err != nil {
		return err
	}

	room, err := s.findRoom(ctx, reservation.RoomID)
	if err != nil {
		return err
	}

	err = s.withRoomLock(ctx, reservation.RoomID, func() error {
		return s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
			if err := s.ensureNoOverlap(sessCtx, reservation.RoomID, reservation.StartDate, reservation.EndDate, ""); err != nil {
				return err
			}

			price, err := booking.Price(room.NightlyRate, reservation.StartDate, reservation.EndDate)
			if err != nil {
				// validation already enforces start < end
				return apperrors.Internal("Failed to price reservation", err)
			}

			reservation.ID = uuid.New().String()
			reservation.TotalPrice = price

			if err := s.repo.Create(sessCtx, reservation); err != nil {
				return apperrors.Internal("Failed to create reservation", err)
			}
			return nil
		})
	})
	if err != nil {
		s.cfg.Log.Error("Failed to create reservation",
			"room_id", reservation.RoomID,
			"client_id", reservation.ClientID,
			"error", err,
		)
		return err
	}

	s.cfg.Log.Info("Reservation created",
		"id", reservation.ID,
		"room_id", reservation.RoomID,
		"client_id", reservation.ClientID,
		"start_date", reservation.StartDate.Format(booking.DateLayout),
		"end_date", reservation.EndDate.Format(booking.DateLayout),
		"total_price", reservation.TotalPrice,
	)
	s.publish(ctx, events.TypeReservationCreated, reservation)
	return nil
}

func (s *reservationService) GetByID(ctx context.Context, actor model.Actor, id string) (*model.Reservation, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Reservation ID cannot be empty")
	}

	reservation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Reservation", id)
		}
		return nil, apperrors.Internal("Failed to retrieve reservation", err)
	}

	// Clients only see their own reservations; hide foreign ones entirely.
	if !actor.IsOperator() && !actor.Owns(reservation) {
		return nil, apperrors.NotFoundWithID("Reservation", id)
	}

	return reservation, nil
}

func (s *reservationService) List(ctx context.Context, actor model.Actor, limit int, offset int64) ([]*model.Reservation, int64, error) {
	var count int64
	var reservations []*model.Reservation
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		if actor.IsOperator() {
			count, errCount = s.repo.Count(ctx)
		} else {
			count, errCount = s.repo.CountByClient(ctx, actor.ClientID)
		}
		if errCount != nil {
			s.cfg.Log.Error("Failed to count reservations", "error", errCount)
			errCount = apperrors.Internal("Failed to count reservations", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		if actor.IsOperator() {
			reservations, errFind = s.repo.FindAll(ctx, limit, offset)
		} else {
			reservations, errFind = s.repo.FindByClient(ctx, actor.ClientID, limit, offset)
		}
		if errFind != nil {
			s.cfg.Log.Error("Failed to list reservations", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve reservations", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return reservations, count, nil
}

func (s *reservationService) Decide(ctx context.Context, actor model.Actor, id string, approve bool) (*model.Reservation, error) {
	if !actor.IsOperator() {
		return nil, apperrors.Forbidden("Only operators may decide reservations")
	}
	if id == "" {
		return nil, apperrors.InvalidInput("Reservation ID cannot be empty")
	}

	status := model.StatusRejected
	if approve {
		status = model.StatusApproved
	}

	if err := s.repo.DecidePending(ctx, id, status); err != nil {
		switch {
		case errors.Is(err, reservationserrors.ErrNotFound):
			return nil, apperrors.NotFoundWithID("Reservation", id)
		case errors.Is(err, reservationserrors.ErrAlreadyDecided):
			return nil, apperrors.Conflict("Reservation has already been decided")
		default:
			return nil, apperrors.Internal("Failed to decide reservation", err)
		}
	}

	reservation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Internal("Failed to retrieve decided reservation", err)
	}

	s.cfg.Log.Info("Reservation decided", "id", id, "status", status, "operator", actor.ClientID)
	s.publish(ctx, events.TypeReservationDecided, reservation)
	return reservation, nil
}

func (s *reservationService) Cancel(ctx context.Context, actor model.Actor, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Reservation ID cannot be empty")
	}

	reservation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Reservation", id)
		}
		return apperrors.Internal("Failed to retrieve reservation", err)
	}

	if !actor.IsOperator() && !actor.Owns(reservation) {
		return apperrors.NotFoundWithID("Reservation", id)
	}

	today := booking.Today()
	if !booking.CanCancel(reservation.StartDate, today) {
		return apperrors.PolicyViolation(
			"Cancellation is no longer possible: check-in is less than 24 hours away",
			map[string]any{
				"hours_until_checkin": booking.HoursUntilCheckIn(reservation.StartDate, today),
			},
		)
	}

	// Inside the window the reservation is removed whatever its status.
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Reservation", id)
		}
		return apperrors.Internal("Failed to cancel reservation", err)
	}

	s.cfg.Log.Info("Reservation cancelled", "id", id, "room_id", reservation.RoomID)
	s.publish(ctx, events.TypeReservationCancelled, reservation)
	return nil
}

func (s *reservationService) Update(ctx context.Context, actor model.Actor, id string, newStart, newEnd time.Time) (*model.Reservation, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Reservation ID cannot be empty")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Reservation", id)
		}
		return nil, apperrors.Internal("Failed to retrieve reservation", err)
	}

	if !actor.IsOperator() && !actor.Owns(existing) {
		return nil, apperrors.NotFoundWithID("Reservation", id)
	}

	merged := *existing
	merged.StartDate = booking.Date(newStart)
	merged.EndDate = booking.Date(newEnd)

	if err := s.validate(&merged); err != nil {
		return nil, err
	}

	room, err := s.findRoom(ctx, merged.RoomID)
	if err != nil {
		return nil, err
	}

	err = s.withRoomLock(ctx, merged.RoomID, func() error {
		return s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
			// the reservation being moved must not conflict with itself
			if err := s.ensureNoOverlap(sessCtx, merged.RoomID, merged.StartDate, merged.EndDate, id); err != nil {
				return err
			}

			price, err := booking.Price(room.NightlyRate, merged.StartDate, merged.EndDate)
			if err != nil {
				return apperrors.Internal("Failed to price reservation", err)
			}
			merged.TotalPrice = price

			if err := s.repo.UpdateInterval(sessCtx, id, merged.StartDate, merged.EndDate, price); err != nil {
				return apperrors.Internal("Failed to update reservation", err)
			}
			return nil
		})
	})
	if err != nil {
		s.cfg.Log.Error("Failed to update reservation", "id", id, "error", err)
		return nil, err
	}

	s.cfg.Log.Info("Reservation updated",
		"id", id,
		"start_date", merged.StartDate.Format(booking.DateLayout),
		"end_date", merged.EndDate.Format(booking.DateLayout),
		"total_price", merged.TotalPrice,
	)
	s.publish(ctx, events.TypeReservationUpdated, &merged)
	return &merged, nil
}

// --- Helpers ---

func (s *reservationService) validate(reservation *model.Reservation) error {
	if err := s.validator.Validate(reservation); err != nil {
		s.cfg.Log.Warn("Reservation validation failed", "error", err)
		return apperrors.Validation("Invalid reservation", map[string]any{"error": err.Error()})
	}
	return nil
}

func (s *reservationService) findRoom(ctx context.Context, roomID string) (*model.Room, error) {
	room, err := s.catalog.FindRoom(ctx, roomID)
	if err != nil {
		if errors.Is(err, reservationserrors.ErrRoomNotFound) {
			return nil, apperrors.NotFoundWithID("Room", roomID)
		}
		return nil, apperrors.Internal("Failed to look up room", err)
	}
	return room, nil
}

// ensureNoOverlap scans the room's pending and approved reservations for an
// interval conflict. Must run inside the room lock so the scan and the
// subsequent write form one atomic unit.
func (s *reservationService) ensureNoOverlap(ctx context.Context, roomID string, start, end time.Time, excludeID string) error {
	existing, err := s.repo.FindBlockingByRoom(ctx, roomID)
	if err != nil {
		return apperrors.Internal("Failed to check existing reservations", err)
	}

	for _, r := range existing {
		if r.ID == excludeID {
			continue
		}
		if booking.Overlaps(r.StartDate, r.EndDate, start, end) {
			return apperrors.Conflict(fmt.Sprintf(
				"Room is already booked from %s to %s",
				r.StartDate.Format(booking.DateLayout),
				r.EndDate.Format(booking.DateLayout),
			))
		}
	}
	return nil
}

// withRoomLock runs fn while holding the room's advisory lock. Acquisition is
// retried a bounded number of times; a proposal that still cannot get the
// lock is reported as a conflict, never retried with altered dates.
func (s *reservationService) withRoomLock(ctx context.Context, roomID string, fn func() error) error {
	lockID := "room_lock_" + roomID

	acquired := false
	for attempt := 1; attempt <= s.cfg.SlotLockAttempts; attempt++ {
		err := s.lockRepo.Acquire(ctx, &model.SlotLock{
			ID:        lockID,
			ExpiresAt: time.Now().Add(s.cfg.SlotLockTTL),
		})
		if err == nil {
			acquired = true
			break
		}
		if !errors.Is(err, reservationserrors.ErrLockHeld) {
			return apperrors.Internal("Failed to acquire room lock", err)
		}
		if attempt < s.cfg.SlotLockAttempts {
			select {
			case <-ctx.Done():
				return apperrors.Internal("Request cancelled while waiting for room lock", ctx.Err())
			case <-time.After(s.cfg.SlotLockBackoff):
			}
		}
	}
	if !acquired {
		return apperrors.Conflict("Room is currently being booked by another request. Please try again.")
	}

	defer func() {
		if err := s.lockRepo.Release(ctx, lockID); err != nil {
			s.cfg.Log.Warn("Failed to release room lock", "lock_id", lockID, "error", err)
		}
	}()

	return fn()
}

func (s *reservationService) publish(ctx context.Context, eventType string, reservation *model.Reservation) {
	event := events.Event{
		Type:          eventType,
		ReservationID: reservation.ID,
		RoomID:        reservation.RoomID,
		ClientID:      reservation.ClientID,
		Status:        reservation.Status,
		StartDate:     reservation.StartDate.Format(booking.DateLayout),
		EndDate:       reservation.EndDate.Format(booking.DateLayout),
		TotalPrice:    reservation.TotalPrice,
		OccurredAt:    time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		// the ledger is the source of truth; event delivery is best-effort
		s.cfg.Log.Warn("Failed to publish reservation event", "type", eventType, "id", reservation.ID, "error", err)
	}
}
