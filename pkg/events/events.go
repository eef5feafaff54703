package events

import (
	"context"
	"time"
)

const (
	TypeReservationCreated   = "reservation.created"
	TypeReservationUpdated   = "reservation.updated"
	TypeReservationDecided   = "reservation.decided"
	TypeReservationCancelled = "reservation.cancelled"
)

// Event describes a reservation lifecycle transition for downstream
// consumers. Events are keyed by room so per-room ordering is preserved.
type Event struct {
	Type          string    `json:"type"`
	ReservationID string    `json:"reservation_id"`
	RoomID        string    `json:"room_id"`
	ClientID      string    `json:"client_id,omitempty"`
	Status        string    `json:"status,omitempty"`
	StartDate     string    `json:"start_date,omitempty"`
	EndDate       string    `json:"end_date,omitempty"`
	TotalPrice    int       `json:"total_price,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NoopPublisher is used when no brokers are configured and in tests.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, event Event) error { return nil }

func (NoopPublisher) Close() error { return nil }
