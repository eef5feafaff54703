package model

import (
	"time"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Reservation is a claim on one room for a contiguous range of nights.
// The interval is half-open: EndDate is the checkout date and is not slept on.
// ClientID may be empty when the owning client account was removed; the
// reservation itself is never cascade-deleted.
type Reservation struct {
	ID         string    `json:"id,omitempty" bson:"_id,omitempty"`
	ClientID   string    `json:"client_id,omitempty" bson:"client_id,omitempty"`
	RoomID     string    `json:"room_id" bson:"room_id" validate:"required"`
	StartDate  time.Time `json:"start_date" bson:"start_date" validate:"required"`
	EndDate    time.Time `json:"end_date" bson:"end_date" validate:"required,gtfield=StartDate"`
	TotalPrice int       `json:"total_price" bson:"total_price" validate:"omitempty,min=0"`
	Status     string    `json:"status" bson:"status" validate:"omitempty,oneof=pending approved rejected"`
	Note       string    `json:"note,omitempty" bson:"note,omitempty" validate:"omitempty,max=1000"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

// Blocking reports whether the reservation participates in the no-overlap
// invariant. Rejected reservations release their slot.
func (r *Reservation) Blocking() bool {
	return r.Status == StatusPending || r.Status == StatusApproved
}
