package validator

import (
	"strings"
	"testing"

	"hostelbook/pkg/booking"
	"hostelbook/pkg/logger"
	"hostelbook/pkg/model"
)

func newTestValidator() *ReservationValidator {
	log := logger.New(logger.Config{Level: "error", Service: "test"})
	return NewReservationValidator(log)
}

func validReservation() *model.Reservation {
	start := booking.Today().AddDate(0, 0, 7)
	return &model.Reservation{
		RoomID:    "room-1",
		ClientID:  "client-1",
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 3),
		Status:    model.StatusPending,
	}
}

func TestValidate_OK(t *testing.T) {
	v := newTestValidator()
	if err := v.Validate(validReservation()); err != nil {
		t.Errorf("expected valid reservation, got %v", err)
	}
}

func TestValidate_MissingRoom(t *testing.T) {
	v := newTestValidator()
	r := validReservation()
	r.RoomID = ""

	err := v.Validate(r)
	if err == nil {
		t.Fatal("expected error for missing room id")
	}
	if !strings.Contains(err.Error(), "RoomID") {
		t.Errorf("expected RoomID in error, got %v", err)
	}
}

func TestValidate_CheckoutNotAfterCheckIn(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name  string
		shift int // days added to start to produce end
	}{
		{"same day checkout", 0},
		{"checkout before check-in", -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validReservation()
			r.EndDate = r.StartDate.AddDate(0, 0, tt.shift)

			err := v.Validate(r)
			if err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestValidate_PastStartDate(t *testing.T) {
	v := newTestValidator()
	r := validReservation()
	r.StartDate = booking.Today().AddDate(0, 0, -1)
	r.EndDate = r.StartDate.AddDate(0, 0, 5)

	err := v.Validate(r)
	if err == nil {
		t.Fatal("expected error for past start date")
	}
	if !strings.Contains(err.Error(), "cannot book in the past") {
		t.Errorf("expected past-booking message, got %v", err)
	}
}

func TestValidate_TodayIsBookable(t *testing.T) {
	v := newTestValidator()
	r := validReservation()
	r.StartDate = booking.Today()
	r.EndDate = r.StartDate.AddDate(0, 0, 2)

	if err := v.Validate(r); err != nil {
		t.Errorf("booking starting today must be allowed, got %v", err)
	}
}

func TestValidate_BadStatus(t *testing.T) {
	v := newTestValidator()
	r := validReservation()
	r.Status = "confirmed"

	if err := v.Validate(r); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestValidationErrors_Message(t *testing.T) {
	errs := ValidationErrors{
		{Field: "EndDate", Message: "checkout must be after check-in"},
	}
	msg := errs.Error()
	if !strings.Contains(msg, "1 error(s)") || !strings.Contains(msg, "EndDate") {
		t.Errorf("unexpected message: %s", msg)
	}

	var empty ValidationErrors
	if empty.Error() != "" {
		t.Errorf("expected empty message for no errors")
	}
}
