package errors

import "errors"

var (
	ErrNotFound = errors.New("reservation not found")

	ErrRoomNotFound = errors.New("room not found")

	ErrHostelNotFound = errors.New("hostel not found")

	// ErrAlreadyDecided: the reservation left the pending state earlier;
	// decisions are not re-applied.
	ErrAlreadyDecided = errors.New("reservation has already been decided")

	// ErrLockHeld: another request holds the advisory lock for the room.
	ErrLockHeld = errors.New("room lock is held by another request")
)
