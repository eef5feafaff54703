package booking

import "time"

// CancellationWindow is the minimum lead time before check-in during which a
// reservation may still be cancelled.
const CancellationWindow = 24 * time.Hour

// CanCancel reports whether a reservation starting on startDate may be
// cancelled on the given day. Exactly 24 hours of lead time is still allowed.
func CanCancel(startDate, today time.Time) bool {
	return startDate.Sub(today) >= CancellationWindow
}

// HoursUntilCheckIn returns the whole hours remaining between today and the
// check-in date, for reporting refused cancellations. Negative once check-in
// has passed.
func HoursUntilCheckIn(startDate, today time.Time) int {
	return int(startDate.Sub(today) / time.Hour)
}
