package booking

import "time"

// Overlaps reports whether the half-open date intervals [s1,e1) and [s2,e2)
// share at least one night. A checkout date equal to another reservation's
// check-in date does not conflict.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// CoversDate reports whether a stay [start,end] occupies the room on date for
// the availability read-path. Here the end date is inclusive: a room counts
// as occupied through and including its checkout date.
func CoversDate(start, end, date time.Time) bool {
	return !start.After(date) && !end.Before(date)
}
