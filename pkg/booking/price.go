package booking

import (
	"errors"
	"time"
)

// ErrEmptyStay signals a zero- or negative-night interval reaching the price
// computation. Upstream validation already rejects such ranges, so hitting
// this is a caller bug, not a user error.
var ErrEmptyStay = errors.New("stay must be at least one night")

// Nights returns the number of nights in the half-open interval [start,end).
// Both arguments must be calendar dates at UTC midnight.
func Nights(start, end time.Time) int {
	return int(end.Sub(start) / (24 * time.Hour))
}

// Price computes the total charge for a stay: nights times the nightly rate.
func Price(rate int, start, end time.Time) (int, error) {
	if !start.Before(end) {
		return 0, ErrEmptyStay
	}
	return Nights(start, end) * rate, nil
}
