package booking

import (
	"errors"
	"testing"
)

func TestPrice(t *testing.T) {
	tests := []struct {
		name       string
		rate       int
		start, end string
		want       int
	}{
		{"three nights at 500", 500, "2024-06-01", "2024-06-04", 1500},
		{"single night", 500, "2024-06-01", "2024-06-02", 500},
		{"week at 120", 120, "2024-07-01", "2024-07-08", 840},
		{"across a month boundary", 200, "2024-06-29", "2024-07-02", 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Price(tt.rate, day(tt.start), day(tt.end))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Price(%d, %s, %s) = %d, want %d", tt.rate, tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestPrice_EmptyStay(t *testing.T) {
	if _, err := Price(500, day("2024-06-04"), day("2024-06-04")); !errors.Is(err, ErrEmptyStay) {
		t.Errorf("expected ErrEmptyStay for zero nights, got %v", err)
	}
	if _, err := Price(500, day("2024-06-05"), day("2024-06-04")); !errors.Is(err, ErrEmptyStay) {
		t.Errorf("expected ErrEmptyStay for inverted range, got %v", err)
	}
}

func TestPrice_MonotonicInNights(t *testing.T) {
	start := day("2024-06-01")
	prev := 0
	for nights := 1; nights <= 30; nights++ {
		end := start.AddDate(0, 0, nights)
		got, err := Price(75, start, end)
		if err != nil {
			t.Fatalf("unexpected error at %d nights: %v", nights, err)
		}
		if got <= prev {
			t.Fatalf("price not strictly monotonic: %d nights -> %d, previous %d", nights, got, prev)
		}
		if got != nights*75 {
			t.Fatalf("expected %d, got %d", nights*75, got)
		}
		prev = got
	}
}

func TestNights(t *testing.T) {
	if got := Nights(day("2024-06-01"), day("2024-06-04")); got != 3 {
		t.Errorf("expected 3 nights, got %d", got)
	}
	if got := Nights(day("2024-02-27"), day("2024-03-02")); got != 4 {
		t.Errorf("expected 4 nights across a leap February, got %d", got)
	}
}
