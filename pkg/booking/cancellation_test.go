package booking

import "testing"

func TestCanCancel(t *testing.T) {
	today := day("2024-06-10")

	tests := []struct {
		name      string
		startDate string
		want      bool
	}{
		{"two days of lead time", "2024-06-12", true},
		{"exactly 24 hours is the allowed edge", "2024-06-11", true},
		{"check-in today", "2024-06-10", false},
		{"check-in already passed", "2024-06-08", false},
		{"far future", "2024-09-01", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanCancel(day(tt.startDate), today); got != tt.want {
				t.Errorf("CanCancel(%s, %s) = %v, want %v", tt.startDate, "2024-06-10", got, tt.want)
			}
		})
	}
}

func TestHoursUntilCheckIn(t *testing.T) {
	today := day("2024-06-10")

	if got := HoursUntilCheckIn(day("2024-06-11"), today); got != 24 {
		t.Errorf("expected 24 hours, got %d", got)
	}
	if got := HoursUntilCheckIn(day("2024-06-10"), today); got != 0 {
		t.Errorf("expected 0 hours on check-in day, got %d", got)
	}
	if got := HoursUntilCheckIn(day("2024-06-09"), today); got != -24 {
		t.Errorf("expected -24 hours after check-in, got %d", got)
	}
}
