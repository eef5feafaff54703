package booking

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name           string
		s1, e1, s2, e2 string
		want           bool
	}{
		{"identical intervals", "2024-06-01", "2024-06-05", "2024-06-01", "2024-06-05", true},
		{"partial overlap at the tail", "2024-06-01", "2024-06-05", "2024-06-04", "2024-06-07", true},
		{"second contained in first", "2024-06-01", "2024-06-10", "2024-06-03", "2024-06-05", true},
		{"first contained in second", "2024-06-03", "2024-06-05", "2024-06-01", "2024-06-10", true},
		{"touching boundary does not conflict", "2024-06-01", "2024-06-05", "2024-06-05", "2024-06-07", false},
		{"touching boundary reversed", "2024-06-05", "2024-06-07", "2024-06-01", "2024-06-05", false},
		{"disjoint", "2024-06-01", "2024-06-03", "2024-06-10", "2024-06-12", false},
		{"single shared night", "2024-06-01", "2024-06-05", "2024-06-04", "2024-06-06", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(day(tt.s1), day(tt.e1), day(tt.s2), day(tt.e2))
			if got != tt.want {
				t.Errorf("Overlaps(%s,%s,%s,%s) = %v, want %v", tt.s1, tt.e1, tt.s2, tt.e2, got, tt.want)
			}
			// the predicate is symmetric in its two intervals
			sym := Overlaps(day(tt.s2), day(tt.e2), day(tt.s1), day(tt.e1))
			if sym != got {
				t.Errorf("Overlaps is not symmetric for %s-%s vs %s-%s", tt.s1, tt.e1, tt.s2, tt.e2)
			}
		})
	}
}

func TestCoversDate(t *testing.T) {
	start, end := day("2024-06-01"), day("2024-06-05")

	tests := []struct {
		name string
		date string
		want bool
	}{
		{"before check-in", "2024-05-31", false},
		{"check-in day", "2024-06-01", true},
		{"mid stay", "2024-06-03", true},
		{"checkout day is still occupied", "2024-06-05", true},
		{"day after checkout", "2024-06-06", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CoversDate(start, end, day(tt.date)); got != tt.want {
				t.Errorf("CoversDate(%s) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-06-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	if _, err := ParseDate("01-06-2024"); err == nil {
		t.Error("expected error for malformed date")
	}
	if _, err := ParseDate("2024-13-40"); err == nil {
		t.Error("expected error for impossible date")
	}
}

func TestDateTruncation(t *testing.T) {
	noon := time.Date(2024, 6, 1, 12, 30, 45, 0, time.FixedZone("EET", 2*3600))
	got := Date(noon)
	want := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
