package daily

import (
	"testing"
	"time"
)

func TestDayNumber(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("JST", 9*60*60)
	tests := []struct {
		name string
		in   time.Time
		want int
	}{
		{"epoch", time.Date(2021, 6, 19, 0, 0, 0, 0, time.UTC), 0},
		{"next day late evening", time.Date(2021, 6, 20, 23, 59, 0, 0, time.UTC), 1},
		{"uses local calendar day", time.Date(2021, 6, 20, 1, 0, 0, 0, loc), 1},
		{"one year later", time.Date(2022, 6, 19, 12, 0, 0, 0, time.UTC), 365},
		{"before epoch", time.Date(2021, 6, 18, 0, 0, 0, 0, time.UTC), -1},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := DayNumber(tt.in); got != tt.want {
				t.Fatalf("DayNumber(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestWordIndex(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)
	later := time.Date(2026, 10, 16, 22, 0, 0, 0, time.UTC)

	a := WordIndex(day, "salt", 300)
	if a < 0 || a >= 300 {
		t.Fatalf("index %d out of range", a)
	}
	if b := WordIndex(later, "salt", 300); a != b {
		t.Fatalf("same day gave %d and %d", a, b)
	}
	if got := WordIndex(day, "salt", 0); got != 0 {
		t.Fatalf("empty pool index = %d, want 0", got)
	}

	// Different days should not all collapse onto one index.
	seen := map[int]bool{}
	for i := 0; i < 30; i++ {
		seen[WordIndex(day.AddDate(0, 0, i), "salt", 300)] = true
	}
	if len(seen) < 2 {
		t.Fatal("index does not vary across days")
	}
}

func TestDateKey(t *testing.T) {
	t.Parallel()

	if got := DateKey(time.Date(2026, 2, 3, 23, 0, 0, 0, time.UTC)); got != "2026-02-03" {
		t.Fatalf("DateKey() = %q", got)
	}
}
