package service

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateForWeek(t *testing.T) {
	start := date(2025, time.July, 21) // a Monday

	tests := []struct {
		name    string
		weekNo  int
		weekday int
		want    time.Time
	}{
		{"first monday is the start date", 1, 1, date(2025, time.July, 21)},
		{"first tuesday", 1, 2, date(2025, time.July, 22)},
		{"first sunday", 1, 7, date(2025, time.July, 27)},
		{"third tuesday", 3, 2, date(2025, time.August, 5)},
		{"tenth monday", 10, 1, date(2025, time.September, 22)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DateForWeek(start, tt.weekNo, tt.weekday)
			if !got.Equal(tt.want) {
				t.Errorf("DateForWeek(%d, %d) = %s, want %s",
					tt.weekNo, tt.weekday, got.Format("2006-01-02"), tt.want.Format("2006-01-02"))
			}
		})
	}
}

func TestDateForWeekMonotonic(t *testing.T) {
	start := date(2025, time.July, 21)

	// each successive week moves exactly seven days
	for w := 1; w < 20; w++ {
		a := DateForWeek(start, w, 3)
		b := DateForWeek(start, w+1, 3)
		if b.Sub(a) != 7*24*time.Hour {
			t.Fatalf("week %d to %d moved %v, want 168h", w, w+1, b.Sub(a))
		}
	}

	// each successive weekday moves exactly one day
	for wd := 1; wd < 7; wd++ {
		a := DateForWeek(start, 4, wd)
		b := DateForWeek(start, 4, wd+1)
		if b.Sub(a) != 24*time.Hour {
			t.Fatalf("weekday %d to %d moved %v, want 24h", wd, wd+1, b.Sub(a))
		}
	}
}

func TestWeekHeaderLabel(t *testing.T) {
	d := DateForWeek(date(2025, time.July, 21), 1, 2)
	if got := WeekHeaderLabel(1, d); got != "W1 (Tue 07/22)" {
		t.Errorf("WeekHeaderLabel = %q, want %q", got, "W1 (Tue 07/22)")
	}
}
