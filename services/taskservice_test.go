package services

import (
	"testing"
	"time"
)

func TestTransplantPreservesDuration(t *testing.T) {
	cases := []struct {
		name     string
		start    time.Time
		duration time.Duration
		target   time.Time
	}{
		{
			"monday to wednesday",
			time.Date(2025, 8, 11, 8, 0, 0, 0, time.Local),
			time.Hour,
			time.Date(2025, 8, 13, 0, 0, 0, 0, time.Local),
		},
		{
			"across a month boundary",
			time.Date(2025, 8, 29, 16, 30, 0, 0, time.Local),
			90 * time.Minute,
			time.Date(2025, 9, 1, 0, 0, 0, 0, time.Local),
		},
		{
			"task spanning midnight",
			time.Date(2025, 8, 11, 23, 30, 0, 0, time.Local),
			time.Hour,
			time.Date(2025, 8, 15, 0, 0, 0, 0, time.Local),
		},
	}

	for _, tc := range cases {
		end := tc.start.Add(tc.duration)
		newStart, newEnd := Transplant(tc.start, end, tc.target)

		if got := newEnd.Sub(newStart); got != tc.duration {
			t.Errorf("%s: duration changed from %v to %v", tc.name, tc.duration, got)
		}
		if newStart.Hour() != tc.start.Hour() || newStart.Minute() != tc.start.Minute() {
			t.Errorf("%s: time of day changed, got %v", tc.name, newStart)
		}
		if newStart.Year() != tc.target.Year() || newStart.YearDay() != tc.target.YearDay() {
			t.Errorf("%s: start did not land on the target day, got %v", tc.name, newStart)
		}
	}
}

func TestTransplantDragScenario(t *testing.T) {
	// Dragging an 08:00-09:00 Monday task onto Wednesday must yield
	// Wednesday 08:00-09:00.
	start := time.Date(2025, 8, 11, 8, 0, 0, 0, time.Local)
	end := time.Date(2025, 8, 11, 9, 0, 0, 0, time.Local)
	wednesday := time.Date(2025, 8, 13, 0, 0, 0, 0, time.Local)

	newStart, newEnd := Transplant(start, end, wednesday)

	wantStart := time.Date(2025, 8, 13, 8, 0, 0, 0, time.Local)
	wantEnd := time.Date(2025, 8, 13, 9, 0, 0, 0, time.Local)
	if !newStart.Equal(wantStart) || !newEnd.Equal(wantEnd) {
		t.Errorf("expected %v-%v, got %v-%v", wantStart, wantEnd, newStart, newEnd)
	}
}
