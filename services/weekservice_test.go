package services

import (
	"testing"
	"time"
)

func TestWeekWindowShape(t *testing.T) {
	anchors := []time.Time{
		time.Date(2025, 8, 11, 0, 0, 0, 0, time.Local),  // Monday
		time.Date(2025, 8, 13, 15, 4, 5, 0, time.Local), // Wednesday afternoon
		time.Date(2025, 8, 17, 23, 59, 0, 0, time.Local), // Sunday late
		time.Date(2024, 12, 30, 0, 0, 0, 0, time.Local),  // year boundary
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local),    // month boundary
	}

	for _, anchor := range anchors {
		days := WeekWindow(anchor)
		if len(days) != 7 {
			t.Fatalf("anchor %v: expected 7 days, got %d", anchor, len(days))
		}
		if days[0].Weekday() != time.Monday {
			t.Errorf("anchor %v: week must start on Monday, got %v", anchor, days[0].Weekday())
		}
		for i := 1; i < 7; i++ {
			if !days[i].Equal(days[i-1].AddDate(0, 0, 1)) {
				t.Errorf("anchor %v: days %d and %d are not consecutive", anchor, i-1, i)
			}
		}
		anchorDay := anchor.Format("2006-01-02")
		found := false
		for _, d := range days {
			if d.Format("2006-01-02") == anchorDay {
				found = true
			}
		}
		if !found {
			t.Errorf("anchor %v: window does not contain the anchor day", anchor)
		}
	}
}

func TestWeekStartIdempotentOnMonday(t *testing.T) {
	monday := time.Date(2025, 8, 11, 0, 0, 0, 0, time.Local)
	if got := WeekStart(monday); !got.Equal(monday) {
		t.Errorf("expected %v, got %v", monday, got)
	}
	if got := WeekStart(monday.Add(9 * time.Hour)); !got.Equal(monday) {
		t.Errorf("expected time of day stripped, got %v", got)
	}
}

func TestWeekNavigation(t *testing.T) {
	anchor := time.Date(2025, 8, 13, 0, 0, 0, 0, time.Local)
	if got := NextWeek(anchor); got.Day() != 20 {
		t.Errorf("expected the 20th, got %v", got)
	}
	if got := PrevWeek(anchor); got.Day() != 6 {
		t.Errorf("expected the 6th, got %v", got)
	}
	if !WeekStart(NextWeek(anchor)).Equal(WeekStart(anchor).AddDate(0, 0, 7)) {
		t.Errorf("next week's start must be exactly 7 days on")
	}
}
