package services

import "time"

// WeekWindow returns the 7 calendar days of the week containing anchor,
// Monday first, each normalized to local midnight.
func WeekWindow(anchor time.Time) []time.Time {
	start := WeekStart(anchor)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// WeekStart normalizes anchor down to the Monday of its week.
func WeekStart(anchor time.Time) time.Time {
	day := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, anchor.Location())
	// time.Weekday counts Sunday as 0, the board counts Monday as day one
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// PrevWeek and NextWeek shift the anchor for board navigation.
func PrevWeek(anchor time.Time) time.Time { return anchor.AddDate(0, 0, -7) }

func NextWeek(anchor time.Time) time.Time { return anchor.AddDate(0, 0, 7) }
