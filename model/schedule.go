package model

import (
	"sort"
	"time"
)

// ScheduleData maps a day-key (YYYY-MM-DD) to the tasks scheduled on that
// day. It is rebuilt from a fetch every time and is never the source of
// truth; the store is.
type ScheduleData map[string][]Task

// BuildSchedule groups tasks under their derived day-key and sorts each
// day ascending by start time, all-day entries first, creation time as the
// final tie-break.
func BuildSchedule(tasks []Task) ScheduleData {
	sched := make(ScheduleData)
	for _, t := range tasks {
		key := t.DayKey()
		sched[key] = append(sched[key], t)
	}
	for key, day := range sched {
		sort.SliceStable(day, func(i, j int) bool {
			if day[i].slotRank() != day[j].slotRank() {
				return day[i].slotRank() < day[j].slotRank()
			}
			if !day[i].StartAt.Equal(day[j].StartAt) {
				return day[i].StartAt.Before(day[j].StartAt)
			}
			return day[i].CreatedAt.Before(day[j].CreatedAt)
		})
		sched[key] = day
	}
	return sched
}

// Column is one day of the board, in display order.
type Column struct {
	DayKey string `json:"daykey"`
	Label  string `json:"label"`
	Tasks  []Task `json:"tasks"`
}

// ProjectWeek produces one column per day in day order. Days without tasks
// yield an empty column, not a missing one. The label exists for display
// only and is never written back.
func ProjectWeek(days []time.Time, sched ScheduleData) []Column {
	columns := make([]Column, 0, len(days))
	for _, day := range days {
		key := day.Format(DayKeyLayout)
		tasks := sched[key]
		if tasks == nil {
			tasks = []Task{}
		}
		columns = append(columns, Column{
			DayKey: key,
			Label:  day.Format("Mon 02 Jan"),
			Tasks:  tasks,
		})
	}
	return columns
}
