package model

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.Local)
}

func TestBuildScheduleGroupsByDerivedDayKey(t *testing.T) {
	tasks := []Task{
		{TaskID: "a", Title: "standup", StartAt: day(2025, 8, 11, 9, 0), EndAt: day(2025, 8, 11, 9, 30)},
		{TaskID: "b", Title: "gym", StartAt: day(2025, 8, 12, 18, 0), EndAt: day(2025, 8, 12, 19, 0)},
		{TaskID: "c", Title: "review", StartAt: day(2025, 8, 11, 14, 0), EndAt: day(2025, 8, 11, 15, 0)},
	}

	sched := BuildSchedule(tasks)

	if len(sched) != 2 {
		t.Fatalf("expected 2 day buckets, got %d", len(sched))
	}
	for key, dayTasks := range sched {
		for _, task := range dayTasks {
			if task.DayKey() != key {
				t.Errorf("task %s filed under %s but derives day-key %s", task.TaskID, key, task.DayKey())
			}
		}
	}
	monday := sched["2025-08-11"]
	if len(monday) != 2 || monday[0].TaskID != "a" || monday[1].TaskID != "c" {
		t.Errorf("expected Monday ordered [a c], got %v", ids(monday))
	}
}

func TestBuildScheduleSortsAllDayFirst(t *testing.T) {
	tasks := []Task{
		{TaskID: "timed", StartAt: day(2025, 8, 11, 8, 0), EndAt: day(2025, 8, 11, 9, 0)},
		{TaskID: "allday", StartAt: day(2025, 8, 11, 0, 0), EndAt: day(2025, 8, 11, 0, 0), AllDay: true},
	}

	sched := BuildSchedule(tasks)
	got := ids(sched["2025-08-11"])
	if len(got) != 2 || got[0] != "allday" || got[1] != "timed" {
		t.Errorf("expected [allday timed], got %v", got)
	}
}

func TestBuildScheduleBreaksStartTieByCreation(t *testing.T) {
	earlier := day(2025, 8, 10, 12, 0)
	later := day(2025, 8, 10, 13, 0)
	tasks := []Task{
		{TaskID: "second", StartAt: day(2025, 8, 11, 9, 0), CreatedAt: later},
		{TaskID: "first", StartAt: day(2025, 8, 11, 9, 0), CreatedAt: earlier},
	}

	got := ids(BuildSchedule(tasks)["2025-08-11"])
	if got[0] != "first" || got[1] != "second" {
		t.Errorf("expected creation order [first second], got %v", got)
	}
}

func TestProjectWeekKeepsEmptyColumns(t *testing.T) {
	days := []time.Time{
		day(2025, 8, 11, 0, 0),
		day(2025, 8, 12, 0, 0),
		day(2025, 8, 13, 0, 0),
	}
	sched := BuildSchedule([]Task{
		{TaskID: "a", StartAt: day(2025, 8, 12, 10, 0)},
	})

	columns := ProjectWeek(days, sched)

	if len(columns) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(columns))
	}
	if len(columns[0].Tasks) != 0 || len(columns[2].Tasks) != 0 {
		t.Errorf("empty days must render as empty columns")
	}
	if columns[1].DayKey != "2025-08-12" || len(columns[1].Tasks) != 1 {
		t.Errorf("expected the task under 2025-08-12, got %+v", columns[1])
	}
	if columns[0].Label == "" {
		t.Errorf("expected a display label for every column")
	}
}

func TestInZoneRestoresLocalDayAfterStoreRoundTrip(t *testing.T) {
	// The store returns timestamps as UTC instants. A 02:00 task in UTC+7
	// decodes as 19:00 the previous UTC day; without rebinding the zone it
	// would be filed under the wrong column.
	bangkok := time.FixedZone("UTC+7", 7*60*60)
	localStart := time.Date(2025, 8, 12, 2, 0, 0, 0, bangkok)

	task := Task{
		TaskID:    "a",
		StartAt:   localStart.UTC(),
		EndAt:     localStart.Add(time.Hour).UTC(),
		CreatedAt: localStart.Add(-24 * time.Hour).UTC(),
	}
	task.InZone(bangkok)

	if got := task.DayKey(); got != "2025-08-12" {
		t.Errorf("expected day-key 2025-08-12 after rebinding, got %s", got)
	}
	if task.StartAt.Hour() != 2 || task.StartAt.Minute() != 0 {
		t.Errorf("expected clock time 02:00 restored, got %v", task.StartAt)
	}
	if got := task.EndAt.Sub(task.StartAt); got != time.Hour {
		t.Errorf("duration changed across the zone rebinding: %v", got)
	}

	sched := BuildSchedule([]Task{task})
	if _, ok := sched["2025-08-12"]; !ok || len(sched) != 1 {
		t.Errorf("expected the task filed under 2025-08-12, got buckets %v", keysOf(sched))
	}
}

func TestTaskValidate(t *testing.T) {
	valid := Task{
		Title:    "write report",
		StartAt:  day(2025, 8, 11, 9, 0),
		EndAt:    day(2025, 8, 11, 10, 0),
		Category: CategoryWork,
		Priority: PriorityMedium,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid task rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Task)
		want   error
	}{
		{"empty title", func(x *Task) { x.Title = "" }, ErrEmptyTitle},
		{"missing date", func(x *Task) { x.StartAt = time.Time{} }, ErrMissingDate},
		{"end before start", func(x *Task) { x.EndAt = x.StartAt.Add(-time.Hour) }, ErrEndBeforeStart},
		{"bad category", func(x *Task) { x.Category = "chores" }, ErrUnknownCategory},
		{"bad priority", func(x *Task) { x.Priority = "urgent" }, ErrUnknownPriority},
	}
	for _, tc := range cases {
		task := valid
		tc.mutate(&task)
		if err := task.Validate(); err != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func keysOf(sched ScheduleData) []string {
	var keys []string
	for key := range sched {
		keys = append(keys, key)
	}
	return keys
}

func ids(tasks []Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.TaskID)
	}
	return out
}
