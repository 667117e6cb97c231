package services

import "weekplanner/model"

// FindConflict reports the first already-scheduled task that collides with
// the draft, or nil. It is consulted before a create only, never before an
// update, and it is advisory: the caller asks the user to confirm rather
// than refusing the save.
//
// Two tasks collide when they sit on the same day and either of them is
// all-day, or they start at the exact same instant.
func FindConflict(sched model.ScheduleData, draft model.Task) *model.Task {
	for _, existing := range sched[draft.DayKey()] {
		if existing.TaskID == draft.TaskID {
			continue
		}
		if existing.AllDay || draft.AllDay {
			found := existing
			return &found
		}
		if existing.StartAt.Equal(draft.StartAt) {
			found := existing
			return &found
		}
	}
	return nil
}
