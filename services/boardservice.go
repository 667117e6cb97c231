package services

import (
	"context"
	"time"
	"weekplanner/model"

	"cloud.google.com/go/firestore"
)

// WeekBoard fetches the anchor's week for the owner and projects it into
// day columns. Every write handler calls this again after its write lands
// instead of patching local state, so the returned board always reflects
// server-assigned fields.
func WeekBoard(ctx context.Context, fb *firestore.Client, ownerID string, anchor time.Time) ([]model.Column, error) {
	days := WeekWindow(anchor)
	tasks, err := FetchWindow(ctx, fb, ownerID, days[0], days[len(days)-1])
	if err != nil {
		return nil, err
	}
	return model.ProjectWeek(days, model.BuildSchedule(tasks)), nil
}
