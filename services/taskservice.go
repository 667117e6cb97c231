package services

import (
	"context"
	"fmt"
	"time"
	"weekplanner/model"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const tasksCollection = "Tasks"

// FetchWindow returns every task of the owner whose start falls on a day in
// [start, end] inclusive. Both bounds are calendar days; time-of-day on the
// bounds is ignored.
func FetchWindow(ctx context.Context, fb *firestore.Client, ownerID string, start, end time.Time) ([]model.Task, error) {
	lo := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	hi := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location()).AddDate(0, 0, 1)

	iter := fb.Collection(tasksCollection).
		Where("ownerid", "==", ownerID).
		Where("startat", ">=", lo).
		Where("startat", "<", hi).
		Documents(ctx)
	defer iter.Stop()

	var tasks []model.Task
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("fetch window: %w", err)
		}
		var task model.Task
		if err := doc.DataTo(&task); err != nil {
			return nil, fmt.Errorf("fetch window: decode task: %w", err)
		}
		task.InZone(time.Local)
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// CreateTask assigns id and creation timestamp and persists the draft. The
// caller refetches the window afterwards instead of inserting locally, so
// the view always reflects server-assigned fields.
func CreateTask(ctx context.Context, fb *firestore.Client, ownerID string, draft model.Task) (model.Task, error) {
	draft.TaskID = uuid.New().String()
	draft.OwnerID = ownerID
	draft.CreatedAt = time.Now()
	if draft.DurationMin == 0 && !draft.AllDay {
		draft.DurationMin = int(draft.EndAt.Sub(draft.StartAt) / time.Minute)
	}

	if _, err := fb.Collection(tasksCollection).Doc(draft.TaskID).Set(ctx, draft); err != nil {
		return model.Task{}, fmt.Errorf("create task: %w", err)
	}
	return draft, nil
}

// UpdateTask rewrites every mutable field of an existing task. Id, owner and
// creation timestamp never change.
func UpdateTask(ctx context.Context, fb *firestore.Client, ownerID string, task model.Task) error {
	stored, err := findOwnedTask(ctx, fb, ownerID, task.TaskID)
	if err != nil {
		return err
	}
	if stored == nil {
		return fmt.Errorf("update task: task %s not found", task.TaskID)
	}

	updates := []firestore.Update{
		{Path: "title", Value: task.Title},
		{Path: "startat", Value: task.StartAt},
		{Path: "endat", Value: task.EndAt},
		{Path: "durationmin", Value: task.DurationMin},
		{Path: "allday", Value: task.AllDay},
		{Path: "category", Value: task.Category},
		{Path: "priority", Value: task.Priority},
		{Path: "subtasks", Value: task.Subtasks},
		{Path: "notes", Value: task.Notes},
	}
	if _, err := fb.Collection(tasksCollection).Doc(task.TaskID).Update(ctx, updates); err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

// MoveTask reschedules a task onto targetDay, keeping its clock time and
// duration. A task that cannot be located is silently skipped; the drop of
// an already-deleted card is not an error.
func MoveTask(ctx context.Context, fb *firestore.Client, ownerID, taskID string, targetDay time.Time) error {
	task, err := findOwnedTask(ctx, fb, ownerID, taskID)
	if err != nil {
		return err
	}
	if task == nil {
		return nil
	}

	start, end := Transplant(task.StartAt, task.EndAt, targetDay)
	updates := []firestore.Update{
		{Path: "startat", Value: start},
		{Path: "endat", Value: end},
	}
	if _, err := fb.Collection(tasksCollection).Doc(taskID).Update(ctx, updates); err != nil {
		return fmt.Errorf("move task: %w", err)
	}
	return nil
}

// Transplant shifts a start/end pair onto targetDay. The start keeps its
// original time of day and the end moves by the same delta, so the duration
// is invariant across a move.
func Transplant(start, end, targetDay time.Time) (time.Time, time.Time) {
	newStart := time.Date(
		targetDay.Year(), targetDay.Month(), targetDay.Day(),
		start.Hour(), start.Minute(), start.Second(), start.Nanosecond(),
		start.Location(),
	)
	return newStart, end.Add(newStart.Sub(start))
}

// findOwnedTask loads a task document and checks ownership. A missing
// document or one owned by somebody else yields (nil, nil).
func findOwnedTask(ctx context.Context, fb *firestore.Client, ownerID, taskID string) (*model.Task, error) {
	doc, err := fb.Collection(tasksCollection).Doc(taskID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("load task: %w", err)
	}
	var task model.Task
	if err := doc.DataTo(&task); err != nil {
		return nil, fmt.Errorf("load task: decode: %w", err)
	}
	task.InZone(time.Local)
	if task.OwnerID != ownerID {
		return nil, nil
	}
	return &task, nil
}
