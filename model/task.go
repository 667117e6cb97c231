package model

import (
	"errors"
	"time"
)

const DayKeyLayout = "2006-01-02"

// Closed category set. Anything else is rejected before save.
const (
	CategoryPersonal = "personal"
	CategoryWork     = "work"
	CategoryHealth   = "health"
	CategoryStudy    = "study"
	CategoryAdmin    = "admin"
)

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

type Task struct {
	TaskID      string    `firestore:"taskid,omitempty" json:"taskid"`
	OwnerID     string    `firestore:"ownerid,omitempty" json:"ownerid"`
	Title       string    `firestore:"title,omitempty" json:"title"`
	StartAt     time.Time `firestore:"startat,omitempty" json:"startat"`
	EndAt       time.Time `firestore:"endat,omitempty" json:"endat"`
	DurationMin int       `firestore:"durationmin,omitempty" json:"durationmin"`
	AllDay      bool      `firestore:"allday" json:"allday"`
	Category    string    `firestore:"category,omitempty" json:"category"`
	Priority    string    `firestore:"priority,omitempty" json:"priority"`
	Subtasks    []string  `firestore:"subtasks,omitempty" json:"subtasks,omitempty"`
	Notes       string    `firestore:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time `firestore:"createdat,omitempty" json:"createdat"`
}

var (
	ErrEmptyTitle      = errors.New("task title must not be empty")
	ErrMissingDate     = errors.New("task start date is missing")
	ErrEndBeforeStart  = errors.New("task end must not precede its start")
	ErrUnknownCategory = errors.New("unknown task category")
	ErrUnknownPriority = errors.New("unknown task priority")
)

func ValidCategory(category string) bool {
	switch category {
	case CategoryPersonal, CategoryWork, CategoryHealth, CategoryStudy, CategoryAdmin:
		return true
	}
	return false
}

func ValidPriority(priority string) bool {
	switch priority {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Validate checks the fields the user controls before any write is attempted.
func (t Task) Validate() error {
	if t.Title == "" {
		return ErrEmptyTitle
	}
	if t.StartAt.IsZero() {
		return ErrMissingDate
	}
	if !t.AllDay && t.EndAt.Before(t.StartAt) {
		return ErrEndBeforeStart
	}
	if !ValidCategory(t.Category) {
		return ErrUnknownCategory
	}
	if !ValidPriority(t.Priority) {
		return ErrUnknownPriority
	}
	return nil
}

// InZone rebinds the task's instants to loc. The store hands timestamps
// back as UTC, but day columns are calendar days in the board's zone, so
// every decode goes through here before a day-key is derived.
func (t *Task) InZone(loc *time.Location) {
	t.StartAt = t.StartAt.In(loc)
	t.EndAt = t.EndAt.In(loc)
	t.CreatedAt = t.CreatedAt.In(loc)
}

// DayKey is always derived from the start instant, never stored.
func (t Task) DayKey() string {
	return t.StartAt.Format(DayKeyLayout)
}

// slotRank orders all-day entries ahead of timed ones within a day.
func (t Task) slotRank() int {
	if t.AllDay {
		return 0
	}
	return 1
}
