package dto

import "weekplanner/model"

type CreateTaskRequest struct {
	Title       string   `json:"title" binding:"required"`
	StartAt     string   `json:"startat" binding:"required"` // RFC3339
	DurationMin int      `json:"durationmin"`
	AllDay      bool     `json:"allday"`
	Category    string   `json:"category" binding:"required"`
	Priority    string   `json:"priority" binding:"required"`
	Subtasks    []string `json:"subtasks"`
	Notes       string   `json:"notes"`
	// Confirm commits the save even when a conflict was reported.
	Confirm bool `json:"confirm"`
}

type UpdateTaskRequest struct {
	Title       string   `json:"title" binding:"required"`
	StartAt     string   `json:"startat" binding:"required"` // RFC3339
	DurationMin int      `json:"durationmin"`
	AllDay      bool     `json:"allday"`
	Category    string   `json:"category" binding:"required"`
	Priority    string   `json:"priority" binding:"required"`
	Subtasks    []string `json:"subtasks"`
	Notes       string   `json:"notes"`
}

type MoveTaskRequest struct {
	TargetDay string `json:"targetday" binding:"required"` // YYYY-MM-DD
}

type WeekBoardResponse struct {
	Anchor  string         `json:"anchor"`
	Columns []model.Column `json:"columns"`
}

type ConflictResponse struct {
	Error    string     `json:"error"`
	Conflict model.Task `json:"conflict"`
}
