package services

import (
	"context"
	"time"
)

type dragState int

const (
	dragIdle dragState = iota
	dragActive
)

// MoveFunc persists a move; the controller does not care how.
type MoveFunc func(ctx context.Context, taskID string, targetDay time.Time) error

// DragController is the drag-and-drop state machine: idle until a drag
// begins, holding the dragged task's id until the drop or cancel. Drop
// targets accept unconditionally; a same-day drop is just a persisted no-op
// move.
type DragController struct {
	state    dragState
	captured string
	move     MoveFunc
}

func NewDragController(move MoveFunc) *DragController {
	return &DragController{move: move}
}

// Begin captures the dragged task. Starting a new drag while one is active
// replaces the captured id.
func (d *DragController) Begin(taskID string) {
	d.state = dragActive
	d.captured = taskID
}

// Dragging reports whether a drag is in progress.
func (d *DragController) Dragging() bool {
	return d.state == dragActive
}

// Drop commits the captured task onto targetDay and returns to idle. A drop
// with nothing captured is ignored.
func (d *DragController) Drop(ctx context.Context, targetDay time.Time) error {
	if d.state != dragActive || d.captured == "" {
		return nil
	}
	taskID := d.captured
	d.reset()
	return d.move(ctx, taskID, targetDay)
}

// Cancel abandons the drag without side effects, e.g. a drop outside any
// column.
func (d *DragController) Cancel() {
	d.reset()
}

func (d *DragController) reset() {
	d.state = dragIdle
	d.captured = ""
}
