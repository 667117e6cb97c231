package task

import (
	"context"
	"net/http"
	"time"
	"weekplanner/dto"
	"weekplanner/middleware"
	"weekplanner/model"
	"weekplanner/services"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
)

func CreateTaskController(router *gin.Engine, firestoreClient *firestore.Client) {
	router.POST("/task", middleware.AccessTokenMiddleware(firestoreClient), func(c *gin.Context) {
		Createtask(c, firestoreClient)
	})
}

func Createtask(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)
	var taskReq dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&taskReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	draft, err := draftFromRequest(taskReq.Title, taskReq.StartAt, taskReq.DurationMin, taskReq.AllDay,
		taskReq.Category, taskReq.Priority, taskReq.Subtasks, taskReq.Notes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := context.Background()
	if _, err := services.GetUserDataByUserid(ctx, firestoreClient, userId); err != nil {
		c.JSON(404, gin.H{"error": err.Error()})
		return
	}

	// Advisory conflict check against the draft's week: report and let the
	// user decide, never auto re-slot.
	if !taskReq.Confirm {
		days := services.WeekWindow(draft.StartAt)
		existing, err := services.FetchWindow(ctx, firestoreClient, userId, days[0], days[len(days)-1])
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check for conflicts"})
			return
		}
		if conflict := services.FindConflict(model.BuildSchedule(existing), draft); conflict != nil {
			c.JSON(http.StatusConflict, dto.ConflictResponse{
				Error:    "Another task occupies this slot, resend with confirm to save anyway",
				Conflict: *conflict,
			})
			return
		}
	}

	created, err := services.CreateTask(ctx, firestoreClient, userId, draft)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to create task"})
		return
	}

	columns, err := services.WeekBoard(ctx, firestoreClient, userId, created.StartAt)
	if err != nil {
		// The write landed; surface the failed refetch with an empty board
		// rather than stale local state.
		c.JSON(http.StatusCreated, gin.H{
			"message": "Task created, board refetch failed",
			"taskID":  created.TaskID,
			"columns": []model.Column{},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Task created successfully",
		"taskID":  created.TaskID,
		"columns": columns,
	})
}

// draftFromRequest builds and validates an unsaved task from request
// fields. Id, owner and creation time stay unset; the store assigns them.
func draftFromRequest(title, startAt string, durationMin int, allDay bool, category, priority string, subtasks []string, notes string) (model.Task, error) {
	start, err := time.Parse(time.RFC3339, startAt)
	if err != nil {
		return model.Task{}, model.ErrMissingDate
	}
	if durationMin <= 0 && !allDay {
		durationMin = 30
	}

	draft := model.Task{
		Title:       title,
		StartAt:     start,
		EndAt:       start.Add(time.Duration(durationMin) * time.Minute),
		DurationMin: durationMin,
		AllDay:      allDay,
		Category:    category,
		Priority:    priority,
		Subtasks:    subtasks,
		Notes:       notes,
	}
	if allDay {
		draft.EndAt = start
		draft.DurationMin = 0
	}
	if err := draft.Validate(); err != nil {
		return model.Task{}, err
	}
	return draft, nil
}
