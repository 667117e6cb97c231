package task

import (
	"context"
	"net/http"
	"weekplanner/dto"
	"weekplanner/middleware"
	"weekplanner/services"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
)

func UpdateTaskController(router *gin.Engine, firestoreClient *firestore.Client) {
	router.PUT("/task/:taskid", middleware.AccessTokenMiddleware(firestoreClient), func(c *gin.Context) {
		Updatetask(c, firestoreClient)
	})
}

// Updatetask saves the edit modal. No conflict check on updates; only
// creates are advised.
func Updatetask(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)
	taskId := c.Param("taskid")

	var taskReq dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&taskReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	edited, err := draftFromRequest(taskReq.Title, taskReq.StartAt, taskReq.DurationMin, taskReq.AllDay,
		taskReq.Category, taskReq.Priority, taskReq.Subtasks, taskReq.Notes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	edited.TaskID = taskId

	ctx := context.Background()
	if err := services.UpdateTask(ctx, firestoreClient, userId, edited); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}

	columns, err := services.WeekBoard(ctx, firestoreClient, userId, edited.StartAt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Task updated, board refetch failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task updated successfully",
		"columns": columns,
	})
}
