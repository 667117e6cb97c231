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

func MoveTaskController(router *gin.Engine, firestoreClient *firestore.Client) {
	router.POST("/task/:taskid/move", middleware.AccessTokenMiddleware(firestoreClient), func(c *gin.Context) {
		Movetask(c, firestoreClient)
	})
}

// Movetask is the drop end of a drag: one Begin/Drop pass through the drag
// controller, then a window refetch. A drop on an unknown task id is a
// silent no-op, not an error.
func Movetask(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)
	taskId := c.Param("taskid")

	var moveReq dto.MoveTaskRequest
	if err := c.ShouldBindJSON(&moveReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	targetDay, err := time.ParseInLocation(model.DayKeyLayout, moveReq.TargetDay, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid target day"})
		return
	}

	ctx := context.Background()
	drag := services.NewDragController(func(ctx context.Context, taskID string, day time.Time) error {
		return services.MoveTask(ctx, firestoreClient, userId, taskID, day)
	})
	drag.Begin(taskId)
	if err := drag.Drop(ctx, targetDay); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to move task"})
		return
	}

	columns, err := services.WeekBoard(ctx, firestoreClient, userId, targetDay)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Task moved, board refetch failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task moved",
		"columns": columns,
	})
}
