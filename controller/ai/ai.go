package ai

import (
	"errors"
	"net/http"
	"time"
	"weekplanner/dto"
	"weekplanner/middleware"
	"weekplanner/services"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
)

func AIController(router *gin.Engine, firestoreClient *firestore.Client, client *services.AIClient) {
	routes := router.Group("/ai", middleware.AccessTokenMiddleware(firestoreClient))
	{
		routes.POST("/draft", func(c *gin.Context) {
			DraftTask(c, client)
		})
		routes.POST("/subtasks", func(c *gin.Context) {
			SuggestSubtasks(c, client)
		})
	}
}

// DraftTask turns a prompt into a reviewable draft. Nothing is persisted;
// the client opens its edit form with the draft and saves explicitly.
func DraftTask(c *gin.Context, client *services.AIClient) {
	var req dto.DraftTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt is required"})
		return
	}

	draft, err := client.DraftTask(c.Request.Context(), req.Prompt, time.Now())
	if err != nil {
		if errors.Is(err, services.ErrIncompleteDraft) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "The assistant returned an incomplete task, try rephrasing"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Task drafting failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

func SuggestSubtasks(c *gin.Context, client *services.AIClient) {
	var req dto.SuggestSubtasksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	items, err := client.SuggestSubtasks(c.Request.Context(), req.Title)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Subtask suggestion failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.SuggestSubtasksResponse{Subtasks: items})
}
