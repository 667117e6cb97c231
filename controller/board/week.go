package board

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

func WeekBoardController(router *gin.Engine, firestoreClient *firestore.Client) {
	router.GET("/board/week", middleware.AccessTokenMiddleware(firestoreClient), func(c *gin.Context) {
		WeekBoard(c, firestoreClient)
	})
}

// WeekBoard returns the 7 columns of the week containing the anchor date
// (today when absent). Days without tasks come back as empty columns.
func WeekBoard(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)

	anchor := time.Now()
	if raw := c.Query("anchor"); raw != "" {
		parsed, err := time.ParseInLocation(model.DayKeyLayout, raw, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid anchor date, use YYYY-MM-DD"})
			return
		}
		anchor = parsed
	}

	ctx := context.Background()
	columns, err := services.WeekBoard(ctx, firestoreClient, userId, anchor)
	if err != nil {
		// A failed fetch clears to empty rather than keeping stale columns.
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch week",
			"columns": []model.Column{},
		})
		return
	}

	c.JSON(http.StatusOK, dto.WeekBoardResponse{
		Anchor:  services.WeekStart(anchor).Format(model.DayKeyLayout),
		Columns: columns,
	})
}
