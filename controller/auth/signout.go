package auth

import (
	"context"
	"net/http"
	"weekplanner/middleware"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
)

func SignOutController(router *gin.Engine, firestoreClient *firestore.Client) {
	router.POST("/auth/signout", middleware.AccessTokenMiddleware(firestoreClient), func(c *gin.Context) {
		SignOut(c, firestoreClient)
	})
}

// SignOut revokes the caller's session record. The access middleware reads
// the same record, so every later board call with this owner id is refused
// until a fresh sign-in.
func SignOut(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)

	ctx := context.Background()
	updates := []firestore.Update{{Path: "revoked", Value: true}}
	if _, err := firestoreClient.Collection("refreshTokens").Doc(userId).Update(ctx, updates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}
