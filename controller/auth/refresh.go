package auth

import (
	"context"
	"crypto/sha256"
	"net/http"
	"weekplanner/middleware"
	"weekplanner/model"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func RefreshTokenController(router *gin.Engine, firestoreClient *firestore.Client) {
	router.POST("/auth/refresh", middleware.RefreshTokenMiddleware(), func(c *gin.Context) {
		RefreshToken(c, firestoreClient)
	})
}

// RefreshToken rotates the token pair. The presented refresh token must
// match the stored hash and the session must not be revoked.
func RefreshToken(c *gin.Context, firestoreClient *firestore.Client) {
	userID := c.MustGet("userID").(string)
	presented := c.MustGet("refreshToken").(string)

	ctx := context.Background()
	sessionDoc, err := firestoreClient.Collection("refreshTokens").Doc(userID).Get(ctx)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session not found, sign in again"})
		return
	}
	var session model.TokenResponse
	if err := sessionDoc.DataTo(&session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse session"})
		return
	}
	if session.Revoked {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session revoked, sign in again"})
		return
	}

	digest := sha256.Sum256([]byte(presented))
	if err := bcrypt.CompareHashAndPassword([]byte(session.RefreshToken), digest[:]); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token does not match"})
		return
	}

	accessToken, refreshToken, expiresIn, err := openSession(ctx, firestoreClient, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Token refreshed",
		"token": gin.H{
			"accessToken":  accessToken,
			"refreshToken": refreshToken,
			"expiresIn":    expiresIn,
		},
	})
}
