package auth

import (
	"context"
	"net/http"
	"time"
	"weekplanner/dto"
	"weekplanner/model"
	"weekplanner/services"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func SignInController(router *gin.Engine, firestoreClient *firestore.Client) {
	router.POST("/auth/signin", func(c *gin.Context) {
		Signin(c, firestoreClient)
	})
}

func Signin(c *gin.Context, firestoreClient *firestore.Client) {
	var request dto.SigninRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := context.Background()
	docSnap, err := services.GetUserData(ctx, firestoreClient, request.Email)
	if err != nil {
		c.JSON(404, gin.H{"error": err.Error()})
		return
	}

	var user model.User
	if err := docSnap.DataTo(&user); err != nil {
		c.JSON(500, gin.H{"error": "Failed to parse user data"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	switch user.Active {
	case "0":
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User account is not active", "status": "0"})
		return
	case "2":
		c.JSON(http.StatusBadRequest, gin.H{"error": "User account is deleted", "status": "2"})
		return
	}

	if user.Verify != "1" {
		c.JSON(http.StatusForbidden, gin.H{"error": "User account is not verified"})
		return
	}

	accessToken, refreshToken, expiresIn, err := openSession(ctx, firestoreClient, user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	role := "user"
	if user.Role == "admin" {
		role = user.Role
	}

	loginData := map[string]interface{}{
		"email":     request.Email,
		"active":    user.Active,
		"verify":    user.Verify,
		"login":     1,
		"role":      role,
		"updatedat": time.Now(),
	}
	if _, err := firestoreClient.Collection("Users").Doc(user.UserID).Set(ctx, loginData, firestore.MergeAll); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update login status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login Successfully",
		"token": gin.H{
			"accessToken":  accessToken,
			"refreshToken": refreshToken,
			"expiresIn":    expiresIn,
		},
	})
}

// openSession issues the token pair and writes the session record that the
// access middleware checks on every request. Sign-out revokes the record.
func openSession(ctx context.Context, firestoreClient *firestore.Client, userID string) (string, string, int64, error) {
	docSnap, err := services.GetUserDataByUserid(ctx, firestoreClient, userID)
	if err != nil {
		return "", "", 0, err
	}
	var user model.User
	if err := docSnap.DataTo(&user); err != nil {
		return "", "", 0, err
	}

	accessToken, err := services.CreateAccessToken(user.UserID, user.Role)
	if err != nil {
		return "", "", 0, err
	}
	refreshToken, err := services.CreateRefreshToken(user.UserID)
	if err != nil {
		return "", "", 0, err
	}
	hashedRefreshToken, err := services.HashRefreshToken(refreshToken)
	if err != nil {
		return "", "", 0, err
	}

	now := time.Now()
	expiresAt := now.Add(7 * 24 * time.Hour).Unix()
	issuedAt := now.Unix()

	session := model.TokenResponse{
		UserID:       user.UserID,
		RefreshToken: hashedRefreshToken,
		CreatedAt:    issuedAt,
		Revoked:      false,
		ExpiresIn:    expiresAt - issuedAt,
	}
	if _, err := firestoreClient.Collection("refreshTokens").Doc(user.UserID).Set(ctx, session); err != nil {
		return "", "", 0, err
	}
	return accessToken, refreshToken, expiresAt - issuedAt, nil
}
