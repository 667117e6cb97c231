package auth

import (
	"context"
	"net/http"
	"time"
	"weekplanner/dto"
	"weekplanner/model"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func GoogleSignInController(router *gin.Engine, firestoreClient *firestore.Client) {
	router.POST("/auth/googlelogin", func(c *gin.Context) {
		GoogleSignIn(c, firestoreClient)
	})
}

// GoogleSignIn upserts the account behind a social login and opens a
// session. Google accounts count as verified.
func GoogleSignIn(c *gin.Context, firestoreClient *firestore.Client) {
	var req dto.GoogleSignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ctx := context.Background()
	query := firestoreClient.Collection("Users").Where("email", "==", req.Email).Limit(1)
	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user", "detail": err.Error()})
		return
	}

	var user model.User
	isNewUser := false

	if len(docs) > 0 {
		if err := docs[0].DataTo(&user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse user data"})
			return
		}

		if user.Verify == "0" {
			userDocRef := firestoreClient.Collection("Users").Doc(user.UserID)
			if _, err := userDocRef.Update(ctx, []firestore.Update{{Path: "verify", Value: "1"}}); err == nil {
				user.Verify = "1"
			}
		}

		switch user.Active {
		case "0":
			c.JSON(http.StatusForbidden, gin.H{"error": "User account is not active", "status": "0"})
			return
		case "2":
			c.JSON(http.StatusForbidden, gin.H{"error": "User account is deleted", "status": "2"})
			return
		}
	} else {
		docid := uuid.New().String()
		user = model.User{
			UserID:    docid,
			Name:      req.Name,
			Email:     req.Email,
			Password:  "-",
			Profile:   "none-url",
			Role:      "user",
			Verify:    "1",
			Active:    "1",
			CreatedAt: time.Now(),
		}
		if _, err := firestoreClient.Collection("Users").Doc(docid).Set(ctx, user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}
		isNewUser = true
	}

	accessToken, refreshToken, expiresIn, err := openSession(ctx, firestoreClient, user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	message := "Login Successfully"
	if isNewUser {
		message = "Account created, login successfully"
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"user": gin.H{
			"id":    user.UserID,
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
		"token": gin.H{
			"accessToken":  accessToken,
			"refreshToken": refreshToken,
			"expiresIn":    expiresIn,
		},
	})
}
