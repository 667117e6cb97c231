package user

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"
	"weekplanner/dto"
	"weekplanner/middleware"
	"weekplanner/model"
	"weekplanner/services"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func UserController(router *gin.Engine, firestoreClient *firestore.Client) {
	routes := router.Group("/user", middleware.AccessTokenMiddleware(firestoreClient))
	{
		routes.GET("/profile", func(c *gin.Context) {
			GetProfile(c, firestoreClient)
		})
		routes.PUT("/profile", func(c *gin.Context) {
			UpdateProfileUser(c, firestoreClient)
		})
	}
}

func GetProfile(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)

	ctx := context.Background()
	doc, err := services.GetUserDataByUserid(ctx, firestoreClient, userId)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	var user model.User
	if err := doc.DataTo(&user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse user data"})
		return
	}

	c.JSON(http.StatusOK, dto.UserResponse{
		UserID:    user.UserID,
		Name:      user.Name,
		Email:     user.Email,
		Profile:   user.Profile,
		Role:      user.Role,
		IsVerify:  user.Verify,
		IsActive:  user.Active,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	})
}

func UpdateProfileUser(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)

	var updateProfile dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&updateProfile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if updateProfile.Name == "" && updateProfile.Password == "" && updateProfile.Profile == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data to update"})
		return
	}

	if updateProfile.Name != "" {
		updateProfile.Name = strings.TrimSpace(updateProfile.Name)
		if len(updateProfile.Name) < 2 || len(updateProfile.Name) > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name must be between 2 and 100 characters"})
			return
		}
	}

	if updateProfile.Profile != "" {
		updateProfile.Profile = strings.TrimSpace(updateProfile.Profile)
		if len(updateProfile.Profile) > 500 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Profile description must not exceed 500 characters"})
			return
		}
	}

	ctx := context.Background()
	userDocRef := firestoreClient.Collection("Users").Doc(userId)

	updateMap := make(map[string]interface{})
	if updateProfile.Name != "" {
		updateMap["name"] = updateProfile.Name
	}
	if updateProfile.Profile != "" {
		updateMap["profile"] = updateProfile.Profile
	}
	if updateProfile.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(updateProfile.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process password"})
			return
		}
		updateMap["password"] = string(hashedPassword)
	}
	updateMap["updatedat"] = time.Now()

	err := firestoreClient.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		userDoc, err := tx.Get(userDocRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.New("user not found")
			}
			return errors.New("failed to retrieve user")
		}
		if !userDoc.Exists() {
			return errors.New("user not found")
		}

		var updates []firestore.Update
		for field, value := range updateMap {
			updates = append(updates, firestore.Update{Path: field, Value: value})
		}
		return tx.Update(userDocRef, updates)
	})
	if err != nil {
		switch err.Error() {
		case "user not found":
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case "failed to retrieve user":
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user profile"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"userid":  userId,
	})
}
