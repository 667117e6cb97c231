package middleware

import (
	"fmt"
	"os"
	"strings"
	"weekplanner/model"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenMiddleware gates every board call on a live session: the
// access token must verify, and the owner's session record must still be
// present and unrevoked. After sign-out no request with the stale owner id
// gets through, even while the token itself is unexpired.
func AccessTokenMiddleware(firestoreClient *firestore.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.Request.Header.Get("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "Authorization header is missing"})
			return
		}

		tokenString := strings.Replace(header, "Bearer ", "", 1)
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(os.Getenv("JWT_SECRET_KEY")), nil
		})
		if err != nil {
			c.AbortWithStatusJSON(403, gin.H{"error": "Token is expired or invalid: " + err.Error()})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || !token.Valid {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid token claims"})
			return
		}

		userID, ok := claims["userId"].(string)
		if !ok || userID == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid userId in token claims"})
			return
		}

		sessionDoc, err := firestoreClient.Collection("refreshTokens").Doc(userID).Get(c.Request.Context())
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": "Session not found, sign in again"})
			return
		}
		var session model.TokenResponse
		if err := sessionDoc.DataTo(&session); err != nil || session.Revoked {
			c.AbortWithStatusJSON(401, gin.H{"error": "Session revoked, sign in again"})
			return
		}

		c.Set("claims", claims)
		c.Set("userId", userID)
		c.Next()
	}
}

// RefreshTokenMiddleware verifies the refresh token and leaves the user id
// and raw token in the context for the rotation handler.
func RefreshTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "Refresh token is missing"})
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || bearerToken[0] != "Bearer" {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid token format"})
			return
		}
		refreshToken := bearerToken[1]

		token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(os.Getenv("JWT_REFRESH_SECRET_KEY")), nil
		})
		if err != nil {
			c.AbortWithStatusJSON(403, gin.H{"error": "Invalid refresh token: " + err.Error()})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || !token.Valid {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid refresh token claims"})
			return
		}

		userID, found := claims["userId"].(string)
		if !found {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid token claims: userId not found"})
			return
		}

		c.Set("userID", userID)
		c.Set("refreshToken", refreshToken)
		c.Next()
	}
}
