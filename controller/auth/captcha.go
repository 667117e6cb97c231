package auth

import (
	"context"
	"fmt"
	"os"
	"strings"
	"weekplanner/dto"

	"cloud.google.com/go/firestore"
	recaptcha "cloud.google.com/go/recaptchaenterprise/v2/apiv1"
	"cloud.google.com/go/recaptchaenterprise/v2/apiv1/recaptchaenterprisepb"
	"github.com/gin-gonic/gin"
	"google.golang.org/api/option"
)

func CaptchaController(router *gin.Engine, firestoreClient *firestore.Client) {
	routes := router.Group("/auth")
	{
		routes.POST("/captcha", func(c *gin.Context) {
			VerifyCaptcha(c, firestoreClient)
		})
	}
}

// VerifyCaptcha scores a sign-in surface token before the client proceeds
// with credentials.
func VerifyCaptcha(c *gin.Context, firestoreClient *firestore.Client) {
	var req dto.CaptchaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{
			"success": false,
			"message": "Invalid request format",
		})
		return
	}

	if req.Token == "" {
		c.JSON(400, gin.H{
			"success": false,
			"message": "Token is required",
		})
		return
	}

	userIPAddress := getClientIP(c)
	userAgent := c.Request.UserAgent()

	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT_ID")
	recaptchaKey := os.Getenv("RECAPTCHA_SITE_KEY")
	credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS_2")

	result, err := createAssessment(c.Request.Context(), projectID, recaptchaKey, credentialsPath, req.Token, req.Action, userIPAddress, userAgent)
	if err != nil {
		fmt.Printf("Error verifying reCAPTCHA: %v\n", err)
		c.JSON(500, gin.H{
			"success": false,
			"message": "Internal server error",
		})
		return
	}

	if result == nil {
		c.JSON(400, gin.H{
			"success": false,
			"message": "reCAPTCHA verification failed",
		})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"score":   result.Score,
		"action":  result.Action,
		"reasons": result.Reasons,
		"message": "Captcha verified successfully",
	})
}

func getClientIP(c *gin.Context) string {
	userIPAddress := c.ClientIP()
	if userIPAddress == "" {
		userIPAddress = c.Request.RemoteAddr
	}
	// keep the first address when several are forwarded
	if idx := strings.Index(userIPAddress, ","); idx != -1 {
		userIPAddress = strings.TrimSpace(userIPAddress[:idx])
	}
	return userIPAddress
}

func createAssessment(ctx context.Context, projectID, recaptchaKey, credentialsPath, token, action, userIPAddress, userAgent string) (*dto.AssessmentResult, error) {
	client, err := recaptcha.NewClient(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, err
	}
	defer client.Close()

	projectPath := fmt.Sprintf("projects/%s", projectID)
	req := &recaptchaenterprisepb.CreateAssessmentRequest{
		Parent: projectPath,
		Assessment: &recaptchaenterprisepb.Assessment{
			Event: &recaptchaenterprisepb.Event{
				Token:         token,
				SiteKey:       recaptchaKey,
				UserIpAddress: userIPAddress,
				UserAgent:     userAgent,
			},
		},
	}

	response, err := client.CreateAssessment(ctx, req)
	if err != nil {
		return nil, err
	}

	if response.TokenProperties == nil || !response.TokenProperties.Valid {
		return nil, nil
	}

	if action != "" && response.TokenProperties.Action != action {
		fmt.Printf("Action mismatch: expected %s, but got %s\n",
			action, response.TokenProperties.Action)
		return nil, nil
	}

	result := &dto.AssessmentResult{
		Action: response.TokenProperties.Action,
	}
	if response.RiskAnalysis != nil {
		result.Score = response.RiskAnalysis.Score
		if len(response.RiskAnalysis.Reasons) > 0 {
			reasons := make([]string, len(response.RiskAnalysis.Reasons))
			for i, reason := range response.RiskAnalysis.Reasons {
				reasons[i] = reason.String()
			}
			result.Reasons = reasons
		}
	}

	return result, nil
}
