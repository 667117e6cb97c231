package dto

type SigninRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignupRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

type GoogleSignInRequest struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name"`
}

type CaptchaRequest struct {
	Token  string `json:"token" validate:"required"`
	Action string `json:"action" validate:"required"`
}

type AssessmentResult struct {
	Score   float32
	Action  string
	Reasons []string
}
