package model

import "github.com/golang-jwt/jwt/v5"

// TokenResponse is the per-user session record kept in the refreshTokens
// collection. Revoking it (sign-out) invalidates the session everywhere,
// so no further store call can run with the stale owner id.
type TokenResponse struct {
	UserID       string `json:"userId" firestore:"userid"`
	RefreshToken string `json:"refreshToken" firestore:"refreshtoken"`
	CreatedAt    int64  `json:"createdAt" firestore:"createdat"` // creation time in seconds
	Revoked      bool   `json:"revoked" firestore:"revoked"`
	ExpiresIn    int64  `json:"expiresIn" firestore:"expiresin"` // lifetime in seconds
}

type AccessClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

type AccessRefresh struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}
