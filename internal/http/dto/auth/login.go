package auth

import (
	"github.com/dropDatabas3/teamspace/internal/http/dto/user"
)

// LoginRequest represents the request body for POST /v1/auth/login
type LoginRequest struct {
	// Email is required.
	Email string `json:"email"`
	// Password is required.
	Password string `json:"password"`
}

// LoginResponse is the response for a successful login.
type LoginResponse struct {
	AccessToken string            `json:"access_token"`
	TokenType   string            `json:"token_type"`
	ExpiresIn   int64             `json:"expires_in"`
	User        user.UserResponse `json:"user"`
}
