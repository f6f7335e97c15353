package user

import (
	"time"

	"github.com/dropDatabas3/teamspace/internal/domain/repository"
)

// CreateUserRequest represents the request body for POST /v1/users
type CreateUserRequest struct {
	// Email is required, normalized to lowercase, unique.
	Email string `json:"email"`
	// Name is required, 1-255 chars after trimming.
	Name string `json:"name"`
	// Password is required, minimum 8 chars. Stored as a bcrypt hash.
	Password string `json:"password"`
	// Profile may carry timezone, phone and avatar, all strings.
	Profile map[string]any `json:"profile,omitempty"`
	// Preferences is an arbitrary JSON object.
	Preferences map[string]any `json:"preferences,omitempty"`
}

// UpdateUserRequest represents the request body for PATCH /v1/users/{id}.
// Absent fields are left untouched. Email is immutable.
type UpdateUserRequest struct {
	Name             *string        `json:"name,omitempty"`
	Profile          map[string]any `json:"profile,omitempty"`
	Preferences      map[string]any `json:"preferences,omitempty"`
	IsActive         *bool          `json:"is_active,omitempty"`
	TwoFactorEnabled *bool          `json:"two_factor_enabled,omitempty"`
}

// UserResponse is the public representation of a user.
// The password hash never leaves the server.
type UserResponse struct {
	ID               string         `json:"id"`
	Email            string         `json:"email"`
	Name             string         `json:"name"`
	Profile          map[string]any `json:"profile"`
	Preferences      map[string]any `json:"preferences"`
	IsActive         bool           `json:"is_active"`
	TwoFactorEnabled bool           `json:"two_factor_enabled"`
	LastLoginAt      *time.Time     `json:"last_login_at,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// FromEntity maps the domain entity to its public representation.
func FromEntity(u *repository.User) UserResponse {
	profile := u.Profile
	if profile == nil {
		profile = map[string]any{}
	}
	prefs := u.Preferences
	if prefs == nil {
		prefs = map[string]any{}
	}
	return UserResponse{
		ID:               u.ID,
		Email:            u.Email,
		Name:             u.Name,
		Profile:          profile,
		Preferences:      prefs,
		IsActive:         u.IsActive,
		TwoFactorEnabled: u.TwoFactorEnabled,
		LastLoginAt:      u.LastLoginAt,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}
