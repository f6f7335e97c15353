package team

import (
	"time"

	"github.com/dropDatabas3/teamspace/internal/domain/repository"
)

// AddMemberRequest represents the request body for POST /v1/teams/{id}/members
type AddMemberRequest struct {
	// UserID is required.
	UserID string `json:"user_id"`
	// Role is one of admin|member|guest. Defaults to member.
	Role string `json:"role,omitempty"`
	// Permissions is an arbitrary JSON object.
	Permissions map[string]any `json:"permissions,omitempty"`
}

// UpdateMemberRequest represents the request body for
// PATCH /v1/teams/{id}/members/{userID}. Absent fields are left untouched.
type UpdateMemberRequest struct {
	Role        *string        `json:"role,omitempty"`
	Permissions map[string]any `json:"permissions,omitempty"`
}

// MemberResponse is the public representation of a team membership.
type MemberResponse struct {
	ID          string         `json:"id"`
	TeamID      string         `json:"team_id"`
	UserID      string         `json:"user_id"`
	Role        string         `json:"role"`
	Permissions map[string]any `json:"permissions"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// MemberFromEntity maps the domain entity to its public representation.
func MemberFromEntity(m *repository.TeamMember) MemberResponse {
	perms := m.Permissions
	if perms == nil {
		perms = map[string]any{}
	}
	return MemberResponse{
		ID:          m.ID,
		TeamID:      m.TeamID,
		UserID:      m.UserID,
		Role:        m.Role,
		Permissions: perms,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
