package workspace

import (
	"time"

	"github.com/dropDatabas3/teamspace/internal/domain/repository"
)

// AddMemberRequest represents the request body for POST /v1/workspaces/{id}/members
type AddMemberRequest struct {
	// UserID is required.
	UserID string `json:"user_id"`
	// Role is one of owner|admin|member. Defaults to member.
	Role string `json:"role,omitempty"`
}

// MemberResponse is the public representation of a workspace membership.
type MemberResponse struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	UserID      string    `json:"user_id"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MemberFromEntity maps the domain entity to its public representation.
func MemberFromEntity(m *repository.WorkspaceMember) MemberResponse {
	return MemberResponse{
		ID:          m.ID,
		WorkspaceID: m.WorkspaceID,
		UserID:      m.UserID,
		Role:        m.Role,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
