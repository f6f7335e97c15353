package team

import (
	"time"

	"github.com/dropDatabas3/teamspace/internal/domain/repository"
)

// CreateTeamRequest represents the request body for POST /v1/teams
type CreateTeamRequest struct {
	// WorkspaceID is required and must reference an existing workspace.
	WorkspaceID string `json:"workspace_id"`
	// OwnerID is required and must reference an existing user.
	OwnerID string `json:"owner_id"`
	// Name is required, 1-255 chars after trimming.
	Name string `json:"name"`
	// Description is optional, up to 1000 chars.
	Description string `json:"description,omitempty"`
	// Settings is an arbitrary JSON object.
	Settings map[string]any `json:"settings,omitempty"`
}

// UpdateTeamRequest represents the request body for PATCH /v1/teams/{id}.
// Absent fields are left untouched.
type UpdateTeamRequest struct {
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	Settings    map[string]any `json:"settings,omitempty"`
	IsActive    *bool          `json:"is_active,omitempty"`
}

// TeamResponse is the public representation of a team.
type TeamResponse struct {
	ID          string         `json:"id"`
	WorkspaceID string         `json:"workspace_id"`
	OwnerID     string         `json:"owner_id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Settings    map[string]any `json:"settings"`
	IsActive    bool           `json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// FromEntity maps the domain entity to its public representation.
func FromEntity(t *repository.Team) TeamResponse {
	settings := t.Settings
	if settings == nil {
		settings = map[string]any{}
	}
	return TeamResponse{
		ID:          t.ID,
		WorkspaceID: t.WorkspaceID,
		OwnerID:     t.OwnerID,
		Name:        t.Name,
		Description: t.Description,
		Settings:    settings,
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
