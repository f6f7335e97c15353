package workspace

import (
	"time"

	"github.com/dropDatabas3/teamspace/internal/domain/repository"
)

// CreateWorkspaceRequest represents the request body for POST /v1/workspaces
type CreateWorkspaceRequest struct {
	// Title is required, 1-255 chars after trimming.
	Title string `json:"title"`
	// Description is optional, up to 1000 chars.
	Description string `json:"description,omitempty"`
	// PlanType is one of free|basic|pro|enterprise. Defaults to free.
	PlanType string `json:"plan_type,omitempty"`
	// Settings is an arbitrary JSON object.
	Settings map[string]any `json:"settings,omitempty"`
}

// UpdateWorkspaceRequest represents the request body for PATCH /v1/workspaces/{id}.
// Absent fields are left untouched.
type UpdateWorkspaceRequest struct {
	Title       *string        `json:"title,omitempty"`
	Description *string        `json:"description,omitempty"`
	PlanType    *string        `json:"plan_type,omitempty"`
	Settings    map[string]any `json:"settings,omitempty"`
	IsCompleted *bool          `json:"is_completed,omitempty"`
}

// WorkspaceResponse is the public representation of a workspace.
type WorkspaceResponse struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	PlanType    string         `json:"plan_type"`
	Settings    map[string]any `json:"settings"`
	IsCompleted bool           `json:"is_completed"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// FromEntity maps the domain entity to its public representation.
func FromEntity(w *repository.Workspace) WorkspaceResponse {
	settings := w.Settings
	if settings == nil {
		settings = map[string]any{}
	}
	return WorkspaceResponse{
		ID:          w.ID,
		Title:       w.Title,
		Description: w.Description,
		PlanType:    w.PlanType,
		Settings:    settings,
		IsCompleted: w.IsCompleted,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}
