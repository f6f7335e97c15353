package repository

import (
	"context"
	"time"

	"github.com/dropDatabas3/teamspace/internal/query"
)

// Planes válidos de un workspace.
const (
	PlanFree       = "free"
	PlanBasic      = "basic"
	PlanPro        = "pro"
	PlanEnterprise = "enterprise"
)

// Roles válidos de un WorkspaceMember.
const (
	WorkspaceRoleOwner  = "owner"
	WorkspaceRoleAdmin  = "admin"
	WorkspaceRoleMember = "member"
)

// Workspace representa el contenedor top-level (tenant) del sistema.
type Workspace struct {
	ID          string
	Title       string
	Description string
	PlanType    string
	Settings    map[string]any
	IsCompleted bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// WorkspaceMember es la membresía de un usuario en un workspace.
type WorkspaceMember struct {
	ID          string
	WorkspaceID string
	UserID      string
	Role        string // owner | admin | member
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UpdateWorkspaceInput contiene los campos actualizables de un workspace.
// nil = campo no tocado.
type UpdateWorkspaceInput struct {
	Title       *string
	Description *string
	PlanType    *string
	Settings    map[string]any
	IsCompleted *bool
}

// Empty retorna true si el input no toca ningún campo.
func (in UpdateWorkspaceInput) Empty() bool {
	return in.Title == nil && in.Description == nil && in.PlanType == nil &&
		in.Settings == nil && in.IsCompleted == nil
}

// WorkspaceFilter son los filtros soportados al listar workspaces.
// Cada campo no-nil produce una condición tipada; Title hace substring
// match case-insensitive, el resto igualdad exacta.
type WorkspaceFilter struct {
	Title         *string
	PlanType      *string
	IsCompleted   *bool
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}

// Conds construye las condiciones del filtro.
func (f WorkspaceFilter) Conds() query.Filter {
	var qf query.Filter
	if f.Title != nil {
		qf = qf.ILike("title", *f.Title)
	}
	if f.PlanType != nil {
		qf = qf.Eq("plan_type", *f.PlanType)
	}
	if f.IsCompleted != nil {
		qf = qf.Eq("is_completed", *f.IsCompleted)
	}
	if f.CreatedAfter != nil {
		qf = qf.Gte("created_at", *f.CreatedAfter)
	}
	if f.CreatedBefore != nil {
		qf = qf.Lte("created_at", *f.CreatedBefore)
	}
	return qf
}

// WorkspaceRepository define operaciones de persistencia sobre workspaces
// y sus membresías.
type WorkspaceRepository interface {
	// Create persiste un workspace ya construido (id y timestamps asignados).
	Create(ctx context.Context, w *Workspace) error

	// GetByID busca un workspace por ID. Retorna ErrNotFound si no existe.
	GetByID(ctx context.Context, id string) (*Workspace, error)

	// List retorna una página de workspaces con el total que matchea el filtro.
	List(ctx context.Context, f WorkspaceFilter, p query.Params) (query.Result[Workspace], error)

	// Update aplica un partial update y retorna la entidad actualizada.
	// Refresca updated_at solo si al menos un campo cambió.
	// Retorna ErrNotFound si no existe.
	Update(ctx context.Context, id string, in UpdateWorkspaceInput) (*Workspace, error)

	// Delete elimina el workspace y sus membresías en una transacción.
	// Violaciones de integridad referencial (ej: teams dependientes)
	// se reportan como ErrStorage tras rollback.
	Delete(ctx context.Context, id string) error

	// AddMember persiste una membresía ya construida.
	AddMember(ctx context.Context, m *WorkspaceMember) error

	// GetMember busca la membresía (workspaceID, userID).
	GetMember(ctx context.Context, workspaceID, userID string) (*WorkspaceMember, error)

	// ListMembers retorna todas las membresías del workspace.
	ListMembers(ctx context.Context, workspaceID string) ([]WorkspaceMember, error)

	// RemoveMember elimina la membresía (workspaceID, userID).
	RemoveMember(ctx context.Context, workspaceID, userID string) error
}
