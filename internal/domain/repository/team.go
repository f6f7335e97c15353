package repository

import (
	"context"
	"time"

	"github.com/dropDatabas3/teamspace/internal/query"
)

// Roles válidos de un TeamMember.
const (
	TeamRoleAdmin  = "admin"
	TeamRoleMember = "member"
	TeamRoleGuest  = "guest"
)

// Team representa un grupo dentro de un workspace, con dueño y miembros.
type Team struct {
	ID          string
	WorkspaceID string
	OwnerID     string
	Name        string
	Description string
	Settings    map[string]any
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TeamMember vincula un usuario a un team con rol y permisos.
type TeamMember struct {
	ID          string
	TeamID      string
	UserID      string
	Role        string // admin | member | guest
	Permissions map[string]any
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UpdateTeamInput contiene los campos actualizables de un team.
type UpdateTeamInput struct {
	Name        *string
	Description *string
	Settings    map[string]any
	IsActive    *bool
}

// Empty retorna true si el input no toca ningún campo.
func (in UpdateTeamInput) Empty() bool {
	return in.Name == nil && in.Description == nil && in.Settings == nil && in.IsActive == nil
}

// UpdateTeamMemberInput contiene los campos actualizables de una membresía.
type UpdateTeamMemberInput struct {
	Role        *string
	Permissions map[string]any
}

// Empty retorna true si el input no toca ningún campo.
func (in UpdateTeamMemberInput) Empty() bool {
	return in.Role == nil && in.Permissions == nil
}

// TeamFilter son los filtros soportados al listar teams.
type TeamFilter struct {
	Name          *string
	WorkspaceID   *string
	OwnerID       *string
	IsActive      *bool
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}

// Conds construye las condiciones del filtro.
func (f TeamFilter) Conds() query.Filter {
	var qf query.Filter
	if f.Name != nil {
		qf = qf.ILike("name", *f.Name)
	}
	if f.WorkspaceID != nil {
		qf = qf.Eq("workspace_id", *f.WorkspaceID)
	}
	if f.OwnerID != nil {
		qf = qf.Eq("owner_id", *f.OwnerID)
	}
	if f.IsActive != nil {
		qf = qf.Eq("is_active", *f.IsActive)
	}
	if f.CreatedAfter != nil {
		qf = qf.Gte("created_at", *f.CreatedAfter)
	}
	if f.CreatedBefore != nil {
		qf = qf.Lte("created_at", *f.CreatedBefore)
	}
	return qf
}

// TeamRepository define operaciones de persistencia sobre teams y
// sus membresías.
type TeamRepository interface {
	// Create persiste un team ya construido.
	Create(ctx context.Context, t *Team) error

	// GetByID busca un team por ID. Retorna ErrNotFound si no existe.
	GetByID(ctx context.Context, id string) (*Team, error)

	// List retorna una página de teams con el total que matchea el filtro.
	List(ctx context.Context, f TeamFilter, p query.Params) (query.Result[Team], error)

	// Update aplica un partial update y retorna la entidad actualizada.
	// Retorna ErrNotFound si no existe.
	Update(ctx context.Context, id string, in UpdateTeamInput) (*Team, error)

	// Delete elimina el team y sus membresías en una transacción.
	Delete(ctx context.Context, id string) error

	// AddMember persiste una membresía ya construida.
	// El caller garantiza que el team existe.
	AddMember(ctx context.Context, m *TeamMember) error

	// GetMember busca la membresía (teamID, userID).
	// Retorna ErrNotFound si no existe.
	GetMember(ctx context.Context, teamID, userID string) (*TeamMember, error)

	// ListMembers retorna las membresías del team, opcionalmente
	// filtradas por rol (role == "" lista todas).
	ListMembers(ctx context.Context, teamID, role string) ([]TeamMember, error)

	// UpdateMember aplica un partial update sobre la membresía.
	UpdateMember(ctx context.Context, teamID, userID string, in UpdateTeamMemberInput) (*TeamMember, error)

	// RemoveMember elimina la membresía (teamID, userID).
	// Retorna ErrNotFound si no existe.
	RemoveMember(ctx context.Context, teamID, userID string) error
}
