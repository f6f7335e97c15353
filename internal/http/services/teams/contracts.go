// Package teams contiene el servicio de teams y sus membresías.
package teams

import (
	"context"

	"github.com/dropDatabas3/teamspace/internal/domain/repository"
	dto "github.com/dropDatabas3/teamspace/internal/http/dto/team"
	"github.com/dropDatabas3/teamspace/internal/query"
)

// Service define las operaciones sobre teams.
type Service interface {
	// Create valida y persiste un team nuevo. El workspace y el owner
	// deben existir; el owner queda como miembro admin del team.
	Create(ctx context.Context, in dto.CreateTeamRequest) (*repository.Team, error)

	// Get busca un team por ID.
	Get(ctx context.Context, id string) (*repository.Team, error)

	// List retorna una página de teams.
	List(ctx context.Context, f repository.TeamFilter, p query.Params) (query.Result[repository.Team], error)

	// ListByWorkspace retorna una página de teams del workspace.
	ListByWorkspace(ctx context.Context, workspaceID string, p query.Params) (query.Result[repository.Team], error)

	// Update aplica un partial update validando solo los campos presentes.
	Update(ctx context.Context, id string, in dto.UpdateTeamRequest) (*repository.Team, error)

	// Delete elimina el team y sus membresías.
	Delete(ctx context.Context, id string) error

	// AddMember agrega un usuario al team. Rol default: member.
	AddMember(ctx context.Context, teamID string, in dto.AddMemberRequest) (*repository.TeamMember, error)

	// GetMember busca la membresía (teamID, userID).
	GetMember(ctx context.Context, teamID, userID string) (*repository.TeamMember, error)

	// ListMembers retorna las membresías del team, opcionalmente por rol.
	ListMembers(ctx context.Context, teamID, role string) ([]repository.TeamMember, error)

	// UpdateMember cambia rol y/o permisos de una membresía.
	UpdateMember(ctx context.Context, teamID, userID string, in dto.UpdateMemberRequest) (*repository.TeamMember, error)

	// RemoveMember quita a un usuario del team.
	RemoveMember(ctx context.Context, teamID, userID string) error
}
