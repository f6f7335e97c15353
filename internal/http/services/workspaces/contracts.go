// Package workspaces contiene el servicio de workspaces y sus membresías.
package workspaces

import (
	"context"

	"github.com/dropDatabas3/teamspace/internal/domain/repository"
	dto "github.com/dropDatabas3/teamspace/internal/http/dto/workspace"
	"github.com/dropDatabas3/teamspace/internal/query"
)

// Service define las operaciones sobre workspaces.
type Service interface {
	// Create valida y persiste un workspace nuevo.
	Create(ctx context.Context, in dto.CreateWorkspaceRequest) (*repository.Workspace, error)

	// Get busca un workspace por ID.
	Get(ctx context.Context, id string) (*repository.Workspace, error)

	// List retorna una página de workspaces.
	List(ctx context.Context, f repository.WorkspaceFilter, p query.Params) (query.Result[repository.Workspace], error)

	// Update aplica un partial update validando solo los campos presentes.
	Update(ctx context.Context, id string, in dto.UpdateWorkspaceRequest) (*repository.Workspace, error)

	// Delete elimina un workspace. Un workspace completado solo se
	// elimina con force=true; si no, ErrPermissionDenied.
	Delete(ctx context.Context, id string, force bool) error

	// AddMember agrega un usuario al workspace. Rol default: member.
	AddMember(ctx context.Context, workspaceID string, in dto.AddMemberRequest) (*repository.WorkspaceMember, error)

	// ListMembers retorna las membresías del workspace.
	ListMembers(ctx context.Context, workspaceID string) ([]repository.WorkspaceMember, error)

	// RemoveMember quita a un usuario del workspace.
	RemoveMember(ctx context.Context, workspaceID, userID string) error
}
