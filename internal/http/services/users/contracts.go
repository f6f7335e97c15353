// Package users contiene el servicio de usuarios.
package users

import (
	"context"

	"github.com/dropDatabas3/teamspace/internal/domain/repository"
	dto "github.com/dropDatabas3/teamspace/internal/http/dto/user"
	"github.com/dropDatabas3/teamspace/internal/query"
)

// Service define las operaciones sobre usuarios.
type Service interface {
	// Create valida y persiste un usuario nuevo. El password se
	// almacena como hash bcrypt. ErrConflict si el email ya existe.
	Create(ctx context.Context, in dto.CreateUserRequest) (*repository.User, error)

	// Get busca un usuario por ID.
	Get(ctx context.Context, id string) (*repository.User, error)

	// List retorna una página de usuarios.
	List(ctx context.Context, f repository.UserFilter, p query.Params) (query.Result[repository.User], error)

	// Update aplica un partial update validando solo los campos presentes.
	Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*repository.User, error)

	// Delete elimina el usuario y sus membresías.
	Delete(ctx context.Context, id string) error
}
