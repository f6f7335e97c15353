package repository

import (
	"context"
	"time"

	"github.com/dropDatabas3/teamspace/internal/query"
)

// User representa un usuario del sistema.
type User struct {
	ID               string
	Email            string
	Name             string
	PasswordHash     string
	Profile          map[string]any // timezone, phone, avatar
	Preferences      map[string]any
	IsActive         bool
	TwoFactorEnabled bool
	LastLoginAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// UpdateUserInput contiene los campos actualizables de un usuario.
type UpdateUserInput struct {
	Name             *string
	Profile          map[string]any
	Preferences      map[string]any
	IsActive         *bool
	TwoFactorEnabled *bool
}

// Empty retorna true si el input no toca ningún campo.
func (in UpdateUserInput) Empty() bool {
	return in.Name == nil && in.Profile == nil && in.Preferences == nil &&
		in.IsActive == nil && in.TwoFactorEnabled == nil
}

// UserFilter son los filtros soportados al listar usuarios.
type UserFilter struct {
	Email    *string
	Name     *string
	IsActive *bool
}

// Conds construye las condiciones del filtro.
// Email y Name hacen substring match case-insensitive.
func (f UserFilter) Conds() query.Filter {
	var qf query.Filter
	if f.Email != nil {
		qf = qf.ILike("email", *f.Email)
	}
	if f.Name != nil {
		qf = qf.ILike("name", *f.Name)
	}
	if f.IsActive != nil {
		qf = qf.Eq("is_active", *f.IsActive)
	}
	return qf
}

// UserRepository define operaciones de persistencia sobre usuarios.
type UserRepository interface {
	// Create persiste un usuario ya construido.
	// Retorna ErrConflict si el email ya existe.
	Create(ctx context.Context, u *User) error

	// GetByID busca un usuario por ID. Retorna ErrNotFound si no existe.
	GetByID(ctx context.Context, id string) (*User, error)

	// GetByEmail busca un usuario por email normalizado.
	// Retorna ErrNotFound si no existe.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// List retorna una página de usuarios con el total que matchea el filtro.
	List(ctx context.Context, f UserFilter, p query.Params) (query.Result[User], error)

	// Update aplica un partial update y retorna la entidad actualizada.
	Update(ctx context.Context, id string, in UpdateUserInput) (*User, error)

	// Delete elimina el usuario y sus membresías en una transacción.
	Delete(ctx context.Context, id string) error

	// SetLastLogin registra el timestamp del último login.
	SetLastLogin(ctx context.Context, id string, at time.Time) error
}
