package users

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dropDatabas3/teamspace/internal/domain/repository"
	dto "github.com/dropDatabas3/teamspace/internal/http/dto/user"
	"github.com/dropDatabas3/teamspace/internal/observability/logger"
	"github.com/dropDatabas3/teamspace/internal/query"
	"github.com/dropDatabas3/teamspace/internal/validation"
)

const minPasswordLen = 8

// Deps contiene las dependencias del servicio.
type Deps struct {
	Users repository.UserRepository
}

type service struct {
	deps Deps
}

// New crea el servicio de usuarios.
func New(deps Deps) Service {
	return &service{deps: deps}
}

func (s *service) Create(ctx context.Context, in dto.CreateUserRequest) (*repository.User, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("users"),
		logger.Op("Create"),
	)

	email, err := validation.UserEmail(in.Email)
	if err != nil {
		return nil, err
	}
	name, err := validation.UserName(in.Name)
	if err != nil {
		return nil, err
	}
	if len(in.Password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", repository.ErrInvalidInput, minPasswordLen)
	}
	profile, err := validation.UserProfile(in.Profile)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("users: hash password: %w", err)
	}

	now := time.Now()
	u := &repository.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Profile:      profile,
		Preferences:  in.Preferences,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.deps.Users.Create(ctx, u); err != nil {
		return nil, err
	}

	log.Info("user created", logger.UserID(u.ID), logger.Email(u.Email))
	return u, nil
}

func (s *service) Get(ctx context.Context, id string) (*repository.User, error) {
	return s.deps.Users.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, f repository.UserFilter, p query.Params) (query.Result[repository.User], error) {
	return s.deps.Users.List(ctx, f, p)
}

func (s *service) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*repository.User, error) {
	upd := repository.UpdateUserInput{
		Preferences:      in.Preferences,
		IsActive:         in.IsActive,
		TwoFactorEnabled: in.TwoFactorEnabled,
	}
	if in.Name != nil {
		name, err := validation.UserName(*in.Name)
		if err != nil {
			return nil, err
		}
		upd.Name = &name
	}
	if in.Profile != nil {
		profile, err := validation.UserProfile(in.Profile)
		if err != nil {
			return nil, err
		}
		upd.Profile = profile
	}

	if upd.Empty() {
		return s.deps.Users.GetByID(ctx, id)
	}
	return s.deps.Users.Update(ctx, id, upd)
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("users"),
		logger.Op("Delete"),
		logger.UserID(id),
	)

	if err := s.deps.Users.Delete(ctx, id); err != nil {
		return err
	}
	log.Info("user deleted")
	return nil
}
