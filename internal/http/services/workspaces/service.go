package workspaces

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/dropDatabas3/teamspace/internal/domain/repository"
	dto "github.com/dropDatabas3/teamspace/internal/http/dto/workspace"
	"github.com/dropDatabas3/teamspace/internal/observability/logger"
	"github.com/dropDatabas3/teamspace/internal/query"
	"github.com/dropDatabas3/teamspace/internal/validation"
)

// ErrCompleted indica que el workspace está completado y el delete
// requiere force=true.
var ErrCompleted = fmt.Errorf("%w: cannot delete a completed workspace without force", repository.ErrPermissionDenied)

// Deps contiene las dependencias del servicio.
type Deps struct {
	Workspaces repository.WorkspaceRepository
	Users      repository.UserRepository
}

// TTLs del cache de lecturas por ID.
const (
	cacheTTL     = 5 * time.Minute
	cacheCleanup = 10 * time.Minute
)

type service struct {
	deps  Deps
	cache *gocache.Cache
}

// New crea el servicio de workspaces.
func New(deps Deps) Service {
	return &service{
		deps:  deps,
		cache: gocache.New(cacheTTL, cacheCleanup),
	}
}

func (s *service) Create(ctx context.Context, in dto.CreateWorkspaceRequest) (*repository.Workspace, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("workspaces"),
		logger.Op("Create"),
	)

	title, err := validation.WorkspaceTitle(in.Title)
	if err != nil {
		return nil, err
	}
	desc, err := validation.Description(in.Description)
	if err != nil {
		return nil, err
	}
	plan := in.PlanType
	if plan == "" {
		plan = repository.PlanFree
	}
	plan, err = validation.PlanType(plan)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	w := &repository.Workspace{
		ID:          uuid.NewString(),
		Title:       title,
		Description: desc,
		PlanType:    plan,
		Settings:    in.Settings,
		IsCompleted: false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.deps.Workspaces.Create(ctx, w); err != nil {
		return nil, err
	}

	log.Info("workspace created", logger.WorkspaceID(w.ID))
	return w, nil
}

func (s *service) Get(ctx context.Context, id string) (*repository.Workspace, error) {
	if v, ok := s.cache.Get(id); ok {
		cp := *v.(*repository.Workspace)
		return &cp, nil
	}
	w, err := s.deps.Workspaces.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Set(id, w, gocache.DefaultExpiration)
	cp := *w
	return &cp, nil
}

func (s *service) List(ctx context.Context, f repository.WorkspaceFilter, p query.Params) (query.Result[repository.Workspace], error) {
	return s.deps.Workspaces.List(ctx, f, p)
}

func (s *service) Update(ctx context.Context, id string, in dto.UpdateWorkspaceRequest) (*repository.Workspace, error) {
	// Validar solo los campos presentes
	upd := repository.UpdateWorkspaceInput{
		Settings:    in.Settings,
		IsCompleted: in.IsCompleted,
	}
	if in.Title != nil {
		title, err := validation.WorkspaceTitle(*in.Title)
		if err != nil {
			return nil, err
		}
		upd.Title = &title
	}
	if in.Description != nil {
		desc, err := validation.Description(*in.Description)
		if err != nil {
			return nil, err
		}
		upd.Description = &desc
	}
	if in.PlanType != nil {
		plan, err := validation.PlanType(*in.PlanType)
		if err != nil {
			return nil, err
		}
		upd.PlanType = &plan
	}

	if upd.Empty() {
		// Nada que actualizar; confirmar existencia y devolver tal cual
		return s.deps.Workspaces.GetByID(ctx, id)
	}
	w, err := s.deps.Workspaces.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	s.cache.Delete(id)
	return w, nil
}

func (s *service) Delete(ctx context.Context, id string, force bool) error {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("workspaces"),
		logger.Op("Delete"),
		logger.WorkspaceID(id),
	)

	w, err := s.deps.Workspaces.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if w.IsCompleted && !force {
		log.Warn("delete blocked: workspace is completed")
		return ErrCompleted
	}

	if err := s.deps.Workspaces.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Delete(id)
	log.Info("workspace deleted", logger.Bool("force", force))
	return nil
}

func (s *service) AddMember(ctx context.Context, workspaceID string, in dto.AddMemberRequest) (*repository.WorkspaceMember, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("workspaces"),
		logger.Op("AddMember"),
		logger.WorkspaceID(workspaceID),
	)

	role := in.Role
	if role == "" {
		role = repository.WorkspaceRoleMember
	}
	role, err := validation.WorkspaceRole(role)
	if err != nil {
		return nil, err
	}
	if in.UserID == "" {
		return nil, fmt.Errorf("%w: user_id is required", repository.ErrInvalidInput)
	}

	// El workspace y el usuario deben existir
	if _, err := s.deps.Workspaces.GetByID(ctx, workspaceID); err != nil {
		return nil, err
	}
	if _, err := s.deps.Users.GetByID(ctx, in.UserID); err != nil {
		return nil, err
	}

	now := time.Now()
	m := &repository.WorkspaceMember{
		ID:          uuid.NewString(),
		WorkspaceID: workspaceID,
		UserID:      in.UserID,
		Role:        role,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.deps.Workspaces.AddMember(ctx, m); err != nil {
		return nil, err
	}

	log.Info("member added", logger.UserID(m.UserID), logger.Role(m.Role))
	return m, nil
}

func (s *service) ListMembers(ctx context.Context, workspaceID string) ([]repository.WorkspaceMember, error) {
	if _, err := s.deps.Workspaces.GetByID(ctx, workspaceID); err != nil {
		return nil, err
	}
	return s.deps.Workspaces.ListMembers(ctx, workspaceID)
}

func (s *service) RemoveMember(ctx context.Context, workspaceID, userID string) error {
	return s.deps.Workspaces.RemoveMember(ctx, workspaceID, userID)
}
