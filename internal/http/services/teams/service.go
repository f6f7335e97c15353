package teams

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dropDatabas3/teamspace/internal/domain/repository"
	dto "github.com/dropDatabas3/teamspace/internal/http/dto/team"
	"github.com/dropDatabas3/teamspace/internal/observability/logger"
	"github.com/dropDatabas3/teamspace/internal/query"
	"github.com/dropDatabas3/teamspace/internal/validation"
)

// Deps contiene las dependencias del servicio.
type Deps struct {
	Teams      repository.TeamRepository
	Workspaces repository.WorkspaceRepository
	Users      repository.UserRepository
}

type service struct {
	deps Deps
}

// New crea el servicio de teams.
func New(deps Deps) Service {
	return &service{deps: deps}
}

func (s *service) Create(ctx context.Context, in dto.CreateTeamRequest) (*repository.Team, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("teams"),
		logger.Op("Create"),
	)

	name, err := validation.TeamName(in.Name)
	if err != nil {
		return nil, err
	}
	desc, err := validation.Description(in.Description)
	if err != nil {
		return nil, err
	}
	if in.WorkspaceID == "" {
		return nil, fmt.Errorf("%w: workspace_id is required", repository.ErrInvalidInput)
	}
	if in.OwnerID == "" {
		return nil, fmt.Errorf("%w: owner_id is required", repository.ErrInvalidInput)
	}

	// El workspace y el owner deben existir
	if _, err := s.deps.Workspaces.GetByID(ctx, in.WorkspaceID); err != nil {
		return nil, err
	}
	owner, err := s.deps.Users.GetByID(ctx, in.OwnerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	t := &repository.Team{
		ID:          uuid.NewString(),
		WorkspaceID: in.WorkspaceID,
		OwnerID:     owner.ID,
		Name:        name,
		Description: desc,
		Settings:    in.Settings,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.deps.Teams.Create(ctx, t); err != nil {
		return nil, err
	}

	// El owner arranca como admin del team. Un team sin esa membresía
	// queda inconsistente, así que si el insert falla se deshace el team.
	m := &repository.TeamMember{
		ID:        uuid.NewString(),
		TeamID:    t.ID,
		UserID:    owner.ID,
		Role:      repository.TeamRoleAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.deps.Teams.AddMember(ctx, m); err != nil {
		if delErr := s.deps.Teams.Delete(ctx, t.ID); delErr != nil {
			log.Error("could not roll back team after member insert failure",
				logger.TeamID(t.ID), logger.Err(delErr))
		}
		return nil, fmt.Errorf("teams: add owner membership: %w", err)
	}

	log.Info("team created", logger.TeamID(t.ID), logger.WorkspaceID(t.WorkspaceID))
	return t, nil
}

func (s *service) Get(ctx context.Context, id string) (*repository.Team, error) {
	return s.deps.Teams.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, f repository.TeamFilter, p query.Params) (query.Result[repository.Team], error) {
	return s.deps.Teams.List(ctx, f, p)
}

func (s *service) ListByWorkspace(ctx context.Context, workspaceID string, p query.Params) (query.Result[repository.Team], error) {
	var zero query.Result[repository.Team]
	if _, err := s.deps.Workspaces.GetByID(ctx, workspaceID); err != nil {
		return zero, err
	}
	return s.deps.Teams.List(ctx, repository.TeamFilter{WorkspaceID: &workspaceID}, p)
}

func (s *service) Update(ctx context.Context, id string, in dto.UpdateTeamRequest) (*repository.Team, error) {
	upd := repository.UpdateTeamInput{
		Settings: in.Settings,
		IsActive: in.IsActive,
	}
	if in.Name != nil {
		name, err := validation.TeamName(*in.Name)
		if err != nil {
			return nil, err
		}
		upd.Name = &name
	}
	if in.Description != nil {
		desc, err := validation.Description(*in.Description)
		if err != nil {
			return nil, err
		}
		upd.Description = &desc
	}

	if upd.Empty() {
		return s.deps.Teams.GetByID(ctx, id)
	}
	return s.deps.Teams.Update(ctx, id, upd)
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("teams"),
		logger.Op("Delete"),
		logger.TeamID(id),
	)

	if err := s.deps.Teams.Delete(ctx, id); err != nil {
		return err
	}
	log.Info("team deleted")
	return nil
}

func (s *service) AddMember(ctx context.Context, teamID string, in dto.AddMemberRequest) (*repository.TeamMember, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("teams"),
		logger.Op("AddMember"),
		logger.TeamID(teamID),
	)

	role := in.Role
	if role == "" {
		role = repository.TeamRoleMember
	}
	role, err := validation.TeamRole(role)
	if err != nil {
		return nil, err
	}
	if in.UserID == "" {
		return nil, fmt.Errorf("%w: user_id is required", repository.ErrInvalidInput)
	}

	// El team y el usuario deben existir
	if _, err := s.deps.Teams.GetByID(ctx, teamID); err != nil {
		return nil, err
	}
	if _, err := s.deps.Users.GetByID(ctx, in.UserID); err != nil {
		return nil, err
	}

	now := time.Now()
	m := &repository.TeamMember{
		ID:          uuid.NewString(),
		TeamID:      teamID,
		UserID:      in.UserID,
		Role:        role,
		Permissions: in.Permissions,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.deps.Teams.AddMember(ctx, m); err != nil {
		return nil, err
	}

	log.Info("member added", logger.UserID(m.UserID), logger.Role(m.Role))
	return m, nil
}

func (s *service) GetMember(ctx context.Context, teamID, userID string) (*repository.TeamMember, error) {
	return s.deps.Teams.GetMember(ctx, teamID, userID)
}

func (s *service) ListMembers(ctx context.Context, teamID, role string) ([]repository.TeamMember, error) {
	if role != "" {
		var err error
		role, err = validation.TeamRole(role)
		if err != nil {
			return nil, err
		}
	}
	if _, err := s.deps.Teams.GetByID(ctx, teamID); err != nil {
		return nil, err
	}
	return s.deps.Teams.ListMembers(ctx, teamID, role)
}

func (s *service) UpdateMember(ctx context.Context, teamID, userID string, in dto.UpdateMemberRequest) (*repository.TeamMember, error) {
	upd := repository.UpdateTeamMemberInput{
		Permissions: in.Permissions,
	}
	if in.Role != nil {
		role, err := validation.TeamRole(*in.Role)
		if err != nil {
			return nil, err
		}
		upd.Role = &role
	}

	if upd.Empty() {
		return s.deps.Teams.GetMember(ctx, teamID, userID)
	}
	return s.deps.Teams.UpdateMember(ctx, teamID, userID, upd)
}

func (s *service) RemoveMember(ctx context.Context, teamID, userID string) error {
	// La membresía debe existir para distinguir 404 de no-op
	if _, err := s.deps.Teams.GetMember(ctx, teamID, userID); err != nil {
		return err
	}
	return s.deps.Teams.RemoveMember(ctx, teamID, userID)
}
