package teams

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/teamspace/internal/domain/repository"
	dto "github.com/dropDatabas3/teamspace/internal/http/dto/team"
	"github.com/dropDatabas3/teamspace/internal/query"
)

// fakeTeamRepo guarda teams y membresías en memoria.
type fakeTeamRepo struct {
	byID    map[string]*repository.Team
	members map[string]*repository.TeamMember // key teamID+"/"+userID

	addMemberErr error // si está seteado, AddMember falla con este error
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{
		byID:    map[string]*repository.Team{},
		members: map[string]*repository.TeamMember{},
	}
}

func (f *fakeTeamRepo) Create(_ context.Context, t *repository.Team) error {
	cp := *t
	f.byID[t.ID] = &cp
	return nil
}

func (f *fakeTeamRepo) GetByID(_ context.Context, id string) (*repository.Team, error) {
	t, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTeamRepo) List(_ context.Context, fl repository.TeamFilter, p query.Params) (query.Result[repository.Team], error) {
	p = p.Normalize()
	items := make([]repository.Team, 0)
	for _, t := range f.byID {
		if fl.WorkspaceID != nil && t.WorkspaceID != *fl.WorkspaceID {
			continue
		}
		items = append(items, *t)
	}
	return query.NewResult(items, len(items), p), nil
}

func (f *fakeTeamRepo) Update(_ context.Context, id string, in repository.UpdateTeamInput) (*repository.Team, error) {
	t, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if in.Name != nil {
		t.Name = *in.Name
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Settings != nil {
		t.Settings = in.Settings
	}
	if in.IsActive != nil {
		t.IsActive = *in.IsActive
	}
	t.UpdatedAt = time.Now()
	cp := *t
	return &cp, nil
}

func (f *fakeTeamRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeTeamRepo) AddMember(_ context.Context, m *repository.TeamMember) error {
	if f.addMemberErr != nil {
		return f.addMemberErr
	}
	key := m.TeamID + "/" + m.UserID
	if _, ok := f.members[key]; ok {
		return repository.ErrConflict
	}
	cp := *m
	f.members[key] = &cp
	return nil
}

func (f *fakeTeamRepo) GetMember(_ context.Context, teamID, userID string) (*repository.TeamMember, error) {
	m, ok := f.members[teamID+"/"+userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (f *fakeTeamRepo) ListMembers(_ context.Context, teamID, role string) ([]repository.TeamMember, error) {
	out := make([]repository.TeamMember, 0)
	for _, m := range f.members {
		if m.TeamID != teamID {
			continue
		}
		if role != "" && m.Role != role {
			continue
		}
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeTeamRepo) UpdateMember(_ context.Context, teamID, userID string, in repository.UpdateTeamMemberInput) (*repository.TeamMember, error) {
	m, ok := f.members[teamID+"/"+userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if in.Role != nil {
		m.Role = *in.Role
	}
	if in.Permissions != nil {
		m.Permissions = in.Permissions
	}
	m.UpdatedAt = time.Now()
	cp := *m
	return &cp, nil
}

func (f *fakeTeamRepo) RemoveMember(_ context.Context, teamID, userID string) error {
	key := teamID + "/" + userID
	if _, ok := f.members[key]; !ok {
		return repository.ErrNotFound
	}
	delete(f.members, key)
	return nil
}

// fakeWorkspaceRepo minimal: el service solo usa GetByID.
type fakeWorkspaceRepo struct {
	byID map[string]*repository.Workspace
}

func (f *fakeWorkspaceRepo) Create(_ context.Context, w *repository.Workspace) error {
	f.byID[w.ID] = w
	return nil
}

func (f *fakeWorkspaceRepo) GetByID(_ context.Context, id string) (*repository.Workspace, error) {
	w, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return w, nil
}

func (f *fakeWorkspaceRepo) List(_ context.Context, _ repository.WorkspaceFilter, _ query.Params) (query.Result[repository.Workspace], error) {
	return query.Result[repository.Workspace]{}, nil
}

func (f *fakeWorkspaceRepo) Update(_ context.Context, id string, _ repository.UpdateWorkspaceInput) (*repository.Workspace, error) {
	return f.GetByID(context.Background(), id)
}

func (f *fakeWorkspaceRepo) Delete(_ context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeWorkspaceRepo) AddMember(_ context.Context, _ *repository.WorkspaceMember) error {
	return nil
}

func (f *fakeWorkspaceRepo) GetMember(_ context.Context, _, _ string) (*repository.WorkspaceMember, error) {
	return nil, repository.ErrNotFound
}

func (f *fakeWorkspaceRepo) ListMembers(_ context.Context, _ string) ([]repository.WorkspaceMember, error) {
	return nil, nil
}

func (f *fakeWorkspaceRepo) RemoveMember(_ context.Context, _, _ string) error {
	return repository.ErrNotFound
}

type fakeUserRepo struct {
	byID map[string]*repository.User
}

func (f *fakeUserRepo) Create(_ context.Context, u *repository.User) error {
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*repository.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, _ string) (*repository.User, error) {
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) List(_ context.Context, _ repository.UserFilter, _ query.Params) (query.Result[repository.User], error) {
	return query.Result[repository.User]{}, nil
}

func (f *fakeUserRepo) Update(_ context.Context, id string, _ repository.UpdateUserInput) (*repository.User, error) {
	return f.GetByID(context.Background(), id)
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeUserRepo) SetLastLogin(_ context.Context, _ string, _ time.Time) error {
	return nil
}

type fixture struct {
	svc   Service
	teams *fakeTeamRepo
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	teams := newFakeTeamRepo()
	ws := &fakeWorkspaceRepo{byID: map[string]*repository.Workspace{
		"ws1": {ID: "ws1", Title: "WS", PlanType: repository.PlanFree},
	}}
	users := &fakeUserRepo{byID: map[string]*repository.User{
		"owner1": {ID: "owner1", Email: "owner@example.com", IsActive: true},
		"u1":     {ID: "u1", Email: "u1@example.com", IsActive: true},
	}}
	return fixture{
		svc:   New(Deps{Teams: teams, Workspaces: ws, Users: users}),
		teams: teams,
	}
}

func TestCreateAddsOwnerAsAdmin(t *testing.T) {
	fx := newFixture(t)

	tm, err := fx.svc.Create(context.Background(), dto.CreateTeamRequest{
		WorkspaceID: "ws1",
		OwnerID:     "owner1",
		Name:        "Core",
	})
	require.NoError(t, err)
	require.True(t, tm.IsActive)

	m, err := fx.svc.GetMember(context.Background(), tm.ID, "owner1")
	require.NoError(t, err)
	require.Equal(t, repository.TeamRoleAdmin, m.Role)
}

func TestCreateRollsBackOnMembershipFailure(t *testing.T) {
	fx := newFixture(t)
	fx.teams.addMemberErr = errors.New("insert failed")

	_, err := fx.svc.Create(context.Background(), dto.CreateTeamRequest{
		WorkspaceID: "ws1",
		OwnerID:     "owner1",
		Name:        "Core",
	})
	require.Error(t, err)

	// no debe quedar un team sin la membresía del owner
	require.Empty(t, fx.teams.byID)
	require.Empty(t, fx.teams.members)
}

func TestCreateValidation(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	_, err := fx.svc.Create(ctx, dto.CreateTeamRequest{WorkspaceID: "ws1", OwnerID: "owner1"})
	require.ErrorIs(t, err, repository.ErrInvalidInput) // nombre vacío

	_, err = fx.svc.Create(ctx, dto.CreateTeamRequest{OwnerID: "owner1", Name: "Core"})
	require.ErrorIs(t, err, repository.ErrInvalidInput) // sin workspace_id

	_, err = fx.svc.Create(ctx, dto.CreateTeamRequest{WorkspaceID: "ws1", Name: "Core"})
	require.ErrorIs(t, err, repository.ErrInvalidInput) // sin owner_id

	_, err = fx.svc.Create(ctx, dto.CreateTeamRequest{WorkspaceID: "missing", OwnerID: "owner1", Name: "Core"})
	require.ErrorIs(t, err, repository.ErrNotFound)

	_, err = fx.svc.Create(ctx, dto.CreateTeamRequest{WorkspaceID: "ws1", OwnerID: "ghost", Name: "Core"})
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestListByWorkspace(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	_, err := fx.svc.Create(ctx, dto.CreateTeamRequest{WorkspaceID: "ws1", OwnerID: "owner1", Name: "Core"})
	require.NoError(t, err)

	res, err := fx.svc.ListByWorkspace(ctx, "ws1", query.Params{})
	require.NoError(t, err)
	require.Equal(t, 1, res.Total)

	_, err = fx.svc.ListByWorkspace(ctx, "missing", query.Params{})
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMemberFlow(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	tm, err := fx.svc.Create(ctx, dto.CreateTeamRequest{WorkspaceID: "ws1", OwnerID: "owner1", Name: "Core"})
	require.NoError(t, err)

	// rol default member
	m, err := fx.svc.AddMember(ctx, tm.ID, dto.AddMemberRequest{UserID: "u1"})
	require.NoError(t, err)
	require.Equal(t, repository.TeamRoleMember, m.Role)

	// filtro por rol
	admins, err := fx.svc.ListMembers(ctx, tm.ID, "admin")
	require.NoError(t, err)
	require.Len(t, admins, 1)
	require.Equal(t, "owner1", admins[0].UserID)

	all, err := fx.svc.ListMembers(ctx, tm.ID, "")
	require.NoError(t, err)
	require.Len(t, all, 2)

	// rol inválido en el filtro
	_, err = fx.svc.ListMembers(ctx, tm.ID, "root")
	require.ErrorIs(t, err, repository.ErrInvalidInput)

	// update de rol
	role := "guest"
	upd, err := fx.svc.UpdateMember(ctx, tm.ID, "u1", dto.UpdateMemberRequest{Role: &role})
	require.NoError(t, err)
	require.Equal(t, repository.TeamRoleGuest, upd.Role)

	// update vacío devuelve membresía tal cual
	same, err := fx.svc.UpdateMember(ctx, tm.ID, "u1", dto.UpdateMemberRequest{})
	require.NoError(t, err)
	require.Equal(t, upd.Role, same.Role)

	// remove distingue 404
	require.NoError(t, fx.svc.RemoveMember(ctx, tm.ID, "u1"))
	require.ErrorIs(t, fx.svc.RemoveMember(ctx, tm.ID, "u1"), repository.ErrNotFound)
}

func TestAddMemberChecks(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	tm, err := fx.svc.Create(ctx, dto.CreateTeamRequest{WorkspaceID: "ws1", OwnerID: "owner1", Name: "Core"})
	require.NoError(t, err)

	_, err = fx.svc.AddMember(ctx, tm.ID, dto.AddMemberRequest{})
	require.ErrorIs(t, err, repository.ErrInvalidInput)

	_, err = fx.svc.AddMember(ctx, "missing", dto.AddMemberRequest{UserID: "u1"})
	require.ErrorIs(t, err, repository.ErrNotFound)

	_, err = fx.svc.AddMember(ctx, tm.ID, dto.AddMemberRequest{UserID: "ghost"})
	require.ErrorIs(t, err, repository.ErrNotFound)

	_, err = fx.svc.AddMember(ctx, tm.ID, dto.AddMemberRequest{UserID: "owner1"})
	require.ErrorIs(t, err, repository.ErrConflict)
}
