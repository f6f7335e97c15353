package workspaces

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/teamspace/internal/domain/repository"
	dto "github.com/dropDatabas3/teamspace/internal/http/dto/workspace"
	"github.com/dropDatabas3/teamspace/internal/query"
)

// fakeWorkspaceRepo guarda workspaces en memoria.
type fakeWorkspaceRepo struct {
	byID    map[string]*repository.Workspace
	members map[string]*repository.WorkspaceMember // key workspaceID+"/"+userID
	deleted []string
}

func newFakeWorkspaceRepo() *fakeWorkspaceRepo {
	return &fakeWorkspaceRepo{
		byID:    map[string]*repository.Workspace{},
		members: map[string]*repository.WorkspaceMember{},
	}
}

func (f *fakeWorkspaceRepo) Create(_ context.Context, w *repository.Workspace) error {
	cp := *w
	f.byID[w.ID] = &cp
	return nil
}

func (f *fakeWorkspaceRepo) GetByID(_ context.Context, id string) (*repository.Workspace, error) {
	w, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *w
	return &cp, nil
}

func (f *fakeWorkspaceRepo) List(_ context.Context, _ repository.WorkspaceFilter, p query.Params) (query.Result[repository.Workspace], error) {
	p = p.Normalize()
	var items []repository.Workspace
	for _, w := range f.byID {
		items = append(items, *w)
	}
	return query.NewResult(items, len(items), p), nil
}

func (f *fakeWorkspaceRepo) Update(_ context.Context, id string, in repository.UpdateWorkspaceInput) (*repository.Workspace, error) {
	w, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if in.Title != nil {
		w.Title = *in.Title
	}
	if in.Description != nil {
		w.Description = *in.Description
	}
	if in.PlanType != nil {
		w.PlanType = *in.PlanType
	}
	if in.Settings != nil {
		w.Settings = in.Settings
	}
	if in.IsCompleted != nil {
		w.IsCompleted = *in.IsCompleted
	}
	w.UpdatedAt = time.Now()
	cp := *w
	return &cp, nil
}

func (f *fakeWorkspaceRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeWorkspaceRepo) AddMember(_ context.Context, m *repository.WorkspaceMember) error {
	key := m.WorkspaceID + "/" + m.UserID
	if _, ok := f.members[key]; ok {
		return repository.ErrConflict
	}
	cp := *m
	f.members[key] = &cp
	return nil
}

func (f *fakeWorkspaceRepo) GetMember(_ context.Context, workspaceID, userID string) (*repository.WorkspaceMember, error) {
	m, ok := f.members[workspaceID+"/"+userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (f *fakeWorkspaceRepo) ListMembers(_ context.Context, workspaceID string) ([]repository.WorkspaceMember, error) {
	var out []repository.WorkspaceMember
	for _, m := range f.members {
		if m.WorkspaceID == workspaceID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeWorkspaceRepo) RemoveMember(_ context.Context, workspaceID, userID string) error {
	key := workspaceID + "/" + userID
	if _, ok := f.members[key]; !ok {
		return repository.ErrNotFound
	}
	delete(f.members, key)
	return nil
}

// fakeUserRepo solo implementa lo que el service usa.
type fakeUserRepo struct {
	byID map[string]*repository.User
}

func newFakeUserRepo(ids ...string) *fakeUserRepo {
	f := &fakeUserRepo{byID: map[string]*repository.User{}}
	for _, id := range ids {
		f.byID[id] = &repository.User{ID: id, Email: id + "@example.com", IsActive: true}
	}
	return f
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

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*repository.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) List(_ context.Context, _ repository.UserFilter, p query.Params) (query.Result[repository.User], error) {
	return query.Result[repository.User]{}, nil
}

func (f *fakeUserRepo) Update(_ context.Context, id string, _ repository.UpdateUserInput) (*repository.User, error) {
	return f.GetByID(context.Background(), id)
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeUserRepo) SetLastLogin(_ context.Context, id string, at time.Time) error {
	u, ok := f.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.LastLoginAt = &at
	return nil
}

func newService(ws *fakeWorkspaceRepo, users *fakeUserRepo) Service {
	return New(Deps{Workspaces: ws, Users: users})
}

func TestCreateDefaults(t *testing.T) {
	svc := newService(newFakeWorkspaceRepo(), newFakeUserRepo())

	w, err := svc.Create(context.Background(), dto.CreateWorkspaceRequest{Title: "  Test  "})
	require.NoError(t, err)
	require.NotEmpty(t, w.ID)
	require.Equal(t, "Test", w.Title)
	require.Equal(t, repository.PlanFree, w.PlanType)
	require.False(t, w.IsCompleted)
	require.False(t, w.CreatedAt.IsZero())
}

func TestCreateValidation(t *testing.T) {
	svc := newService(newFakeWorkspaceRepo(), newFakeUserRepo())

	_, err := svc.Create(context.Background(), dto.CreateWorkspaceRequest{Title: "   "})
	require.ErrorIs(t, err, repository.ErrInvalidInput)

	_, err = svc.Create(context.Background(), dto.CreateWorkspaceRequest{Title: "ok", PlanType: "gold"})
	require.ErrorIs(t, err, repository.ErrInvalidInput)
}

func TestUpdatePartial(t *testing.T) {
	repo := newFakeWorkspaceRepo()
	svc := newService(repo, newFakeUserRepo())

	w, err := svc.Create(context.Background(), dto.CreateWorkspaceRequest{Title: "Before", PlanType: "pro"})
	require.NoError(t, err)

	title := "After"
	got, err := svc.Update(context.Background(), w.ID, dto.UpdateWorkspaceRequest{Title: &title})
	require.NoError(t, err)
	require.Equal(t, "After", got.Title)
	require.Equal(t, "pro", got.PlanType) // untouched
}

func TestUpdateEmptyInputReturnsEntity(t *testing.T) {
	repo := newFakeWorkspaceRepo()
	svc := newService(repo, newFakeUserRepo())

	w, err := svc.Create(context.Background(), dto.CreateWorkspaceRequest{Title: "Same"})
	require.NoError(t, err)

	got, err := svc.Update(context.Background(), w.ID, dto.UpdateWorkspaceRequest{})
	require.NoError(t, err)
	require.Equal(t, w.Title, got.Title)

	_, err = svc.Update(context.Background(), "missing", dto.UpdateWorkspaceRequest{})
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteGuard(t *testing.T) {
	repo := newFakeWorkspaceRepo()
	svc := newService(repo, newFakeUserRepo())

	w, err := svc.Create(context.Background(), dto.CreateWorkspaceRequest{Title: "Done"})
	require.NoError(t, err)

	completed := true
	_, err = svc.Update(context.Background(), w.ID, dto.UpdateWorkspaceRequest{IsCompleted: &completed})
	require.NoError(t, err)

	// sin force: bloqueado
	err = svc.Delete(context.Background(), w.ID, false)
	require.ErrorIs(t, err, ErrCompleted)
	require.ErrorIs(t, err, repository.ErrPermissionDenied)
	require.Empty(t, repo.deleted)

	// con force: eliminado
	err = svc.Delete(context.Background(), w.ID, true)
	require.NoError(t, err)
	require.Equal(t, []string{w.ID}, repo.deleted)

	_, err = svc.Get(context.Background(), w.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteNotCompletedNoForce(t *testing.T) {
	repo := newFakeWorkspaceRepo()
	svc := newService(repo, newFakeUserRepo())

	w, err := svc.Create(context.Background(), dto.CreateWorkspaceRequest{Title: "Open"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), w.ID, false))
}

func TestDeleteMissing(t *testing.T) {
	svc := newService(newFakeWorkspaceRepo(), newFakeUserRepo())
	err := svc.Delete(context.Background(), "missing", false)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAddMemberDefaultsAndChecks(t *testing.T) {
	repo := newFakeWorkspaceRepo()
	users := newFakeUserRepo("u1")
	svc := newService(repo, users)

	w, err := svc.Create(context.Background(), dto.CreateWorkspaceRequest{Title: "WS"})
	require.NoError(t, err)

	m, err := svc.AddMember(context.Background(), w.ID, dto.AddMemberRequest{UserID: "u1"})
	require.NoError(t, err)
	require.Equal(t, repository.WorkspaceRoleMember, m.Role)

	// duplicado
	_, err = svc.AddMember(context.Background(), w.ID, dto.AddMemberRequest{UserID: "u1"})
	require.ErrorIs(t, err, repository.ErrConflict)

	// usuario inexistente
	_, err = svc.AddMember(context.Background(), w.ID, dto.AddMemberRequest{UserID: "ghost"})
	require.ErrorIs(t, err, repository.ErrNotFound)

	// workspace inexistente
	_, err = svc.AddMember(context.Background(), "missing", dto.AddMemberRequest{UserID: "u1"})
	require.ErrorIs(t, err, repository.ErrNotFound)

	// rol inválido
	_, err = svc.AddMember(context.Background(), w.ID, dto.AddMemberRequest{UserID: "u1", Role: "jefe"})
	require.ErrorIs(t, err, repository.ErrInvalidInput)
}

func TestGetCachesAndInvalidates(t *testing.T) {
	repo := newFakeWorkspaceRepo()
	svc := newService(repo, newFakeUserRepo())
	ctx := context.Background()

	w, err := svc.Create(ctx, dto.CreateWorkspaceRequest{Title: "Cached"})
	require.NoError(t, err)

	first, err := svc.Get(ctx, w.ID)
	require.NoError(t, err)

	// Mutar el repo por debajo: el service debe seguir sirviendo el cache
	repo.byID[w.ID].Title = "Mutated"
	second, err := svc.Get(ctx, w.ID)
	require.NoError(t, err)
	require.Equal(t, first.Title, second.Title)

	// Update invalida la entrada
	title := "Fresh"
	_, err = svc.Update(ctx, w.ID, dto.UpdateWorkspaceRequest{Title: &title})
	require.NoError(t, err)

	third, err := svc.Get(ctx, w.ID)
	require.NoError(t, err)
	require.Equal(t, "Fresh", third.Title)
}

func TestRemoveMember(t *testing.T) {
	repo := newFakeWorkspaceRepo()
	users := newFakeUserRepo("u1")
	svc := newService(repo, users)

	w, err := svc.Create(context.Background(), dto.CreateWorkspaceRequest{Title: "WS"})
	require.NoError(t, err)

	_, err = svc.AddMember(context.Background(), w.ID, dto.AddMemberRequest{UserID: "u1", Role: "owner"})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveMember(context.Background(), w.ID, "u1"))
	require.ErrorIs(t, svc.RemoveMember(context.Background(), w.ID, "u1"), repository.ErrNotFound)
}
