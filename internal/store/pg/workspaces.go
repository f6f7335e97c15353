// pg/workspaces.go — Implementación PostgreSQL de WorkspaceRepository.
package pg

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dropDatabas3/teamspace/internal/domain/repository"
	"github.com/dropDatabas3/teamspace/internal/query"
)

// Columnas por las que un cliente puede filtrar u ordenar workspaces.
var workspaceColumns = map[string]bool{
	"id":           true,
	"title":        true,
	"plan_type":    true,
	"is_completed": true,
	"created_at":   true,
	"updated_at":   true,
}

const workspaceCols = "id, title, description, plan_type, settings, is_completed, created_at, updated_at"

type workspaceRepo struct {
	pool *pgxpool.Pool
}

func (r *workspaceRepo) Create(ctx context.Context, w *repository.Workspace) error {
	const q = `
		INSERT INTO workspaces (id, title, description, plan_type, settings, is_completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	settings := w.Settings
	if settings == nil {
		settings = map[string]any{}
	}
	_, err := r.pool.Exec(ctx, q,
		w.ID, w.Title, w.Description, w.PlanType, settings, w.IsCompleted, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return mapError("create workspace", err)
	}
	return nil
}

func (r *workspaceRepo) GetByID(ctx context.Context, id string) (*repository.Workspace, error) {
	q := "SELECT " + workspaceCols + " FROM workspaces WHERE id = $1"
	var w repository.Workspace
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&w.ID, &w.Title, &w.Description, &w.PlanType, &w.Settings,
		&w.IsCompleted, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, mapError("get workspace", err)
	}
	return &w, nil
}

func (r *workspaceRepo) List(ctx context.Context, f repository.WorkspaceFilter, p query.Params) (query.Result[repository.Workspace], error) {
	var zero query.Result[repository.Workspace]
	p = p.Normalize()

	countSQL, pageSQL, countArgs, pageArgs := buildPage("workspaces", workspaceCols, f.Conds(), p, workspaceColumns)

	var total int
	if err := r.pool.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return zero, mapError("count workspaces", err)
	}

	rows, err := r.pool.Query(ctx, pageSQL, pageArgs...)
	if err != nil {
		return zero, mapError("list workspaces", err)
	}
	defer rows.Close()

	items := make([]repository.Workspace, 0, p.PerPage)
	for rows.Next() {
		var w repository.Workspace
		if err := rows.Scan(
			&w.ID, &w.Title, &w.Description, &w.PlanType, &w.Settings,
			&w.IsCompleted, &w.CreatedAt, &w.UpdatedAt,
		); err != nil {
			return zero, mapError("scan workspace", err)
		}
		items = append(items, w)
	}
	if err := rows.Err(); err != nil {
		return zero, mapError("list workspaces", err)
	}
	return query.NewResult(items, total, p), nil
}

func (r *workspaceRepo) Update(ctx context.Context, id string, in repository.UpdateWorkspaceInput) (*repository.Workspace, error) {
	set := make([]string, 0, 6)
	args := make([]any, 0, 7)
	n := 1

	if in.Title != nil {
		set = append(set, fmt.Sprintf("title = $%d", n))
		args = append(args, *in.Title)
		n++
	}
	if in.Description != nil {
		set = append(set, fmt.Sprintf("description = $%d", n))
		args = append(args, *in.Description)
		n++
	}
	if in.PlanType != nil {
		set = append(set, fmt.Sprintf("plan_type = $%d", n))
		args = append(args, *in.PlanType)
		n++
	}
	if in.Settings != nil {
		set = append(set, fmt.Sprintf("settings = $%d", n))
		args = append(args, in.Settings)
		n++
	}
	if in.IsCompleted != nil {
		set = append(set, fmt.Sprintf("is_completed = $%d", n))
		args = append(args, *in.IsCompleted)
		n++
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}
	set = append(set, "updated_at = now()")
	args = append(args, id)

	q := "UPDATE workspaces SET " + joinSet(set) +
		fmt.Sprintf(" WHERE id = $%d RETURNING ", n) + workspaceCols

	var w repository.Workspace
	err := r.pool.QueryRow(ctx, q, args...).Scan(
		&w.ID, &w.Title, &w.Description, &w.PlanType, &w.Settings,
		&w.IsCompleted, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, mapError("update workspace", err)
	}
	return &w, nil
}

func (r *workspaceRepo) Delete(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return mapError("delete workspace", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM workspace_members WHERE workspace_id = $1`, id); err != nil {
		return mapError("delete workspace members", err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM workspaces WHERE id = $1`, id)
	if err != nil {
		return mapError("delete workspace", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	if err := tx.Commit(ctx); err != nil {
		return mapError("delete workspace", err)
	}
	return nil
}

func (r *workspaceRepo) AddMember(ctx context.Context, m *repository.WorkspaceMember) error {
	const q = `
		INSERT INTO workspace_members (id, workspace_id, user_id, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, q, m.ID, m.WorkspaceID, m.UserID, m.Role, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return mapError("add workspace member", err)
	}
	return nil
}

func (r *workspaceRepo) GetMember(ctx context.Context, workspaceID, userID string) (*repository.WorkspaceMember, error) {
	const q = `
		SELECT id, workspace_id, user_id, role, created_at, updated_at
		FROM workspace_members
		WHERE workspace_id = $1 AND user_id = $2
	`
	var m repository.WorkspaceMember
	err := r.pool.QueryRow(ctx, q, workspaceID, userID).Scan(
		&m.ID, &m.WorkspaceID, &m.UserID, &m.Role, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, mapError("get workspace member", err)
	}
	return &m, nil
}

func (r *workspaceRepo) ListMembers(ctx context.Context, workspaceID string) ([]repository.WorkspaceMember, error) {
	const q = `
		SELECT id, workspace_id, user_id, role, created_at, updated_at
		FROM workspace_members
		WHERE workspace_id = $1
		ORDER BY created_at
	`
	rows, err := r.pool.Query(ctx, q, workspaceID)
	if err != nil {
		return nil, mapError("list workspace members", err)
	}
	defer rows.Close()

	var members []repository.WorkspaceMember
	for rows.Next() {
		var m repository.WorkspaceMember
		if err := rows.Scan(&m.ID, &m.WorkspaceID, &m.UserID, &m.Role, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, mapError("scan workspace member", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list workspace members", err)
	}
	return members, nil
}

func (r *workspaceRepo) RemoveMember(ctx context.Context, workspaceID, userID string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM workspace_members WHERE workspace_id = $1 AND user_id = $2`,
		workspaceID, userID,
	)
	if err != nil {
		return mapError("remove workspace member", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
