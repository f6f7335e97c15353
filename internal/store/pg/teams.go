// pg/teams.go — Implementación PostgreSQL de TeamRepository.
package pg

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dropDatabas3/teamspace/internal/domain/repository"
	"github.com/dropDatabas3/teamspace/internal/query"
)

// Columnas por las que un cliente puede filtrar u ordenar teams.
var teamColumns = map[string]bool{
	"id":           true,
	"workspace_id": true,
	"owner_id":     true,
	"name":         true,
	"is_active":    true,
	"created_at":   true,
	"updated_at":   true,
}

const teamCols = "id, workspace_id, owner_id, name, description, settings, is_active, created_at, updated_at"

type teamRepo struct {
	pool *pgxpool.Pool
}

func (r *teamRepo) Create(ctx context.Context, t *repository.Team) error {
	const q = `
		INSERT INTO teams (id, workspace_id, owner_id, name, description, settings, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	settings := t.Settings
	if settings == nil {
		settings = map[string]any{}
	}
	_, err := r.pool.Exec(ctx, q,
		t.ID, t.WorkspaceID, t.OwnerID, t.Name, t.Description, settings, t.IsActive, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return mapError("create team", err)
	}
	return nil
}

func (r *teamRepo) GetByID(ctx context.Context, id string) (*repository.Team, error) {
	q := "SELECT " + teamCols + " FROM teams WHERE id = $1"
	var t repository.Team
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&t.ID, &t.WorkspaceID, &t.OwnerID, &t.Name, &t.Description, &t.Settings,
		&t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, mapError("get team", err)
	}
	return &t, nil
}

func (r *teamRepo) List(ctx context.Context, f repository.TeamFilter, p query.Params) (query.Result[repository.Team], error) {
	var zero query.Result[repository.Team]
	p = p.Normalize()

	countSQL, pageSQL, countArgs, pageArgs := buildPage("teams", teamCols, f.Conds(), p, teamColumns)

	var total int
	if err := r.pool.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return zero, mapError("count teams", err)
	}

	rows, err := r.pool.Query(ctx, pageSQL, pageArgs...)
	if err != nil {
		return zero, mapError("list teams", err)
	}
	defer rows.Close()

	items := make([]repository.Team, 0, p.PerPage)
	for rows.Next() {
		var t repository.Team
		if err := rows.Scan(
			&t.ID, &t.WorkspaceID, &t.OwnerID, &t.Name, &t.Description, &t.Settings,
			&t.IsActive, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return zero, mapError("scan team", err)
		}
		items = append(items, t)
	}
	if err := rows.Err(); err != nil {
		return zero, mapError("list teams", err)
	}
	return query.NewResult(items, total, p), nil
}

func (r *teamRepo) Update(ctx context.Context, id string, in repository.UpdateTeamInput) (*repository.Team, error) {
	set := make([]string, 0, 5)
	args := make([]any, 0, 6)
	n := 1

	if in.Name != nil {
		set = append(set, fmt.Sprintf("name = $%d", n))
		args = append(args, *in.Name)
		n++
	}
	if in.Description != nil {
		set = append(set, fmt.Sprintf("description = $%d", n))
		args = append(args, *in.Description)
		n++
	}
	if in.Settings != nil {
		set = append(set, fmt.Sprintf("settings = $%d", n))
		args = append(args, in.Settings)
		n++
	}
	if in.IsActive != nil {
		set = append(set, fmt.Sprintf("is_active = $%d", n))
		args = append(args, *in.IsActive)
		n++
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}
	set = append(set, "updated_at = now()")
	args = append(args, id)

	q := "UPDATE teams SET " + joinSet(set) +
		fmt.Sprintf(" WHERE id = $%d RETURNING ", n) + teamCols

	var t repository.Team
	err := r.pool.QueryRow(ctx, q, args...).Scan(
		&t.ID, &t.WorkspaceID, &t.OwnerID, &t.Name, &t.Description, &t.Settings,
		&t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, mapError("update team", err)
	}
	return &t, nil
}

func (r *teamRepo) Delete(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return mapError("delete team", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM team_members WHERE team_id = $1`, id); err != nil {
		return mapError("delete team members", err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return mapError("delete team", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	if err := tx.Commit(ctx); err != nil {
		return mapError("delete team", err)
	}
	return nil
}

func (r *teamRepo) AddMember(ctx context.Context, m *repository.TeamMember) error {
	const q = `
		INSERT INTO team_members (id, team_id, user_id, role, permissions, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	perms := m.Permissions
	if perms == nil {
		perms = map[string]any{}
	}
	_, err := r.pool.Exec(ctx, q, m.ID, m.TeamID, m.UserID, m.Role, perms, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return mapError("add team member", err)
	}
	return nil
}

func (r *teamRepo) GetMember(ctx context.Context, teamID, userID string) (*repository.TeamMember, error) {
	const q = `
		SELECT id, team_id, user_id, role, permissions, created_at, updated_at
		FROM team_members
		WHERE team_id = $1 AND user_id = $2
	`
	var m repository.TeamMember
	err := r.pool.QueryRow(ctx, q, teamID, userID).Scan(
		&m.ID, &m.TeamID, &m.UserID, &m.Role, &m.Permissions, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, mapError("get team member", err)
	}
	return &m, nil
}

func (r *teamRepo) ListMembers(ctx context.Context, teamID, role string) ([]repository.TeamMember, error) {
	q := `
		SELECT id, team_id, user_id, role, permissions, created_at, updated_at
		FROM team_members
		WHERE team_id = $1
	`
	args := []any{teamID}
	if role != "" {
		q += " AND role = $2"
		args = append(args, role)
	}
	q += " ORDER BY created_at"

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, mapError("list team members", err)
	}
	defer rows.Close()

	var members []repository.TeamMember
	for rows.Next() {
		var m repository.TeamMember
		if err := rows.Scan(&m.ID, &m.TeamID, &m.UserID, &m.Role, &m.Permissions, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, mapError("scan team member", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list team members", err)
	}
	return members, nil
}

func (r *teamRepo) UpdateMember(ctx context.Context, teamID, userID string, in repository.UpdateTeamMemberInput) (*repository.TeamMember, error) {
	set := make([]string, 0, 3)
	args := make([]any, 0, 4)
	n := 1

	if in.Role != nil {
		set = append(set, fmt.Sprintf("role = $%d", n))
		args = append(args, *in.Role)
		n++
	}
	if in.Permissions != nil {
		set = append(set, fmt.Sprintf("permissions = $%d", n))
		args = append(args, in.Permissions)
		n++
	}
	if len(set) == 0 {
		return r.GetMember(ctx, teamID, userID)
	}
	set = append(set, "updated_at = now()")
	args = append(args, teamID, userID)

	q := "UPDATE team_members SET " + joinSet(set) +
		fmt.Sprintf(" WHERE team_id = $%d AND user_id = $%d", n, n+1) +
		" RETURNING id, team_id, user_id, role, permissions, created_at, updated_at"

	var m repository.TeamMember
	err := r.pool.QueryRow(ctx, q, args...).Scan(
		&m.ID, &m.TeamID, &m.UserID, &m.Role, &m.Permissions, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, mapError("update team member", err)
	}
	return &m, nil
}

func (r *teamRepo) RemoveMember(ctx context.Context, teamID, userID string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM team_members WHERE team_id = $1 AND user_id = $2`,
		teamID, userID,
	)
	if err != nil {
		return mapError("remove team member", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
