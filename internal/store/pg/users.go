// pg/users.go — Implementación PostgreSQL de UserRepository.
package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dropDatabas3/teamspace/internal/domain/repository"
	"github.com/dropDatabas3/teamspace/internal/query"
)

// Columnas por las que un cliente puede filtrar u ordenar usuarios.
var userColumns = map[string]bool{
	"id":         true,
	"email":      true,
	"name":       true,
	"is_active":  true,
	"created_at": true,
	"updated_at": true,
}

const userCols = "id, email, name, password_hash, profile, preferences, is_active, two_factor_enabled, last_login_at, created_at, updated_at"

type userRepo struct {
	pool *pgxpool.Pool
}

func (r *userRepo) scanUser(row interface{ Scan(...any) error }) (*repository.User, error) {
	var u repository.User
	err := row.Scan(
		&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Profile, &u.Preferences,
		&u.IsActive, &u.TwoFactorEnabled, &u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) Create(ctx context.Context, u *repository.User) error {
	const q = `
		INSERT INTO users (id, email, name, password_hash, profile, preferences, is_active, two_factor_enabled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	profile := u.Profile
	if profile == nil {
		profile = map[string]any{}
	}
	prefs := u.Preferences
	if prefs == nil {
		prefs = map[string]any{}
	}
	_, err := r.pool.Exec(ctx, q,
		u.ID, u.Email, u.Name, u.PasswordHash, profile, prefs,
		u.IsActive, u.TwoFactorEnabled, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return mapError("create user", err)
	}
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*repository.User, error) {
	q := "SELECT " + userCols + " FROM users WHERE id = $1"
	u, err := r.scanUser(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		return nil, mapError("get user", err)
	}
	return u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*repository.User, error) {
	q := "SELECT " + userCols + " FROM users WHERE email = $1"
	u, err := r.scanUser(r.pool.QueryRow(ctx, q, email))
	if err != nil {
		return nil, mapError("get user by email", err)
	}
	return u, nil
}

func (r *userRepo) List(ctx context.Context, f repository.UserFilter, p query.Params) (query.Result[repository.User], error) {
	var zero query.Result[repository.User]
	p = p.Normalize()

	countSQL, pageSQL, countArgs, pageArgs := buildPage("users", userCols, f.Conds(), p, userColumns)

	var total int
	if err := r.pool.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return zero, mapError("count users", err)
	}

	rows, err := r.pool.Query(ctx, pageSQL, pageArgs...)
	if err != nil {
		return zero, mapError("list users", err)
	}
	defer rows.Close()

	items := make([]repository.User, 0, p.PerPage)
	for rows.Next() {
		var u repository.User
		if err := rows.Scan(
			&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Profile, &u.Preferences,
			&u.IsActive, &u.TwoFactorEnabled, &u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return zero, mapError("scan user", err)
		}
		items = append(items, u)
	}
	if err := rows.Err(); err != nil {
		return zero, mapError("list users", err)
	}
	return query.NewResult(items, total, p), nil
}

func (r *userRepo) Update(ctx context.Context, id string, in repository.UpdateUserInput) (*repository.User, error) {
	set := make([]string, 0, 6)
	args := make([]any, 0, 7)
	n := 1

	if in.Name != nil {
		set = append(set, fmt.Sprintf("name = $%d", n))
		args = append(args, *in.Name)
		n++
	}
	if in.Profile != nil {
		set = append(set, fmt.Sprintf("profile = $%d", n))
		args = append(args, in.Profile)
		n++
	}
	if in.Preferences != nil {
		set = append(set, fmt.Sprintf("preferences = $%d", n))
		args = append(args, in.Preferences)
		n++
	}
	if in.IsActive != nil {
		set = append(set, fmt.Sprintf("is_active = $%d", n))
		args = append(args, *in.IsActive)
		n++
	}
	if in.TwoFactorEnabled != nil {
		set = append(set, fmt.Sprintf("two_factor_enabled = $%d", n))
		args = append(args, *in.TwoFactorEnabled)
		n++
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}
	set = append(set, "updated_at = now()")
	args = append(args, id)

	q := "UPDATE users SET " + joinSet(set) +
		fmt.Sprintf(" WHERE id = $%d RETURNING ", n) + userCols

	u, err := r.scanUser(r.pool.QueryRow(ctx, q, args...))
	if err != nil {
		return nil, mapError("update user", err)
	}
	return u, nil
}

func (r *userRepo) Delete(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return mapError("delete user", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM team_members WHERE user_id = $1`, id); err != nil {
		return mapError("delete user team memberships", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM workspace_members WHERE user_id = $1`, id); err != nil {
		return mapError("delete user workspace memberships", err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return mapError("delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	if err := tx.Commit(ctx); err != nil {
		return mapError("delete user", err)
	}
	return nil
}

func (r *userRepo) SetLastLogin(ctx context.Context, id string, at time.Time) error {
	tag, err := r.pool.Exec(ctx, `UPDATE users SET last_login_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return mapError("set last login", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
