package pg

import (
	"errors"
	"io"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/teamspace/internal/domain/repository"
)

func TestMapErrorNoRows(t *testing.T) {
	err := mapError("get workspace", pgx.ErrNoRows)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMapErrorUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: codeUniqueViolation, ConstraintName: "users_email_key"}
	err := mapError("create user", pgErr)
	require.ErrorIs(t, err, repository.ErrConflict)
	require.Contains(t, err.Error(), "users_email_key")
}

func TestMapErrorWrapsEverythingElseAsStorage(t *testing.T) {
	// Cualquier error crudo (driver, red, iteración de rows) sale como
	// ErrStorage con la operación en el mensaje; nunca un error pgx pelado.
	for _, raw := range []error{
		io.ErrUnexpectedEOF,
		errors.New("conn busy"),
		&pgconn.PgError{Code: codeFKViolation, ConstraintName: "teams_workspace_id_fkey"},
	} {
		err := mapError("list team members", raw)
		require.ErrorIs(t, err, repository.ErrStorage, "raw %v", raw)
		require.NotErrorIs(t, err, repository.ErrNotFound)
		require.NotErrorIs(t, err, repository.ErrConflict)
		require.Contains(t, err.Error(), "list team members")
	}
}
