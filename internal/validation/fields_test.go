package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/teamspace/internal/domain/repository"
)

func TestWorkspaceTitle(t *testing.T) {
	got, err := WorkspaceTitle("  Mi Workspace  ")
	require.NoError(t, err)
	require.Equal(t, "Mi Workspace", got)

	_, err = WorkspaceTitle("   ")
	require.ErrorIs(t, err, repository.ErrInvalidInput)

	_, err = WorkspaceTitle(strings.Repeat("x", 256))
	require.ErrorIs(t, err, repository.ErrInvalidInput)

	got, err = WorkspaceTitle(strings.Repeat("x", 255))
	require.NoError(t, err)
	require.Len(t, got, 255)

	// el cap cuenta caracteres, no bytes
	got, err = WorkspaceTitle(strings.Repeat("á", 255))
	require.NoError(t, err)
	require.Equal(t, strings.Repeat("á", 255), got)

	_, err = WorkspaceTitle(strings.Repeat("á", 256))
	require.ErrorIs(t, err, repository.ErrInvalidInput)
}

func TestTeamName(t *testing.T) {
	got, err := TeamName("  Equipo Ñandú  ")
	require.NoError(t, err)
	require.Equal(t, "Equipo Ñandú", got)

	_, err = TeamName("   ")
	require.ErrorIs(t, err, repository.ErrInvalidInput)

	_, err = TeamName(strings.Repeat("ñ", 255))
	require.NoError(t, err)

	_, err = TeamName(strings.Repeat("ñ", 256))
	require.ErrorIs(t, err, repository.ErrInvalidInput)
}

func TestDescription(t *testing.T) {
	got, err := Description("  hola  ")
	require.NoError(t, err)
	require.Equal(t, "hola", got)

	// vacío es válido
	got, err = Description("")
	require.NoError(t, err)
	require.Equal(t, "", got)

	_, err = Description(strings.Repeat("y", 1001))
	require.ErrorIs(t, err, repository.ErrInvalidInput)

	_, err = Description(strings.Repeat("é", 1000))
	require.NoError(t, err)
}

func TestPlanType(t *testing.T) {
	for _, plan := range []string{"free", "basic", "pro", "enterprise"} {
		got, err := PlanType(plan)
		require.NoError(t, err)
		require.Equal(t, plan, got)
	}

	got, err := PlanType(" PRO ")
	require.NoError(t, err)
	require.Equal(t, "pro", got)

	_, err = PlanType("gold")
	require.ErrorIs(t, err, repository.ErrInvalidInput)
}

func TestTeamRole(t *testing.T) {
	got, err := TeamRole("Admin")
	require.NoError(t, err)
	require.Equal(t, "admin", got)

	_, err = TeamRole("owner")
	require.ErrorIs(t, err, repository.ErrInvalidInput)
}

func TestWorkspaceRole(t *testing.T) {
	got, err := WorkspaceRole("OWNER")
	require.NoError(t, err)
	require.Equal(t, "owner", got)

	_, err = WorkspaceRole("guest")
	require.ErrorIs(t, err, repository.ErrInvalidInput)
}

func TestUserEmail(t *testing.T) {
	got, err := UserEmail("  Ana@Example.COM ")
	require.NoError(t, err)
	require.Equal(t, "ana@example.com", got)

	for _, bad := range []string{"", "no-at-sign", "two @ spaces@x", "a@b@"} {
		_, err := UserEmail(bad)
		require.ErrorIs(t, err, repository.ErrInvalidInput, "email %q", bad)
	}

	_, err = UserEmail(strings.Repeat("a", 250) + "@x.com")
	require.ErrorIs(t, err, repository.ErrInvalidInput)
}

func TestUserProfile(t *testing.T) {
	got, err := UserProfile(map[string]any{"timezone": "UTC", "extra": 42})
	require.NoError(t, err)
	require.Equal(t, "UTC", got["timezone"])

	_, err = UserProfile(map[string]any{"phone": 123456})
	require.ErrorIs(t, err, repository.ErrInvalidInput)

	got, err = UserProfile(nil)
	require.NoError(t, err)
	require.Nil(t, got)
}
