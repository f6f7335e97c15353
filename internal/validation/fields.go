// Package validation normaliza y valida campos de entidades antes de
// persistir: trim, length caps, enums y formato de email.
//
// Cada helper retorna el valor normalizado o un error que envuelve
// repository.ErrInvalidInput, para que los services solo propaguen.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dropDatabas3/teamspace/internal/domain/repository"
)

// Los caps cuentan caracteres (runas), igual que VARCHAR(n) en Postgres.
const (
	maxNameLen        = 255
	maxDescriptionLen = 1000
	maxEmailLen       = 255
)

// Email rules: algo@algo, sin espacios. Permisivo a propósito; la
// verificación real del buzón no es problema de esta capa.
var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+$`)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", repository.ErrInvalidInput, fmt.Sprintf(format, args...))
}

// WorkspaceTitle valida y normaliza el título de un workspace (1..255, no blanco).
func WorkspaceTitle(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", invalid("title cannot be empty")
	}
	if utf8.RuneCountInString(s) > maxNameLen {
		return "", invalid("title cannot exceed %d characters", maxNameLen)
	}
	return s, nil
}

// TeamName valida y normaliza el nombre de un team (1..255, no blanco).
func TeamName(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", invalid("team name cannot be empty")
	}
	if utf8.RuneCountInString(s) > maxNameLen {
		return "", invalid("team name cannot exceed %d characters", maxNameLen)
	}
	return s, nil
}

// UserName valida y normaliza el nombre de un usuario (1..255, no blanco).
func UserName(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", invalid("name cannot be empty")
	}
	if utf8.RuneCountInString(s) > maxNameLen {
		return "", invalid("name cannot exceed %d characters", maxNameLen)
	}
	return s, nil
}

// Description valida y normaliza una descripción opcional (<=1000).
func Description(s string) (string, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > maxDescriptionLen {
		return "", invalid("description cannot exceed %d characters", maxDescriptionLen)
	}
	return s, nil
}

// PlanType valida el plan de un workspace: free | basic | pro | enterprise.
func PlanType(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case repository.PlanFree, repository.PlanBasic, repository.PlanPro, repository.PlanEnterprise:
		return s, nil
	}
	return "", invalid("invalid plan_type %q (must be one of: free, basic, pro, enterprise)", s)
}

// TeamRole valida el rol de un team member: admin | member | guest.
func TeamRole(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case repository.TeamRoleAdmin, repository.TeamRoleMember, repository.TeamRoleGuest:
		return s, nil
	}
	return "", invalid("invalid role %q (must be one of: admin, member, guest)", s)
}

// WorkspaceRole valida el rol de un workspace member: owner | admin | member.
func WorkspaceRole(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case repository.WorkspaceRoleOwner, repository.WorkspaceRoleAdmin, repository.WorkspaceRoleMember:
		return s, nil
	}
	return "", invalid("invalid role %q (must be one of: owner, admin, member)", s)
}

// UserEmail valida y normaliza un email (lowercase, trim, <=255, formato).
func UserEmail(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", invalid("email cannot be empty")
	}
	if utf8.RuneCountInString(s) > maxEmailLen {
		return "", invalid("email cannot exceed %d characters", maxEmailLen)
	}
	if !emailRe.MatchString(s) {
		return "", invalid("invalid email format %q", s)
	}
	return s, nil
}

// UserProfile valida los sub-campos tipados del profile:
// timezone, phone y avatar deben ser strings si están presentes.
func UserProfile(profile map[string]any) (map[string]any, error) {
	if profile == nil {
		return nil, nil
	}
	for _, key := range []string{"timezone", "phone", "avatar"} {
		if v, ok := profile[key]; ok {
			if _, isStr := v.(string); !isStr {
				return nil, invalid("profile.%s must be a string", key)
			}
		}
	}
	return profile, nil
}
