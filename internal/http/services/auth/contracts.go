// Package auth contiene el servicio de autenticación.
package auth

import (
	"context"

	dto "github.com/dropDatabas3/teamspace/internal/http/dto/auth"
)

// Service define las operaciones de autenticación.
type Service interface {
	// Login autentica un usuario con email/password y emite un token
	// de acceso. ErrInvalidCredentials si email o password no cuadran.
	Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error)
}
