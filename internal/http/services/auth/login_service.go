package auth

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dropDatabas3/teamspace/internal/domain/repository"
	dto "github.com/dropDatabas3/teamspace/internal/http/dto/auth"
	userdto "github.com/dropDatabas3/teamspace/internal/http/dto/user"
	jwtx "github.com/dropDatabas3/teamspace/internal/jwt"
	"github.com/dropDatabas3/teamspace/internal/observability/logger"
	"github.com/dropDatabas3/teamspace/internal/validation"
)

// Errores de login
var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserDisabled       = errors.New("user disabled")
)

// Deps contiene las dependencias del servicio.
type Deps struct {
	Users  repository.UserRepository
	Issuer *jwtx.Issuer
}

type service struct {
	deps Deps
}

// New crea el servicio de autenticación.
func New(deps Deps) Service {
	return &service{deps: deps}
}

func (s *service) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("auth.login"),
		logger.Op("Login"),
	)

	email, err := validation.UserEmail(in.Email)
	if err != nil || in.Password == "" {
		return nil, ErrMissingFields
	}

	u, err := s.deps.Users.GetByEmail(ctx, email)
	if err != nil {
		// No distinguir "no existe" de "password incorrecto"
		log.Debug("user not found", logger.Email(email))
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		log.Debug("login rejected: user disabled", logger.UserID(u.ID))
		return nil, ErrUserDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		log.Debug("password mismatch", logger.UserID(u.ID))
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.deps.Issuer.Sign(u.ID, u.Email)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.deps.Users.SetLastLogin(ctx, u.ID, now); err != nil {
		// El login ya es válido; solo dejar constancia
		log.Warn("could not record last login", logger.UserID(u.ID), logger.Err(err))
	} else {
		u.LastLoginAt = &now
	}

	log.Info("login ok", logger.UserID(u.ID))
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(time.Until(expiresAt).Seconds()),
		User:        userdto.FromEntity(u),
	}, nil
}
