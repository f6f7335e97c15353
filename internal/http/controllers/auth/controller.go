// Package auth contiene el controller de autenticación.
package auth

import (
	"errors"
	"net/http"

	authdto "github.com/dropDatabas3/teamspace/internal/http/dto/auth"
	httperrors "github.com/dropDatabas3/teamspace/internal/http/errors"
	"github.com/dropDatabas3/teamspace/internal/http/helpers"
	svc "github.com/dropDatabas3/teamspace/internal/http/services/auth"
	"github.com/dropDatabas3/teamspace/internal/observability/logger"
)

// Controller maneja los endpoints de autenticación.
type Controller struct {
	service svc.Service
}

// New crea el controller de autenticación.
func New(service svc.Service) *Controller {
	return &Controller{service: service}
}

// Login maneja POST /v1/auth/login
func (c *Controller) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("auth.Login"))

	var req authdto.LoginRequest
	if err := helpers.DecodeJSON(w, r, &req); err != nil {
		httperrors.WriteError(w, r, err)
		return
	}

	result, err := c.service.Login(ctx, req)
	if err != nil {
		log.Debug("login failed", logger.Err(err))
		httperrors.WriteError(w, r, loginError(err))
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	helpers.WriteJSON(w, http.StatusOK, result)
}

func loginError(err error) error {
	switch {
	case errors.Is(err, svc.ErrMissingFields):
		return httperrors.ErrUnprocessableEntity.WithDetail("email and password are required")
	case errors.Is(err, svc.ErrInvalidCredentials):
		return httperrors.ErrInvalidCredentials
	case errors.Is(err, svc.ErrUserDisabled):
		return httperrors.ErrForbidden.WithDetail("user is disabled")
	default:
		return httperrors.ErrInternalServerError.WithCause(err)
	}
}
