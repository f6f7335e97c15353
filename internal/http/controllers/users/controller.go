// Package users contiene los controllers HTTP de usuarios.
package users

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dropDatabas3/teamspace/internal/domain/repository"
	dto "github.com/dropDatabas3/teamspace/internal/http/dto/pagination"
	userdto "github.com/dropDatabas3/teamspace/internal/http/dto/user"
	httperrors "github.com/dropDatabas3/teamspace/internal/http/errors"
	"github.com/dropDatabas3/teamspace/internal/http/helpers"
	svc "github.com/dropDatabas3/teamspace/internal/http/services/users"
	"github.com/dropDatabas3/teamspace/internal/query"
)

// Controller maneja los endpoints de usuarios.
type Controller struct {
	service svc.Service
}

// New crea el controller de usuarios.
func New(service svc.Service) *Controller {
	return &Controller{service: service}
}

// Create maneja POST /v1/users
func (c *Controller) Create(w http.ResponseWriter, r *http.Request) {
	var req userdto.CreateUserRequest
	if err := helpers.DecodeJSON(w, r, &req); err != nil {
		httperrors.WriteError(w, r, err)
		return
	}

	u, err := c.service.Create(r.Context(), req)
	if err != nil {
		if repository.IsConflict(err) {
			httperrors.WriteError(w, r, httperrors.ErrEmailAlreadyInUse)
			return
		}
		httperrors.WriteError(w, r, helpers.FromDomain(err))
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, userdto.FromEntity(u))
}

// List maneja GET /v1/users
func (c *Controller) List(w http.ResponseWriter, r *http.Request) {
	f := repository.UserFilter{
		Email:    dto.QueryString(r, "email"),
		Name:     dto.QueryString(r, "name"),
		IsActive: dto.QueryBool(r, "is_active"),
	}

	res, err := c.service.List(r.Context(), f, dto.FromRequest(r))
	if err != nil {
		httperrors.WriteError(w, r, helpers.FromDomain(err))
		return
	}
	helpers.WriteJSON(w, http.StatusOK, query.Map(res, func(u repository.User) userdto.UserResponse {
		return userdto.FromEntity(&u)
	}))
}

// Get maneja GET /v1/users/{userID}
func (c *Controller) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "userID")

	u, err := c.service.Get(r.Context(), id)
	if err != nil {
		httperrors.WriteError(w, r, userError(err))
		return
	}
	helpers.WriteJSON(w, http.StatusOK, userdto.FromEntity(u))
}

// Update maneja PATCH /v1/users/{userID}
func (c *Controller) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "userID")

	var req userdto.UpdateUserRequest
	if err := helpers.DecodeJSON(w, r, &req); err != nil {
		httperrors.WriteError(w, r, err)
		return
	}

	u, err := c.service.Update(r.Context(), id, req)
	if err != nil {
		httperrors.WriteError(w, r, userError(err))
		return
	}
	helpers.WriteJSON(w, http.StatusOK, userdto.FromEntity(u))
}

// Delete maneja DELETE /v1/users/{userID}
func (c *Controller) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "userID")

	if err := c.service.Delete(r.Context(), id); err != nil {
		httperrors.WriteError(w, r, userError(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// userError especializa el 404 genérico para esta entidad.
func userError(err error) error {
	if repository.IsNotFound(err) {
		return httperrors.ErrUserNotFound
	}
	return helpers.FromDomain(err)
}
