// Package workspaces contiene los controllers HTTP de workspaces.
package workspaces

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dropDatabas3/teamspace/internal/domain/repository"
	dto "github.com/dropDatabas3/teamspace/internal/http/dto/pagination"
	wsdto "github.com/dropDatabas3/teamspace/internal/http/dto/workspace"
	httperrors "github.com/dropDatabas3/teamspace/internal/http/errors"
	"github.com/dropDatabas3/teamspace/internal/http/helpers"
	svc "github.com/dropDatabas3/teamspace/internal/http/services/workspaces"
	"github.com/dropDatabas3/teamspace/internal/query"
)

// Controller maneja los endpoints de workspaces.
type Controller struct {
	service svc.Service
}

// New crea el controller de workspaces.
func New(service svc.Service) *Controller {
	return &Controller{service: service}
}

// Create maneja POST /v1/workspaces
func (c *Controller) Create(w http.ResponseWriter, r *http.Request) {
	var req wsdto.CreateWorkspaceRequest
	if err := helpers.DecodeJSON(w, r, &req); err != nil {
		httperrors.WriteError(w, r, err)
		return
	}

	ws, err := c.service.Create(r.Context(), req)
	if err != nil {
		httperrors.WriteError(w, r, helpers.FromDomain(err))
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, wsdto.FromEntity(ws))
}

// List maneja GET /v1/workspaces
func (c *Controller) List(w http.ResponseWriter, r *http.Request) {
	f := repository.WorkspaceFilter{
		Title:         dto.QueryString(r, "title"),
		PlanType:      dto.QueryString(r, "plan_type"),
		IsCompleted:   dto.QueryBool(r, "is_completed"),
		CreatedAfter:  dto.QueryTime(r, "created_after"),
		CreatedBefore: dto.QueryTime(r, "created_before"),
	}

	res, err := c.service.List(r.Context(), f, dto.FromRequest(r))
	if err != nil {
		httperrors.WriteError(w, r, helpers.FromDomain(err))
		return
	}
	helpers.WriteJSON(w, http.StatusOK, query.Map(res, func(ws repository.Workspace) wsdto.WorkspaceResponse {
		return wsdto.FromEntity(&ws)
	}))
}

// Get maneja GET /v1/workspaces/{workspaceID}
func (c *Controller) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "workspaceID")

	ws, err := c.service.Get(r.Context(), id)
	if err != nil {
		httperrors.WriteError(w, r, workspaceError(err))
		return
	}
	helpers.WriteJSON(w, http.StatusOK, wsdto.FromEntity(ws))
}

// Update maneja PATCH /v1/workspaces/{workspaceID}
func (c *Controller) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "workspaceID")

	var req wsdto.UpdateWorkspaceRequest
	if err := helpers.DecodeJSON(w, r, &req); err != nil {
		httperrors.WriteError(w, r, err)
		return
	}

	ws, err := c.service.Update(r.Context(), id, req)
	if err != nil {
		httperrors.WriteError(w, r, workspaceError(err))
		return
	}
	helpers.WriteJSON(w, http.StatusOK, wsdto.FromEntity(ws))
}

// Delete maneja DELETE /v1/workspaces/{workspaceID}?force=true
func (c *Controller) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "workspaceID")
	force, _ := strconv.ParseBool(r.URL.Query().Get("force"))

	if err := c.service.Delete(r.Context(), id, force); err != nil {
		if errors.Is(err, svc.ErrCompleted) {
			httperrors.WriteError(w, r, httperrors.ErrWorkspaceCompleted)
			return
		}
		httperrors.WriteError(w, r, workspaceError(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddMember maneja POST /v1/workspaces/{workspaceID}/members
func (c *Controller) AddMember(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "workspaceID")

	var req wsdto.AddMemberRequest
	if err := helpers.DecodeJSON(w, r, &req); err != nil {
		httperrors.WriteError(w, r, err)
		return
	}

	m, err := c.service.AddMember(r.Context(), id, req)
	if err != nil {
		if repository.IsConflict(err) {
			httperrors.WriteError(w, r, httperrors.ErrAlreadyMember)
			return
		}
		httperrors.WriteError(w, r, helpers.FromDomain(err))
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, wsdto.MemberFromEntity(m))
}

// ListMembers maneja GET /v1/workspaces/{workspaceID}/members
func (c *Controller) ListMembers(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "workspaceID")

	members, err := c.service.ListMembers(r.Context(), id)
	if err != nil {
		httperrors.WriteError(w, r, workspaceError(err))
		return
	}

	out := make([]wsdto.MemberResponse, len(members))
	for i := range members {
		out[i] = wsdto.MemberFromEntity(&members[i])
	}
	helpers.WriteJSON(w, http.StatusOK, out)
}

// RemoveMember maneja DELETE /v1/workspaces/{workspaceID}/members/{userID}
func (c *Controller) RemoveMember(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "workspaceID")
	userID := chi.URLParam(r, "userID")

	if err := c.service.RemoveMember(r.Context(), id, userID); err != nil {
		if repository.IsNotFound(err) {
			httperrors.WriteError(w, r, httperrors.ErrMemberNotFound)
			return
		}
		httperrors.WriteError(w, r, helpers.FromDomain(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// workspaceError especializa el 404 genérico para esta entidad.
func workspaceError(err error) error {
	if repository.IsNotFound(err) {
		return httperrors.ErrWorkspaceNotFound
	}
	return helpers.FromDomain(err)
}
