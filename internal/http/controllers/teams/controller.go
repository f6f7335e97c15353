// Package teams contiene los controllers HTTP de teams.
package teams

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dropDatabas3/teamspace/internal/domain/repository"
	dto "github.com/dropDatabas3/teamspace/internal/http/dto/pagination"
	teamdto "github.com/dropDatabas3/teamspace/internal/http/dto/team"
	httperrors "github.com/dropDatabas3/teamspace/internal/http/errors"
	"github.com/dropDatabas3/teamspace/internal/http/helpers"
	svc "github.com/dropDatabas3/teamspace/internal/http/services/teams"
	"github.com/dropDatabas3/teamspace/internal/query"
)

// Controller maneja los endpoints de teams.
type Controller struct {
	service svc.Service
}

// New crea el controller de teams.
func New(service svc.Service) *Controller {
	return &Controller{service: service}
}

// Create maneja POST /v1/teams
func (c *Controller) Create(w http.ResponseWriter, r *http.Request) {
	var req teamdto.CreateTeamRequest
	if err := helpers.DecodeJSON(w, r, &req); err != nil {
		httperrors.WriteError(w, r, err)
		return
	}

	t, err := c.service.Create(r.Context(), req)
	if err != nil {
		httperrors.WriteError(w, r, helpers.FromDomain(err))
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, teamdto.FromEntity(t))
}

// List maneja GET /v1/teams
func (c *Controller) List(w http.ResponseWriter, r *http.Request) {
	f := repository.TeamFilter{
		Name:          dto.QueryString(r, "name"),
		WorkspaceID:   dto.QueryString(r, "workspace_id"),
		OwnerID:       dto.QueryString(r, "owner_id"),
		IsActive:      dto.QueryBool(r, "is_active"),
		CreatedAfter:  dto.QueryTime(r, "created_after"),
		CreatedBefore: dto.QueryTime(r, "created_before"),
	}

	res, err := c.service.List(r.Context(), f, dto.FromRequest(r))
	if err != nil {
		httperrors.WriteError(w, r, helpers.FromDomain(err))
		return
	}
	helpers.WriteJSON(w, http.StatusOK, query.Map(res, func(t repository.Team) teamdto.TeamResponse {
		return teamdto.FromEntity(&t)
	}))
}

// ListByWorkspace maneja GET /v1/teams/workspace/{workspaceID}
func (c *Controller) ListByWorkspace(w http.ResponseWriter, r *http.Request) {
	workspaceID := chi.URLParam(r, "workspaceID")

	res, err := c.service.ListByWorkspace(r.Context(), workspaceID, dto.FromRequest(r))
	if err != nil {
		if repository.IsNotFound(err) {
			httperrors.WriteError(w, r, httperrors.ErrWorkspaceNotFound)
			return
		}
		httperrors.WriteError(w, r, helpers.FromDomain(err))
		return
	}
	helpers.WriteJSON(w, http.StatusOK, query.Map(res, func(t repository.Team) teamdto.TeamResponse {
		return teamdto.FromEntity(&t)
	}))
}

// Get maneja GET /v1/teams/{teamID}
func (c *Controller) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "teamID")

	t, err := c.service.Get(r.Context(), id)
	if err != nil {
		httperrors.WriteError(w, r, teamError(err))
		return
	}
	helpers.WriteJSON(w, http.StatusOK, teamdto.FromEntity(t))
}

// Update maneja PATCH /v1/teams/{teamID}
func (c *Controller) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "teamID")

	var req teamdto.UpdateTeamRequest
	if err := helpers.DecodeJSON(w, r, &req); err != nil {
		httperrors.WriteError(w, r, err)
		return
	}

	t, err := c.service.Update(r.Context(), id, req)
	if err != nil {
		httperrors.WriteError(w, r, teamError(err))
		return
	}
	helpers.WriteJSON(w, http.StatusOK, teamdto.FromEntity(t))
}

// Delete maneja DELETE /v1/teams/{teamID}
func (c *Controller) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "teamID")

	if err := c.service.Delete(r.Context(), id); err != nil {
		httperrors.WriteError(w, r, teamError(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddMember maneja POST /v1/teams/{teamID}/members
func (c *Controller) AddMember(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "teamID")

	var req teamdto.AddMemberRequest
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
	helpers.WriteJSON(w, http.StatusCreated, teamdto.MemberFromEntity(m))
}

// GetMember maneja GET /v1/teams/{teamID}/members/{userID}
func (c *Controller) GetMember(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "teamID")
	userID := chi.URLParam(r, "userID")

	m, err := c.service.GetMember(r.Context(), id, userID)
	if err != nil {
		if repository.IsNotFound(err) {
			httperrors.WriteError(w, r, httperrors.ErrMemberNotFound)
			return
		}
		httperrors.WriteError(w, r, helpers.FromDomain(err))
		return
	}
	helpers.WriteJSON(w, http.StatusOK, teamdto.MemberFromEntity(m))
}

// ListMembers maneja GET /v1/teams/{teamID}/members?role=admin
func (c *Controller) ListMembers(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "teamID")
	role := r.URL.Query().Get("role")

	members, err := c.service.ListMembers(r.Context(), id, role)
	if err != nil {
		httperrors.WriteError(w, r, teamError(err))
		return
	}

	out := make([]teamdto.MemberResponse, len(members))
	for i := range members {
		out[i] = teamdto.MemberFromEntity(&members[i])
	}
	helpers.WriteJSON(w, http.StatusOK, out)
}

// UpdateMember maneja PATCH /v1/teams/{teamID}/members/{userID}
func (c *Controller) UpdateMember(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "teamID")
	userID := chi.URLParam(r, "userID")

	var req teamdto.UpdateMemberRequest
	if err := helpers.DecodeJSON(w, r, &req); err != nil {
		httperrors.WriteError(w, r, err)
		return
	}

	m, err := c.service.UpdateMember(r.Context(), id, userID, req)
	if err != nil {
		if repository.IsNotFound(err) {
			httperrors.WriteError(w, r, httperrors.ErrMemberNotFound)
			return
		}
		httperrors.WriteError(w, r, helpers.FromDomain(err))
		return
	}
	helpers.WriteJSON(w, http.StatusOK, teamdto.MemberFromEntity(m))
}

// RemoveMember maneja DELETE /v1/teams/{teamID}/members/{userID}
func (c *Controller) RemoveMember(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "teamID")
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

// teamError especializa el 404 genérico para esta entidad.
func teamError(err error) error {
	if repository.IsNotFound(err) {
		return httperrors.ErrTeamNotFound
	}
	return helpers.FromDomain(err)
}
