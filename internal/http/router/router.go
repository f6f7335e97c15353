// Package router define las rutas HTTP del servicio.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	authctrl "github.com/dropDatabas3/teamspace/internal/http/controllers/auth"
	healthctrl "github.com/dropDatabas3/teamspace/internal/http/controllers/health"
	teamctrl "github.com/dropDatabas3/teamspace/internal/http/controllers/teams"
	userctrl "github.com/dropDatabas3/teamspace/internal/http/controllers/users"
	wsctrl "github.com/dropDatabas3/teamspace/internal/http/controllers/workspaces"
	httperrors "github.com/dropDatabas3/teamspace/internal/http/errors"
	mw "github.com/dropDatabas3/teamspace/internal/http/middlewares"
	jwtx "github.com/dropDatabas3/teamspace/internal/jwt"
)

// Deps contiene los controllers y dependencias transversales del router.
type Deps struct {
	Workspaces *wsctrl.Controller
	Teams      *teamctrl.Controller
	Users      *userctrl.Controller
	Auth       *authctrl.Controller
	Health     *healthctrl.Controller

	// Issuer habilita RequireAuth en las rutas de recursos.
	// nil = API abierta (modo desarrollo).
	Issuer *jwtx.Issuer

	// Metrics, si no es nil, se monta en /metrics.
	Metrics http.Handler
}

// New arma el router completo con la middleware chain estándar.
func New(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.WithRecover())
	r.Use(mw.WithRequestID())
	r.Use(mw.WithMetrics())
	r.Use(mw.WithLogging())

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		httperrors.WriteError(w, req, httperrors.ErrRouteNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		httperrors.WriteError(w, req, httperrors.ErrMethodNotAllowed)
	})

	// ─── Operacional ───
	r.Get("/healthz", deps.Health.Healthz)
	r.Get("/readyz", deps.Health.Readyz)
	if deps.Metrics != nil {
		r.Handle("/metrics", deps.Metrics)
	}

	r.Route("/v1", func(v1 chi.Router) {
		// ─── Público ───
		if deps.Auth != nil {
			v1.Post("/auth/login", deps.Auth.Login)
		}

		// ─── Recursos ───
		v1.Group(func(api chi.Router) {
			api.Use(mw.RequireAuth(deps.Issuer))

			api.Route("/workspaces", func(ws chi.Router) {
				ws.Post("/", deps.Workspaces.Create)
				ws.Get("/", deps.Workspaces.List)
				ws.Get("/{workspaceID}", deps.Workspaces.Get)
				ws.Patch("/{workspaceID}", deps.Workspaces.Update)
				ws.Delete("/{workspaceID}", deps.Workspaces.Delete)

				ws.Post("/{workspaceID}/members", deps.Workspaces.AddMember)
				ws.Get("/{workspaceID}/members", deps.Workspaces.ListMembers)
				ws.Delete("/{workspaceID}/members/{userID}", deps.Workspaces.RemoveMember)
			})

			api.Route("/teams", func(t chi.Router) {
				t.Post("/", deps.Teams.Create)
				t.Get("/", deps.Teams.List)
				t.Get("/workspace/{workspaceID}", deps.Teams.ListByWorkspace)
				t.Get("/{teamID}", deps.Teams.Get)
				t.Patch("/{teamID}", deps.Teams.Update)
				t.Delete("/{teamID}", deps.Teams.Delete)

				t.Post("/{teamID}/members", deps.Teams.AddMember)
				t.Get("/{teamID}/members", deps.Teams.ListMembers)
				t.Get("/{teamID}/members/{userID}", deps.Teams.GetMember)
				t.Patch("/{teamID}/members/{userID}", deps.Teams.UpdateMember)
				t.Delete("/{teamID}/members/{userID}", deps.Teams.RemoveMember)
			})

			api.Route("/users", func(u chi.Router) {
				u.Post("/", deps.Users.Create)
				u.Get("/", deps.Users.List)
				u.Get("/{userID}", deps.Users.Get)
				u.Patch("/{userID}", deps.Users.Update)
				u.Delete("/{userID}", deps.Users.Delete)
			})
		})
	})

	return r
}
